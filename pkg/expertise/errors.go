package expertise

import (
	"errors"
	"fmt"
)

// ErrAutocompleteInit marks failures raised while constructing the
// autocomplete capability or locating the input it generates.
var ErrAutocompleteInit = errors.New("expertise: autocomplete initialisation failed")

// ConfigError describes a missing or malformed construction argument.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "expertise: invalid configuration"
	}
	return fmt.Sprintf("expertise: invalid configuration: %s %s", e.Field, e.Reason)
}

func configError(field, reason string) error {
	return &ConfigError{Field: field, Reason: reason}
}
