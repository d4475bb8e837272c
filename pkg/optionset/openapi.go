package optionset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// FromOpenAPI extracts options from the enum of a component schema property.
// Array properties use their item enum. Values in the property default are
// marked selected.
func FromOpenAPI(ctx context.Context, raw []byte, schemaName, property string) ([]Option, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("optionset: openapi document is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("optionset: load openapi document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("optionset: openapi document has no component schemas")
	}

	schemaRef, ok := doc.Components.Schemas[schemaName]
	if !ok || schemaRef == nil || schemaRef.Value == nil {
		return nil, fmt.Errorf("optionset: schema %q not found", schemaName)
	}
	propRef, ok := schemaRef.Value.Properties[property]
	if !ok || propRef == nil || propRef.Value == nil {
		return nil, fmt.Errorf("optionset: property %q not found on schema %q", property, schemaName)
	}

	prop := propRef.Value
	enum := prop.Enum
	if prop.Type.Is(openapi3.TypeArray) && prop.Items != nil && prop.Items.Value != nil {
		enum = prop.Items.Value.Enum
	}
	if len(enum) == 0 {
		return nil, fmt.Errorf("optionset: property %q on schema %q has no enum", property, schemaName)
	}

	defaults := make(map[string]struct{})
	for _, value := range defaultValues(prop.Default) {
		defaults[value] = struct{}{}
	}

	options := make([]Option, 0, len(enum))
	for _, value := range enum {
		label := strings.TrimSpace(fmt.Sprint(value))
		_, selected := defaults[label]
		options = append(options, Option{Label: label, Value: label, Selected: selected})
	}
	return Sanitize(options), nil
}

func defaultValues(def any) []string {
	switch v := def.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, strings.TrimSpace(fmt.Sprint(item)))
		}
		return out
	case []string:
		return v
	default:
		return []string{strings.TrimSpace(fmt.Sprint(v))}
	}
}
