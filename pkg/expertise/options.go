package expertise

import (
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-expertise/pkg/autocomplete"
)

// RefocusDelay is how long Add waits before returning focus to the search
// input, giving the autocomplete time to finish its own confirm handling.
// The refocus is best effort: it is never cancelled, and it does nothing when
// the input has been detached by then.
const RefocusDelay = 200 * time.Millisecond

// AutocompleteIDSuffix is appended to the select id to derive the search
// input id.
const AutocompleteIDSuffix = "_autocomplete"

// Options tune how the component is built. Config carries the required
// element references; Options carries collaborators and presentation knobs.
type Options struct {
	Autocomplete   autocomplete.Factory
	Logger         *zap.Logger
	RefocusDelay   time.Duration
	TokenTag       string
	EmptyLinkClass string
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		Autocomplete:   autocomplete.DefaultFactory,
		Logger:         zap.NewNop(),
		RefocusDelay:   RefocusDelay,
		TokenTag:       "output",
		EmptyLinkClass: "link",
	}
}

// NewOptions applies fns over DefaultOptions and restores defaults for any
// zero values left behind.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Autocomplete == nil {
		opts.Autocomplete = autocomplete.DefaultFactory
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.RefocusDelay < 0 {
		opts.RefocusDelay = 0
	}
	if opts.TokenTag == "" {
		opts.TokenTag = "output"
	}
	return opts
}

// WithAutocomplete swaps the autocomplete capability.
func WithAutocomplete(factory autocomplete.Factory) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Autocomplete = factory
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

// WithRefocusDelay overrides RefocusDelay.
func WithRefocusDelay(delay time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RefocusDelay = delay
	}
}

// WithTokenTag changes the element used for selected tokens.
func WithTokenTag(tag string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.TokenTag = tag
	}
}

// WithEmptyLinkClass changes the class of the empty-state link. An empty
// class omits the attribute.
func WithEmptyLinkClass(class string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptyLinkClass = class
	}
}
