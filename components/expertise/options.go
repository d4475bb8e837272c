package expertise

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-expertise/pkg/optionset"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath     string
	SearchParam   string
	SelectedParam string
	LimitParam    string
	DefaultLimit  int
	MaxLimit      int
	Guard         GuardFunc
	Logger        *zap.Logger

	Catalog optionset.Catalog
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:     "/api/expertise",
		SearchParam:   "q",
		SelectedParam: "selected",
		LimitParam:    "limit",
		DefaultLimit:  50,
		MaxLimit:      200,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 50
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 200
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/expertise"
	}
	if opts.SearchParam == "" {
		opts.SearchParam = "q"
	}
	if opts.SelectedParam == "" {
		opts.SelectedParam = "selected"
	}
	if opts.LimitParam == "" {
		opts.LimitParam = "limit"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Catalog.Options != nil {
		opts.Catalog.Options = append([]optionset.Option{}, opts.Catalog.Options...)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

func WithSelectedParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SelectedParam = name
	}
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

// WithCatalog sets the catalog served by the handler.
func WithCatalog(catalog optionset.Catalog) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Catalog = catalog
	}
}

// WithLabels is a shorthand for a catalog of unselected labels.
func WithLabels(labels ...string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		options := make([]optionset.Option, 0, len(labels))
		for _, label := range labels {
			options = append(options, optionset.Option{Label: label})
		}
		o.Catalog.Options = options
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
