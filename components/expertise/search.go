package expertise

import (
	typeahead "github.com/goliatone/go-expertise/pkg/expertise"
	"github.com/goliatone/go-expertise/pkg/optionset"
)

// Option is one suggestion in the JSON payload.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Search returns catalog options suggested for query. Options marked selected
// in the catalog, and labels listed in exclude, are left out. Order follows
// the catalog.
func Search(options []optionset.Option, query string, exclude []string, limit int, opts Options) []optionset.Option {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	skip := make(map[string]struct{}, len(exclude))
	for _, label := range exclude {
		skip[label] = struct{}{}
	}

	matches := make([]optionset.Option, 0, 16)
	for _, opt := range options {
		if opt.Selected {
			continue
		}
		if _, excluded := skip[opt.Label]; excluded {
			continue
		}
		if !typeahead.Match(opt.Label, query) {
			continue
		}
		matches = append(matches, opt)
		if len(matches) == limit {
			break
		}
	}
	return matches
}

func SearchOptions(options []optionset.Option, query string, exclude []string, limit int, opts Options) []Option {
	results := Search(options, query, exclude, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, opt := range results {
		out = append(out, Option{Value: opt.SubmitValue(), Label: opt.Label})
	}
	return out
}
