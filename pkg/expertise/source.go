package expertise

import (
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-expertise/pkg/autocomplete"
)

// Source feeds the autocomplete. It calls populate once, synchronously, with
// the labels of unselected options whose lowercase form contains the
// lowercase query, in option order.
func (t *Typeahead) Source(query string, populate autocomplete.PopulateFunc) {
	if populate == nil {
		return
	}
	populate(t.Suggestions(query))
}

// Suggestions is Source without the callback.
func (t *Typeahead) Suggestions(query string) []string {
	q := strings.ToLower(query)
	results := make([]string, 0)
	for _, opt := range t.cfg.MultiselectElement.Options() {
		if opt.Selected() {
			continue
		}
		label := opt.Label()
		if matchLower(label, q) {
			results = append(results, label)
		}
	}
	return results
}

// Match reports whether label is suggested for query: a case-insensitive
// substring test, so the empty query matches every label.
func Match(label, query string) bool {
	return matchLower(label, strings.ToLower(query))
}

func matchLower(label, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(label), lowerQuery)
}

// SetOption sets the selected flag on every option whose label equals label
// exactly and returns how many matched. No match is a silent no-op.
func (t *Typeahead) SetOption(label string, selected bool) int {
	matched := 0
	for _, opt := range t.cfg.MultiselectElement.Options() {
		if opt.Label() == label {
			opt.SetSelected(selected)
			matched++
		}
	}
	if matched == 0 {
		t.logger.Debug("no option matches label",
			zap.String("label", label),
			zap.Bool("selected", selected),
		)
	}
	return matched
}

// SelectedLabels returns the labels of selected options in option order.
func (t *Typeahead) SelectedLabels() []string {
	var out []string
	for _, opt := range t.cfg.MultiselectElement.Options() {
		if opt.Selected() {
			out = append(out, opt.Label())
		}
	}
	return out
}
