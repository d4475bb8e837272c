package expertise

import (
	"github.com/goliatone/go-expertise/pkg/dom"
)

// RenderSelectedValues rebuilds the selected-values container from scratch:
// one removable token per selected option, or a single link back to the
// search input when nothing is selected. It returns the number of tokens.
func (t *Typeahead) RenderSelectedValues() int {
	var tokens []*dom.Element
	for _, opt := range t.cfg.MultiselectElement.Options() {
		if opt.Selected() {
			tokens = append(tokens, t.selectedValueElement(opt.Label()))
		}
	}
	if len(tokens) == 0 {
		t.cfg.SelectedValuesElement.ReplaceChildren(t.nothingSelectedElement())
		return 0
	}
	t.cfg.SelectedValuesElement.ReplaceChildren(tokens...)
	return len(tokens)
}

func (t *Typeahead) selectedValueElement(label string) *dom.Element {
	el := t.doc.CreateElement(t.opts.TokenTag)
	el.SetAttr("value", label)
	el.SetTextContent(label)
	el.AddEventListener(dom.EventClick, func(ev *dom.Event) {
		value, ok := ev.CurrentTarget.Attr("value")
		if !ok {
			value = ev.CurrentTarget.TextContent()
		}
		t.Remove(value)
	})
	return el
}

func (t *Typeahead) nothingSelectedElement() *dom.Element {
	el := t.doc.CreateElement("a")
	el.SetAttr("href", "#"+t.autocompleteID)
	if t.opts.EmptyLinkClass != "" {
		el.SetAttr("class", t.opts.EmptyLinkClass)
	}
	el.SetTextContent(t.cfg.NoResultsLabel)
	return el
}
