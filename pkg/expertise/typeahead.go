package expertise

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-expertise/pkg/autocomplete"
	"github.com/goliatone/go-expertise/pkg/dom"
	"github.com/goliatone/go-expertise/pkg/optionset"
)

// Config holds the element references and label the component is built from.
// All four fields are required.
type Config struct {
	MultiselectElement        *dom.Element
	AddButtonContainerElement *dom.Element
	SelectedValuesElement     *dom.Element
	NoResultsLabel            string
}

// Typeahead is a mounted expertise typeahead.
type Typeahead struct {
	cfg    Config
	opts   Options
	logger *zap.Logger

	doc            *dom.Document
	autocompleteID string
	container      *dom.Element
	widget         autocomplete.Widget
	input          *dom.Element
	addListener    dom.ListenerID
	closed         bool
}

// New mounts the component. The select is hidden, a container is inserted
// before it and the autocomplete is built inside that container. Options
// already selected in the markup are rendered immediately.
func New(cfg Config, fns ...OptionFn) (*Typeahead, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	opts := NewOptions(fns...)

	sel := cfg.MultiselectElement
	t := &Typeahead{
		cfg:            cfg,
		opts:           opts,
		logger:         opts.Logger.With(zap.String("select", sel.ID())),
		doc:            sel.Document(),
		autocompleteID: sel.ID() + AutocompleteIDSuffix,
	}
	t.warnAmbiguousLabels()

	t.container = t.doc.CreateElement("span")
	sel.Parent().InsertBefore(t.container, sel)

	widget, err := opts.Autocomplete(autocomplete.Config{
		Element:       t.container,
		SelectElement: sel,
		DefaultValue:  "",
		ConfirmOnBlur: false,
		ShowAllValues: true,
		ID:            t.autocompleteID,
		OnConfirm:     t.handleConfirm,
		Source:        t.Source,
	})
	if err != nil {
		t.container.Remove()
		return nil, fmt.Errorf("%w: %w", ErrAutocompleteInit, err)
	}
	t.widget = widget

	sel.SetDisplay("none")

	t.input = t.doc.GetElementByID(t.autocompleteID)
	if t.input == nil {
		t.container.Remove()
		sel.SetDisplay("")
		return nil, fmt.Errorf("%w: input %q not found after initialisation", ErrAutocompleteInit, t.autocompleteID)
	}

	cfg.AddButtonContainerElement.SetDisplay("none")
	t.RenderSelectedValues()
	t.addListener = cfg.AddButtonContainerElement.AddEventListener(dom.EventClick, func(*dom.Event) {
		t.Add()
	})

	t.logger.Debug("expertise typeahead mounted",
		zap.String("autocomplete_id", t.autocompleteID),
		zap.Int("options", len(sel.Options())),
	)
	return t, nil
}

// AutocompleteID returns the id of the generated search input.
func (t *Typeahead) AutocompleteID() string {
	return t.autocompleteID
}

// Input returns the generated search input.
func (t *Typeahead) Input() *dom.Element {
	return t.input
}

// Widget returns the autocomplete capability instance.
func (t *Typeahead) Widget() autocomplete.Widget {
	return t.widget
}

// AddVisible reports whether the add affordance is shown.
func (t *Typeahead) AddVisible() bool {
	return !t.cfg.AddButtonContainerElement.Hidden()
}

// Add commits the value in the search input. It hides the affordance, selects
// the matching options, redraws the tokens, clears the input and schedules a
// best-effort refocus. Add is ignored while the affordance is hidden.
func (t *Typeahead) Add() {
	if t.closed {
		return
	}
	if !t.AddVisible() {
		t.logger.Debug("add ignored while affordance is hidden")
		return
	}
	t.cfg.AddButtonContainerElement.SetDisplay("none")
	t.SetOption(t.input.Value(), true)
	t.RenderSelectedValues()
	t.input.SetValue("")

	input := t.input
	t.doc.SetTimeout(t.opts.RefocusDelay, func() {
		input.Focus()
	})
}

// Remove deselects label, redraws the tokens and focuses the search input.
func (t *Typeahead) Remove(label string) {
	if t.closed {
		return
	}
	t.SetOption(label, false)
	t.RenderSelectedValues()
	t.input.Focus()
}

// Close unmounts the component: the injected container is removed, the add
// listener is dropped and the select is shown again. A refocus still pending
// from Add becomes a no-op.
func (t *Typeahead) Close() {
	if t == nil || t.closed {
		return
	}
	t.closed = true
	t.cfg.AddButtonContainerElement.RemoveEventListener(dom.EventClick, t.addListener)
	t.container.Remove()
	t.cfg.MultiselectElement.SetDisplay("")
}

func (t *Typeahead) handleConfirm(value string) {
	if t.closed {
		return
	}
	t.cfg.AddButtonContainerElement.SetDisplay("block")
	t.logger.Debug("suggestion confirmed", zap.String("label", value))
}

func (t *Typeahead) warnAmbiguousLabels() {
	for _, issue := range optionset.Validate(optionset.FromSelect(t.cfg.MultiselectElement)) {
		t.logger.Warn("ambiguous option label",
			zap.String("label", issue.Label),
			zap.String("problem", string(issue.Kind)),
			zap.Ints("positions", issue.Positions),
		)
	}
}

func validateConfig(cfg Config) error {
	sel := cfg.MultiselectElement
	switch {
	case sel == nil:
		return configError("MultiselectElement", "is required")
	case sel.Type != dom.ElementNode || sel.Tag != "select":
		return configError("MultiselectElement", "must be a select element")
	case strings.TrimSpace(sel.ID()) == "":
		return configError("MultiselectElement", "must carry an id attribute")
	case sel.Parent() == nil || sel.Document() == nil:
		return configError("MultiselectElement", "must be attached to a document")
	case cfg.AddButtonContainerElement == nil:
		return configError("AddButtonContainerElement", "is required")
	case cfg.SelectedValuesElement == nil:
		return configError("SelectedValuesElement", "is required")
	case strings.TrimSpace(cfg.NoResultsLabel) == "":
		return configError("NoResultsLabel", "is required")
	}
	return nil
}
