// Package autocomplete defines the query-as-you-type capability the expertise
// typeahead configures, plus a headless implementation that renders its
// input and suggestion list into a dom.Document.
package autocomplete

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-expertise/pkg/dom"
)

var (
	// ErrMissingElement is returned when no container element is supplied.
	ErrMissingElement = errors.New("autocomplete: container element is required")
	// ErrMissingID is returned when no input id is supplied.
	ErrMissingID = errors.New("autocomplete: id is required")
	// ErrMissingSource is returned when no suggestion source is supplied.
	ErrMissingSource = errors.New("autocomplete: source is required")
	// ErrDuplicateID is returned when the input id already exists in the document.
	ErrDuplicateID = errors.New("autocomplete: id already in use")
)

// PopulateFunc receives the suggestions for a query.
type PopulateFunc func(results []string)

// SourceFunc produces suggestions for query by calling populate synchronously.
type SourceFunc func(query string, populate PopulateFunc)

// Config mirrors the options accepted by the capability.
type Config struct {
	Element       *dom.Element
	SelectElement *dom.Element
	DefaultValue  string
	ConfirmOnBlur bool
	ShowAllValues bool
	ID            string
	OnConfirm     func(value string)
	Source        SourceFunc
}

// Widget is the constructed capability. Input returns the generated text
// input, which carries Config.ID.
type Widget interface {
	Input() *dom.Element
}

// Factory builds a Widget from a Config.
type Factory func(cfg Config) (Widget, error)

// DefaultFactory builds the headless implementation.
func DefaultFactory(cfg Config) (Widget, error) {
	return New(cfg)
}

// Headless renders an input and a listbox into the container and exposes the
// interactions a browser user would perform.
type Headless struct {
	cfg       Config
	wrapper   *dom.Element
	input     *dom.Element
	menu      *dom.Element
	results   []string
	highlight int
}

// New validates cfg and renders the widget into cfg.Element.
func New(cfg Config) (*Headless, error) {
	if cfg.Element == nil {
		return nil, ErrMissingElement
	}
	cfg.ID = strings.TrimSpace(cfg.ID)
	if cfg.ID == "" {
		return nil, ErrMissingID
	}
	if cfg.Source == nil {
		return nil, ErrMissingSource
	}
	doc := cfg.Element.Document()
	if doc == nil {
		return nil, fmt.Errorf("autocomplete: container element %q is not owned by a document", cfg.Element.Tag)
	}
	if existing := doc.GetElementByID(cfg.ID); existing != nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, cfg.ID)
	}

	h := &Headless{cfg: cfg, highlight: -1}

	h.wrapper = doc.CreateElement("div")
	h.wrapper.SetAttr("class", "autocomplete__wrapper")

	h.input = doc.CreateElement("input")
	h.input.SetAttr("type", "text")
	h.input.SetAttr("id", cfg.ID)
	h.input.SetAttr("class", "autocomplete__input")
	h.input.SetAttr("autocomplete", "off")
	h.input.SetAttr("role", "combobox")
	h.input.SetAttr("aria-autocomplete", "list")
	h.input.SetAttr("aria-expanded", "false")
	h.input.SetAttr("aria-owns", h.listboxID())
	if cfg.SelectElement != nil {
		if name, ok := cfg.SelectElement.Attr("name"); ok && name != "" {
			h.input.SetAttr("data-select-name", name)
		}
	}
	h.input.SetValue(cfg.DefaultValue)

	h.menu = doc.CreateElement("ul")
	h.menu.SetAttr("id", h.listboxID())
	h.menu.SetAttr("class", "autocomplete__menu autocomplete__menu--hidden")
	h.menu.SetAttr("role", "listbox")

	h.wrapper.AppendChild(h.input)
	h.wrapper.AppendChild(h.menu)
	cfg.Element.AppendChild(h.wrapper)
	return h, nil
}

// Input returns the generated text input.
func (h *Headless) Input() *dom.Element {
	return h.input
}

// Results returns the suggestions currently shown.
func (h *Headless) Results() []string {
	return append([]string(nil), h.results...)
}

// Highlighted returns the highlighted suggestion index, or -1.
func (h *Headless) Highlighted() int {
	return h.highlight
}

// Type sets the input text and refreshes the suggestion list from the source.
func (h *Headless) Type(query string) []string {
	h.input.SetValue(query)
	h.input.Dispatch(dom.EventInput)
	return h.query(query)
}

// Focus focuses the input and, with ShowAllValues, opens every suggestion
// for the current text.
func (h *Headless) Focus() []string {
	h.input.Focus()
	if !h.cfg.ShowAllValues {
		return h.Results()
	}
	return h.query(h.input.Value())
}

// Down moves the highlight to the next suggestion.
func (h *Headless) Down() {
	if len(h.results) == 0 {
		return
	}
	if h.highlight < len(h.results)-1 {
		h.highlight++
	}
	h.renderMenu()
}

// Up moves the highlight to the previous suggestion, back to the input.
func (h *Headless) Up() {
	if h.highlight >= 0 {
		h.highlight--
	}
	h.renderMenu()
}

// Enter confirms the highlighted suggestion. It reports false when nothing
// is highlighted.
func (h *Headless) Enter() bool {
	if h.highlight < 0 || h.highlight >= len(h.results) {
		return false
	}
	h.Confirm(h.results[h.highlight])
	return true
}

// Confirm sets the input to value, closes the menu and notifies OnConfirm.
func (h *Headless) Confirm(value string) {
	h.input.SetValue(value)
	h.close()
	if h.cfg.OnConfirm != nil {
		h.cfg.OnConfirm(value)
	}
}

// Blur closes the menu. The highlighted suggestion is confirmed only when
// ConfirmOnBlur is set.
func (h *Headless) Blur() {
	if h.cfg.ConfirmOnBlur && h.highlight >= 0 && h.highlight < len(h.results) {
		h.Confirm(h.results[h.highlight])
		return
	}
	h.close()
	h.input.Dispatch(dom.EventBlur)
}

func (h *Headless) query(q string) []string {
	var results []string
	h.cfg.Source(q, func(r []string) {
		results = append([]string(nil), r...)
	})
	h.results = results
	h.highlight = -1
	h.renderMenu()
	return h.Results()
}

func (h *Headless) close() {
	h.results = nil
	h.highlight = -1
	h.renderMenu()
}

func (h *Headless) renderMenu() {
	doc := h.menu.Document()
	items := make([]*dom.Element, 0, len(h.results))
	for i, result := range h.results {
		value := result
		li := doc.CreateElement("li")
		li.SetAttr("id", h.optionID(i))
		li.SetAttr("role", "option")
		li.SetAttr("class", "autocomplete__option")
		if i == h.highlight {
			li.SetAttr("class", "autocomplete__option autocomplete__option--focused")
			li.SetAttr("aria-selected", "true")
		}
		li.SetTextContent(value)
		li.AddEventListener(dom.EventClick, func(*dom.Event) {
			h.Confirm(value)
		})
		items = append(items, li)
	}
	h.menu.ReplaceChildren(items...)

	if len(items) == 0 {
		h.menu.SetAttr("class", "autocomplete__menu autocomplete__menu--hidden")
		h.input.SetAttr("aria-expanded", "false")
	} else {
		h.menu.SetAttr("class", "autocomplete__menu autocomplete__menu--visible")
		h.input.SetAttr("aria-expanded", "true")
	}
	if h.highlight >= 0 {
		h.input.SetAttr("aria-activedescendant", h.optionID(h.highlight))
	} else {
		h.input.RemoveAttr("aria-activedescendant")
	}
}

// MenuItems returns the rendered suggestion elements.
func (h *Headless) MenuItems() []*dom.Element {
	return h.menu.Children()
}

func (h *Headless) listboxID() string {
	return h.cfg.ID + "__listbox"
}

func (h *Headless) optionID(i int) string {
	return h.cfg.ID + "__option--" + strconv.Itoa(i)
}
