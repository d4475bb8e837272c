// Package page renders the host markup an expertise typeahead mounts into and
// mounts the component over the parsed result.
package page

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-expertise/pkg/dom"
	"github.com/goliatone/go-expertise/pkg/expertise"
	"github.com/goliatone/go-expertise/pkg/optionset"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const (
	pageTemplate  = "page.tpl"
	fieldTemplate = "field.tpl"

	addSuffix      = "_add"
	selectedSuffix = "_selected"
)

// TemplatesFS exposes the embedded templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// Data is the per-render input.
type Data struct {
	Title       string
	Lang        string
	Action      string
	Method      string
	SubmitLabel string
	Stylesheet  string
	Catalog     optionset.Catalog
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	templates fs.FS
}

// WithTemplates overrides the template bundle. The bundle must provide
// page.tpl and field.tpl.
func WithTemplates(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// Renderer executes the page templates.
type Renderer struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

// New constructs a Renderer over the embedded templates or an override.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{templates: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.templates == nil {
		return nil, errors.New("page: templates are required")
	}
	return &Renderer{
		set:       pongo2.NewSet("expertise", pongo2.NewFSLoader(cfg.templates)),
		templates: make(map[string]*pongo2.Template),
	}, nil
}

// AddID returns the id of the add affordance container for a select id.
func AddID(selectID string) string {
	return selectID + addSuffix
}

// SelectedID returns the id of the selected-values container for a select id.
func SelectedID(selectID string) string {
	return selectID + selectedSuffix
}

// Render returns the full host page.
func (r *Renderer) Render(data Data) (string, error) {
	return r.execute(pageTemplate, data)
}

// RenderField returns the field fragment only.
func (r *Renderer) RenderField(data Data) (string, error) {
	return r.execute(fieldTemplate, data)
}

// Mounted is a parsed host page with the component attached.
type Mounted struct {
	Document  *dom.Document
	Typeahead *expertise.Typeahead
	Catalog   optionset.Catalog
}

// Select returns the hidden multi-select.
func (m *Mounted) Select() *dom.Element {
	return m.Document.GetElementByID(m.Catalog.ID)
}

// AddButton returns the add affordance container.
func (m *Mounted) AddButton() *dom.Element {
	return m.Document.GetElementByID(AddID(m.Catalog.ID))
}

// Tokens returns the rendered selected-value tokens.
func (m *Mounted) Tokens() []*dom.Element {
	container := m.Document.GetElementByID(SelectedID(m.Catalog.ID))
	if container == nil {
		return nil
	}
	var out []*dom.Element
	for _, child := range container.Children() {
		if child.Type != dom.ElementNode || child.Tag == "a" {
			continue
		}
		out = append(out, child)
	}
	return out
}

// HTML serialises the document in its current state.
func (m *Mounted) HTML() string {
	if m == nil {
		return ""
	}
	return m.Document.String()
}

// Mount renders the page, parses it and mounts the component over the select.
func (r *Renderer) Mount(ctx context.Context, data Data, fns ...expertise.OptionFn) (*Mounted, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	markup, err := r.Render(data)
	if err != nil {
		return nil, err
	}
	doc, err := dom.ParseString(markup)
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}
	return Attach(doc, data.Catalog.Normalize(), fns...)
}

// Attach mounts the component over markup that follows the field template's
// id conventions.
func Attach(doc *dom.Document, catalog optionset.Catalog, fns ...expertise.OptionFn) (*Mounted, error) {
	if doc == nil {
		return nil, errors.New("page: document is nil")
	}
	typeahead, err := expertise.New(expertise.Config{
		MultiselectElement:        doc.GetElementByID(catalog.ID),
		AddButtonContainerElement: doc.GetElementByID(AddID(catalog.ID)),
		SelectedValuesElement:     doc.GetElementByID(SelectedID(catalog.ID)),
		NoResultsLabel:            catalog.NoResultsLabel,
	}, fns...)
	if err != nil {
		return nil, fmt.Errorf("page: mount %q: %w", catalog.ID, err)
	}
	return &Mounted{Document: doc, Typeahead: typeahead, Catalog: catalog}, nil
}

func (r *Renderer) execute(name string, data Data) (string, error) {
	if r == nil || r.set == nil {
		return "", errors.New("page: renderer is nil")
	}
	tmpl, err := r.template(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(buildContext(data), &buf); err != nil {
		return "", fmt.Errorf("page: execute template %q: %w", name, err)
	}
	return buf.String(), nil
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.templates[name]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if tmpl, ok := r.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("page: load template %q: %w", name, err)
	}
	r.templates[name] = tmpl
	return tmpl, nil
}

func buildContext(data Data) pongo2.Context {
	catalog := data.Catalog.Normalize()
	options := make([]map[string]any, 0, len(catalog.Options))
	for _, opt := range catalog.Options {
		options = append(options, map[string]any{
			"label":    opt.Label,
			"value":    opt.SubmitValue(),
			"selected": opt.Selected,
		})
	}
	return pongo2.Context{
		"title":        fallback(data.Title, catalog.Label),
		"lang":         fallback(data.Lang, "en"),
		"method":       strings.ToLower(fallback(data.Method, "post")),
		"action":       data.Action,
		"submit_label": fallback(data.SubmitLabel, "Save"),
		"stylesheet":   data.Stylesheet,
		"field": map[string]any{
			"id":               catalog.ID,
			"name":             catalog.Name,
			"label":            catalog.Label,
			"add_label":        catalog.AddLabel,
			"no_results_label": catalog.NoResultsLabel,
			"autocomplete_id":  catalog.ID + expertise.AutocompleteIDSuffix,
			"add_id":           AddID(catalog.ID),
			"selected_id":      SelectedID(catalog.ID),
			"options":          options,
		},
	}
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
