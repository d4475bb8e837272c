// Package tui drives a mounted expertise typeahead from the terminal. Every
// step goes through the same path a browser user takes: typing into the
// autocomplete, confirming a suggestion, clicking the add affordance and
// clicking tokens to remove them.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-expertise/pkg/dom"
	"github.com/goliatone/go-expertise/pkg/optionset"
	"github.com/goliatone/go-expertise/pkg/page"
)

const (
	actionSearch = "Search and add"
	actionRemove = "Remove selected"
	actionDone   = "Done"

	cancelChoice = "(cancel)"
)

// driveable is the part of the autocomplete capability the session needs.
// autocomplete.Headless satisfies it.
type driveable interface {
	Type(query string) []string
	Confirm(value string)
}

// Session runs an interactive add/remove loop over a mounted page.
type Session struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	pageSize     int
	logger       *zap.Logger
}

// New constructs a session with defaults (survey driver, JSON output).
func New(options ...Option) *Session {
	s := &Session{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		pageSize:     10,
		logger:       zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// ContentType reports the serialization format used by Run.
func (s *Session) ContentType() string {
	switch s.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Run loops until the user picks Done, then returns the selection serialized
// in the configured format. Pending timers are settled after every step.
func (s *Session) Run(ctx context.Context, mounted *page.Mounted) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if mounted == nil || mounted.Typeahead == nil || mounted.Document == nil {
		return nil, ErrNotMounted
	}
	widget, ok := mounted.Typeahead.Widget().(driveable)
	if !ok {
		return nil, ErrUnsupportedWidget
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.info(ctx, s.summary(mounted)); err != nil {
			return nil, err
		}

		actions := []string{actionSearch}
		if len(mounted.Tokens()) > 0 {
			actions = append(actions, actionRemove)
		}
		actions = append(actions, actionDone)

		idx, err := s.driver.Select(ctx, SelectConfig{
			Message: mounted.Catalog.Label,
			Options: actions,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(actions) {
			return nil, fmt.Errorf("tui: invalid action index %d", idx)
		}

		switch actions[idx] {
		case actionSearch:
			err = s.searchAndAdd(ctx, mounted, widget)
		case actionRemove:
			err = s.remove(ctx, mounted)
		case actionDone:
			return s.serialize(mounted)
		}
		if err != nil {
			return nil, err
		}
		mounted.Document.Settle()
	}
}

func (s *Session) searchAndAdd(ctx context.Context, mounted *page.Mounted, widget driveable) error {
	query, err := s.driver.Input(ctx, InputConfig{
		Message: "Search",
		Help:    "Leave empty to list every unselected entry",
		Suggest: mounted.Typeahead.Suggestions,
	})
	if err != nil {
		return err
	}

	results := widget.Type(query)
	if len(results) == 0 {
		return s.info(ctx, fmt.Sprintf("No matches for %q", query))
	}

	choices := append(append([]string(nil), results...), cancelChoice)
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:  "Suggestions",
		Options:  choices,
		PageSize: s.pageSize,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(results) {
		widget.Type("")
		return nil
	}

	label := results[idx]
	widget.Confirm(label)

	add, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("%s %q?", mounted.Catalog.AddLabel, label),
		Default: true,
	})
	if err != nil {
		return err
	}
	if !add {
		s.logger.Debug("add declined", zap.String("label", label))
		return nil
	}

	button := mounted.AddButton()
	if button == nil {
		return fmt.Errorf("tui: add affordance %q not found", page.AddID(mounted.Catalog.ID))
	}
	button.Click()
	s.logger.Debug("label added", zap.String("label", label))
	return nil
}

func (s *Session) remove(ctx context.Context, mounted *page.Mounted) error {
	tokens := mounted.Tokens()
	labels := make([]string, 0, len(tokens))
	for _, token := range tokens {
		labels = append(labels, token.TextContent())
	}

	picked, err := s.driver.MultiSelect(ctx, SelectConfig{
		Message:  "Remove",
		Options:  labels,
		PageSize: s.pageSize,
	})
	if err != nil {
		return err
	}
	for _, idx := range picked {
		if idx < 0 || idx >= len(labels) {
			continue
		}
		// Each click redraws the tokens, so look the label up again.
		token := findToken(mounted, labels[idx])
		if token == nil {
			continue
		}
		token.Click()
		s.logger.Debug("label removed", zap.String("label", labels[idx]))
	}
	return nil
}

func findToken(mounted *page.Mounted, label string) *dom.Element {
	for _, token := range mounted.Tokens() {
		if token.TextContent() == label {
			return token
		}
	}
	return nil
}

func (s *Session) summary(mounted *page.Mounted) string {
	labels := mounted.Typeahead.SelectedLabels()
	if len(labels) == 0 {
		return mounted.Catalog.NoResultsLabel
	}
	return mounted.Catalog.Label + ": " + strings.Join(labels, ", ")
}

func (s *Session) info(ctx context.Context, msg string) error {
	if msg == "" {
		return nil
	}
	return s.driver.Info(ctx, s.theme.InfoPrefix+msg)
}

func (s *Session) serialize(mounted *page.Mounted) ([]byte, error) {
	selected := make([]optionset.Option, 0)
	for _, opt := range optionset.FromSelect(mounted.Select()) {
		if opt.Selected {
			selected = append(selected, opt)
		}
	}
	name := mounted.Catalog.Name

	switch s.outputFormat {
	case OutputFormatFormURLEncoded:
		values := url.Values{}
		for _, opt := range selected {
			values.Add(name, opt.SubmitValue())
		}
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		var b strings.Builder
		for _, opt := range selected {
			fmt.Fprintf(&b, "%s\n", opt.Label)
		}
		return []byte(b.String()), nil
	default:
		values := make([]string, 0, len(selected))
		for _, opt := range selected {
			values = append(values, opt.SubmitValue())
		}
		return json.Marshal(map[string][]string{name: values})
	}
}
