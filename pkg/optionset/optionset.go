// Package optionset loads, sanitises and validates the option catalogs that
// back an expertise select.
package optionset

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-expertise/pkg/dom"
)

// Option is one candidate value. Label doubles as the identity used to match
// suggestions against options.
type Option struct {
	Label    string `yaml:"label" json:"label"`
	Value    string `yaml:"value,omitempty" json:"value,omitempty"`
	Selected bool   `yaml:"selected,omitempty" json:"selected,omitempty"`
}

// SubmitValue returns Value, falling back to Label.
func (o Option) SubmitValue() string {
	if o.Value != "" {
		return o.Value
	}
	return o.Label
}

// IssueKind names a label problem.
type IssueKind string

const (
	IssueEmpty     IssueKind = "empty"
	IssueDuplicate IssueKind = "duplicate"
)

// Issue reports a label that cannot act as a unique identity. Positions are
// zero-based indices into the validated slice.
type Issue struct {
	Kind      IssueKind
	Label     string
	Positions []int
}

func (i Issue) String() string {
	if i.Kind == IssueEmpty {
		return fmt.Sprintf("empty label at positions %v", i.Positions)
	}
	return fmt.Sprintf("duplicate label %q at positions %v", i.Label, i.Positions)
}

// Validate reports empty and duplicate labels. Duplicates are reported once
// per label, in order of first appearance.
func Validate(options []Option) []Issue {
	var issues []Issue
	var empty []int
	positions := make(map[string][]int, len(options))
	order := make([]string, 0, len(options))

	for idx, opt := range options {
		if strings.TrimSpace(opt.Label) == "" {
			empty = append(empty, idx)
			continue
		}
		if _, seen := positions[opt.Label]; !seen {
			order = append(order, opt.Label)
		}
		positions[opt.Label] = append(positions[opt.Label], idx)
	}

	if len(empty) > 0 {
		issues = append(issues, Issue{Kind: IssueEmpty, Positions: empty})
	}
	for _, label := range order {
		if len(positions[label]) > 1 {
			issues = append(issues, Issue{Kind: IssueDuplicate, Label: label, Positions: positions[label]})
		}
	}
	return issues
}

// FromSelect snapshots the options of a select element.
func FromSelect(sel *dom.Element) []Option {
	if sel == nil {
		return nil
	}
	elements := sel.Options()
	out := make([]Option, 0, len(elements))
	for _, el := range elements {
		value, _ := el.Attr("value")
		out = append(out, Option{Label: el.Label(), Value: value, Selected: el.Selected()})
	}
	return out
}

// Labels returns the labels in order.
func Labels(options []Option) []string {
	out := make([]string, 0, len(options))
	for _, opt := range options {
		out = append(out, opt.Label)
	}
	return out
}

// SelectedLabels returns the labels of selected options in order.
func SelectedLabels(options []Option) []string {
	var out []string
	for _, opt := range options {
		if opt.Selected {
			out = append(out, opt.Label)
		}
	}
	return out
}

// Sanitize strips markup from labels and values and trims whitespace.
// Catalogs come from files and schemas, so a label such as "<b>Go</b>"
// becomes "Go" before it can reach a rendered page.
func Sanitize(options []Option) []Option {
	policy := labelSanitizer()
	out := make([]Option, len(options))
	for i, opt := range options {
		out[i] = Option{
			Label:    cleanText(policy, opt.Label),
			Value:    cleanText(policy, opt.Value),
			Selected: opt.Selected,
		}
	}
	return out
}

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy
}

func cleanText(policy *bluemonday.Policy, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(trimmed)))
}
