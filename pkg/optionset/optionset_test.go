package optionset

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-expertise/pkg/dom"
)

func TestValidate_ReportsEmptyAndDuplicates(t *testing.T) {
	issues := Validate([]Option{
		{Label: "Go"},
		{Label: " "},
		{Label: "Rust"},
		{Label: "Go"},
		{Label: ""},
		{Label: "Go"},
	})

	want := []Issue{
		{Kind: IssueEmpty, Positions: []int{1, 4}},
		{Kind: IssueDuplicate, Label: "Go", Positions: []int{0, 3, 5}},
	}
	if diff := cmp.Diff(want, issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if got := issues[1].String(); got != `duplicate label "Go" at positions [0 3 5]` {
		t.Fatalf("unexpected issue text: %q", got)
	}
}

func TestValidate_CleanCatalog(t *testing.T) {
	if issues := Validate([]Option{{Label: "Go"}, {Label: "go"}}); len(issues) != 0 {
		t.Fatalf("expected labels differing by case to be distinct, got %#v", issues)
	}
}

func TestSanitize_StripsMarkup(t *testing.T) {
	got := Sanitize([]Option{
		{Label: "  <b>C++</b> & Go ", Value: "<i>cpp</i>", Selected: true},
		{Label: `<script>alert(1)</script>Rust`},
	})
	want := []Option{
		{Label: "C++ & Go", Value: "cpp", Selected: true},
		{Label: "Rust"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sanitize mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML_ShorthandAndDefaults(t *testing.T) {
	catalog, err := LoadYAML(strings.NewReader(`
id: skills
options:
  - Python
  - label: Rust
    value: rs
    selected: true
  - "<em>Go</em>"
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Catalog{
		ID:             "skills",
		Name:           "skills",
		Label:          "Expertise",
		AddLabel:       "Add",
		NoResultsLabel: "No expertise selected",
		Options: []Option{
			{Label: "Python"},
			{Label: "Rust", Value: "rs", Selected: true},
			{Label: "Go"},
		},
	}
	if diff := cmp.Diff(want, catalog); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Rust"}, SelectedLabels(catalog.Options)); diff != "" {
		t.Fatalf("selected mismatch (-want +got):\n%s", diff)
	}
	if catalog.Options[1].SubmitValue() != "rs" || catalog.Options[0].SubmitValue() != "Python" {
		t.Fatalf("unexpected submit values: %#v", catalog.Options)
	}
}

func TestWriteYAML_LoadsBack(t *testing.T) {
	catalog := Catalog{
		ID:      "skills",
		Options: []Option{{Label: "Go", Value: "go", Selected: true}, {Label: "Rust"}},
	}.Normalize()

	var buf strings.Builder
	if err := WriteYAML(&buf, catalog); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "no_results_label: No expertise selected") {
		t.Fatalf("expected snake_case keys, got:\n%s", buf.String())
	}
	loaded, err := LoadYAML(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(catalog, loaded); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML_RejectsUnknownFieldsAndEmpty(t *testing.T) {
	if _, err := LoadYAML(strings.NewReader("id: x\nbogus: true\n")); err == nil {
		t.Fatalf("expected unknown field error")
	}
	if _, err := LoadYAML(strings.NewReader("")); err == nil {
		t.Fatalf("expected empty catalog error")
	}
}

func TestFromSelect_SnapshotsOptions(t *testing.T) {
	doc, err := dom.ParseString(`<select id="s" multiple><option value="a">Alpha</option><option selected>Beta</option></select>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := FromSelect(doc.GetElementByID("s"))
	want := []Option{{Label: "Alpha", Value: "a"}, {Label: "Beta", Selected: true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Alpha", "Beta"}, Labels(got)); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

const profileDocument = `
openapi: 3.0.3
info:
  title: Profile
  version: "1.0"
paths: {}
components:
  schemas:
    Profile:
      type: object
      properties:
        expertise:
          type: array
          default: [Rust]
          items:
            type: string
            enum: [Python, Rust, Go]
        sector:
          type: string
          enum: [Energy, Finance]
        name:
          type: string
`

func TestFromOpenAPI_ArrayEnumWithDefaults(t *testing.T) {
	got, err := FromOpenAPI(context.Background(), []byte(profileDocument), "Profile", "expertise")
	if err != nil {
		t.Fatalf("from openapi: %v", err)
	}
	want := []Option{
		{Label: "Python", Value: "Python"},
		{Label: "Rust", Value: "Rust", Selected: true},
		{Label: "Go", Value: "Go"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestFromOpenAPI_ScalarEnumAndErrors(t *testing.T) {
	got, err := FromOpenAPI(context.Background(), []byte(profileDocument), "Profile", "sector")
	if err != nil {
		t.Fatalf("from openapi: %v", err)
	}
	if diff := cmp.Diff([]string{"Energy", "Finance"}, Labels(got)); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}

	for _, tc := range []struct{ schema, property string }{
		{"Missing", "expertise"},
		{"Profile", "missing"},
		{"Profile", "name"},
	} {
		if _, err := FromOpenAPI(context.Background(), []byte(profileDocument), tc.schema, tc.property); err == nil {
			t.Fatalf("expected error for %s.%s", tc.schema, tc.property)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := FromOpenAPI(ctx, []byte(profileDocument), "Profile", "expertise"); err == nil {
		t.Fatalf("expected cancelled context error")
	}
}
