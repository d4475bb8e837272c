package autocomplete

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-expertise/pkg/dom"
)

func newFixture(t *testing.T, fns ...func(*Config)) (*Headless, *[]string) {
	t.Helper()
	doc := dom.NewDocument()
	container := doc.Body().AppendChild(doc.CreateElement("span"))
	values := []string{"Python", "Rust", "Go"}
	var confirmed []string
	cfg := Config{
		Element:       container,
		ID:            "skills_autocomplete",
		ShowAllValues: true,
		OnConfirm:     func(v string) { confirmed = append(confirmed, v) },
		Source: func(query string, populate PopulateFunc) {
			var out []string
			for _, v := range values {
				if strings.Contains(strings.ToLower(v), strings.ToLower(query)) {
					out = append(out, v)
				}
			}
			populate(out)
		},
	}
	for _, fn := range fns {
		fn(&cfg)
	}
	h, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return h, &confirmed
}

func TestNew_RendersInputWithID(t *testing.T) {
	h, _ := newFixture(t)
	input := h.Input()
	if input.ID() != "skills_autocomplete" {
		t.Fatalf("unexpected input id: %q", input.ID())
	}
	if input.Document().GetElementByID("skills_autocomplete") != input {
		t.Fatalf("expected input to be reachable by id")
	}
	if got, _ := input.Attr("aria-owns"); got != "skills_autocomplete__listbox" {
		t.Fatalf("unexpected aria-owns: %q", got)
	}
}

func TestNew_ValidatesConfig(t *testing.T) {
	doc := dom.NewDocument()
	container := doc.Body().AppendChild(doc.CreateElement("span"))
	source := func(string, PopulateFunc) {}

	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{name: "element", cfg: Config{ID: "x", Source: source}, want: ErrMissingElement},
		{name: "id", cfg: Config{Element: container, Source: source}, want: ErrMissingID},
		{name: "source", cfg: Config{Element: container, ID: "x"}, want: ErrMissingSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.cfg); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := New(Config{Element: container, ID: "dup", Source: source}); err != nil {
		t.Fatalf("first widget: %v", err)
	}
	if _, err := New(Config{Element: container, ID: "dup", Source: source}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestType_PopulatesMenu(t *testing.T) {
	h, _ := newFixture(t)
	got := h.Type("o")
	if diff := cmp.Diff([]string{"Python", "Go"}, got); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
	if len(h.MenuItems()) != 2 {
		t.Fatalf("expected two menu items, got %d", len(h.MenuItems()))
	}
	if got, _ := h.Input().Attr("aria-expanded"); got != "true" {
		t.Fatalf("expected expanded menu, got %q", got)
	}
}

func TestFocus_ShowAllValues(t *testing.T) {
	h, _ := newFixture(t)
	if got := h.Focus(); len(got) != 3 {
		t.Fatalf("expected all values on focus, got %#v", got)
	}

	hidden, _ := newFixture(t, func(c *Config) { c.ShowAllValues = false })
	if got := hidden.Focus(); len(got) != 0 {
		t.Fatalf("expected no values on focus, got %#v", got)
	}
}

func TestKeyboardConfirm(t *testing.T) {
	h, confirmed := newFixture(t)
	h.Type("")
	h.Down()
	h.Down()
	h.Up()
	if !h.Enter() {
		t.Fatalf("expected enter to confirm")
	}
	if diff := cmp.Diff([]string{"Python"}, *confirmed); diff != "" {
		t.Fatalf("confirmed mismatch (-want +got):\n%s", diff)
	}
	if h.Input().Value() != "Python" {
		t.Fatalf("expected input to carry confirmed value, got %q", h.Input().Value())
	}
	if len(h.Results()) != 0 {
		t.Fatalf("expected menu to close")
	}
	if h.Enter() {
		t.Fatalf("expected enter with no highlight to be ignored")
	}
}

func TestBlur_DoesNotConfirmUnlessConfigured(t *testing.T) {
	h, confirmed := newFixture(t)
	h.Type("ru")
	h.Down()
	h.Blur()
	if len(*confirmed) != 0 {
		t.Fatalf("expected blur not to confirm, got %#v", *confirmed)
	}

	eager, eagerConfirmed := newFixture(t, func(c *Config) { c.ConfirmOnBlur = true })
	eager.Type("ru")
	eager.Down()
	eager.Blur()
	if diff := cmp.Diff([]string{"Rust"}, *eagerConfirmed); diff != "" {
		t.Fatalf("confirmed mismatch (-want +got):\n%s", diff)
	}
}

func TestClickOption_Confirms(t *testing.T) {
	h, confirmed := newFixture(t)
	h.Type("go")
	h.MenuItems()[0].Click()
	if diff := cmp.Diff([]string{"Go"}, *confirmed); diff != "" {
		t.Fatalf("confirmed mismatch (-want +got):\n%s", diff)
	}
}
