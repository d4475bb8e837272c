package expertise

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-expertise/pkg/optionset"
)

func TestSearch(t *testing.T) {
	catalog := []optionset.Option{
		{Label: "Python"},
		{Label: "Rust", Selected: true},
		{Label: "Go"},
		{Label: "Go"},
		{Label: "TypeScript"},
	}
	opts := NewOptions()

	tests := []struct {
		name    string
		query   string
		exclude []string
		limit   int
		want    []string
	}{
		{name: "empty query", query: "", want: []string{"Python", "Go", "Go", "TypeScript"}},
		{name: "substring", query: "o", want: []string{"Python", "Go", "Go"}},
		{name: "case insensitive", query: "SCRIPT", want: []string{"TypeScript"}},
		{name: "no match", query: "xyz", want: nil},
		{name: "selected never suggested", query: "rust", want: nil},
		{name: "excluded labels", query: "", exclude: []string{"Go"}, want: []string{"Python", "TypeScript"}},
		{name: "limit", query: "", limit: 2, want: []string{"Python", "Go"}},
		{name: "negative limit", query: "", limit: -3, want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for _, opt := range Search(catalog, tc.query, tc.exclude, tc.limit, opts) {
				got = append(got, opt.Label)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("results mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClampLimit(t *testing.T) {
	opts := NewOptions(WithDefaultLimit(5), WithMaxLimit(10))
	for _, tc := range []struct{ in, want int }{{0, 5}, {3, 3}, {25, 10}, {-1, 0}} {
		if got := clampLimit(tc.in, opts); got != tc.want {
			t.Fatalf("clampLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
