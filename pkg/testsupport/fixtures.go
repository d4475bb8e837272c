package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-expertise/pkg/expertise"
	"github.com/goliatone/go-expertise/pkg/optionset"
	"github.com/goliatone/go-expertise/pkg/page"
)

// LoadCatalog reads a YAML catalog fixture. Testing helpers fail the test on
// error to keep contract tests concise.
func LoadCatalog(t *testing.T, path string) optionset.Catalog {
	t.Helper()

	catalog, err := LoadCatalogFromPath(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return catalog
}

// LoadCatalogFromPath returns a Catalog without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadCatalogFromPath(path string) (optionset.Catalog, error) {
	if path == "" {
		return optionset.Catalog{}, errors.New("testsupport: catalog path is required")
	}
	catalog, err := optionset.LoadFile(path)
	if err != nil {
		return optionset.Catalog{}, fmt.Errorf("testsupport: %w", err)
	}
	return catalog, nil
}

// Mount renders the default host page for catalog and mounts the typeahead.
func Mount(t *testing.T, catalog optionset.Catalog, fns ...expertise.OptionFn) *page.Mounted {
	t.Helper()

	renderer, err := page.New()
	if err != nil {
		t.Fatalf("page renderer: %v", err)
	}
	mounted, err := renderer.Mount(Context(), page.Data{Catalog: catalog}, fns...)
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	return mounted
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its content with
// surrounding whitespace trimmed.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(bytes.TrimSpace(MustReadGolden(t, path)))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
