package expertise

import (
	"io/fs"
	"strings"
	"testing"
)

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), ".expertise-selected output") {
		t.Fatalf("expected stylesheet to style selected tokens")
	}
}

func TestEmbeddedTemplatesExposeHostMarkup(t *testing.T) {
	for _, name := range []string{"page.tpl", "field.tpl"} {
		if _, err := fs.Stat(EmbeddedTemplates(), name); err != nil {
			t.Fatalf("expected %s in embedded templates: %v", name, err)
		}
	}
}
