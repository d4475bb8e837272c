package expertise

import (
	"io/fs"

	"github.com/goliatone/go-expertise/pkg/page"
)

// EmbeddedTemplates exposes the built-in host page templates so callers can
// reuse or extend them without importing the page package directly.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}
