package renderer

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templatesRoot embed.FS

// templates exposes the .md partials at the root of the filesystem, so the
// render helpers can address them by bare file name.
var templates, _ = fs.Sub(templatesRoot, "templates")
