// Package web embeds the site's HTML templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every embedded page template into a single template set.
func Templates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}

// StaticFS returns the embedded static asset tree rooted at its contents.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The static directory is embedded at compile time; failing to
		// root into it means the binary itself is broken.
		panic("web: static assets missing from binary: " + err.Error())
	}

	return sub
}
