// Package web embeds the site's templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates static
var files embed.FS

// Templates holds the parsed page templates, keyed by file name.
var Templates = template.Must(template.ParseFS(files, "templates/*.html"))

// Static serves the embedded static assets.
func Static() http.Handler {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
