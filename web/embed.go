// Package web embeds the static assets and HTML templates served by the
// page router.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static templates
var content embed.FS

// StaticFS returns the embedded static assets rooted at their directory.
func StaticFS() fs.FS {
	// The embed directive guarantees the directory exists, so fs.Sub
	// cannot fail here.
	sub, _ := fs.Sub(content, "static")
	return sub
}

// TemplatesFS returns the embedded HTML templates rooted at their directory.
func TemplatesFS() fs.FS {
	sub, _ := fs.Sub(content, "templates")
	return sub
}
