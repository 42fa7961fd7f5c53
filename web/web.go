// Package web embeds the HTML templates and static assets served by cmd/server.
package web

import "embed"

// Templates holds layout.html and the page templates under templates/.
//
//go:embed templates/*.html
var Templates embed.FS

// Static holds the files served under /static/.
//
//go:embed static
var Static embed.FS
