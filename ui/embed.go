// Package ui holds the templates and static assets of the web application.
package ui

import "embed"

//go:embed templates static
var Files embed.FS
