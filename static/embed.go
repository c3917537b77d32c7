// Package static holds the page templates served by the web surface.
package static

import "embed"

//go:embed *.html
var FS embed.FS
