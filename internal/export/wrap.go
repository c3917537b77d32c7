// Package export turns a rendered ballot fragment into a standalone HTML
// document or a PDF.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/latestcomment/ballot-export/internal/services"
)

const (
	PageBreakAvoidAll = "avoid-all"
	PageBreakAuto     = "auto"

	mmPerInch = 25.4
)

// avoidAllCSS keeps every block on a single page where it fits.
const avoidAllCSS = `div, span, ol, li, h2 { break-inside: avoid; page-break-inside: avoid; }`

// Wrap builds the standalone document an exporter prints.
func Wrap(fragment string, opts services.ExportOptions) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(opts.Title))
	b.WriteString("<style>")
	fmt.Fprintf(&b, "@page { margin: %smm; }", formatMM(opts.MarginMM))
	if opts.PageBreak == "" || opts.PageBreak == PageBreakAvoidAll {
		b.WriteString(" " + avoidAllCSS)
	}
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(fragment)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

func formatMM(mm float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", mm), "0"), ".")
}

// marginInches converts the configured margin for the PDF printer.
func marginInches(mm float64) float64 {
	if mm < 0 {
		return 0
	}
	return mm / mmPerInch
}
