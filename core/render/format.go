package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/seoaudit/core"
)

// Format names an output format.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatHTML     Format = "html"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatPDF, FormatMarkdown, FormatJSON, FormatHTML}
}

// ParseFormat accepts a format name, case-insensitively. "md" is an alias for
// markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatMarkdown, FormatJSON, FormatHTML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown format %q (want pdf, markdown, json or html)", s)
}

// New returns the renderer for f.
func New(f Format, criteria CriteriaSource) (core.Renderer, error) {
	switch f {
	case FormatPDF:
		return NewPDFRenderer(criteria), nil
	case FormatMarkdown:
		return NewMarkdownRenderer(criteria), nil
	case FormatJSON:
		return NewJSONRenderer(criteria), nil
	case FormatHTML:
		return NewHTMLRenderer(criteria), nil
	}
	return nil, fmt.Errorf("no renderer for format %q", f)
}
