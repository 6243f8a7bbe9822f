// Package normalize converts report HTML into Markdown.
// Relative links are resolved against the analyzed page so the Markdown
// stays usable outside the browser.
package normalize

import (
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
// A single converter is shared; conversions are safe for concurrent use.
type MarkdownNormalizer struct {
	conv *converter.Converter
}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
}

// Normalize converts an HTML fragment into Markdown. pageURL, when set, is
// the base for relative links.
func (n *MarkdownNormalizer) Normalize(html, pageURL string) (string, error) {
	var (
		markdown string
		err      error
	)
	if pageURL != "" {
		markdown, err = n.conv.ConvertString(html, converter.WithDomain(pageURL))
	} else {
		markdown, err = n.conv.ConvertString(html)
	}
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}
