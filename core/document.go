package core

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseDocument parses body into a PageDocument. finalURL may be empty, in
// which case the requested URL is used.
func ParseDocument(rawURL, finalURL string, status int, body string) (*PageDocument, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	if finalURL == "" {
		finalURL = rawURL
	}
	if u, err := url.Parse(finalURL); err == nil {
		doc.Url = u
	}
	return &PageDocument{
		URL:        rawURL,
		FinalURL:   finalURL,
		StatusCode: status,
		HTML:       body,
		Doc:        doc,
	}, nil
}
