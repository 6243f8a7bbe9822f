// Package core defines the audit pipeline types and interfaces for seoaudit.
// Each stage of the pipeline is a clean, testable interface or pure function.
package core

import (
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// PageDocument is the parsed snapshot of one fetch. It is built once per
// run by a Fetcher and only read afterwards.
type PageDocument struct {
	URL        string // URL as requested
	FinalURL   string // URL after redirects
	StatusCode int
	HTML       string
	Doc        *goquery.Document
}

// FetchResult pairs a PageDocument with the time the fetch took.
type FetchResult struct {
	Document *PageDocument
	Elapsed  time.Duration
}

// Fetcher retrieves and parses a page. Implementations must return a
// FetchFailure error instead of a document for network errors, timeouts,
// non-2xx statuses and unparseable bodies.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Renderer converts a finished Report into a final output format.
type Renderer interface {
	Render(report *Report) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
	// ContentType returns the MIME type used when serving the output over HTTP.
	ContentType() string
}
