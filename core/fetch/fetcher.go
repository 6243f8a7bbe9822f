// Package fetch implements the Fetcher interface.
// It performs a timed HTTP GET and parses the body into a PageDocument.
// Every failure is reported as a core FetchFailure so the analysis core is
// only ever handed a usable document.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gaurav-prasanna/seoaudit/core"
	"github.com/gaurav-prasanna/seoaudit/links"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "SEO Analyzer Bot"

	// maxBodySize caps how much of a response is read.
	maxBodySize = 10 << 20
)

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	log       logrus.FieldLogger
	now       func() time.Time
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithTimeout sets the overall request timeout. It applies whatever the
// option order, and a client passed to WithHTTPClient is copied rather than
// modified.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) { f.timeout = d }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(f *HTTPFetcher) { f.log = log }
}

// WithHTTPClient replaces the underlying client. The client's own timeout is
// kept unless WithTimeout is also given.
func WithHTTPClient(c *http.Client) Option {
	return func(f *HTTPFetcher) { f.client = c }
}

// New creates an HTTPFetcher with a sensible timeout.
func New(opts ...Option) *HTTPFetcher {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	f := &HTTPFetcher{
		userAgent: DefaultUserAgent,
		log:       discard,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}

	switch {
	case f.client == nil:
		timeout := f.timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		f.client = &http.Client{Timeout: timeout}
	case f.timeout > 0:
		c := *f.client
		c.Timeout = f.timeout
		f.client = &c
	}
	return f
}

// Fetch retrieves the given URL, measures how long it took and parses the
// HTML. The elapsed time runs from sending the request until the body has
// been read.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*core.FetchResult, error) {
	target, err := links.Normalize(rawURL)
	if err != nil {
		return nil, core.FetchFailure(rawURL, 0, "invalid URL", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, core.FetchFailure(target, 0, "creating request", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := f.now()
	resp, err := f.client.Do(req)
	if err != nil {
		msg := "request failed"
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			msg = "request timed out"
		}
		return nil, core.FetchFailure(target, 0, msg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, core.FetchFailure(target, resp.StatusCode,
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, core.FetchFailure(target, resp.StatusCode, "reading response body", err)
	}
	elapsed := f.now().Sub(start)

	finalURL := target
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	page, err := core.ParseDocument(target, finalURL, resp.StatusCode, string(body))
	if err != nil {
		return nil, core.FetchFailure(target, resp.StatusCode, "parsing HTML", err)
	}

	f.log.WithFields(logrus.Fields{
		"url":         target,
		"final_url":   finalURL,
		"status_code": resp.StatusCode,
		"elapsed_ms":  elapsed.Milliseconds(),
		"bytes":       len(body),
	}).Debug("page fetched")

	return &core.FetchResult{Document: page, Elapsed: elapsed}, nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
