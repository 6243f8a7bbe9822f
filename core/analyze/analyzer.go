// Package analyze wires the pipeline stages together:
//  1. Fetch the page (the only stage that does I/O)
//  2. Extract raw measurements
//  3. Evaluate them against the rubric
//  4. Synthesize recommendations
//  5. Assemble the report
package analyze

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gaurav-prasanna/seoaudit/core"
	"github.com/gaurav-prasanna/seoaudit/core/evaluate"
	"github.com/gaurav-prasanna/seoaudit/core/extract"
	"github.com/gaurav-prasanna/seoaudit/core/recommend"
	"github.com/gaurav-prasanna/seoaudit/core/report"
)

// Analyzer runs a single-page SEO analysis.
type Analyzer struct {
	fetcher   core.Fetcher
	extractor *extract.Extractor
	evaluator *evaluate.Evaluator
	synth     *recommend.Synthesizer
	log       logrus.FieldLogger
	now       func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger for pipeline diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(a *Analyzer) { a.log = log }
}

// WithClock replaces the clock used for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// New creates an Analyzer using fetcher and the default rubric.
func New(fetcher core.Fetcher, opts ...Option) (*Analyzer, error) {
	return NewWithRubric(fetcher, evaluate.Default(), opts...)
}

// NewWithRubric creates an Analyzer scoring against rubric.
func NewWithRubric(fetcher core.Fetcher, rubric evaluate.Rubric, opts ...Option) (*Analyzer, error) {
	evaluator, err := evaluate.New(rubric)
	if err != nil {
		return nil, err
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	a := &Analyzer{
		fetcher:   fetcher,
		extractor: extract.New(),
		evaluator: evaluator,
		synth:     recommend.New(rubric),
		log:       discard,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Rubric returns the rubric reports are scored against.
func (a *Analyzer) Rubric() evaluate.Rubric {
	return a.evaluator.Rubric()
}

// Run fetches url and analyzes it. A fetch failure is returned as-is and no
// report is produced.
func (a *Analyzer) Run(ctx context.Context, url string) (*core.Report, error) {
	log := a.log.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"url":    url,
	})
	log.Info("analysis started")

	result, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		log.WithError(err).Warn("fetch failed")
		return nil, err
	}
	if result == nil {
		return nil, core.FetchFailure(url, 0, "fetch returned no result", core.ErrNoDocument)
	}

	rep, err := a.AnalyzeDocument(result.Document, result.Elapsed, a.now())
	if err != nil {
		log.WithError(err).Error("analysis failed")
		return nil, err
	}

	tally := rep.Tally()
	log.WithFields(logrus.Fields{
		"status_code": result.Document.StatusCode,
		"elapsed_ms":  result.Elapsed.Milliseconds(),
		"good":        tally.Good,
		"warning":     tally.Warning,
		"critical":    tally.Critical,
	}).Info("analysis completed")

	return rep, nil
}

// AnalyzeDocument runs every stage after fetching. It is pure: the same page,
// elapsed time and timestamp always give an equal report.
func (a *Analyzer) AnalyzeDocument(page *core.PageDocument, elapsed time.Duration, generatedAt time.Time) (*core.Report, error) {
	measurements, err := a.extractor.Extract(page, elapsed)
	if err != nil {
		return nil, err
	}
	records := a.evaluator.Evaluate(measurements)
	recs := a.synth.Synthesize(records)
	return report.Assemble(page.URL, records, recs, generatedAt)
}
