// Package render provides the report renderers: HTML, Markdown, JSON and PDF.
// All of them lay out the same view of a Report so the formats never
// disagree on content.
package render

import (
	"time"

	"github.com/gaurav-prasanna/seoaudit/core"
)

const reportTitle = "SEO Analysis Report"

// CriteriaSource supplies the best-practice line shown next to each metric.
// evaluate.Rubric implements it.
type CriteriaSource interface {
	Criteria(kind core.MetricKind) string
}

type reportView struct {
	Title           string
	URL             string
	GeneratedAt     string
	Tally           core.Tally
	Rows            []rowView
	Recommendations []recommendationView
}

type rowView struct {
	Metric   string
	Value    string
	Status   string
	Class    string // lower-case status, used for styling
	Criteria string
}

type recommendationView struct {
	Metric   string
	Priority string
	Text     string
}

func buildView(r *core.Report, criteria CriteriaSource) reportView {
	v := reportView{
		Title:       reportTitle,
		URL:         r.URL,
		GeneratedAt: r.GeneratedAt.UTC().Format(time.RFC1123),
		Tally:       r.Tally(),
	}
	for _, m := range r.Metrics {
		row := rowView{
			Metric: m.Kind.String(),
			Value:  m.Detail,
			Status: m.Status.String(),
			Class:  statusClass(m.Status),
		}
		if criteria != nil {
			row.Criteria = criteria.Criteria(m.Kind)
		}
		v.Rows = append(v.Rows, row)
	}
	for _, rec := range r.Recommendations {
		v.Recommendations = append(v.Recommendations, recommendationView{
			Metric:   rec.Kind.String(),
			Priority: rec.Priority.String(),
			Text:     rec.Text,
		})
	}
	return v
}

func statusClass(s core.Status) string {
	switch s {
	case core.Good:
		return "good"
	case core.Warning:
		return "warning"
	default:
		return "critical"
	}
}
