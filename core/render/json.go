// Package render — JSON renderer.
// Emits the report as a stable, machine-readable document: metrics keyed by
// their snake_case kind, each with its raw value, status, detail and the
// catalog text that explains it.
package render

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gaurav-prasanna/seoaudit/core"
)

type jsonReport struct {
	URL             string                `json:"url"`
	GeneratedAt     time.Time             `json:"generated_at"`
	Summary         core.Tally            `json:"summary"`
	Metrics         []jsonMetric          `json:"metrics"`
	Recommendations []core.Recommendation `json:"recommendations"`
}

type jsonMetric struct {
	Kind       core.MetricKind `json:"kind"`
	Name       string          `json:"name"`
	Value      core.Value      `json:"value"`
	Status     core.Status     `json:"status"`
	Detail     string          `json:"detail"`
	Criteria   string          `json:"criteria,omitempty"`
	Definition string          `json:"definition"`
	Importance string          `json:"importance"`
}

// JSONRenderer produces indented JSON output.
type JSONRenderer struct {
	criteria CriteriaSource
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer(criteria CriteriaSource) *JSONRenderer {
	return &JSONRenderer{criteria: criteria}
}

// Render marshals the report.
func (r *JSONRenderer) Render(report *core.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("marshaling JSON: nil report")
	}

	out := jsonReport{
		URL:             report.URL,
		GeneratedAt:     report.GeneratedAt.UTC(),
		Summary:         report.Tally(),
		Metrics:         make([]jsonMetric, 0, len(report.Metrics)),
		Recommendations: report.Recommendations,
	}
	if out.Recommendations == nil {
		out.Recommendations = []core.Recommendation{}
	}
	for _, m := range report.Metrics {
		info := core.Info(m.Kind)
		jm := jsonMetric{
			Kind:       m.Kind,
			Name:       m.Kind.String(),
			Value:      m.Value,
			Status:     m.Status,
			Detail:     m.Detail,
			Definition: info.Definition,
			Importance: info.Importance,
		}
		if r.criteria != nil {
			jm.Criteria = r.criteria.Criteria(m.Kind)
		}
		out.Metrics = append(out.Metrics, jm)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// ContentType returns the MIME type of JSON output.
func (r *JSONRenderer) ContentType() string {
	return "application/json"
}
