// Package render — Markdown renderer.
// The report is laid out as an HTML fragment with one section per metric and
// converted with the normalizer, so Markdown output needs no table support.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/gaurav-prasanna/seoaudit/core"
	"github.com/gaurav-prasanna/seoaudit/core/normalize"
)

var markdownTemplate = template.Must(template.New("markdown").Parse(`
<h1>{{.Title}}</h1>
<p><strong>URL Analyzed:</strong> <a href="{{.URL}}">{{.URL}}</a></p>
<p><strong>Generated:</strong> {{.GeneratedAt}}</p>
<p>{{.Tally.Good}} good, {{.Tally.Warning}} warning, {{.Tally.Critical}} critical</p>
<h2>Analysis Results</h2>
{{- range .Rows}}
<h3>{{.Metric}}</h3>
<ul>
<li><strong>Value:</strong> {{.Value}}</li>
<li><strong>Status:</strong> {{.Status}}</li>
{{- if .Criteria}}
<li><strong>Best Practice:</strong> {{.Criteria}}</li>
{{- end}}
</ul>
{{- end}}
<h2>Recommendations</h2>
{{- if .Recommendations}}
<ol>
{{- range .Recommendations}}
<li><strong>[{{.Priority}}] {{.Metric}}:</strong> {{.Text}}</li>
{{- end}}
</ol>
{{- else}}
<p>No recommendations. Every metric meets best practice.</p>
{{- end}}
`))

// MarkdownRenderer renders a Report as Markdown.
type MarkdownRenderer struct {
	criteria   CriteriaSource
	normalizer *normalize.MarkdownNormalizer
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(criteria CriteriaSource) *MarkdownRenderer {
	return &MarkdownRenderer{criteria: criteria, normalizer: normalize.New()}
}

// Render lays out the report and converts it to Markdown.
func (r *MarkdownRenderer) Render(report *core.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("rendering markdown: nil report")
	}
	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, buildView(report, r.criteria)); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	md, err := r.normalizer.Normalize(buf.String(), report.URL)
	if err != nil {
		return nil, err
	}
	return []byte(md + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// ContentType returns the MIME type of Markdown output.
func (r *MarkdownRenderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}
