// Package render — HTML renderer.
// Produces a standalone HTML page with the metric table and the prioritized
// recommendations. It is also the source document for the Markdown renderer.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/gaurav-prasanna/seoaudit/core"
)

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 0.5in; color: #222; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 8px; text-align: left; vertical-align: top; }
th { background: #f0f0f0; }
.good { color: #1b7f3b; }
.warning { color: #b36b00; }
.critical { color: #c0392b; font-weight: bold; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p><strong>URL Analyzed:</strong> <a href="{{.URL}}">{{.URL}}</a></p>
<p><strong>Generated:</strong> {{.GeneratedAt}}</p>
<p>{{.Tally.Good}} good, {{.Tally.Warning}} warning, {{.Tally.Critical}} critical</p>
<h2>Analysis Results</h2>
<table>
<thead><tr><th>Metric</th><th>Value</th><th>Status</th><th>Best Practice</th></tr></thead>
<tbody>
{{- range .Rows}}
<tr><td>{{.Metric}}</td><td>{{.Value}}</td><td class="{{.Class}}">{{.Status}}</td><td>{{.Criteria}}</td></tr>
{{- end}}
</tbody>
</table>
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
</body>
</html>
`))

// HTMLRenderer renders a Report as a standalone HTML page.
type HTMLRenderer struct {
	criteria CriteriaSource
}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer(criteria CriteriaSource) *HTMLRenderer {
	return &HTMLRenderer{criteria: criteria}
}

// Render executes the report template.
func (r *HTMLRenderer) Render(report *core.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("rendering HTML: nil report")
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, buildView(report, r.criteria)); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}

// ContentType returns the MIME type of HTML output.
func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}
