// Package render — PDF renderer.
// Lays the report out on Letter pages with half-inch margins using gofpdf:
// a header block, the metric table and the numbered recommendations.
// Text goes through the cp1252 translator because only core fonts are used.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/seoaudit/core"
)

const (
	pdfMargin     = 12.7 // 0.5 in
	pdfLineHeight = 5.0
	pdfCellPad    = 1.5
)

// Column widths of the results table. They add up to the printable width of
// a Letter page (215.9mm minus margins).
var pdfColumns = []struct {
	header string
	width  float64
}{
	{"Metric", 34},
	{"Value", 58},
	{"Status", 22},
	{"Best Practice", 76.5},
}

// PDFRenderer renders a Report as a PDF document.
type PDFRenderer struct {
	criteria CriteriaSource
}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer(criteria CriteriaSource) *PDFRenderer {
	return &PDFRenderer{criteria: criteria}
}

// Render produces the PDF bytes.
func (r *PDFRenderer) Render(report *core.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("rendering PDF: nil report")
	}
	v := buildView(report, r.criteria)

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(v.Title, true)
	pdf.SetCreationDate(report.GeneratedAt)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Header.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, tr(v.Title), "", "L", false)
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(28, pdfLineHeight+1, "URL Analyzed:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, pdfLineHeight+1, tr(v.URL), "", "L", false)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, pdfLineHeight, tr(fmt.Sprintf("Generated %s  |  %d good, %d warning, %d critical",
		v.GeneratedAt, v.Tally.Good, v.Tally.Warning, v.Tally.Critical)), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// Results table.
	renderSectionHeading(pdf, "Analysis Results")
	renderTableHeader(pdf)
	for _, row := range v.Rows {
		renderTableRow(pdf, tr, row)
	}
	pdf.Ln(6)

	// Recommendations.
	renderSectionHeading(pdf, "Recommendations")
	pdf.SetFont("Helvetica", "", 10)
	if len(v.Recommendations) == 0 {
		pdf.MultiCell(0, pdfLineHeight, "No recommendations. Every metric meets best practice.", "", "L", false)
	}
	for i, rec := range v.Recommendations {
		text := fmt.Sprintf("%d. [%s] %s: %s", i+1, strings.ToUpper(rec.Priority), rec.Metric, rec.Text)
		pdf.MultiCell(0, pdfLineHeight, tr(text), "", "L", false)
		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// ContentType returns the MIME type of PDF output.
func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

func renderSectionHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 8, text, "", "L", false)
	pdf.Ln(1)
}

func renderTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, pdfLineHeight+2, col.header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

// renderTableRow draws one row whose height fits the tallest wrapped cell.
func renderTableRow(pdf *gofpdf.Fpdf, tr func(string) string, row rowView) {
	cells := []string{tr(row.Metric), tr(row.Value), tr(row.Status), tr(row.Criteria)}

	pdf.SetFont("Helvetica", "", 9)
	lines := 1
	for i, text := range cells {
		if n := len(pdf.SplitLines([]byte(text), pdfColumns[i].width-2*pdfCellPad)); n > lines {
			lines = n
		}
	}
	height := float64(lines)*pdfLineHeight + 2*pdfCellPad

	_, pageHeight := pdf.GetPageSize()
	if pdf.GetY()+height > pageHeight-pdfMargin {
		pdf.AddPage()
		renderTableHeader(pdf)
		pdf.SetFont("Helvetica", "", 9)
	}

	x, y := pdf.GetXY()
	for i, text := range cells {
		w := pdfColumns[i].width
		pdf.Rect(x, y, w, height, "D")
		if i == 2 {
			setStatusColor(pdf, row.Class)
			pdf.SetFont("Helvetica", "B", 9)
		}
		pdf.SetXY(x+pdfCellPad, y+pdfCellPad)
		pdf.MultiCell(w-2*pdfCellPad, pdfLineHeight, text, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 9)
		x += w
	}
	pdf.SetXY(pdfMargin, y+height)
}

func setStatusColor(pdf *gofpdf.Fpdf, class string) {
	switch class {
	case "good":
		pdf.SetTextColor(27, 127, 59)
	case "warning":
		pdf.SetTextColor(179, 107, 0)
	default:
		pdf.SetTextColor(192, 57, 43)
	}
}
