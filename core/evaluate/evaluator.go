package evaluate

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gaurav-prasanna/seoaudit/core"
)

// Evaluator turns measurements into classified metric records.
type Evaluator struct {
	rubric Rubric
}

// New creates an Evaluator for rubric. It fails with a configuration error if
// the rubric does not cover every kind.
func New(rubric Rubric) (*Evaluator, error) {
	if err := rubric.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{rubric: rubric}, nil
}

// Rubric returns the rubric the evaluator classifies against.
func (e *Evaluator) Rubric() Rubric {
	return e.rubric
}

// Evaluate classifies each measurement. It never fails; output order follows
// input order.
func (e *Evaluator) Evaluate(ms []core.Measurement) []core.MetricRecord {
	p := message.NewPrinter(language.English)
	out := make([]core.MetricRecord, 0, len(ms))
	for _, m := range ms {
		out = append(out, core.MetricRecord{
			Kind:   m.Kind,
			Value:  m.Value,
			Status: e.rubric.Classify(m.Kind, m.Value),
			Detail: detail(p, m),
		})
	}
	return out
}

// detail renders the human-readable line for a measurement.
func detail(p *message.Printer, m core.Measurement) string {
	switch v := m.Value.(type) {
	case core.Text:
		n := textLength(v)
		if n == 0 {
			return "Missing (0 characters)"
		}
		return p.Sprintf("%s (%d characters)", strconv.Quote(string(v)), n)
	case core.Count:
		switch m.Kind {
		case core.WordCount:
			return p.Sprintf("%d words", int(v))
		case core.TotalLinks:
			if m.Note != "" {
				return p.Sprintf("%d links (%s)", int(v), m.Note)
			}
			return p.Sprintf("%d links", int(v))
		case core.H1Tags:
			if v == 1 {
				return "1 H1 tag"
			}
			return p.Sprintf("%d H1 tags", int(v))
		}
		return p.Sprintf("%d", int(v))
	case core.ImageAlt:
		if v.Total == 0 {
			return "No images found"
		}
		return p.Sprintf("%d of %d images missing alt text", v.Missing, v.Total)
	case core.Flag:
		if m.Kind == core.CanonicalTag {
			if v && m.Note != "" {
				return m.Note
			}
			if v {
				return "Yes"
			}
			return "None"
		}
		if v {
			return "Yes"
		}
		return "No"
	case core.Millis:
		return p.Sprintf("%.2f seconds", float64(v)/1000)
	}
	return ""
}
