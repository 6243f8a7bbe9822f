// Package recommend turns classified metrics into prioritized guidance.
// It only consumes MetricRecords and never looks at the page itself.
package recommend

import (
	"sort"

	"github.com/gaurav-prasanna/seoaudit/core"
)

// Advisor supplies the guidance text for a classified metric. An empty
// string means no recommendation.
type Advisor interface {
	Advice(rec core.MetricRecord) string
}

// Synthesizer maps metric records to recommendations.
type Synthesizer struct {
	advisor Advisor
}

// New creates a Synthesizer backed by advisor.
func New(advisor Advisor) *Synthesizer {
	return &Synthesizer{advisor: advisor}
}

// Synthesize returns one recommendation per non-Good metric, highest priority
// first and in kind order within a priority. Identical texts collapse into a
// single entry that keeps the highest priority.
func (s *Synthesizer) Synthesize(records []core.MetricRecord) []core.Recommendation {
	out := make([]core.Recommendation, 0, len(records))
	seen := make(map[string]int, len(records))

	for _, rec := range records {
		if rec.Status == core.Good {
			continue
		}
		text := s.advisor.Advice(rec)
		if text == "" {
			continue
		}
		r := core.Recommendation{Kind: rec.Kind, Priority: core.PriorityFor(rec.Status), Text: text}
		if i, ok := seen[text]; ok {
			if r.Priority > out[i].Priority {
				out[i] = r
			}
			continue
		}
		seen[text] = len(out)
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}
