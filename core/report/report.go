// Package report assembles the final Report from classified metrics and
// recommendations.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/gaurav-prasanna/seoaudit/core"
)

// Assemble builds a Report. records must hold exactly one entry per metric
// kind; anything else is a configuration error. Metrics are put in kind order
// and the inputs are not modified.
func Assemble(url string, records []core.MetricRecord, recs []core.Recommendation, generatedAt time.Time) (*core.Report, error) {
	if err := checkComplete(records); err != nil {
		return nil, err
	}

	metrics := make([]core.MetricRecord, len(records))
	copy(metrics, records)
	sort.SliceStable(metrics, func(i, j int) bool { return metrics[i].Kind < metrics[j].Kind })

	recommendations := make([]core.Recommendation, len(recs))
	copy(recommendations, recs)

	return &core.Report{
		URL:             url,
		GeneratedAt:     generatedAt,
		Metrics:         metrics,
		Recommendations: recommendations,
	}, nil
}

func checkComplete(records []core.MetricRecord) error {
	seen := make(map[core.MetricKind]bool, len(records))
	for _, r := range records {
		if !r.Kind.Valid() {
			return core.ConfigurationError(fmt.Sprintf("unknown metric kind %d", int(r.Kind)))
		}
		if seen[r.Kind] {
			return core.ConfigurationError(fmt.Sprintf("duplicate metric %s", r.Kind))
		}
		seen[r.Kind] = true
	}
	for _, kind := range core.Kinds() {
		if !seen[kind] {
			return core.ConfigurationError(fmt.Sprintf("missing metric %s", kind))
		}
	}
	return nil
}
