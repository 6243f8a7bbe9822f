package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/seoaudit/core"
	"github.com/gaurav-prasanna/seoaudit/core/evaluate"
)

type fixedAdvisor map[core.MetricKind]string

func (f fixedAdvisor) Advice(rec core.MetricRecord) string { return f[rec.Kind] }

func TestSynthesize_SkipsGood(t *testing.T) {
	s := New(evaluate.Default())
	records := []core.MetricRecord{
		{Kind: core.Title, Value: core.Text("A well sized page title for this test"), Status: core.Good},
		{Kind: core.H1Tags, Value: core.Count(1), Status: core.Good},
	}
	assert.Empty(t, s.Synthesize(records))
}

func TestSynthesize_OrdersByPriorityThenKind(t *testing.T) {
	s := New(evaluate.Default())
	records := []core.MetricRecord{
		{Kind: core.Title, Value: core.Text("Short"), Status: core.Warning},
		{Kind: core.MetaDescription, Value: core.Text(""), Status: core.Critical},
		{Kind: core.TotalLinks, Value: core.Count(0), Status: core.Warning},
		{Kind: core.MobileFriendly, Value: core.Flag(false), Status: core.Critical},
		{Kind: core.LoadTime, Value: core.Millis(900), Status: core.Good},
	}

	got := s.Synthesize(records)
	require.Len(t, got, 4)

	kinds := make([]core.MetricKind, len(got))
	for i, r := range got {
		kinds[i] = r.Kind
	}
	assert.Equal(t, []core.MetricKind{core.MetaDescription, core.MobileFriendly, core.Title, core.TotalLinks}, kinds)
	assert.Equal(t, core.PriorityHigh, got[0].Priority)
	assert.Equal(t, core.PriorityHigh, got[1].Priority)
	assert.Equal(t, core.PriorityMedium, got[2].Priority)
	assert.Equal(t, core.PriorityMedium, got[3].Priority)
}

func TestSynthesize_ScenarioC(t *testing.T) {
	s := New(evaluate.Default())
	records := []core.MetricRecord{
		{Kind: core.AltTags, Value: core.ImageAlt{Missing: 2, Total: 3}, Status: core.Critical},
		{Kind: core.H1Tags, Value: core.Count(0), Status: core.Critical},
	}

	got := s.Synthesize(records)
	require.Len(t, got, 2)
	assert.Equal(t, core.AltTags, got[0].Kind)
	assert.Contains(t, got[0].Text, "2 image(s)")
	assert.Equal(t, core.H1Tags, got[1].Kind)
	for _, r := range got {
		assert.Equal(t, core.PriorityHigh, r.Priority)
	}
}

func TestSynthesize_DeduplicatesKeepingHighestPriority(t *testing.T) {
	s := New(fixedAdvisor{
		core.Title:           "Rewrite the head section.",
		core.MetaDescription: "Rewrite the head section.",
		core.WordCount:       "Write more.",
	})
	records := []core.MetricRecord{
		{Kind: core.Title, Status: core.Warning},
		{Kind: core.MetaDescription, Status: core.Critical},
		{Kind: core.WordCount, Status: core.Warning},
	}

	got := s.Synthesize(records)
	require.Len(t, got, 2)
	assert.Equal(t, core.Recommendation{Kind: core.MetaDescription, Priority: core.PriorityHigh, Text: "Rewrite the head section."}, got[0])
	assert.Equal(t, core.Recommendation{Kind: core.WordCount, Priority: core.PriorityMedium, Text: "Write more."}, got[1])
}

func TestSynthesize_EmptyAdviceDropped(t *testing.T) {
	s := New(fixedAdvisor{})
	got := s.Synthesize([]core.MetricRecord{{Kind: core.Title, Status: core.Critical}})
	assert.Empty(t, got)
}
