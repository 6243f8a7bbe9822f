package evaluate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/seoaudit/core"
)

func newEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	e, err := New(Default())
	require.NoError(t, err)
	return e
}

func TestEvaluate_PreservesOrderAndValues(t *testing.T) {
	ms := []core.Measurement{
		{Kind: core.LoadTime, Value: core.Millis(800)},
		{Kind: core.Title, Value: core.Text("Hi")},
	}
	got := newEvaluator(t).Evaluate(ms)
	require.Len(t, got, 2)
	assert.Equal(t, core.LoadTime, got[0].Kind)
	assert.Equal(t, core.Millis(800), got[0].Value)
	assert.Equal(t, core.Title, got[1].Kind)
	assert.Equal(t, core.Text("Hi"), got[1].Value)
}

func TestEvaluate_EmptyPage(t *testing.T) {
	ms := []core.Measurement{
		{Kind: core.Title, Value: core.Text("")},
		{Kind: core.MetaDescription, Value: core.Text("")},
		{Kind: core.WordCount, Value: core.Count(0)},
		{Kind: core.TotalLinks, Value: core.Count(0)},
		{Kind: core.AltTags, Value: core.ImageAlt{}},
		{Kind: core.H1Tags, Value: core.Count(0)},
		{Kind: core.MobileFriendly, Value: core.Flag(false)},
		{Kind: core.CanonicalTag, Value: core.Flag(false)},
		{Kind: core.LoadTime, Value: core.Millis(300)},
	}
	want := []core.Status{
		core.Critical, core.Critical, core.Critical, core.Warning, core.Good,
		core.Critical, core.Critical, core.Warning, core.Good,
	}

	got := newEvaluator(t).Evaluate(ms)
	require.Len(t, got, len(want))
	for i, rec := range got {
		assert.Equal(t, want[i], rec.Status, rec.Kind.String())
	}
}

func TestEvaluate_Details(t *testing.T) {
	tests := []struct {
		m    core.Measurement
		want string
	}{
		{core.Measurement{Kind: core.Title, Value: core.Text("Hello")}, `"Hello" (5 characters)`},
		{core.Measurement{Kind: core.Title, Value: core.Text("")}, "Missing (0 characters)"},
		{core.Measurement{Kind: core.WordCount, Value: core.Count(1234)}, "1,234 words"},
		{core.Measurement{Kind: core.TotalLinks, Value: core.Count(3), Note: "2 internal, 1 external"}, "3 links (2 internal, 1 external)"},
		{core.Measurement{Kind: core.TotalLinks, Value: core.Count(0)}, "0 links"},
		{core.Measurement{Kind: core.AltTags, Value: core.ImageAlt{Missing: 2, Total: 3}}, "2 of 3 images missing alt text"},
		{core.Measurement{Kind: core.AltTags, Value: core.ImageAlt{}}, "No images found"},
		{core.Measurement{Kind: core.H1Tags, Value: core.Count(1)}, "1 H1 tag"},
		{core.Measurement{Kind: core.H1Tags, Value: core.Count(2)}, "2 H1 tags"},
		{core.Measurement{Kind: core.MobileFriendly, Value: core.Flag(true)}, "Yes"},
		{core.Measurement{Kind: core.MobileFriendly, Value: core.Flag(false)}, "No"},
		{core.Measurement{Kind: core.CanonicalTag, Value: core.Flag(true), Note: "https://example.com/"}, "https://example.com/"},
		{core.Measurement{Kind: core.CanonicalTag, Value: core.Flag(false)}, "None"},
		{core.Measurement{Kind: core.LoadTime, Value: core.Millis(1200)}, "1.20 seconds"},
	}
	e := newEvaluator(t)
	for _, tt := range tests {
		got := e.Evaluate([]core.Measurement{tt.m})
		require.Len(t, got, 1)
		assert.Equal(t, tt.want, got[0].Detail)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	ms := []core.Measurement{
		{Kind: core.Title, Value: core.Text(strings.Repeat("t", 45))},
		{Kind: core.LoadTime, Value: core.Millis(2000)},
	}
	e := newEvaluator(t)
	assert.Equal(t, e.Evaluate(ms), e.Evaluate(ms))
}
