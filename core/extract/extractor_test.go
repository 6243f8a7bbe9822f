package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/seoaudit/core"
)

func mustParse(t *testing.T, html string) *core.PageDocument {
	t.Helper()
	page, err := core.ParseDocument("https://example.com/page", "", 200, html)
	require.NoError(t, err)
	return page
}

func extractAll(t *testing.T, html string, elapsed time.Duration) map[core.MetricKind]core.Measurement {
	t.Helper()
	ms, err := New().Extract(mustParse(t, html), elapsed)
	require.NoError(t, err)
	byKind := make(map[core.MetricKind]core.Measurement, len(ms))
	for _, m := range ms {
		byKind[m.Kind] = m
	}
	return byKind
}

func TestExtract_OnePerKindInOrder(t *testing.T) {
	docs := []string{
		``,
		`<html><head><title>T</title></head><body><h1>x</h1></body></html>`,
		`<div><p>unclosed <b>markup`,
		`not html at all`,
	}
	for _, html := range docs {
		ms, err := New().Extract(mustParse(t, html), time.Second)
		require.NoError(t, err)
		require.Len(t, ms, len(core.Kinds()))
		for i, kind := range core.Kinds() {
			assert.Equal(t, kind, ms[i].Kind)
			assert.NotNil(t, ms[i].Value, "kind %s has no value", kind)
		}
	}
}

func TestExtract_Fallbacks(t *testing.T) {
	got := extractAll(t, `<html><head></head><body></body></html>`, 0)

	assert.Equal(t, core.Text(""), got[core.Title].Value)
	assert.Equal(t, core.Text(""), got[core.MetaDescription].Value)
	assert.Equal(t, core.Count(0), got[core.WordCount].Value)
	assert.Equal(t, core.Count(0), got[core.TotalLinks].Value)
	assert.Equal(t, core.ImageAlt{}, got[core.AltTags].Value)
	assert.Equal(t, core.Count(0), got[core.H1Tags].Value)
	assert.Equal(t, core.Flag(false), got[core.MobileFriendly].Value)
	assert.Equal(t, core.Flag(false), got[core.CanonicalTag].Value)
	assert.Equal(t, core.Millis(0), got[core.LoadTime].Value)
}

func TestExtract_NilDocument(t *testing.T) {
	_, err := New().Extract(nil, time.Second)
	assert.ErrorIs(t, err, core.ErrNoDocument)
	assert.True(t, core.IsFetchFailure(err))

	_, err = New().Extract(&core.PageDocument{URL: "https://example.com"}, time.Second)
	assert.ErrorIs(t, err, core.ErrNoDocument)
}

func TestExtract_TitleAndMeta(t *testing.T) {
	got := extractAll(t, `<html><head>
		<title>
			Hello   World
		</title>
		<meta name="Description" content="  A short summary.  ">
		</head><body></body></html>`, 0)

	assert.Equal(t, core.Text("Hello World"), got[core.Title].Value)
	assert.Equal(t, core.Text("A short summary."), got[core.MetaDescription].Value)
}

func TestExtract_WordCountSkipsScriptAndStyle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want core.Count
	}{
		{
			name: "invisible elements and inline markup",
			html: `<html><head><title>Not counted</title><style>body { color: red }</style></head>
		<body>
		<p>one two <b>three</b></p>
		<script>var a = "four five six";</script>
		<noscript>hidden words here</noscript>
		<p>fo<i>ur</i></p>
		</body></html>`,
			want: 4,
		},
		{
			name: "minified block markup",
			html: `<html><body><ul><li>Home</li><li>About</li><li>Contact</li></ul><p>one</p><p>two</p></body></html>`,
			want: 5,
		},
		{
			name: "line breaks and table cells",
			html: `<html><body>first<br>second<table><tr><td>a</td><td>b</td></tr></table><h1>H</h1><div>end</div></body></html>`,
			want: 6,
		},
		{
			name: "inline elements join",
			html: `<html><body><p><span>un</span><em>broken</em> word</p></body></html>`,
			want: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractAll(t, tt.html, 0)
			assert.Equal(t, tt.want, got[core.WordCount].Value)
		})
	}
}

func TestExtract_TitleIgnoresInlineSVG(t *testing.T) {
	got := extractAll(t, `<html><head></head><body>
		<svg><title>Icon</title><path d="M0 0"/></svg>
		<p>text</p></body></html>`, 0)
	assert.Equal(t, core.Text(""), got[core.Title].Value)

	got = extractAll(t, `<html><head><title>Page</title></head><body>
		<svg><title>Icon</title></svg></body></html>`, 0)
	assert.Equal(t, core.Text("Page"), got[core.Title].Value)
}

func TestExtract_Links(t *testing.T) {
	got := extractAll(t, `<html><body>
		<a href="/about">About</a>
		<a href="https://example.com/contact">Contact</a>
		<a href="https://other.com/page">Other</a>
		<a href="mailto:test@example.com">Email</a>
		<a href="#top">Top</a>
		<a href="">Empty</a>
		<a>No href</a>
		</body></html>`, 0)

	assert.Equal(t, core.Count(3), got[core.TotalLinks].Value)
	assert.Equal(t, "2 internal, 1 external", got[core.TotalLinks].Note)
}

func TestExtract_AltTags(t *testing.T) {
	tests := []struct {
		name string
		body string
		want core.ImageAlt
	}{
		{name: "no images", body: `<p>text</p>`, want: core.ImageAlt{}},
		{name: "all described", body: `<img src="a" alt="A"><img src="b" alt="B">`, want: core.ImageAlt{Total: 2}},
		{
			name: "two of three missing",
			body: `<img src="a" alt="A"><img src="b"><img src="c" alt="   ">`,
			want: core.ImageAlt{Missing: 2, Total: 3},
		},
		{name: "empty alt counts as missing", body: `<img src="a" alt="">`, want: core.ImageAlt{Missing: 1, Total: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractAll(t, `<html><body>`+tt.body+`</body></html>`, 0)
			assert.Equal(t, tt.want, got[core.AltTags].Value)
		})
	}
}

func TestExtract_H1(t *testing.T) {
	got := extractAll(t, `<html><body><h1>a</h1><section><h1>b</h1></section><h2>c</h2></body></html>`, 0)
	assert.Equal(t, core.Count(2), got[core.H1Tags].Value)
}

func TestExtract_Viewport(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{content: "width=device-width, initial-scale=1", want: true},
		{content: "initial-scale=1; WIDTH = Device-Width", want: true},
		{content: "width=1024", want: false},
		{content: "initial-scale=1", want: false},
		{content: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			html := `<html><head><meta name="viewport" content="` + tt.content + `"></head></html>`
			got := extractAll(t, html, 0)
			assert.Equal(t, core.Flag(tt.want), got[core.MobileFriendly].Value)
		})
	}
}

func TestExtract_Canonical(t *testing.T) {
	tests := []struct {
		name     string
		head     string
		want     bool
		wantNote string
	}{
		{name: "present", head: `<link rel="canonical" href="https://example.com/">`, want: true, wantNote: "https://example.com/"},
		{name: "mixed rel tokens", head: `<link rel="Canonical alternate" href="/x">`, want: true, wantNote: "/x"},
		{name: "empty href", head: `<link rel="canonical" href="  ">`, want: false},
		{name: "other rel", head: `<link rel="stylesheet" href="/s.css">`, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractAll(t, `<html><head>`+tt.head+`</head></html>`, 0)
			assert.Equal(t, core.Flag(tt.want), got[core.CanonicalTag].Value)
			assert.Equal(t, tt.wantNote, got[core.CanonicalTag].Note)
		})
	}
}

func TestExtract_LoadTime(t *testing.T) {
	got := extractAll(t, `<html></html>`, 1500*time.Millisecond+300*time.Microsecond)
	assert.Equal(t, core.Millis(1500), got[core.LoadTime].Value)

	got = extractAll(t, `<html></html>`, -time.Second)
	assert.Equal(t, core.Millis(0), got[core.LoadTime].Value)
}

func TestExtract_LargeDocument(t *testing.T) {
	body := strings.Repeat("word ", 1234)
	got := extractAll(t, `<html><body><p>`+body+`</p></body></html>`, 0)
	assert.Equal(t, core.Count(1234), got[core.WordCount].Value)
}
