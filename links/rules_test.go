package links

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "adds https scheme", input: "example.com", want: "https://example.com"},
		{name: "trims whitespace", input: "  https://example.com/docs \n", want: "https://example.com/docs"},
		{name: "keeps http", input: "http://example.com", want: "http://example.com"},
		{name: "uppercase scheme", input: "HTTPS://example.com", want: "https://example.com"},
		{name: "strips fragment", input: "https://example.com/a#top", want: "https://example.com/a"},
		{name: "empty", input: "   ", wantErr: true},
		{name: "ftp rejected", input: "ftp://example.com/file", wantErr: true},
		{name: "no host", input: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	base, err := url.Parse("https://example.com/blog/post")
	require.NoError(t, err)

	tests := []struct {
		href   string
		want   string
		wantOK bool
	}{
		{href: "/about", want: "https://example.com/about", wantOK: true},
		{href: "next", want: "https://example.com/blog/next", wantOK: true},
		{href: "//cdn.example.org/x", want: "https://cdn.example.org/x", wantOK: true},
		{href: "https://other.com/page#frag", want: "https://other.com/page", wantOK: true},
		{href: "#section"},
		{href: ""},
		{href: "   "},
		{href: "mailto:a@example.com"},
		{href: "JavaScript:void(0)"},
		{href: "tel:+123"},
		{href: "ftp://example.com/file"},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			got, ok := Resolve(tt.href, base)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSameDomain(t *testing.T) {
	assert.True(t, IsSameDomain("https://Example.com/a", "example.com"))
	assert.False(t, IsSameDomain("https://other.com/a", "example.com"))
	assert.False(t, IsSameDomain("https://sub.example.com/a", "example.com"))
}
