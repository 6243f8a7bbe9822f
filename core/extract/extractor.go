// Package extract implements the metric extractor.
// It reads the nine raw SEO signals from a parsed PageDocument:
//  1. Head signals (title, meta description, viewport, canonical link)
//  2. Body signals (visible word count, links, images, H1 headings)
//
// Missing elements never fail extraction; each signal falls back to its
// documented zero value.
package extract

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gaurav-prasanna/seoaudit/core"
	"github.com/gaurav-prasanna/seoaudit/links"
)

// Selectors are compiled once and shared by all extractions.
var (
	titleSel  = cascadia.MustCompile("title")
	metaSel   = cascadia.MustCompile("meta[name]")
	linkSel   = cascadia.MustCompile("link[rel]")
	anchorSel = cascadia.MustCompile("a[href]")
	imageSel  = cascadia.MustCompile("img")
	h1Sel     = cascadia.MustCompile("h1")
	bodySel   = cascadia.MustCompile("body")
	svgSel    = cascadia.MustCompile("svg")
)

// invisible are elements whose text content is never shown to readers.
var invisible = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
}

// breaking are block-level and void elements whose boundaries separate words
// even when the markup has no whitespace between them.
var breaking = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Br: true, atom.Button: true, atom.Caption: true, atom.Dd: true,
	atom.Details: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Fieldset: true, atom.Figcaption: true, atom.Figure: true, atom.Footer: true,
	atom.Form: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true, atom.Header: true,
	atom.Hr: true, atom.Img: true, atom.Input: true, atom.Li: true,
	atom.Main: true, atom.Nav: true, atom.Ol: true, atom.Option: true,
	atom.P: true, atom.Pre: true, atom.Section: true, atom.Select: true,
	atom.Summary: true, atom.Table: true, atom.Tbody: true, atom.Td: true,
	atom.Textarea: true, atom.Tfoot: true, atom.Th: true, atom.Thead: true,
	atom.Tr: true, atom.Ul: true,
}

// Extractor computes raw metric values. It holds no state and is safe for
// concurrent use.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns exactly one Measurement per metric kind, in kind order.
// It fails only when page is nil or was never parsed.
func (e *Extractor) Extract(page *core.PageDocument, elapsed time.Duration) ([]core.Measurement, error) {
	if page == nil || page.Doc == nil {
		return nil, core.FetchFailure("", 0, "extracting metrics", core.ErrNoDocument)
	}
	doc := page.Doc
	base := pageURL(page)

	out := make([]core.Measurement, 0, len(core.Kinds()))
	for _, kind := range core.Kinds() {
		var m core.Measurement
		switch kind {
		case core.Title:
			m = core.Measurement{Value: core.Text(title(doc))}
		case core.MetaDescription:
			m = core.Measurement{Value: core.Text(metaContent(doc, "description"))}
		case core.WordCount:
			m = core.Measurement{Value: core.Count(wordCount(doc))}
		case core.TotalLinks:
			m = linkCount(doc, base)
		case core.AltTags:
			m = core.Measurement{Value: altTags(doc)}
		case core.H1Tags:
			m = core.Measurement{Value: core.Count(doc.FindMatcher(h1Sel).Length())}
		case core.MobileFriendly:
			m = core.Measurement{Value: core.Flag(hasDeviceWidthViewport(metaContent(doc, "viewport")))}
		case core.CanonicalTag:
			m = canonical(doc)
		case core.LoadTime:
			m = core.Measurement{Value: core.MillisOf(elapsed)}
		}
		m.Kind = kind
		out = append(out, m)
	}
	return out, nil
}

func pageURL(page *core.PageDocument) *url.URL {
	for _, raw := range []string{page.FinalURL, page.URL} {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err == nil {
			return u
		}
	}
	return page.Doc.Url
}

// collapse trims and folds internal runs of whitespace to single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// title returns the first document title. <title> elements inside inline
// SVG name the graphic, not the page.
func title(doc *goquery.Document) string {
	var text string
	doc.FindMatcher(titleSel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.ParentsMatcher(svgSel).Length() > 0 {
			return true
		}
		text = collapse(s.Text())
		return false
	})
	return text
}

// metaContent returns the content of the first <meta name="..."> whose name
// matches case-insensitively.
func metaContent(doc *goquery.Document, name string) string {
	var content string
	doc.FindMatcher(metaSel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.EqualFold(strings.TrimSpace(s.AttrOr("name", "")), name) {
			return true
		}
		content = collapse(s.AttrOr("content", ""))
		return false
	})
	return content
}

// wordCount counts whitespace-delimited tokens of the visible text. Inline
// markup inside a word does not split it; block and void element boundaries
// always do.
func wordCount(doc *goquery.Document) int {
	root := doc.FindMatcher(bodySel)
	if root.Length() == 0 {
		root = doc.Selection
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && invisible[n.DataAtom] {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		brk := n.Type == html.ElementNode && breaking[n.DataAtom]
		if brk {
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if brk {
			b.WriteByte(' ')
		}
	}
	for _, n := range root.Nodes {
		walk(n)
	}
	return len(strings.Fields(b.String()))
}

func linkCount(doc *goquery.Document, base *url.URL) core.Measurement {
	var total, internal int
	doc.FindMatcher(anchorSel).Each(func(_ int, s *goquery.Selection) {
		resolved, ok := links.Resolve(s.AttrOr("href", ""), base)
		if !ok {
			return
		}
		total++
		if base != nil && links.IsSameDomain(resolved, base.Host) {
			internal++
		}
	})

	m := core.Measurement{Value: core.Count(total)}
	if base != nil && total > 0 {
		m.Note = fmt.Sprintf("%d internal, %d external", internal, total-internal)
	}
	return m
}

func altTags(doc *goquery.Document) core.ImageAlt {
	images := doc.FindMatcher(imageSel)
	v := core.ImageAlt{Total: images.Length()}
	images.Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.AttrOr("alt", "")) == "" {
			v.Missing++
		}
	})
	return v
}

// hasDeviceWidthViewport reports whether a viewport content string carries a
// width=device-width directive. Directives may be separated by commas or
// semicolons.
func hasDeviceWidthViewport(content string) bool {
	for _, directive := range strings.FieldsFunc(content, func(r rune) bool { return r == ',' || r == ';' }) {
		key, val, ok := strings.Cut(directive, "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "width") &&
			strings.EqualFold(strings.TrimSpace(val), "device-width") {
			return true
		}
	}
	return false
}

// canonical looks for a <link rel="canonical"> with a non-empty href. The rel
// attribute is a space-separated token list.
func canonical(doc *goquery.Document) core.Measurement {
	var href string
	doc.FindMatcher(linkSel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, token := range strings.Fields(s.AttrOr("rel", "")) {
			if !strings.EqualFold(token, "canonical") {
				continue
			}
			if h := strings.TrimSpace(s.AttrOr("href", "")); h != "" {
				href = h
				return false
			}
		}
		return true
	})
	return core.Measurement{Value: core.Flag(href != ""), Note: href}
}
