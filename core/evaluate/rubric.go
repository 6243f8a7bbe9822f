// Package evaluate classifies raw metric readings against the SEO rubric.
// The rubric is a lookup table: each metric kind maps a reading to an
// integer measure, and the measure falls into exactly one of a list of
// contiguous bands. The same bands carry the recommendation and criteria text
// so scoring and guidance can never drift apart.
package evaluate

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gaurav-prasanna/seoaudit/core"
)

// Unbounded is the upper bound of the last band of every rule.
const Unbounded = math.MaxInt64

// Band is a closed measure range ending at UpTo. A band starts one above the
// previous band's UpTo, or at 0 for the first band.
//
// Advice and criteria templates may use {value}, {min}, {max} and {limit}:
// the measure, the bounds of the rule's Good band, and the first measure
// above the Good band.
type Band struct {
	UpTo   int64
	Status core.Status
	Advice string
}

// Rule classifies one metric kind.
type Rule struct {
	Measure  func(core.Value) int64
	Bands    []Band
	Criteria string
}

// Rubric maps every metric kind to its rule.
type Rubric map[core.MetricKind]Rule

// Default returns the standard rubric.
func Default() Rubric {
	return Rubric{
		core.Title: {
			Measure: textLength,
			Bands: []Band{
				{UpTo: 0, Status: core.Critical, Advice: "Add a title tag to the page. Aim for {min}-{max} characters."},
				{UpTo: 29, Status: core.Warning, Advice: "Title is too short ({value} characters). Aim for {min}-{max} characters."},
				{UpTo: 60, Status: core.Good},
				{UpTo: Unbounded, Status: core.Warning, Advice: "Title is too long ({value} characters). Shorten it to {min}-{max} characters."},
			},
			Criteria: "Good: {min}-{max} characters. Critical: missing.",
		},
		core.MetaDescription: {
			Measure: textLength,
			Bands: []Band{
				{UpTo: 0, Status: core.Critical, Advice: "Add a meta description of {min}-{max} characters."},
				{UpTo: 49, Status: core.Warning, Advice: "Meta description is too short ({value} characters). Lengthen it to {min}-{max} characters."},
				{UpTo: 160, Status: core.Good},
				{UpTo: Unbounded, Status: core.Warning, Advice: "Meta description is too long ({value} characters). Shorten it to {min}-{max} characters."},
			},
			Criteria: "Good: {min}-{max} characters. Critical: missing.",
		},
		core.WordCount: {
			Measure: count,
			Bands: []Band{
				{UpTo: 149, Status: core.Critical, Advice: "Content is very thin ({value} words). Expand the page to at least {min} words."},
				{UpTo: 299, Status: core.Warning, Advice: "Content is short ({value} words). Aim for at least {min} words."},
				{UpTo: Unbounded, Status: core.Good},
			},
			Criteria: "Good: {min}+ words. Critical: under 150 words.",
		},
		core.TotalLinks: {
			Measure: count,
			Bands: []Band{
				{UpTo: 0, Status: core.Warning, Advice: "The page has no links. Link to related internal pages and authoritative external sources."},
				{UpTo: Unbounded, Status: core.Good},
			},
			Criteria: "Good: at least {min} link. Warning: no links.",
		},
		core.AltTags: {
			Measure: missingAlt,
			Bands: []Band{
				{UpTo: 0, Status: core.Good},
				{UpTo: Unbounded, Status: core.Critical, Advice: "Add descriptive alt text to the {value} image(s) that lack it."},
			},
			Criteria: "Good: every image has alt text. Critical: any image without it.",
		},
		core.H1Tags: {
			Measure: count,
			Bands: []Band{
				{UpTo: 0, Status: core.Critical, Advice: "Add one H1 heading that states the main topic of the page."},
				{UpTo: 1, Status: core.Good},
				{UpTo: Unbounded, Status: core.Warning, Advice: "Use exactly one H1 heading (found {value})."},
			},
			Criteria: "Good: exactly one H1. Critical: none. Warning: several.",
		},
		core.MobileFriendly: {
			Measure: flag,
			Bands: []Band{
				{UpTo: 0, Status: core.Critical, Advice: `Add a viewport meta tag for mobile devices, e.g. <meta name="viewport" content="width=device-width, initial-scale=1">.`},
				{UpTo: Unbounded, Status: core.Good},
			},
			Criteria: "Good: viewport meta tag with width=device-width. Critical: missing.",
		},
		core.CanonicalTag: {
			Measure: flag,
			Bands: []Band{
				{UpTo: 0, Status: core.Warning, Advice: "Add a canonical link element to avoid duplicate content issues."},
				{UpTo: Unbounded, Status: core.Good},
			},
			Criteria: "Good: canonical URL declared. Warning: missing.",
		},
		core.LoadTime: {
			Measure: millis,
			Bands: []Band{
				{UpTo: 1499, Status: core.Good},
				{UpTo: 3000, Status: core.Warning, Advice: "Page load time is above optimal ({value} ms). Optimize server response time and page resources to get under {limit} ms."},
				{UpTo: Unbounded, Status: core.Critical, Advice: "Page load time is very slow ({value} ms). Use caching or a CDN and reduce server response time and page weight; aim for under {limit} ms."},
			},
			Criteria: "Good: under {limit} ms. Critical: over 3,000 ms.",
		},
	}
}

// Validate checks that every kind has a rule whose bands are ascending, end
// unbounded and contain exactly one Good band.
func (r Rubric) Validate() error {
	for _, kind := range core.Kinds() {
		rule, ok := r[kind]
		if !ok {
			return core.ConfigurationError(fmt.Sprintf("rubric has no rule for %s", kind))
		}
		if rule.Measure == nil || len(rule.Bands) == 0 {
			return core.ConfigurationError(fmt.Sprintf("rubric rule for %s is empty", kind))
		}
		goods := 0
		prev := int64(-1)
		for _, b := range rule.Bands {
			if b.UpTo <= prev {
				return core.ConfigurationError(fmt.Sprintf("rubric bands for %s are not ascending", kind))
			}
			prev = b.UpTo
			if b.Status == core.Good {
				goods++
			}
		}
		if prev != Unbounded {
			return core.ConfigurationError(fmt.Sprintf("rubric bands for %s are bounded", kind))
		}
		if goods != 1 {
			return core.ConfigurationError(fmt.Sprintf("rubric for %s needs exactly one good band, has %d", kind, goods))
		}
	}
	return nil
}

// Classify returns the status of a reading. It is total over validated
// rubrics: every value of every kind lands in exactly one band.
func (r Rubric) Classify(kind core.MetricKind, v core.Value) core.Status {
	b, _ := r.lookup(kind, v)
	return b.Status
}

// Advice returns the guidance for a classified metric, or "" when its status
// is Good.
func (r Rubric) Advice(rec core.MetricRecord) string {
	b, measure := r.lookup(rec.Kind, rec.Value)
	if b.Status == core.Good || b.Advice == "" {
		return ""
	}
	return r.expand(rec.Kind, b.Advice, measure)
}

// Criteria returns the best-practice line for kind.
func (r Rubric) Criteria(kind core.MetricKind) string {
	return r.expand(kind, r[kind].Criteria, 0)
}

func (r Rubric) lookup(kind core.MetricKind, v core.Value) (Band, int64) {
	rule := r[kind]
	if rule.Measure == nil || len(rule.Bands) == 0 {
		return Band{Status: core.Critical}, 0
	}
	measure := max(rule.Measure(v), 0)
	for _, b := range rule.Bands {
		if measure <= b.UpTo {
			return b, measure
		}
	}
	return rule.Bands[len(rule.Bands)-1], measure
}

// goodRange returns the inclusive bounds of the Good band of kind.
func (r Rubric) goodRange(kind core.MetricKind) (lo, hi int64) {
	next := int64(0)
	for _, b := range r[kind].Bands {
		if b.Status == core.Good {
			return next, b.UpTo
		}
		next = b.UpTo + 1
	}
	return 0, 0
}

func (r Rubric) expand(kind core.MetricKind, tmpl string, measure int64) string {
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}
	p := message.NewPrinter(language.English)
	lo, hi := r.goodRange(kind)
	limit := "∞"
	if hi != Unbounded {
		limit = p.Sprintf("%d", hi+1)
	}
	return strings.NewReplacer(
		"{value}", p.Sprintf("%d", measure),
		"{min}", p.Sprintf("%d", lo),
		"{max}", p.Sprintf("%d", hi),
		"{limit}", limit,
	).Replace(tmpl)
}

// Measures. A value of an unexpected type measures as the kind's absence
// fallback, i.e. 0.

func textLength(v core.Value) int64 {
	if t, ok := v.(core.Text); ok {
		return int64(utf8.RuneCountInString(string(t)))
	}
	return 0
}

func count(v core.Value) int64 {
	if c, ok := v.(core.Count); ok {
		return int64(c)
	}
	return 0
}

func missingAlt(v core.Value) int64 {
	if a, ok := v.(core.ImageAlt); ok {
		return int64(a.Missing)
	}
	return 0
}

func flag(v core.Value) int64 {
	if f, ok := v.(core.Flag); ok && bool(f) {
		return 1
	}
	return 0
}

func millis(v core.Value) int64 {
	if m, ok := v.(core.Millis); ok {
		return int64(m)
	}
	return 0
}
