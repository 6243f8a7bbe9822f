package core

import (
	"encoding/json"
	"fmt"
	"time"
)

// MetricKind is one of the nine fixed SEO signals. The declaration order is
// part of the public contract: reports and recommendation ties follow it.
type MetricKind int

const (
	Title MetricKind = iota
	MetaDescription
	WordCount
	TotalLinks
	AltTags
	H1Tags
	MobileFriendly
	CanonicalTag
	LoadTime

	numKinds = int(LoadTime) + 1
)

var kindKeys = [numKinds]string{
	"title", "meta_description", "word_count", "total_links", "alt_tags",
	"h1_tags", "mobile_friendly", "canonical_tag", "load_time",
}

var kindNames = [numKinds]string{
	"Title", "Meta Description", "Word Count", "Total Links", "Alt Tags",
	"H1 Tags", "Mobile-Friendly", "Canonical Tag", "Load Time",
}

// Kinds returns all metric kinds in declaration order.
func Kinds() []MetricKind {
	kinds := make([]MetricKind, numKinds)
	for i := range kinds {
		kinds[i] = MetricKind(i)
	}
	return kinds
}

// Valid reports whether k is one of the nine declared kinds.
func (k MetricKind) Valid() bool {
	return k >= 0 && int(k) < numKinds
}

// String returns the display name used in reports.
func (k MetricKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("MetricKind(%d)", int(k))
	}
	return kindNames[k]
}

// Key returns the stable snake_case identifier used in JSON output.
func (k MetricKind) Key() string {
	if !k.Valid() {
		return ""
	}
	return kindKeys[k]
}

func (k MetricKind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("marshaling invalid metric kind %d", int(k))
	}
	return json.Marshal(k.Key())
}

// Status is the rubric classification of a metric.
type Status int

const (
	Good Status = iota
	Warning
	Critical
)

func (s Status) String() string {
	switch s {
	case Good:
		return "Good"
	case Warning:
		return "Warning"
	case Critical:
		return "Critical"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	switch s {
	case Good:
		return []byte(`"good"`), nil
	case Warning:
		return []byte(`"warning"`), nil
	case Critical:
		return []byte(`"critical"`), nil
	}
	return nil, fmt.Errorf("marshaling invalid status %d", int(s))
}

// Value is the raw reading of a single metric. The concrete type depends on
// the kind: Text, Count, ImageAlt, Flag or Millis.
type Value interface {
	isValue()
}

// Text is the raw value of Title and MetaDescription.
type Text string

// Count is the raw value of WordCount, TotalLinks and H1Tags.
type Count int

// ImageAlt is the raw value of AltTags.
type ImageAlt struct {
	Missing int `json:"missing"`
	Total   int `json:"total"`
}

// Flag is the raw value of MobileFriendly and CanonicalTag.
type Flag bool

// Millis is the raw value of LoadTime.
type Millis int64

func (Text) isValue()     {}
func (Count) isValue()    {}
func (ImageAlt) isValue() {}
func (Flag) isValue()     {}
func (Millis) isValue()   {}

// MillisOf converts a duration to whole milliseconds, clamping negatives to 0.
func MillisOf(d time.Duration) Millis {
	if d < 0 {
		return 0
	}
	return Millis(d.Milliseconds())
}

// Measurement is an unclassified metric reading produced by extraction.
// Note carries extraction context for the detail line (e.g. the canonical
// href or the internal/external link split); it never affects the status.
type Measurement struct {
	Kind  MetricKind
	Value Value
	Note  string
}

// MetricRecord is a classified metric.
type MetricRecord struct {
	Kind   MetricKind `json:"kind"`
	Value  Value      `json:"value"`
	Status Status     `json:"status"`
	Detail string     `json:"detail"`
}

// Priority orders recommendations. It is derived from the status of the
// metric a recommendation refers to.
type Priority int

const (
	PriorityTip Priority = iota
	PriorityMedium
	PriorityHigh
)

// PriorityFor maps a metric status to a recommendation priority.
func PriorityFor(s Status) Priority {
	switch s {
	case Critical:
		return PriorityHigh
	case Warning:
		return PriorityMedium
	default:
		return PriorityTip
	}
}

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "tip"
	}
}

func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Recommendation is one piece of actionable guidance for a metric.
type Recommendation struct {
	Kind     MetricKind `json:"kind"`
	Priority Priority   `json:"priority"`
	Text     string     `json:"text"`
}

// Report is the payload handed to renderers. Metrics are in kind order,
// recommendations in priority order.
type Report struct {
	URL             string           `json:"url"`
	GeneratedAt     time.Time        `json:"generated_at"`
	Metrics         []MetricRecord   `json:"metrics"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Tally counts metrics per status.
type Tally struct {
	Good     int `json:"good"`
	Warning  int `json:"warning"`
	Critical int `json:"critical"`
}

// Tally returns the status counts of the report's metrics.
func (r *Report) Tally() Tally {
	var t Tally
	for _, m := range r.Metrics {
		switch m.Status {
		case Good:
			t.Good++
		case Warning:
			t.Warning++
		case Critical:
			t.Critical++
		}
	}
	return t
}

// Metric returns the record for kind.
func (r *Report) Metric(kind MetricKind) (MetricRecord, bool) {
	for _, m := range r.Metrics {
		if m.Kind == kind {
			return m, true
		}
	}
	return MetricRecord{}, false
}
