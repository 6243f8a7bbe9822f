package core

// MetricInfo is the reader-facing description of a metric kind.
type MetricInfo struct {
	Definition string `json:"definition"`
	Importance string `json:"importance"`
}

var catalog = [numKinds]MetricInfo{
	Title: {
		Definition: "The title tag is the clickable headline shown in search results.",
		Importance: "A concise, descriptive title improves click-through rate and visibility.",
	},
	MetaDescription: {
		Definition: "The meta description is the short page summary shown under the title in search results.",
		Importance: "It helps users decide whether to click and gives search engines a summary of the page.",
	},
	WordCount: {
		Definition: "The amount of visible text on the page.",
		Importance: "Search engines favour pages whose content covers a topic in enough depth.",
	},
	TotalLinks: {
		Definition: "The number of internal and external hyperlinks on the page.",
		Importance: "Links distribute page authority and guide users and crawlers through the site.",
	},
	AltTags: {
		Definition: "Alt attributes are text alternatives for images.",
		Importance: "They are essential for accessibility and let search engines index images.",
	},
	H1Tags: {
		Definition: "The H1 heading states the main topic of the page.",
		Importance: "A single H1 gives users and search engines a clear content hierarchy.",
	},
	MobileFriendly: {
		Definition: "Whether the page declares a viewport that matches the device width.",
		Importance: "Most traffic is mobile and search engines index the mobile rendering first.",
	},
	CanonicalTag: {
		Definition: "A link element that names the preferred URL for the page.",
		Importance: "It prevents duplicate-content issues and consolidates ranking signals.",
	},
	LoadTime: {
		Definition: "The time it took to download the page.",
		Importance: "Fast responses improve user experience and are a ranking signal.",
	},
}

// Info returns the description of kind. Unknown kinds return a zero value.
func Info(kind MetricKind) MetricInfo {
	if !kind.Valid() {
		return MetricInfo{}
	}
	return catalog[kind]
}
