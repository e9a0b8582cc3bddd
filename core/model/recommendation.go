package model

// Recommendation pairs a ranked train with the platform suggested for it.
// Trains that rank within the display window but run out of platforms are
// reported with Assigned false and empty platform identifiers.
type Recommendation struct {
	Rank       int    `json:"rank"`
	Train      Train  `json:"train"`
	PlatformID string `json:"platform_id,omitempty"`
	LineID     string `json:"line_id,omitempty"`
	Assigned   bool   `json:"assigned"`
}
