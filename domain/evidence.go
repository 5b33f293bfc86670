package domain

import "time"

// EvidenceItem is one auditable justification entry backing a detection.
// Score is nil for purely descriptive items (e.g. contract details).
type EvidenceItem struct {
	Source   string            `json:"source"`
	Signal   string            `json:"signal"`
	Snippet  string            `json:"snippet"`
	Score    *float64          `json:"score,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// EvidenceBundle is the append-only ordered evidence trail for one
// detection, plus a generated summary line.
type EvidenceBundle struct {
	BundleID  string         `json:"bundle_id"`
	Items     []EvidenceItem `json:"items"`
	Summary   string         `json:"summary"`
	CreatedAt time.Time      `json:"created_at"`
}
