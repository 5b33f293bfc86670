package domain

// Confidence buckets a composite likelihood score via two thresholds.
type Confidence string

const (
	ConfidenceHigh     Confidence = "HIGH"
	ConfidenceLikely   Confidence = "LIKELY"
	ConfidencePossible Confidence = "POSSIBLE"
)

// Transition is a scored, evidenced hypothesis that PrimaryContract
// resulted from the earlier award AwardID. Created once per evaluation and
// never mutated afterward.
type Transition struct {
	TransitionID    string            `json:"transition_id"`
	AwardID         string            `json:"award_id"`
	LikelihoodScore float64           `json:"likelihood_score"`
	Confidence      Confidence        `json:"confidence"`
	PrimaryContract FederalContract   `json:"primary_contract"`
	Signals         TransitionSignals `json:"signals"`
	Evidence        EvidenceBundle    `json:"evidence"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// DetectionMetrics are the process-wide counters owned by one detector
// instance. Mutated only by that detector; resettable.
type DetectionMetrics struct {
	AwardsProcessed     int64 `json:"awards_processed"`
	ContractsEvaluated  int64 `json:"contracts_evaluated"`
	Detections          int64 `json:"detections"`
	HighConfidence      int64 `json:"high_confidence"`
	LikelyConfidence    int64 `json:"likely_confidence"`
	PossibleConfidence  int64 `json:"possible_confidence"`
	VendorMatches       int64 `json:"vendor_matches"`
	VendorMatchFailures int64 `json:"vendor_match_failures"`
}

// DetectionMetricsSnapshot is a point-in-time copy of the counters with
// derived rates. Rates default to 0 when their denominator is 0.
type DetectionMetricsSnapshot struct {
	DetectionMetrics

	DetectionRate      float64 `json:"detection_rate"`
	VendorMatchRate    float64 `json:"vendor_match_rate"`
	HighConfidenceRate float64 `json:"high_confidence_rate"`
}

// Snapshot derives the rate fields from the current counter values.
func (m DetectionMetrics) Snapshot() DetectionMetricsSnapshot {
	snap := DetectionMetricsSnapshot{DetectionMetrics: m}
	if m.AwardsProcessed > 0 {
		snap.DetectionRate = float64(m.Detections) / float64(m.AwardsProcessed)
	}
	if attempts := m.VendorMatches + m.VendorMatchFailures; attempts > 0 {
		snap.VendorMatchRate = float64(m.VendorMatches) / float64(attempts)
	}
	if m.Detections > 0 {
		snap.HighConfidenceRate = float64(m.HighConfidence) / float64(m.Detections)
	}
	return snap
}
