package detect

import (
	"fmt"
	"strconv"

	"transitionRadar/business/vendor"
	"transitionRadar/domain"

	"github.com/google/uuid"
)

// Detector runs the full per-award detection pipeline: timing-window
// filtering, vendor resolution, signal scoring, evidence generation and
// result emission, accumulating counters along the way. Single-threaded;
// for parallel runs give each worker its own Detector over a frozen index
// and merge metrics afterwards.
type Detector struct {
	cfg      Config
	scorer   *Scorer
	evidence *EvidenceGenerator
	resolver *vendor.Resolver
	metrics  domain.DetectionMetrics
}

// NewDetector validates cfg eagerly and fails fast on an invalid shape;
// this is the only error path in the detection core.
func NewDetector(cfg Config, resolver *vendor.Resolver) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new detector: %w", err)
	}
	if resolver == nil {
		return nil, fmt.Errorf("new detector: nil vendor resolver")
	}
	return &Detector{
		cfg:      cfg,
		scorer:   NewScorer(cfg),
		evidence: NewEvidenceGenerator(cfg),
		resolver: resolver,
	}, nil
}

// DetectForAward evaluates every candidate contract against one award.
// An award with no completion date is unprocessable: it returns an empty
// slice without touching the awards_processed counter, distinguishing it
// from "processed, zero detections".
func (d *Detector) DetectForAward(
	award domain.Award,
	candidates []domain.FederalContract,
	patentData *domain.PatentData,
	cetData *domain.CETData,
) []domain.Transition {

	if award.CompletionDate == nil {
		return []domain.Transition{}
	}
	d.metrics.AwardsProcessed++

	transitions := []domain.Transition{}
	for _, contract := range d.filterCandidates(award, candidates) {
		d.metrics.ContractsEvaluated++

		match := d.resolver.Resolve(contract.VendorUEI, contract.VendorCAGE, contract.VendorDUNS, contract.VendorName)
		VendorResolutionsTotal.WithLabelValues(string(match.Method)).Inc()

		if !match.Matched() {
			d.metrics.VendorMatchFailures++
			if d.cfg.VendorMatching.RequireMatch {
				continue
			}
		} else {
			d.metrics.VendorMatches++
		}

		signals, score, confidence := d.scorer.ScoreAndClassify(award, contract, patentData, cetData)
		bundle := d.evidence.GenerateBundle(signals, &match, contract)

		transitions = append(transitions, domain.Transition{
			TransitionID:    uuid.NewString(),
			AwardID:         award.AwardID,
			LikelihoodScore: score,
			Confidence:      confidence,
			PrimaryContract: contract,
			Signals:         signals,
			Evidence:        bundle,
			Metadata: map[string]string{
				"vendor_match_method": string(match.Method),
				"vendor_match_score":  strconv.FormatFloat(match.Score, 'f', 2, 64),
			},
		})

		d.metrics.Detections++
		switch confidence {
		case domain.ConfidenceHigh:
			d.metrics.HighConfidence++
		case domain.ConfidenceLikely:
			d.metrics.LikelyConfidence++
		default:
			d.metrics.PossibleConfidence++
		}
		TransitionsDetectedTotal.WithLabelValues(string(confidence), contract.Agency).Inc()
	}

	return transitions
}

// filterCandidates keeps contracts whose start date falls inside the
// configured window after award completion, inclusive on both ends.
// Contracts without a start date are dropped.
func (d *Detector) filterCandidates(award domain.Award, candidates []domain.FederalContract) []domain.FederalContract {
	lo := award.CompletionDate.AddDate(0, 0, d.cfg.MinDaysAfter)
	hi := award.CompletionDate.AddDate(0, 0, d.cfg.MaxDaysAfter)

	surviving := make([]domain.FederalContract, 0, len(candidates))
	for _, c := range candidates {
		if c.StartDate == nil {
			continue
		}
		if c.StartDate.Before(lo) || c.StartDate.After(hi) {
			continue
		}
		surviving = append(surviving, c)
	}
	return surviving
}

// Metrics returns a point-in-time snapshot with derived rates.
func (d *Detector) Metrics() domain.DetectionMetricsSnapshot {
	return d.metrics.Snapshot()
}

// ResetMetrics zeroes every counter.
func (d *Detector) ResetMetrics() {
	d.metrics = domain.DetectionMetrics{}
}

// Resolver exposes the vendor resolver this detector scores with.
func (d *Detector) Resolver() *vendor.Resolver {
	return d.resolver
}
