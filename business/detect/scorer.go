package detect

import "transitionRadar/domain"

// Scorer composes the independent signal scorers into a calibrated
// likelihood and confidence tier. Construct via NewScorer with a validated
// Config; the scorer itself is stateless and safe to share read-only.
type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// ScoreAndClassify computes every applicable signal (disabled signals are
// still computed so they can appear in evidence), the composite score, and
// the confidence tier. Scorer invocation order does not affect the sum.
func (s *Scorer) ScoreAndClassify(
	award domain.Award,
	contract domain.FederalContract,
	patentData *domain.PatentData,
	cetData *domain.CETData,
) (domain.TransitionSignals, float64, domain.Confidence) {

	signals := domain.TransitionSignals{
		Agency:      scoreAgency(s.cfg.Agency, award, contract),
		Timing:      scoreTiming(s.cfg.Timing, award, contract),
		Competition: scoreCompetition(s.cfg.Competition, contract),
		Patent:      scorePatent(s.cfg.Patent, patentData),
		CET:         scoreCET(s.cfg.CET, cetData),
	}

	score := s.ComputeFinalScore(signals)
	return signals, score, s.ClassifyConfidence(score)
}

// ComputeFinalScore is base score plus the sum of sub-scores that are both
// present and enabled, clamped to [0, 1].
func (s *Scorer) ComputeFinalScore(signals domain.TransitionSignals) float64 {
	score := s.cfg.BaseScore

	if signals.Agency != nil && s.cfg.Agency.Enabled {
		score += signals.Agency.Score
	}
	if signals.Timing != nil && s.cfg.Timing.Enabled {
		score += signals.Timing.Score
	}
	if signals.Competition != nil && s.cfg.Competition.Enabled {
		score += signals.Competition.Score
	}
	if signals.Patent != nil && s.cfg.Patent.Enabled {
		score += signals.Patent.Score
	}
	if signals.CET != nil && s.cfg.CET.Enabled {
		score += signals.CET.Score
	}

	return clamp01(score)
}

// ClassifyConfidence is a step function over the two thresholds; both
// boundaries are inclusive.
func (s *Scorer) ClassifyConfidence(score float64) domain.Confidence {
	switch {
	case score >= s.cfg.Confidence.High:
		return domain.ConfidenceHigh
	case score >= s.cfg.Confidence.Likely:
		return domain.ConfidenceLikely
	default:
		return domain.ConfidencePossible
	}
}
