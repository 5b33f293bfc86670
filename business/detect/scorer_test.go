package detect

import (
	"testing"
	"time"

	"transitionRadar/domain"
)

func TestComputeFinalScoreClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseScore = 0.9
	s := NewScorer(cfg)

	signals := domain.TransitionSignals{
		Agency:      &domain.AgencySignal{Score: 0.15},
		Timing:      &domain.TimingSignal{Score: 0.20},
		Competition: &domain.CompetitionSignal{Score: 0.15},
		Patent:      &domain.PatentSignal{Score: 0.15},
		CET:         &domain.CETSignal{Score: 0.10},
	}

	if got := s.ComputeFinalScore(signals); got != 1.0 {
		t.Errorf("score should clamp to 1.0, got %v", got)
	}
}

func TestComputeFinalScoreMonotonic(t *testing.T) {
	s := NewScorer(DefaultConfig())

	low := domain.TransitionSignals{Timing: &domain.TimingSignal{Score: 0.05}}
	high := domain.TransitionSignals{Timing: &domain.TimingSignal{Score: 0.20}}

	if s.ComputeFinalScore(high) < s.ComputeFinalScore(low) {
		t.Error("raising a sub-score must not lower the composite")
	}
}

func TestDisabledSignalExcludedButExposed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Patent.Enabled = false
	s := NewScorer(cfg)

	award := domain.Award{
		AwardID:        "A1",
		Agency:         "NAVY",
		CompletionDate: date(2023, time.January, 1),
	}
	contract := domain.FederalContract{
		ContractID:      "C1",
		Agency:          "NAVY",
		StartDate:       date(2023, time.February, 15),
		CompetitionType: domain.CompetitionSoleSource,
	}
	patent := &domain.PatentData{PatentCount: 5, PatentsPreContract: 2, PatentTopicSimilarity: 0.9}

	signals, score, _ := s.ScoreAndClassify(award, contract, patent, nil)

	if signals.Patent == nil {
		t.Fatal("disabled patent signal should still be computed for evidence")
	}
	if signals.Patent.Score == 0.0 {
		t.Fatal("precondition: patent sub-score should be non-zero")
	}

	// the disabled signal must contribute exactly nothing
	withoutPatent := signals
	withoutPatent.Patent = nil
	if got := s.ComputeFinalScore(withoutPatent); !almostEqual(got, score) {
		t.Errorf("disabled signal leaked into the composite: %v vs %v", got, score)
	}
}

func TestClassifyConfidenceBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Confidence.High = 0.75
	cfg.Confidence.Likely = 0.55
	s := NewScorer(cfg)

	cases := []struct {
		score float64
		want  domain.Confidence
	}{
		{0.75, domain.ConfidenceHigh}, // boundary inclusive
		{0.90, domain.ConfidenceHigh},
		{0.74, domain.ConfidenceLikely},
		{0.55, domain.ConfidenceLikely},
		{0.54, domain.ConfidencePossible},
		{0.0, domain.ConfidencePossible},
	}
	for _, tc := range cases {
		if got := s.ClassifyConfidence(tc.score); got != tc.want {
			t.Errorf("classify(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestScoreAndClassifyDeterministic(t *testing.T) {
	s := NewScorer(DefaultConfig())

	award := domain.Award{AwardID: "A1", Agency: "NAVY", CompletionDate: date(2023, time.January, 1)}
	contract := domain.FederalContract{
		ContractID:      "C1",
		Agency:          "NAVY",
		StartDate:       date(2023, time.March, 1),
		CompetitionType: domain.CompetitionLimited,
	}

	_, first, firstConf := s.ScoreAndClassify(award, contract, nil, nil)
	for i := 0; i < 5; i++ {
		_, score, conf := s.ScoreAndClassify(award, contract, nil, nil)
		if score != first || conf != firstConf {
			t.Fatalf("iteration %d: score %v/%s, want %v/%s", i, score, conf, first, firstConf)
		}
	}
}
