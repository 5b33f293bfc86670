package detect

import (
	"math"
	"testing"
	"time"

	"transitionRadar/domain"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreTimingWindow(t *testing.T) {
	cfg := TimingSignalConfig{
		Enabled: true,
		Weight:  0.20,
		Windows: []TimingWindow{
			{MinDay: 0, MaxDay: 90, TierScore: 1.0},
			{MinDay: 91, MaxDay: 365, TierScore: 0.7},
		},
		BeyondWindowPenalty: 0.1,
	}

	award := domain.Award{CompletionDate: date(2023, time.January, 1)}
	contract := domain.FederalContract{StartDate: date(2023, time.February, 15)}

	sig := scoreTiming(cfg, award, contract)
	if sig.DaysBetween != 45 {
		t.Fatalf("days between = %d, want 45", sig.DaysBetween)
	}
	if !sig.InWindow {
		t.Error("45 days should land in the first window")
	}
	if !almostEqual(sig.Score, 0.20) {
		t.Errorf("timing score = %v, want 0.20", sig.Score)
	}
}

func TestScoreTimingNegativeGapIsAnomaly(t *testing.T) {
	cfg := DefaultConfig().Timing
	award := domain.Award{CompletionDate: date(2023, time.June, 1)}
	contract := domain.FederalContract{StartDate: date(2023, time.January, 1)}

	sig := scoreTiming(cfg, award, contract)
	if !sig.Anomaly {
		t.Error("contract starting before completion should be flagged as anomaly")
	}
	if sig.Score != 0.0 {
		t.Errorf("anomaly score = %v, want 0.0", sig.Score)
	}
}

func TestScoreTimingBeyondWindowsFlatPenalty(t *testing.T) {
	cfg := TimingSignalConfig{
		Enabled:             true,
		Weight:              0.20,
		Windows:             []TimingWindow{{MinDay: 0, MaxDay: 90, TierScore: 1.0}},
		BeyondWindowPenalty: 0.1,
	}
	award := domain.Award{CompletionDate: date(2020, time.January, 1)}

	// penalty is flat regardless of how far past the window the gap is
	near := scoreTiming(cfg, award, domain.FederalContract{StartDate: date(2020, time.June, 1)})
	far := scoreTiming(cfg, award, domain.FederalContract{StartDate: date(2024, time.June, 1)})
	if !almostEqual(near.Score, 0.1*0.20) || near.Score != far.Score {
		t.Errorf("beyond-window scores: near %v, far %v, want both %v", near.Score, far.Score, 0.1*0.20)
	}
}

func TestScoreTimingMissingDates(t *testing.T) {
	cfg := DefaultConfig().Timing
	sig := scoreTiming(cfg, domain.Award{}, domain.FederalContract{})
	if sig.Score != 0.0 {
		t.Errorf("missing dates score = %v, want 0.0", sig.Score)
	}
	if !sig.MissingDates {
		t.Error("missing dates should be flagged on the signal")
	}
	if sig.InWindow || sig.Anomaly {
		t.Errorf("missing dates should not set window or anomaly flags: %+v", sig)
	}
}

func TestScoreAgencyTiers(t *testing.T) {
	cfg := AgencySignalConfig{
		Enabled:             true,
		Weight:              0.15,
		SameAgencyBonus:     1.0,
		SameDepartmentBonus: 0.6,
		CrossAgencyBonus:    0.3,
	}

	cases := []struct {
		name      string
		award     string
		agency    string
		subAgency string
		level     domain.AgencyMatchLevel
		score     float64
	}{
		{"same agency", "NAVY", "navy ", "", domain.AgencySameAgency, 0.15},
		{"sub-agency lineage", "NAVY", "DOD", "NAVY", domain.AgencySameDepartment, 0.09},
		{"prefix overlap", "DEPT OF DEFENSE", "DEPT OF DEFENSE NAVY", "", domain.AgencySameDepartment, 0.09},
		{"cross department", "NASA", "DOE", "", domain.AgencyDifferent, 0.045},
		{"missing", "", "DOE", "", domain.AgencyUnknown, 0.0},
	}

	for _, tc := range cases {
		sig := scoreAgency(cfg, domain.Award{Agency: tc.award}, domain.FederalContract{Agency: tc.agency, SubAgency: tc.subAgency})
		if sig.MatchLevel != tc.level {
			t.Errorf("%s: level = %s, want %s", tc.name, sig.MatchLevel, tc.level)
		}
		if !almostEqual(sig.Score, tc.score) {
			t.Errorf("%s: score = %v, want %v", tc.name, sig.Score, tc.score)
		}
	}
}

func TestScoreCompetitionOrdering(t *testing.T) {
	cfg := DefaultConfig().Competition

	sole := scoreCompetition(cfg, domain.FederalContract{CompetitionType: domain.CompetitionSoleSource})
	limited := scoreCompetition(cfg, domain.FederalContract{CompetitionType: domain.CompetitionLimited})
	open := scoreCompetition(cfg, domain.FederalContract{CompetitionType: domain.CompetitionFullAndOpen})
	other := scoreCompetition(cfg, domain.FederalContract{CompetitionType: domain.CompetitionOther})

	if !(sole.Score > limited.Score && limited.Score > open.Score && open.Score > other.Score) {
		t.Errorf("competition bonuses out of order: %v %v %v %v",
			sole.Score, limited.Score, open.Score, other.Score)
	}

	unknown := scoreCompetition(cfg, domain.FederalContract{CompetitionType: "BOGUS"})
	if unknown.Score != 0.0 {
		t.Errorf("unknown competition type score = %v, want 0.0", unknown.Score)
	}
}

func TestScorePatentAdditive(t *testing.T) {
	cfg := PatentSignalConfig{
		Enabled:                  true,
		Weight:                   0.15,
		HasPatentBonus:           0.4,
		PreContractBonus:         0.3,
		TopicSimilarityBonus:     0.3,
		TopicSimilarityThreshold: 0.7,
	}

	if sig := scorePatent(cfg, nil); sig != nil {
		t.Fatal("nil patent data should produce no signal")
	}

	all := scorePatent(cfg, &domain.PatentData{PatentCount: 3, PatentsPreContract: 1, PatentTopicSimilarity: 0.8})
	if !almostEqual(all.Score, (0.4+0.3+0.3)*0.15) {
		t.Errorf("all bonuses score = %v, want %v", all.Score, (0.4+0.3+0.3)*0.15)
	}

	countOnly := scorePatent(cfg, &domain.PatentData{PatentCount: 2})
	if !almostEqual(countOnly.Score, 0.4*0.15) {
		t.Errorf("count-only score = %v, want %v", countOnly.Score, 0.4*0.15)
	}

	none := scorePatent(cfg, &domain.PatentData{})
	if none.Score != 0.0 {
		t.Errorf("no-patent score = %v, want 0.0", none.Score)
	}
}

func TestScorePatentCapped(t *testing.T) {
	cfg := PatentSignalConfig{
		Enabled:                  true,
		Weight:                   1.0,
		HasPatentBonus:           0.8,
		PreContractBonus:         0.8,
		TopicSimilarityBonus:     0.8,
		TopicSimilarityThreshold: 0.5,
	}
	sig := scorePatent(cfg, &domain.PatentData{PatentCount: 1, PatentsPreContract: 1, PatentTopicSimilarity: 0.9})
	if sig.Score != 1.0 {
		t.Errorf("patent score should cap at 1.0, got %v", sig.Score)
	}
}

func TestScoreCET(t *testing.T) {
	cfg := CETSignalConfig{Enabled: true, Weight: 0.10, MatchBonus: 1.0}

	if sig := scoreCET(cfg, nil); sig != nil {
		t.Fatal("nil cet data should produce no signal")
	}

	match := scoreCET(cfg, &domain.CETData{AwardCET: "Quantum Computing", ContractCET: " quantum computing "})
	if !match.Match || !almostEqual(match.Score, 0.10) {
		t.Errorf("matching cet: match=%v score=%v", match.Match, match.Score)
	}

	miss := scoreCET(cfg, &domain.CETData{AwardCET: "AI", ContractCET: "Hypersonics"})
	if miss.Match || miss.Score != 0.0 {
		t.Errorf("differing cet: match=%v score=%v", miss.Match, miss.Score)
	}

	empty := scoreCET(cfg, &domain.CETData{})
	if empty.Match || empty.Score != 0.0 {
		t.Errorf("empty cet codes should not match: %+v", empty)
	}
}
