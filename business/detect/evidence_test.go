package detect

import (
	"strings"
	"testing"
	"time"

	"transitionRadar/domain"
)

func sampleBundle(t *testing.T) domain.EvidenceBundle {
	t.Helper()
	cfg := DefaultConfig()
	s := NewScorer(cfg)
	g := NewEvidenceGenerator(cfg)

	award := domain.Award{AwardID: "A1", Agency: "NAVY", CompletionDate: date(2023, time.January, 1)}
	contract := domain.FederalContract{
		ContractID:      "C1",
		Agency:          "NAVY",
		StartDate:       date(2023, time.February, 15),
		CompetitionType: domain.CompetitionSoleSource,
	}

	signals, _, _ := s.ScoreAndClassify(award, contract, nil, nil)
	match := domain.VendorMatch{
		Record: &domain.VendorRecord{UEI: "ABC123", Name: "Acme Robotics"},
		Method: domain.MatchUEI,
		Score:  1.0,
	}
	return g.GenerateBundle(signals, &match, contract)
}

func TestGenerateBundleContents(t *testing.T) {
	bundle := sampleBundle(t)

	// agency + timing + competition signals (no patent/cet data),
	// vendor-match item, contract-details item
	if len(bundle.Items) != 5 {
		t.Fatalf("bundle has %d items, want 5", len(bundle.Items))
	}

	wantSignals := []string{"agency", "timing", "competition", "vendor_match", "contract_details"}
	for i, want := range wantSignals {
		if bundle.Items[i].Signal != want {
			t.Errorf("item %d signal = %s, want %s", i, bundle.Items[i].Signal, want)
		}
	}

	if !strings.HasPrefix(bundle.Summary, "5 evidence items (avg score:") {
		t.Errorf("unexpected summary: %q", bundle.Summary)
	}
	if bundle.BundleID == "" {
		t.Error("bundle should carry an id")
	}
}

func TestTimingSnippetTiers(t *testing.T) {
	g := NewEvidenceGenerator(DefaultConfig())

	high := g.timingSnippet(&domain.TimingSignal{DaysBetween: 45})
	if !strings.Contains(high, "high proximity") {
		t.Errorf("45 days: %q", high)
	}
	moderate := g.timingSnippet(&domain.TimingSignal{DaysBetween: 200})
	if !strings.Contains(moderate, "moderate proximity") {
		t.Errorf("200 days: %q", moderate)
	}
	beyond := g.timingSnippet(&domain.TimingSignal{DaysBetween: 900})
	if strings.Contains(beyond, "proximity") {
		t.Errorf("900 days: %q", beyond)
	}
	anomaly := g.timingSnippet(&domain.TimingSignal{DaysBetween: -30, Anomaly: true})
	if !strings.Contains(anomaly, "anomaly") {
		t.Errorf("negative days: %q", anomaly)
	}
}

func TestTimingEvidenceWithMissingDates(t *testing.T) {
	cfg := DefaultConfig()
	s := NewScorer(cfg)
	g := NewEvidenceGenerator(cfg)

	// neither completion nor start date: the timing item must say the
	// comparison is incomplete rather than describe a zero-day gap
	signals, _, _ := s.ScoreAndClassify(domain.Award{AwardID: "A1", Agency: "NAVY"}, domain.FederalContract{ContractID: "C1", Agency: "NAVY"}, nil, nil)
	bundle := g.GenerateBundle(signals, nil, domain.FederalContract{ContractID: "C1", Agency: "NAVY"})

	var timing *domain.EvidenceItem
	for i := range bundle.Items {
		if bundle.Items[i].Signal == "timing" {
			timing = &bundle.Items[i]
		}
	}
	if timing == nil {
		t.Fatal("bundle should carry a timing item")
	}
	if !strings.Contains(timing.Snippet, "incomplete") {
		t.Errorf("snippet = %q, want an incomplete-data note", timing.Snippet)
	}
	if strings.Contains(timing.Snippet, "proximity") {
		t.Errorf("snippet = %q, must not describe proximity without dates", timing.Snippet)
	}
	if timing.Score == nil || *timing.Score != 0.0 {
		t.Errorf("timing score = %v, want 0.0", timing.Score)
	}
}

func TestValidateBundle(t *testing.T) {
	g := NewEvidenceGenerator(DefaultConfig())

	if g.ValidateBundle(domain.EvidenceBundle{}) {
		t.Error("empty bundle should fail validation")
	}

	bundle := sampleBundle(t)
	if !g.ValidateBundle(bundle) {
		t.Error("generated bundle should validate")
	}

	missingSource := bundle
	missingSource.Items = append([]domain.EvidenceItem{}, bundle.Items...)
	missingSource.Items[0].Source = ""
	if g.ValidateBundle(missingSource) {
		t.Error("item with empty source should fail validation")
	}

	bad := 1.5
	badScore := bundle
	badScore.Items = append([]domain.EvidenceItem{}, bundle.Items...)
	badScore.Items[0].Score = &bad
	if g.ValidateBundle(badScore) {
		t.Error("score outside [0,1] should fail validation")
	}
}

func TestBundleRoundTrip(t *testing.T) {
	bundle := sampleBundle(t)

	data, err := SerializeBundle(bundle)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	got, err := DeserializeBundle(data)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}

	if len(got.Items) != len(bundle.Items) {
		t.Fatalf("round trip item count %d, want %d", len(got.Items), len(bundle.Items))
	}
	for i := range bundle.Items {
		if got.Items[i].Signal != bundle.Items[i].Signal {
			t.Errorf("item %d signal %s, want %s", i, got.Items[i].Signal, bundle.Items[i].Signal)
		}
		origScore, gotScore := bundle.Items[i].Score, got.Items[i].Score
		if (origScore == nil) != (gotScore == nil) {
			t.Errorf("item %d score presence changed", i)
			continue
		}
		if origScore != nil && *origScore != *gotScore {
			t.Errorf("item %d score %v, want %v", i, *gotScore, *origScore)
		}
		for k, v := range bundle.Items[i].Metadata {
			if got.Items[i].Metadata[k] != v {
				t.Errorf("item %d metadata[%s] = %q, want %q", i, k, got.Items[i].Metadata[k], v)
			}
		}
	}
	if got.Summary != bundle.Summary {
		t.Errorf("summary %q, want %q", got.Summary, bundle.Summary)
	}
}
