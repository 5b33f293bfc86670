package detect

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"transitionRadar/domain"

	"github.com/google/uuid"
)

// Evidence item source tags.
const (
	sourceComparison = "award_contract_comparison"
	sourceResolution = "vendor_resolution"
	sourceContract   = "contract_record"
)

// EvidenceGenerator renders a human-readable evidence trail for each
// computed signal of a detection. Stateless; safe to share.
type EvidenceGenerator struct {
	cfg Config
}

func NewEvidenceGenerator(cfg Config) *EvidenceGenerator {
	return &EvidenceGenerator{cfg: cfg}
}

// GenerateBundle builds the ordered evidence trail: one item per computed
// signal, a vendor-match item when a match was supplied, and a
// contract-details item, then the summary line.
func (g *EvidenceGenerator) GenerateBundle(
	signals domain.TransitionSignals,
	match *domain.VendorMatch,
	contract domain.FederalContract,
) domain.EvidenceBundle {

	bundle := domain.EvidenceBundle{
		BundleID:  uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	if sig := signals.Agency; sig != nil {
		bundle.Items = append(bundle.Items, domain.EvidenceItem{
			Source:  sourceComparison,
			Signal:  "agency",
			Snippet: agencySnippet(sig),
			Score:   scoreRef(sig.Score),
			Metadata: map[string]string{
				"award_agency":    sig.AwardAgency,
				"contract_agency": sig.ContractAgency,
				"match_level":     string(sig.MatchLevel),
			},
		})
	}

	if sig := signals.Timing; sig != nil {
		bundle.Items = append(bundle.Items, domain.EvidenceItem{
			Source:  sourceComparison,
			Signal:  "timing",
			Snippet: g.timingSnippet(sig),
			Score:   scoreRef(sig.Score),
			Metadata: map[string]string{
				"days_between": strconv.Itoa(sig.DaysBetween),
				"in_window":    strconv.FormatBool(sig.InWindow),
			},
		})
	}

	if sig := signals.Competition; sig != nil {
		bundle.Items = append(bundle.Items, domain.EvidenceItem{
			Source:  sourceComparison,
			Signal:  "competition",
			Snippet: competitionSnippet(sig),
			Score:   scoreRef(sig.Score),
			Metadata: map[string]string{
				"competition_type": string(sig.Type),
			},
		})
	}

	if sig := signals.Patent; sig != nil {
		bundle.Items = append(bundle.Items, domain.EvidenceItem{
			Source:  sourceComparison,
			Signal:  "patent",
			Snippet: patentSnippet(sig),
			Score:   scoreRef(sig.Score),
			Metadata: map[string]string{
				"patent_count":         strconv.Itoa(sig.PatentCount),
				"patents_pre_contract": strconv.Itoa(sig.PatentsPreContract),
				"topic_similarity":     strconv.FormatFloat(sig.TopicSimilarity, 'f', 2, 64),
			},
		})
	}

	if sig := signals.CET; sig != nil {
		bundle.Items = append(bundle.Items, domain.EvidenceItem{
			Source:  sourceComparison,
			Signal:  "cet",
			Snippet: cetSnippet(sig),
			Score:   scoreRef(sig.Score),
			Metadata: map[string]string{
				"award_cet":    sig.AwardCET,
				"contract_cet": sig.ContractCET,
			},
		})
	}

	if match != nil {
		item := domain.EvidenceItem{
			Source:  sourceResolution,
			Signal:  "vendor_match",
			Snippet: vendorSnippet(match),
			Score:   scoreRef(match.Score),
			Metadata: map[string]string{
				"method": string(match.Method),
			},
		}
		if match.Record != nil {
			item.Metadata["vendor_name"] = match.Record.Name
		}
		bundle.Items = append(bundle.Items, item)
	}

	bundle.Items = append(bundle.Items, contractDetailsItem(contract))
	bundle.Summary = summarize(bundle.Items)
	return bundle
}

// ValidateBundle reports whether a bundle is structurally sound: not
// empty, every item tagged with source and signal, every present score in
// [0, 1]. Reported as a boolean; never blocks detection output.
func (g *EvidenceGenerator) ValidateBundle(bundle domain.EvidenceBundle) bool {
	if len(bundle.Items) == 0 {
		return false
	}
	for _, item := range bundle.Items {
		if item.Source == "" || item.Signal == "" {
			return false
		}
		if item.Score != nil && (*item.Score < 0 || *item.Score > 1) {
			return false
		}
	}
	return true
}

// SerializeBundle encodes a bundle losslessly; item order, signal tags,
// scores and metadata survive the round trip.
func SerializeBundle(bundle domain.EvidenceBundle) ([]byte, error) {
	data, err := json.Marshal(bundle)
	if err != nil {
		return nil, fmt.Errorf("serialize evidence bundle: %w", err)
	}
	return data, nil
}

// DeserializeBundle decodes a bundle produced by SerializeBundle.
func DeserializeBundle(data []byte) (domain.EvidenceBundle, error) {
	var bundle domain.EvidenceBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return domain.EvidenceBundle{}, fmt.Errorf("deserialize evidence bundle: %w", err)
	}
	return bundle, nil
}

func scoreRef(v float64) *float64 {
	return &v
}

func agencySnippet(sig *domain.AgencySignal) string {
	switch sig.MatchLevel {
	case domain.AgencySameAgency:
		return fmt.Sprintf("contract awarded by the same agency (%s) that funded the award", sig.ContractAgency)
	case domain.AgencySameDepartment:
		return fmt.Sprintf("contract agency %s shares a department with award agency %s", sig.ContractAgency, sig.AwardAgency)
	case domain.AgencyDifferent:
		return fmt.Sprintf("cross-department transition from %s to %s", sig.AwardAgency, sig.ContractAgency)
	default:
		return "agency comparison incomplete: missing agency data"
	}
}

// timingSnippet phrases proximity against the configured windows: the
// first window is "high proximity", any later window "moderate".
func (g *EvidenceGenerator) timingSnippet(sig *domain.TimingSignal) string {
	switch {
	case sig.MissingDates:
		return "timing comparison incomplete: missing completion or start date"
	case sig.Anomaly:
		return fmt.Sprintf("anomaly: contract started %d days before award completion", -sig.DaysBetween)
	}
	if ws := g.cfg.Timing.Windows; len(ws) > 0 {
		if sig.DaysBetween <= ws[0].MaxDay {
			return fmt.Sprintf("high proximity: contract started %d days after award completion", sig.DaysBetween)
		}
		if sig.DaysBetween <= ws[len(ws)-1].MaxDay {
			return fmt.Sprintf("moderate proximity: contract started %d days after award completion", sig.DaysBetween)
		}
	}
	return fmt.Sprintf("contract started %d days after award completion", sig.DaysBetween)
}

func competitionSnippet(sig *domain.CompetitionSignal) string {
	switch sig.Type {
	case domain.CompetitionSoleSource:
		return "sole-source award, strong indicator of a directed follow-on"
	case domain.CompetitionLimited:
		return "limited competition award"
	case domain.CompetitionFullAndOpen:
		return "full-and-open competition award"
	default:
		return "competition classification unavailable or other"
	}
}

func patentSnippet(sig *domain.PatentSignal) string {
	if sig.PatentCount == 0 {
		return "no patents on record for the vendor"
	}
	return fmt.Sprintf("%d patents on record, %d filed before contract start, topic similarity %.2f",
		sig.PatentCount, sig.PatentsPreContract, sig.TopicSimilarity)
}

func cetSnippet(sig *domain.CETSignal) string {
	if sig.Match {
		return fmt.Sprintf("award and contract share technology area %s", sig.AwardCET)
	}
	if sig.AwardCET == "" || sig.ContractCET == "" {
		return "technology area comparison incomplete: missing CET code"
	}
	return fmt.Sprintf("technology areas differ: %s vs %s", sig.AwardCET, sig.ContractCET)
}

func vendorSnippet(match *domain.VendorMatch) string {
	if match.Record == nil {
		return "vendor could not be resolved to a known award recipient"
	}
	return fmt.Sprintf("vendor resolved to %q via %s (score %.2f)", match.Record.Name, match.Method, match.Score)
}

func contractDetailsItem(contract domain.FederalContract) domain.EvidenceItem {
	meta := map[string]string{
		"contract_id": contract.ContractID,
		"agency":      contract.Agency,
	}
	if contract.StartDate != nil {
		meta["start_date"] = contract.StartDate.Format("2006-01-02")
	}
	if contract.ObligationAmount != nil {
		meta["obligation_amount"] = strconv.FormatFloat(*contract.ObligationAmount, 'f', 2, 64)
	}
	return domain.EvidenceItem{
		Source:   sourceContract,
		Signal:   "contract_details",
		Snippet:  fmt.Sprintf("contract %s awarded by %s", contract.ContractID, contract.Agency),
		Metadata: meta,
	}
}

func summarize(items []domain.EvidenceItem) string {
	var sum float64
	var n int
	for _, item := range items {
		if item.Score != nil {
			sum += *item.Score
			n++
		}
	}
	mean := 0.0
	if n > 0 {
		mean = sum / float64(n)
	}
	return fmt.Sprintf("%d evidence items (avg score: %.2f)", len(items), mean)
}
