package detect

import (
	"strings"

	"transitionRadar/domain"
)

// Per-signal scorers. Each one degrades to a zero sub-score on missing or
// malformed input; none of them ever fails. Textual comparisons are
// case-insensitive after trimming.

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func foldAgency(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// scoreAgency tiers the agency relationship: same awarding agency, same
// department (sub-agency lineage or prefix overlap), or a cross-agency
// transition, which still carries a small bonus.
func scoreAgency(cfg AgencySignalConfig, award domain.Award, contract domain.FederalContract) *domain.AgencySignal {
	sig := &domain.AgencySignal{
		AwardAgency:    award.Agency,
		ContractAgency: contract.Agency,
		MatchLevel:     domain.AgencyUnknown,
	}

	aw := foldAgency(award.Agency)
	ct := foldAgency(contract.Agency)
	sub := foldAgency(contract.SubAgency)
	if aw == "" || ct == "" {
		return sig
	}

	var bonus float64
	switch {
	case aw == ct:
		sig.MatchLevel = domain.AgencySameAgency
		bonus = cfg.SameAgencyBonus
	case sub == aw || strings.HasPrefix(ct, aw) || strings.HasPrefix(aw, ct):
		sig.MatchLevel = domain.AgencySameDepartment
		bonus = cfg.SameDepartmentBonus
	default:
		sig.MatchLevel = domain.AgencyDifferent
		bonus = cfg.CrossAgencyBonus
	}

	sig.Score = clamp01(bonus * cfg.Weight)
	return sig
}

// scoreTiming maps the day gap between award completion and contract
// start onto the first configured window containing it. A negative gap is
// an anomaly and scores zero; a gap past every window takes the flat
// beyond-window penalty (no decay).
func scoreTiming(cfg TimingSignalConfig, award domain.Award, contract domain.FederalContract) *domain.TimingSignal {
	sig := &domain.TimingSignal{}

	if award.CompletionDate == nil || contract.StartDate == nil {
		sig.MissingDates = true
		return sig
	}

	days := int(contract.StartDate.Sub(*award.CompletionDate).Hours() / 24)
	sig.DaysBetween = days

	if days < 0 {
		sig.Anomaly = true
		return sig
	}

	for _, w := range cfg.Windows {
		if days >= w.MinDay && days <= w.MaxDay {
			sig.InWindow = true
			sig.Score = clamp01(w.TierScore * cfg.Weight)
			return sig
		}
	}

	sig.Score = clamp01(cfg.BeyondWindowPenalty * cfg.Weight)
	return sig
}

// scoreCompetition maps the competition classification to a bonus; weaker
// competition is a stronger transition signal, so sole source ranks
// highest.
func scoreCompetition(cfg CompetitionSignalConfig, contract domain.FederalContract) *domain.CompetitionSignal {
	sig := &domain.CompetitionSignal{Type: contract.CompetitionType}

	var bonus float64
	switch contract.CompetitionType {
	case domain.CompetitionSoleSource:
		bonus = cfg.SoleSourceBonus
	case domain.CompetitionLimited:
		bonus = cfg.LimitedBonus
	case domain.CompetitionFullAndOpen:
		bonus = cfg.FullAndOpenBonus
	case domain.CompetitionOther:
		bonus = cfg.OtherBonus
	default:
		return sig
	}

	sig.Score = clamp01(bonus * cfg.Weight)
	return sig
}

// scorePatent adds bonuses for holding any patent, holding one filed
// before the contract, and topic similarity above the threshold. The sum
// is weighted then capped at 1.0. Nil data means the signal was not
// computed and the caller should omit it.
func scorePatent(cfg PatentSignalConfig, data *domain.PatentData) *domain.PatentSignal {
	if data == nil {
		return nil
	}

	sig := &domain.PatentSignal{
		PatentCount:        data.PatentCount,
		PatentsPreContract: data.PatentsPreContract,
		TopicSimilarity:    data.PatentTopicSimilarity,
	}

	var sum float64
	if data.PatentCount > 0 {
		sum += cfg.HasPatentBonus
	}
	if data.PatentsPreContract > 0 {
		sum += cfg.PreContractBonus
	}
	if data.PatentTopicSimilarity >= cfg.TopicSimilarityThreshold {
		sum += cfg.TopicSimilarityBonus
	}

	sig.Score = clamp01(sum * cfg.Weight)
	return sig
}

// scoreCET awards the match bonus on an exact case-insensitive technology
// area match, zero otherwise. Nil data means the signal was not computed.
func scoreCET(cfg CETSignalConfig, data *domain.CETData) *domain.CETSignal {
	if data == nil {
		return nil
	}

	sig := &domain.CETSignal{
		AwardCET:    data.AwardCET,
		ContractCET: data.ContractCET,
	}

	aw := strings.ToUpper(strings.TrimSpace(data.AwardCET))
	ct := strings.ToUpper(strings.TrimSpace(data.ContractCET))
	if aw == "" || ct == "" || aw != ct {
		return sig
	}

	sig.Match = true
	sig.Score = clamp01(cfg.MatchBonus * cfg.Weight)
	return sig
}
