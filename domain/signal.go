package domain

// AgencyMatchLevel buckets how closely an award's funding agency matches a
// contract's awarding agency.
type AgencyMatchLevel string

const (
	AgencySameAgency     AgencyMatchLevel = "same_agency"
	AgencySameDepartment AgencyMatchLevel = "same_department"
	AgencyDifferent      AgencyMatchLevel = "different_department"
	AgencyUnknown        AgencyMatchLevel = "unknown"
)

// AgencySignal compares funding and awarding agencies.
type AgencySignal struct {
	AwardAgency    string           `json:"award_agency"`
	ContractAgency string           `json:"contract_agency"`
	MatchLevel     AgencyMatchLevel `json:"match_level"`
	Score          float64          `json:"score"`
}

// TimingSignal measures the gap between award completion and contract
// start. Anomaly marks a contract that started before the award completed;
// MissingDates marks a pair where either date was absent and the gap could
// not be computed.
type TimingSignal struct {
	DaysBetween  int     `json:"days_between"`
	InWindow     bool    `json:"in_window"`
	Anomaly      bool    `json:"anomaly"`
	MissingDates bool    `json:"missing_dates,omitempty"`
	Score        float64 `json:"score"`
}

// CompetitionSignal scores the contract's competition classification.
// Weaker competition is a stronger transition signal.
type CompetitionSignal struct {
	Type  CompetitionType `json:"type"`
	Score float64         `json:"score"`
}

// PatentSignal carries the pre-computed patent evidence for the pair.
type PatentSignal struct {
	PatentCount        int     `json:"patent_count"`
	PatentsPreContract int     `json:"patents_pre_contract"`
	TopicSimilarity    float64 `json:"topic_similarity"`
	Score              float64 `json:"score"`
}

// CETSignal compares critical-and-emerging-technology area codes.
type CETSignal struct {
	AwardCET    string  `json:"award_cet"`
	ContractCET string  `json:"contract_cet"`
	Match       bool    `json:"match"`
	Score       float64 `json:"score"`
}

// TransitionSignals aggregates the per-signal results for one
// award/contract pair. A nil field means the signal was not computed (no
// input data), which is distinct from a computed zero score.
type TransitionSignals struct {
	Agency      *AgencySignal      `json:"agency,omitempty"`
	Timing      *TimingSignal      `json:"timing,omitempty"`
	Competition *CompetitionSignal `json:"competition,omitempty"`
	Patent      *PatentSignal      `json:"patent,omitempty"`
	CET         *CETSignal         `json:"cet,omitempty"`
}
