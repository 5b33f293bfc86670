package domain

import "time"

// Award is a completed small-business R&D award as delivered by the
// upstream extraction job. Identifier fields are optional; Company is the
// registry name at time of award.
type Award struct {
	AwardID        string     `json:"award_id"`
	Company        string     `json:"company"`
	UEI            string     `json:"uei,omitempty"`
	DUNS           string     `json:"duns,omitempty"`
	CAGE           string     `json:"cage,omitempty"`
	Agency         string     `json:"agency"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	CETArea        string     `json:"cet_area,omitempty"`
}

// PatentData carries pre-computed patent signals for an award's company,
// produced by an upstream inference component.
type PatentData struct {
	PatentCount           int     `json:"patent_count"`
	PatentsPreContract    int     `json:"patents_pre_contract"`
	PatentTopicSimilarity float64 `json:"patent_topic_similarity"`
}

// CETData carries pre-computed critical-and-emerging-technology area codes
// for an award/contract pair.
type CETData struct {
	AwardCET    string `json:"award_cet"`
	ContractCET string `json:"contract_cet"`
}
