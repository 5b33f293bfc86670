package domain

import (
	"strings"
	"time"
)

// CompetitionType classifies how competitively a contract was awarded.
type CompetitionType string

const (
	CompetitionSoleSource  CompetitionType = "SOLE_SOURCE"
	CompetitionLimited     CompetitionType = "LIMITED"
	CompetitionFullAndOpen CompetitionType = "FULL_AND_OPEN"
	CompetitionOther       CompetitionType = "OTHER"
)

// ParseCompetitionType maps a raw extent-competed string onto a known
// competition type. The second return reports whether the input was one of
// the recognized forms; unrecognized inputs map to CompetitionOther.
func ParseCompetitionType(s string) (CompetitionType, bool) {
	switch CompetitionType(strings.ToUpper(strings.TrimSpace(s))) {
	case CompetitionSoleSource:
		return CompetitionSoleSource, true
	case CompetitionLimited:
		return CompetitionLimited, true
	case CompetitionFullAndOpen:
		return CompetitionFullAndOpen, true
	case CompetitionOther:
		return CompetitionOther, true
	default:
		return CompetitionOther, false
	}
}

// FederalContract is a single federal contract action. Supplied by the
// caller and never mutated by the detection core.
type FederalContract struct {
	ContractID       string            `json:"contract_id"`
	Agency           string            `json:"agency"`
	SubAgency        string            `json:"sub_agency,omitempty"`
	VendorName       string            `json:"vendor_name,omitempty"`
	VendorUEI        string            `json:"vendor_uei,omitempty"`
	VendorCAGE       string            `json:"vendor_cage,omitempty"`
	VendorDUNS       string            `json:"vendor_duns,omitempty"`
	StartDate        *time.Time        `json:"start_date,omitempty"`
	EndDate          *time.Time        `json:"end_date,omitempty"`
	ObligationAmount *float64          `json:"obligation_amount,omitempty"`
	IsDeobligation   bool              `json:"is_deobligation"`
	CompetitionType  CompetitionType   `json:"competition_type"`
	Description      string            `json:"description,omitempty"`
	ParentContractID string            `json:"parent_contract_id,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}
