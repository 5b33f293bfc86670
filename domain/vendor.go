package domain

// VendorRecord is the identity tuple for a known award recipient. Records
// are immutable once indexed; the vendor index owns them.
type VendorRecord struct {
	UEI      string            `json:"uei,omitempty"`
	CAGE     string            `json:"cage,omitempty"`
	DUNS     string            `json:"duns,omitempty"`
	Name     string            `json:"name"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// MatchMethod names the identifier space (or name strategy) that resolved
// a vendor.
type MatchMethod string

const (
	MatchUEI                MatchMethod = "uei"
	MatchCAGE               MatchMethod = "cage"
	MatchDUNS               MatchMethod = "duns"
	MatchNameExact          MatchMethod = "name_exact"
	MatchNameFuzzy          MatchMethod = "name_fuzzy"
	MatchNameFuzzySecondary MatchMethod = "name_fuzzy_secondary"
	MatchNone               MatchMethod = "none"
)

// VendorMatch is the outcome of one resolution attempt. Record points into
// the index and must not be mutated by callers.
type VendorMatch struct {
	Record *VendorRecord `json:"record,omitempty"`
	Method MatchMethod   `json:"method"`
	Score  float64       `json:"score"`
	Note   string        `json:"note,omitempty"`
}

// Matched reports whether the attempt resolved to a record.
func (m VendorMatch) Matched() bool {
	return m.Record != nil && m.Method != MatchNone
}
