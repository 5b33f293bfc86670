package detect

import (
	"iter"
	"strings"

	"transitionRadar/business/vendor"
	"transitionRadar/domain"
)

const defaultBatchSize = 100

// ContractIndex groups contracts by their primary vendor identifier so an
// award's candidates can be pulled without scanning every contract.
type ContractIndex struct {
	byKey map[string][]domain.FederalContract
}

// IndexContractsByVendor keys each contract under the first non-empty of
// UEI, CAGE, DUNS, normalized vendor name.
func IndexContractsByVendor(contracts []domain.FederalContract) *ContractIndex {
	ix := &ContractIndex{byKey: make(map[string][]domain.FederalContract)}
	for _, c := range contracts {
		key := primaryVendorKey(c)
		if key == "" {
			continue
		}
		ix.byKey[key] = append(ix.byKey[key], c)
	}
	return ix
}

func identifierKey(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}

func primaryVendorKey(c domain.FederalContract) string {
	if k := identifierKey(c.VendorUEI); k != "" {
		return "uei:" + k
	}
	if k := identifierKey(c.VendorCAGE); k != "" {
		return "cage:" + k
	}
	if k := identifierKey(c.VendorDUNS); k != "" {
		return "duns:" + k
	}
	if k := vendor.NormalizeName(c.VendorName); k != "" {
		return "name:" + k
	}
	return ""
}

// CandidatesFor collects the contracts indexed under any of the award's
// identifiers, deduplicated by contract ID in insertion order.
func (ix *ContractIndex) CandidatesFor(award domain.Award) []domain.FederalContract {
	var keys []string
	if k := identifierKey(award.UEI); k != "" {
		keys = append(keys, "uei:"+k)
	}
	if k := identifierKey(award.CAGE); k != "" {
		keys = append(keys, "cage:"+k)
	}
	if k := identifierKey(award.DUNS); k != "" {
		keys = append(keys, "duns:"+k)
	}
	if k := vendor.NormalizeName(award.Company); k != "" {
		keys = append(keys, "name:"+k)
	}

	seen := make(map[string]struct{})
	var out []domain.FederalContract
	for _, key := range keys {
		for _, c := range ix.byKey[key] {
			if _, dup := seen[c.ContractID]; dup {
				continue
			}
			seen[c.ContractID] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// DetectBatch evaluates awards in order against the contract pool,
// yielding each award's detections before moving to the next. The
// sequence is lazy: stopping iteration stops all further work, with no
// side effects beyond metrics already accrued for awards consumed. Each
// call builds its own contract index, so sequences are independent.
func (d *Detector) DetectBatch(awards []domain.Award, contracts []domain.FederalContract, batchSize int) iter.Seq[domain.Transition] {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	ix := IndexContractsByVendor(contracts)

	return func(yield func(domain.Transition) bool) {
		for start := 0; start < len(awards); start += batchSize {
			end := min(start+batchSize, len(awards))
			for _, award := range awards[start:end] {
				for _, tr := range d.DetectForAward(award, ix.CandidatesFor(award), nil, nil) {
					if !yield(tr) {
						return
					}
				}
			}
		}
	}
}
