package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"transitionRadar/domain"
)

// ContractRepository is an in-memory federal-contract store.
type ContractRepository struct {
	mu        sync.RWMutex
	contracts []domain.FederalContract
}

func NewContractRepository() *ContractRepository {
	return &ContractRepository{}
}

// Seed replaces the stored contracts.
func (r *ContractRepository) Seed(contracts []domain.FederalContract) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contracts = make([]domain.FederalContract, len(contracts))
	copy(r.contracts, contracts)
}

// LoadFile seeds the repository from a JSON array of contracts.
// Unrecognized competition types are folded to OTHER and counted; the
// count is returned alongside the total so callers can log it instead of
// silently discarding the information.
func (r *ContractRepository) LoadFile(path string) (total, unrecognized int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read contracts file: %w", err)
	}
	var contracts []domain.FederalContract
	if err := json.Unmarshal(data, &contracts); err != nil {
		return 0, 0, fmt.Errorf("decode contracts file: %w", err)
	}
	for i, c := range contracts {
		parsed, ok := domain.ParseCompetitionType(string(c.CompetitionType))
		if !ok {
			unrecognized++
		}
		contracts[i].CompetitionType = parsed
	}
	r.Seed(contracts)
	return len(contracts), unrecognized, nil
}

func (r *ContractRepository) List(ctx context.Context) ([]domain.FederalContract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.FederalContract, len(r.contracts))
	copy(out, r.contracts)
	return out, nil
}
