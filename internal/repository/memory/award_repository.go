package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"transitionRadar/domain"
)

// AwardRepository is an in-memory award store. The upstream bulk
// extraction that would normally feed it is out of scope; records arrive
// pre-parsed via Seed or a plain JSON array file.
type AwardRepository struct {
	mu     sync.RWMutex
	awards []domain.Award
	byID   map[string]int
}

func NewAwardRepository() *AwardRepository {
	return &AwardRepository{byID: make(map[string]int)}
}

// Seed replaces the stored awards.
func (r *AwardRepository) Seed(awards []domain.Award) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.awards = make([]domain.Award, len(awards))
	copy(r.awards, awards)
	r.byID = make(map[string]int, len(awards))
	for i, aw := range r.awards {
		r.byID[aw.AwardID] = i
	}
}

// LoadFile seeds the repository from a JSON array of awards.
func (r *AwardRepository) LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read awards file: %w", err)
	}
	var awards []domain.Award
	if err := json.Unmarshal(data, &awards); err != nil {
		return 0, fmt.Errorf("decode awards file: %w", err)
	}
	r.Seed(awards)
	return len(awards), nil
}

func (r *AwardRepository) GetByID(ctx context.Context, awardID string) (domain.Award, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Award{}, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[awardID]
	if !ok {
		return domain.Award{}, false, nil
	}
	return r.awards[i], true, nil
}

// List returns up to limit awards in insertion order; limit <= 0 means
// all.
func (r *AwardRepository) List(ctx context.Context, limit int) ([]domain.Award, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.awards)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Award, n)
	copy(out, r.awards[:n])
	return out, nil
}
