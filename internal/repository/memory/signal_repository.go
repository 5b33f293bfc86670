package memory

import (
	"context"
	"sync"

	"transitionRadar/domain"
)

// SignalDataRepository holds pre-computed patent and CET side signals keyed
// by award ID. Produced upstream; opaque to the detection core.
type SignalDataRepository struct {
	mu     sync.RWMutex
	patent map[string]domain.PatentData
	cet    map[string]domain.CETData
}

func NewSignalDataRepository() *SignalDataRepository {
	return &SignalDataRepository{
		patent: make(map[string]domain.PatentData),
		cet:    make(map[string]domain.CETData),
	}
}

func (r *SignalDataRepository) PutPatentData(awardID string, data domain.PatentData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patent[awardID] = data
}

func (r *SignalDataRepository) PutCETData(awardID string, data domain.CETData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cet[awardID] = data
}

func (r *SignalDataRepository) GetPatentData(ctx context.Context, awardID string) (*domain.PatentData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if data, ok := r.patent[awardID]; ok {
		return &data, nil
	}
	return nil, nil
}

func (r *SignalDataRepository) GetCETData(ctx context.Context, awardID string) (*domain.CETData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if data, ok := r.cet[awardID]; ok {
		return &data, nil
	}
	return nil, nil
}
