package detect

import (
	"context"
	"fmt"
	"sync"

	"transitionRadar/domain"
	"transitionRadar/pkg/logger"
)

// ---- Repository interfaces ----

type AwardRepository interface {
	GetByID(ctx context.Context, awardID string) (domain.Award, bool, error)
	List(ctx context.Context, limit int) ([]domain.Award, error)
}

type ContractRepository interface {
	List(ctx context.Context) ([]domain.FederalContract, error)
}

// SignalDataRepository supplies the optional pre-computed side signals.
// A nil result with nil error means "no data for this award".
type SignalDataRepository interface {
	GetPatentData(ctx context.Context, awardID string) (*domain.PatentData, error)
	GetCETData(ctx context.Context, awardID string) (*domain.CETData, error)
}

// ---- Service ----

// DetectionService fronts a Detector for the HTTP surface: it pulls award
// and contract records from repositories, attaches side-signal data, and
// serializes access to the single-threaded detection core.
type DetectionService struct {
	mu           sync.Mutex
	awardRepo    AwardRepository
	contractRepo ContractRepository
	signalRepo   SignalDataRepository
	detector     *Detector
}

func NewDetectionService(
	awardRepo AwardRepository,
	contractRepo ContractRepository,
	signalRepo SignalDataRepository,
	detector *Detector,
) *DetectionService {
	return &DetectionService{
		awardRepo:    awardRepo,
		contractRepo: contractRepo,
		signalRepo:   signalRepo,
		detector:     detector,
	}
}

// DetectAward runs detection for a single award against the full contract
// pool.
func (s *DetectionService) DetectAward(ctx context.Context, awardID string) ([]domain.Transition, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	award, ok, err := s.awardRepo.GetByID(ctx, awardID)
	if err != nil {
		return nil, fmt.Errorf("load award: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("award %s not found", awardID)
	}

	contracts, err := s.contractRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load contracts: %w", err)
	}

	patentData, cetData := s.sideData(ctx, awardID)

	tid := TraceIDFromContext(ctx)
	logger.Debug("detect_award",
		"trace_id", tid,
		"award_id", awardID,
		"contract_pool", len(contracts),
	)

	s.mu.Lock()
	defer s.mu.Unlock()
	ix := IndexContractsByVendor(contracts)
	return s.detector.DetectForAward(award, ix.CandidatesFor(award), patentData, cetData), nil
}

// DetectAll runs detection across up to limit awards (0 means all),
// keeping only transitions at or above minConfidence when supplied.
func (s *DetectionService) DetectAll(ctx context.Context, limit int, minConfidence domain.Confidence) ([]domain.Transition, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	awards, err := s.awardRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load awards: %w", err)
	}
	contracts, err := s.contractRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load contracts: %w", err)
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("detect_all",
		"trace_id", tid,
		"awards", len(awards),
		"contracts", len(contracts),
		"min_confidence", string(minConfidence),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	ix := IndexContractsByVendor(contracts)
	results := []domain.Transition{}
	for _, award := range awards {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("context error: %w", err)
		}
		patentData, cetData := s.sideData(ctx, award.AwardID)
		for _, tr := range s.detector.DetectForAward(award, ix.CandidatesFor(award), patentData, cetData) {
			if !meetsConfidence(tr.Confidence, minConfidence) {
				continue
			}
			results = append(results, tr)
		}
	}
	return results, nil
}

// ResolveVendor answers a one-off resolution query.
func (s *DetectionService) ResolveVendor(ctx context.Context, uei, cage, duns, name string) (domain.VendorMatch, error) {
	if err := ctx.Err(); err != nil {
		return domain.VendorMatch{}, fmt.Errorf("context error: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detector.Resolver().Resolve(uei, cage, duns, name), nil
}

// AddVendor registers a record in the vendor index.
func (s *DetectionService) AddVendor(ctx context.Context, rec domain.VendorRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detector.Resolver().Index().Add(rec)
	return nil
}

// RemoveVendor drops the record registered under uei.
func (s *DetectionService) RemoveVendor(ctx context.Context, uei string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detector.Resolver().Index().RemoveByUEI(uei), nil
}

// Metrics returns the current detection counters and derived rates.
func (s *DetectionService) Metrics() domain.DetectionMetricsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detector.Metrics()
}

// ResetMetrics zeroes the detection counters.
func (s *DetectionService) ResetMetrics() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detector.ResetMetrics()
}

func (s *DetectionService) sideData(ctx context.Context, awardID string) (*domain.PatentData, *domain.CETData) {
	if s.signalRepo == nil {
		return nil, nil
	}
	patentData, err := s.signalRepo.GetPatentData(ctx, awardID)
	if err != nil {
		logger.Warn("patent data unavailable", "award_id", awardID, "error", err)
		patentData = nil
	}
	cetData, err := s.signalRepo.GetCETData(ctx, awardID)
	if err != nil {
		logger.Warn("cet data unavailable", "award_id", awardID, "error", err)
		cetData = nil
	}
	return patentData, cetData
}

var confidenceRank = map[domain.Confidence]int{
	domain.ConfidencePossible: 0,
	domain.ConfidenceLikely:   1,
	domain.ConfidenceHigh:     2,
}

func meetsConfidence(got, minimum domain.Confidence) bool {
	if minimum == "" {
		return true
	}
	return confidenceRank[got] >= confidenceRank[minimum]
}
