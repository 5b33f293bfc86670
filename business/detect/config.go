package detect

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config is the full detection configuration tree, injected at
// construction and validated once, eagerly. There is no process-wide
// mutable configuration state.
type Config struct {
	BaseScore float64 `validate:"gte=0,lte=1"`

	Agency      AgencySignalConfig
	Timing      TimingSignalConfig
	Competition CompetitionSignalConfig
	Patent      PatentSignalConfig
	CET         CETSignalConfig

	Confidence     ConfidenceThresholds
	VendorMatching VendorMatchingConfig

	// Candidate filter: contract start must fall within
	// [completion+MinDaysAfter, completion+MaxDaysAfter] inclusive.
	MinDaysAfter int `validate:"gte=0"`
	MaxDaysAfter int `validate:"gtfield=MinDaysAfter"`
}

type AgencySignalConfig struct {
	Enabled             bool
	Weight              float64 `validate:"gte=0,lte=1"`
	SameAgencyBonus     float64 `validate:"gte=0,lte=1"`
	SameDepartmentBonus float64 `validate:"gte=0,lte=1"`
	CrossAgencyBonus    float64 `validate:"gte=0,lte=1"`
}

// TimingWindow maps an inclusive day range after award completion to a
// tier score.
type TimingWindow struct {
	MinDay    int     `json:"min_day"`
	MaxDay    int     `json:"max_day"`
	TierScore float64 `json:"tier_score" validate:"gte=0,lte=1"`
}

type TimingSignalConfig struct {
	Enabled bool
	Weight  float64 `validate:"gte=0,lte=1"`
	// Ordered, first containing window wins.
	Windows             []TimingWindow `validate:"dive"`
	BeyondWindowPenalty float64        `validate:"gte=0,lte=1"`
}

type CompetitionSignalConfig struct {
	Enabled          bool
	Weight           float64 `validate:"gte=0,lte=1"`
	SoleSourceBonus  float64 `validate:"gte=0,lte=1"`
	LimitedBonus     float64 `validate:"gte=0,lte=1"`
	FullAndOpenBonus float64 `validate:"gte=0,lte=1"`
	OtherBonus       float64 `validate:"gte=0,lte=1"`
}

type PatentSignalConfig struct {
	Enabled                  bool
	Weight                   float64 `validate:"gte=0,lte=1"`
	HasPatentBonus           float64 `validate:"gte=0,lte=1"`
	PreContractBonus         float64 `validate:"gte=0,lte=1"`
	TopicSimilarityBonus     float64 `validate:"gte=0,lte=1"`
	TopicSimilarityThreshold float64 `validate:"gte=0,lte=1"`
}

type CETSignalConfig struct {
	Enabled    bool
	Weight     float64 `validate:"gte=0,lte=1"`
	MatchBonus float64 `validate:"gte=0,lte=1"`
}

type ConfidenceThresholds struct {
	High   float64 `validate:"gt=0,lte=1,gtfield=Likely"`
	Likely float64 `validate:"gt=0,lte=1"`
}

type VendorMatchingConfig struct {
	RequireMatch            bool
	FuzzyThreshold          float64 `validate:"gt=0,lte=1,gtefield=FuzzySecondaryThreshold"`
	FuzzySecondaryThreshold float64 `validate:"gt=0,lte=1"`
}

const (
	defaultBaseScore = 0.30

	defaultAgencyWeight      = 0.15
	defaultSameAgencyBonus   = 1.0
	defaultSameDeptBonus     = 0.6
	defaultCrossAgencyBonus  = 0.3
	defaultTimingWeight      = 0.20
	defaultBeyondWindow      = 0.1
	defaultCompetitionWeight = 0.15
	defaultSoleSourceBonus   = 1.0
	defaultLimitedBonus      = 0.7
	defaultFullAndOpenBonus  = 0.4
	defaultOtherBonus        = 0.2
	defaultPatentWeight      = 0.15
	defaultHasPatentBonus    = 0.4
	defaultPreContractBonus  = 0.3
	defaultTopicSimBonus     = 0.3
	defaultTopicSimThreshold = 0.7
	defaultCETWeight         = 0.10
	defaultCETMatchBonus     = 1.0
	defaultHighThreshold     = 0.75
	defaultLikelyThreshold   = 0.55
	defaultFuzzyThreshold    = 0.85
	defaultFuzzySecondary    = 0.70
	defaultMinDaysAfterAward = 0
	defaultMaxDaysAfterAward = 1095
)

func DefaultConfig() Config {
	return Config{
		BaseScore: defaultBaseScore,
		Agency: AgencySignalConfig{
			Enabled:             true,
			Weight:              defaultAgencyWeight,
			SameAgencyBonus:     defaultSameAgencyBonus,
			SameDepartmentBonus: defaultSameDeptBonus,
			CrossAgencyBonus:    defaultCrossAgencyBonus,
		},
		Timing: TimingSignalConfig{
			Enabled: true,
			Weight:  defaultTimingWeight,
			Windows: []TimingWindow{
				{MinDay: 0, MaxDay: 90, TierScore: 1.0},
				{MinDay: 91, MaxDay: 365, TierScore: 0.7},
				{MinDay: 366, MaxDay: 730, TierScore: 0.4},
			},
			BeyondWindowPenalty: defaultBeyondWindow,
		},
		Competition: CompetitionSignalConfig{
			Enabled:          true,
			Weight:           defaultCompetitionWeight,
			SoleSourceBonus:  defaultSoleSourceBonus,
			LimitedBonus:     defaultLimitedBonus,
			FullAndOpenBonus: defaultFullAndOpenBonus,
			OtherBonus:       defaultOtherBonus,
		},
		Patent: PatentSignalConfig{
			Enabled:                  true,
			Weight:                   defaultPatentWeight,
			HasPatentBonus:           defaultHasPatentBonus,
			PreContractBonus:         defaultPreContractBonus,
			TopicSimilarityBonus:     defaultTopicSimBonus,
			TopicSimilarityThreshold: defaultTopicSimThreshold,
		},
		CET: CETSignalConfig{
			Enabled:    true,
			Weight:     defaultCETWeight,
			MatchBonus: defaultCETMatchBonus,
		},
		Confidence: ConfidenceThresholds{
			High:   defaultHighThreshold,
			Likely: defaultLikelyThreshold,
		},
		VendorMatching: VendorMatchingConfig{
			RequireMatch:            true,
			FuzzyThreshold:          defaultFuzzyThreshold,
			FuzzySecondaryThreshold: defaultFuzzySecondary,
		},
		MinDaysAfter: defaultMinDaysAfterAward,
		MaxDaysAfter: defaultMaxDaysAfterAward,
	}
}

// Validate checks the configuration shape once, eagerly. Invalid configs
// are the only fail-fast condition in the detection core.
func (cfg Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid detection config: %w", err)
	}

	prevMax := -1
	for i, w := range cfg.Timing.Windows {
		if w.MinDay > w.MaxDay {
			return fmt.Errorf("invalid detection config: timing window %d has min_day %d > max_day %d", i, w.MinDay, w.MaxDay)
		}
		if w.MinDay <= prevMax {
			return fmt.Errorf("invalid detection config: timing window %d overlaps or is out of order", i)
		}
		prevMax = w.MaxDay
	}
	return nil
}
