package srs

import (
	"github.com/phrazzld/vocaboost-api/internal/domain"
)

// Params defines all configurable parameters for the scheduling algorithm
type Params struct {
	// Core limits
	MinEaseFactor float64
	MaxEaseFactor float64

	// Ease factor adjustments per outcome
	KnowEaseBonus     float64
	VagueEasePenalty  float64
	ForgetEasePenalty float64

	// The fixed interval ladder for the first two successful recalls.
	// From the third recall on, the interval grows by the ease factor.
	FirstKnowInterval  int
	SecondKnowInterval int

	// MasteredInterval is the interval, in days, at which an item
	// graduates to the mastered status.
	MasteredInterval int
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	// Core limits
	MinEaseFactor float64
	MaxEaseFactor float64

	// Ease factor adjustments
	KnowEaseBonus     float64
	VagueEasePenalty  float64
	ForgetEasePenalty float64

	// Interval ladder
	FirstKnowInterval  int
	SecondKnowInterval int

	// Mastery threshold
	MasteredInterval int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor: domain.MinEaseFactor,
		MaxEaseFactor: domain.MaxEaseFactor,

		// Firm recall eases the item slightly; fuzzy or failed recall
		// makes it harder, with forgetting penalized the most.
		KnowEaseBonus:     0.1,
		VagueEasePenalty:  0.15,
		ForgetEasePenalty: 0.2,

		// Classic SM-2 opening ladder: 1 day, then 6 days.
		FirstKnowInterval:  1,
		SecondKnowInterval: 6,

		MasteredInterval: domain.MasteredInterval,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	// Override core limits if provided
	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.MaxEaseFactor > 0 {
		params.MaxEaseFactor = config.MaxEaseFactor
	}

	// Override ease factor adjustments if provided
	if config.KnowEaseBonus > 0 {
		params.KnowEaseBonus = config.KnowEaseBonus
	}
	if config.VagueEasePenalty > 0 {
		params.VagueEasePenalty = config.VagueEasePenalty
	}
	if config.ForgetEasePenalty > 0 {
		params.ForgetEasePenalty = config.ForgetEasePenalty
	}

	// Override the interval ladder if provided
	if config.FirstKnowInterval > 0 {
		params.FirstKnowInterval = config.FirstKnowInterval
	}
	if config.SecondKnowInterval > 0 {
		params.SecondKnowInterval = config.SecondKnowInterval
	}

	// Override the mastery threshold if provided
	if config.MasteredInterval > 0 {
		params.MasteredInterval = config.MasteredInterval
	}

	return params
}
