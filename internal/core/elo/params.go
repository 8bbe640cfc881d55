package elo

import (
	"fmt"
	"math"
)

// MOVMethod selects the margin-of-victory scaling curve.
type MOVMethod string

const (
	// MOVLinear grows the K multiplier proportionally with the goal margin.
	MOVLinear MOVMethod = "linear"
	// MOVLogarithmic compresses blowouts: 1 + ln(margin+1) * weight.
	MOVLogarithmic MOVMethod = "logarithmic"
)

// Params holds every tunable the rating engine recognizes. Zero values are
// meaningful (home_advantage 0 disables home ice entirely), so callers
// should start from DefaultParams and overlay rather than construct bare.
type Params struct {
	// KFactor is the base learning rate: the maximum rating movement a
	// single regulation result can produce before MOV scaling.
	KFactor float64 `yaml:"k_factor" json:"k_factor"`

	// HomeAdvantage is added to the home side's rating before comparison.
	HomeAdvantage float64 `yaml:"home_advantage" json:"home_advantage"`

	// InitialRating seeds every team and is the default for teams the
	// engine has never seen.
	InitialRating float64 `yaml:"initial_rating" json:"initial_rating"`

	// MOVMultiplier weights margin-of-victory scaling; 0 disables it.
	MOVMultiplier float64 `yaml:"mov_multiplier" json:"mov_multiplier"`

	MOVMethod MOVMethod `yaml:"mov_method" json:"mov_method"`

	// SeasonCarryover is the fraction of a rating's distance from the
	// baseline a team keeps across a season boundary: 1 keeps ratings
	// intact, 0 resets everyone.
	SeasonCarryover float64 `yaml:"season_carryover" json:"season_carryover"`

	// OTWinMultiplier is the score credited for an overtime or shootout
	// win; the loser receives the complement, so the pair still splits
	// exactly one point.
	OTWinMultiplier float64 `yaml:"ot_win_multiplier" json:"ot_win_multiplier"`

	// RestAdvantagePerDay weights the rest-day differential between the
	// sides, credited to the home rating.
	RestAdvantagePerDay float64 `yaml:"rest_advantage_per_day" json:"rest_advantage_per_day"`

	// B2BPenalty is subtracted from any side playing on one day of rest
	// or less.
	B2BPenalty float64 `yaml:"b2b_penalty" json:"b2b_penalty"`
}

// DefaultParams is classic ELO with every situational adjustment disabled.
// These are also the fallbacks when a parameter file is absent.
func DefaultParams() Params {
	return Params{
		KFactor:         32,
		InitialRating:   1500,
		MOVMethod:       MOVLogarithmic,
		SeasonCarryover: 1.0,
		OTWinMultiplier: 0.75,
	}
}

// Validate rejects parameter sets the engine cannot run with. Called once
// at model construction; the fold never re-checks.
func (p Params) Validate() error {
	switch {
	case p.KFactor <= 0:
		return fmt.Errorf("k_factor must be positive, got %v", p.KFactor)
	case p.InitialRating <= 0:
		return fmt.Errorf("initial_rating must be positive, got %v", p.InitialRating)
	case p.MOVMultiplier < 0:
		return fmt.Errorf("mov_multiplier must be non-negative, got %v", p.MOVMultiplier)
	case p.MOVMethod != MOVLinear && p.MOVMethod != MOVLogarithmic:
		return fmt.Errorf("mov_method must be %q or %q, got %q", MOVLinear, MOVLogarithmic, p.MOVMethod)
	case p.SeasonCarryover < 0 || p.SeasonCarryover > 1:
		return fmt.Errorf("season_carryover must be in [0,1], got %v", p.SeasonCarryover)
	case p.OTWinMultiplier < 0.5 || p.OTWinMultiplier > 1:
		return fmt.Errorf("ot_win_multiplier must be in [0.5,1], got %v", p.OTWinMultiplier)
	}
	return nil
}

// movMultiplier converts a signed goal differential into the K-factor
// multiplier. Weight 0 disables the feature and returns exactly 1.
func (p Params) movMultiplier(goalDiff int) float64 {
	if p.MOVMultiplier == 0 {
		return 1.0
	}
	margin := math.Abs(float64(goalDiff))
	if p.MOVMethod == MOVLinear {
		return 1.0 + margin*p.MOVMultiplier
	}
	return 1.0 + math.Log(margin+1.0)*p.MOVMultiplier
}
