package elo

import "math"

// Situational penalty weights, in rating points.
const (
	travelPenaltyPer1000 = 15.0 // away side, per 1000 miles traveled
	injuryPenalty        = 25.0 // per listed key injury, either side
	b2bRestDays          = 1    // this many rest days or fewer counts as a back-to-back
)

// ExpectedScore returns the probability that the side rated r beats the
// side rated opponent, on the standard 400-point logistic curve.
// ExpectedScore(a, b) + ExpectedScore(b, a) == 1 for every pair.
func ExpectedScore(r, opponent float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (opponent-r)/400.0))
}

// sideContext carries one side's situational inputs for a single game.
type sideContext struct {
	home        bool
	restDays    int
	travelMiles float64
	injuries    int
}

// adjust applies situational corrections to a raw rating. The stored
// rating never moves here; the adjusted value exists only for the
// pre-game comparison.
func (p Params) adjust(rating float64, ctx sideContext) float64 {
	if ctx.home {
		rating += p.HomeAdvantage
	}
	if ctx.restDays <= b2bRestDays {
		rating -= p.B2BPenalty
	}
	if !ctx.home && ctx.travelMiles > 0 {
		rating -= ctx.travelMiles / 1000.0 * travelPenaltyPer1000
	}
	rating -= float64(ctx.injuries) * injuryPenalty
	return rating
}
