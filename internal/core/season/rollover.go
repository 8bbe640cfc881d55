package season

import (
	"github.com/csvy/hockey-elo/internal/core/elo"
	"github.com/csvy/hockey-elo/internal/telemetry"
)

// Rollover regresses every stored rating toward the baseline by the
// configured carryover fraction:
//
//	new = baseline + carryover * (old - baseline)
//
// Carryover 1 keeps ratings intact across the boundary; 0 resets the
// league. Teams keep their store entries either way.
func Rollover(store *elo.Store, params elo.Params) {
	baseline := params.InitialRating
	snapshot := store.Snapshot()
	for team, rating := range snapshot {
		store.Set(team, baseline+params.SeasonCarryover*(rating-baseline))
	}
	telemetry.Infof("season rollover: regressed %d ratings toward %.0f (carryover %.2f)",
		len(snapshot), baseline, params.SeasonCarryover)
}
