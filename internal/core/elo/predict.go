package elo

import "github.com/csvy/hockey-elo/internal/telemetry"

// Goal-prediction shape: a certain home win stretches the expected goal
// differential to +6, a certain loss to -6, centered on the league
// scoring average.
const (
	leagueAvgGoals   = 3.0
	probToGoalsSwing = 12.0
)

// WinProbability returns the home side's win probability for the given
// matchup from current ratings. Read-only: no rating moves, no history is
// appended, and unseen teams rate at the baseline exactly as they would
// on the update path.
func (m *Model) WinProbability(match Match) (float64, error) {
	if match.HomeTeam == "" {
		return 0, &MissingFieldError{Field: "home_team"}
	}
	if match.AwayTeam == "" {
		return 0, &MissingFieldError{Field: "away_team"}
	}

	homeRaw, awayRaw := m.store.pair(match.HomeTeam, match.AwayTeam)
	homeAdj, awayAdj := m.adjustedRatings(homeRaw, awayRaw, &match)

	telemetry.Metrics.PredictionsServed.Inc()
	return ExpectedScore(homeAdj, awayAdj), nil
}

// PredictWinner names the favored team and its win probability. A dead
// even matchup reports the away side at 0.5.
func (m *Model) PredictWinner(match Match) (string, float64, error) {
	p, err := m.WinProbability(match)
	if err != nil {
		return "", 0, err
	}
	if p > 0.5 {
		return match.HomeTeam, p, nil
	}
	return match.AwayTeam, 1 - p, nil
}

// PredictGoals converts the home win probability into an expected final
// score around the league scoring average.
func (m *Model) PredictGoals(match Match) (home, away float64, err error) {
	p, err := m.WinProbability(match)
	if err != nil {
		return 0, 0, err
	}
	diff := (p - 0.5) * probToGoalsSwing
	return leagueAvgGoals + diff/2, leagueAvgGoals - diff/2, nil
}
