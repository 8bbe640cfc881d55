package elo

import "fmt"

// Match is one game record in feed order. Team names and goal counts are
// mandatory; everything else is situational context. Rest days are
// pointers because 0 is a meaningful value (a back-to-back) and must stay
// distinguishable from "not recorded".
type Match struct {
	HomeTeam string
	AwayTeam string

	HomeGoals int
	AwayGoals int

	// Outcome, when present, overrides both HomeWin and the goal
	// comparison for scoring.
	Outcome Outcome
	HomeWin *bool

	HomeRest *int
	AwayRest *int

	// AwayTravelMiles penalizes the visitor; 0 means no recorded travel.
	AwayTravelMiles float64

	HomeInjuries int
	AwayInjuries int

	// Division tags the home team's tier for seeding (D1/D2/D3).
	Division string
}

// MissingFieldError reports a record lacking a mandatory field. Such
// records are rejected outright, never defaulted.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("match record missing mandatory field %q", e.Field)
}

// Validate checks the mandatory fields. A negative goal count marks a
// score column that could not be parsed upstream.
func (m *Match) Validate() error {
	switch {
	case m.HomeTeam == "":
		return &MissingFieldError{Field: "home_team"}
	case m.AwayTeam == "":
		return &MissingFieldError{Field: "away_team"}
	case m.HomeGoals < 0:
		return &MissingFieldError{Field: "home_goals"}
	case m.AwayGoals < 0:
		return &MissingFieldError{Field: "away_goals"}
	}
	return nil
}

// defaultRestDays applies when a side's rest is not recorded.
const defaultRestDays = 2

func (m *Match) homeRestDays() int {
	if m.HomeRest != nil {
		return *m.HomeRest
	}
	return defaultRestDays
}

func (m *Match) awayRestDays() int {
	if m.AwayRest != nil {
		return *m.AwayRest
	}
	return defaultRestDays
}

func (m *Match) goalDiff() int { return m.HomeGoals - m.AwayGoals }
