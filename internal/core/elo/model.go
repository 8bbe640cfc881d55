package elo

import (
	"fmt"
	"sync"

	"github.com/csvy/hockey-elo/internal/telemetry"
)

// Model binds a validated parameter set, the rating store, and the audit
// history into one sequential rating engine. Matches must be folded in
// chronological order: the recurrence is path-dependent, so order is part
// of the input, not an implementation detail.
type Model struct {
	params Params
	store  *Store

	mu      sync.Mutex
	history []HistoryEntry
}

// HistoryEntry records both ratings as they stood immediately after one
// match was folded.
type HistoryEntry struct {
	HomeTeam   string
	AwayTeam   string
	HomeRating float64
	AwayRating float64
}

// NewModel validates params once and builds an empty model around them.
func NewModel(params Params) (*Model, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	return &Model{
		params: params,
		store:  NewStore(params.InitialRating),
	}, nil
}

func (m *Model) Params() Params { return m.params }

// Store exposes the live rating store for reports and collaborators.
func (m *Model) Store() *Store { return m.store }

// Fit replays a chronologically ordered season through the engine. Every
// record is validated before any rating moves, so one bad record rejects
// the whole batch with the store untouched. The roster is reseeded from
// the batch; the audit history keeps accumulating across fits.
func (m *Model) Fit(matches []Match) error {
	for i := range matches {
		if err := matches[i].Validate(); err != nil {
			return fmt.Errorf("match %d: %w", i, err)
		}
	}

	teams, divisions := roster(matches)
	m.store.Seed(teams, divisions)
	telemetry.Metrics.TeamsRated.Set(int64(m.store.Len()))

	for i := range matches {
		m.apply(&matches[i])
	}
	return nil
}

// Update validates and folds a single match. The same ordering contract
// as Fit applies: replaying out of order silently corrupts the
// recurrence, and the only remedy is refitting from scratch.
func (m *Model) Update(match Match) error {
	if err := match.Validate(); err != nil {
		return err
	}
	m.apply(&match)
	return nil
}

// apply runs one step of the rating recurrence. The caller has already
// validated the record.
func (m *Model) apply(match *Match) {
	homeRaw, awayRaw := m.store.pair(match.HomeTeam, match.AwayTeam)

	homeAdj, awayAdj := m.adjustedRatings(homeRaw, awayRaw, match)
	expected := ExpectedScore(homeAdj, awayAdj)
	actual := m.homeActual(match)

	k := m.params.KFactor * m.params.movMultiplier(match.goalDiff())
	delta := k * (actual - expected)

	// Equal and opposite: the pair's rating sum is invariant.
	m.store.setPair(match.HomeTeam, match.AwayTeam, homeRaw+delta, awayRaw-delta)

	m.mu.Lock()
	m.history = append(m.history, HistoryEntry{
		HomeTeam:   match.HomeTeam,
		AwayTeam:   match.AwayTeam,
		HomeRating: homeRaw + delta,
		AwayRating: awayRaw - delta,
	})
	m.mu.Unlock()

	telemetry.Metrics.MatchesFolded.Inc()
}

// adjustedRatings applies each side's situational corrections plus the
// rest differential, which needs both sides and so lands here rather than
// in adjust. Shared by the update and prediction paths so unknown teams
// and contextual defaults resolve identically on both.
func (m *Model) adjustedRatings(homeRaw, awayRaw float64, match *Match) (float64, float64) {
	homeRest := match.homeRestDays()
	awayRest := match.awayRestDays()

	homeAdj := m.params.adjust(homeRaw, sideContext{
		home:     true,
		restDays: homeRest,
		injuries: match.HomeInjuries,
	})
	awayAdj := m.params.adjust(awayRaw, sideContext{
		restDays:    awayRest,
		travelMiles: match.AwayTravelMiles,
		injuries:    match.AwayInjuries,
	})

	homeAdj += float64(homeRest-awayRest) * m.params.RestAdvantagePerDay
	return homeAdj, awayAdj
}

// homeActual resolves the home side's realized score: explicit outcome
// code first, then the win flag, last the goal comparison.
func (m *Model) homeActual(match *Match) float64 {
	if match.Outcome != OutcomeNone {
		return m.params.actualScore(match.Outcome)
	}
	if match.HomeWin != nil {
		if *match.HomeWin {
			return 1.0
		}
		return 0.0
	}
	if match.HomeGoals > match.AwayGoals {
		return 1.0
	}
	return 0.0
}

// roster collects teams in first-appearance order plus the division tag
// from each team's first home appearance that carries one.
func roster(matches []Match) ([]string, map[string]string) {
	var teams []string
	seen := make(map[string]bool)
	divisions := make(map[string]string)

	for i := range matches {
		m := &matches[i]
		if !seen[m.HomeTeam] {
			seen[m.HomeTeam] = true
			teams = append(teams, m.HomeTeam)
		}
		if !seen[m.AwayTeam] {
			seen[m.AwayTeam] = true
			teams = append(teams, m.AwayTeam)
		}
		if m.Division != "" {
			if _, ok := divisions[m.HomeTeam]; !ok {
				divisions[m.HomeTeam] = m.Division
			}
		}
	}
	return teams, divisions
}

// History returns a copy of the append-only audit ledger, one entry per
// folded match in processing order.
func (m *Model) History() []HistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]HistoryEntry, len(m.history))
	copy(out, m.history)
	return out
}
