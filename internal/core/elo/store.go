package elo

import (
	"sort"
	"sync"
)

// Store owns the current rating of every known team. The update engine is
// the only steady-state writer; predictions and reports read concurrently
// through the RWMutex. Paired reads and writes take the lock once, so a
// concurrent reader observes a match's effect entirely or not at all,
// never one side of it.
type Store struct {
	mu       sync.RWMutex
	baseline float64
	ratings  map[string]float64
}

func NewStore(baseline float64) *Store {
	return &Store{
		baseline: baseline,
		ratings:  make(map[string]float64),
	}
}

// Baseline returns the rating assigned to never-seen teams.
func (s *Store) Baseline() float64 { return s.baseline }

// Rating returns the team's current rating, or the baseline for a team
// the store has never seen. Lookups never create entries, so the update
// and prediction paths resolve unknown teams identically.
func (s *Store) Rating(team string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.ratings[team]; ok {
		return r
	}
	return s.baseline
}

// pair reads both sides under one lock.
func (s *Store) pair(home, away string) (float64, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.ratings[home]
	if !ok {
		h = s.baseline
	}
	a, ok := s.ratings[away]
	if !ok {
		a = s.baseline
	}
	return h, a
}

// setPair writes both sides under one lock.
func (s *Store) setPair(home, away string, homeRating, awayRating float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings[home] = homeRating
	s.ratings[away] = awayRating
}

// Set overwrites a single team's rating. Exists for the seeding and
// season-rollover collaborators; the fold itself writes pairs.
func (s *Store) Set(team string, rating float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings[team] = rating
}

// tierOffset maps a division tag to its starting offset from the baseline.
func tierOffset(division string) float64 {
	switch division {
	case "D1":
		return 100
	case "D3":
		return -100
	default:
		return 0
	}
}

// Seed resets every listed team to its tier-offset baseline. Ratings are
// overwritten, never accumulated, so reseeding the same roster is
// idempotent. Teams outside the list keep their entries.
func (s *Store) Seed(teams []string, divisions map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, team := range teams {
		s.ratings[team] = s.baseline + tierOffset(divisions[team])
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ratings)
}

// Snapshot returns a copy of every stored rating.
func (s *Store) Snapshot() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]float64, len(s.ratings))
	for team, r := range s.ratings {
		out[team] = r
	}
	return out
}

// Restore replaces the store's contents wholesale, for resuming from a
// persisted run.
func (s *Store) Restore(ratings map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings = make(map[string]float64, len(ratings))
	for team, r := range ratings {
		s.ratings[team] = r
	}
}

// Ranking pairs a team with its current rating for report output.
type Ranking struct {
	Team   string
	Rating float64
}

// Rankings returns teams ordered by descending rating, ties broken by
// name, truncated to topN when topN > 0.
func (s *Store) Rankings(topN int) []Ranking {
	s.mu.RLock()
	out := make([]Ranking, 0, len(s.ratings))
	for team, r := range s.ratings {
		out = append(out, Ranking{Team: team, Rating: r})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Team < out[j].Team
	})

	if topN > 0 && topN < len(out) {
		out = out[:topN]
	}
	return out
}
