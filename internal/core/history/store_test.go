package history

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/csvy/hockey-elo/internal/core/elo"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ratings.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLatestRatingsEmpty(t *testing.T) {
	s := openTestStore(t)
	_, _, err := s.LatestRatings()
	if !errors.Is(err, ErrNoRuns) {
		t.Errorf("expected ErrNoRuns got %v", err)
	}
}

func TestSaveRunRoundTrip(t *testing.T) {
	s := openTestStore(t)
	now := time.Now()

	older := Run{
		ID:        "run-older",
		CreatedAt: now.Add(-time.Hour),
		Params:    elo.DefaultParams(),
		Matches:   82,
	}
	err := s.SaveRun(older,
		[]elo.HistoryEntry{{HomeTeam: "a", AwayTeam: "b", HomeRating: 1516, AwayRating: 1484}},
		map[string]float64{"a": 1516, "b": 1484})
	if err != nil {
		t.Fatalf("SaveRun older: %v", err)
	}

	newer := Run{
		ID:        "run-newer",
		CreatedAt: now,
		Params:    elo.DefaultParams(),
		Matches:   164,
		Metrics:   &elo.Metrics{RMSE: 1.21, MAE: 0.97, R2: 0.41},
	}
	wantRatings := map[string]float64{"a": 1533.25, "b": 1466.75, "c": 1500}
	err = s.SaveRun(newer,
		[]elo.HistoryEntry{
			{HomeTeam: "a", AwayTeam: "b", HomeRating: 1516, AwayRating: 1484},
			{HomeTeam: "a", AwayTeam: "c", HomeRating: 1533.25, AwayRating: 1482.75},
		},
		wantRatings)
	if err != nil {
		t.Fatalf("SaveRun newer: %v", err)
	}

	id, ratings, err := s.LatestRatings()
	if err != nil {
		t.Fatalf("LatestRatings: %v", err)
	}
	if id != "run-newer" {
		t.Errorf("expected most recent run, got %q", id)
	}
	if len(ratings) != len(wantRatings) {
		t.Fatalf("expected %d ratings got %d", len(wantRatings), len(ratings))
	}
	for team, want := range wantRatings {
		if ratings[team] != want {
			t.Errorf("%s: expected %v got %v", team, want, ratings[team])
		}
	}
}

func TestSaveRunDuplicateID(t *testing.T) {
	s := openTestStore(t)
	run := Run{ID: "dup", CreatedAt: time.Now(), Params: elo.DefaultParams(), Matches: 1}

	if err := s.SaveRun(run, nil, map[string]float64{"a": 1500}); err != nil {
		t.Fatalf("first SaveRun: %v", err)
	}
	if err := s.SaveRun(run, nil, map[string]float64{"a": 1500}); err == nil {
		t.Error("expected primary key violation on duplicate run id, got nil")
	}

	// The failed save must not clobber the stored snapshot.
	id, ratings, err := s.LatestRatings()
	if err != nil {
		t.Fatalf("LatestRatings: %v", err)
	}
	if id != "dup" || ratings["a"] != 1500 {
		t.Errorf("expected original run intact, got %q %v", id, ratings)
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	run := Run{ID: "persisted", CreatedAt: time.Now(), Params: elo.DefaultParams(), Matches: 3}
	if err := s.SaveRun(run, nil, map[string]float64{"a": 1512.5}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	id, ratings, err := reopened.LatestRatings()
	if err != nil {
		t.Fatalf("LatestRatings after reopen: %v", err)
	}
	if id != "persisted" {
		t.Errorf("expected persisted run got %q", id)
	}
	if ratings["a"] != 1512.5 {
		t.Errorf("expected 1512.5 got %v", ratings["a"])
	}
}

func TestCloseNilSafe(t *testing.T) {
	var s *Store
	if err := s.Close(); err != nil {
		t.Errorf("expected nil-safe close, got %v", err)
	}
}
