package elo

import (
	"errors"
	"math"
	"testing"
)

func TestWinProbabilityUnseenTeams(t *testing.T) {
	m := newTestModel(t, DefaultParams())
	if err := m.Fit([]Match{{HomeTeam: "a", AwayTeam: "b", HomeGoals: 2, AwayGoals: 1}}); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	// Teams the model never saw rate at the baseline, so the matchup is even.
	p, err := m.WinProbability(Match{HomeTeam: "ghosts", AwayTeam: "phantoms"})
	if err != nil {
		t.Fatalf("WinProbability: %v", err)
	}
	if math.Abs(p-0.5) > 1e-9 {
		t.Errorf("expected 0.5 got %v", p)
	}
	if m.Store().Len() != 2 {
		t.Errorf("prediction created store entries: %d", m.Store().Len())
	}
}

func TestPredictionsAreReadOnly(t *testing.T) {
	m := newTestModel(t, DefaultParams())
	if err := m.Fit([]Match{{HomeTeam: "a", AwayTeam: "b", HomeGoals: 4, AwayGoals: 2}}); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	before := m.Store().Snapshot()
	folds := len(m.History())

	if _, err := m.WinProbability(Match{HomeTeam: "a", AwayTeam: "b"}); err != nil {
		t.Fatalf("WinProbability: %v", err)
	}
	if _, _, err := m.PredictWinner(Match{HomeTeam: "b", AwayTeam: "ghosts"}); err != nil {
		t.Fatalf("PredictWinner: %v", err)
	}
	if _, _, err := m.PredictGoals(Match{HomeTeam: "a", AwayTeam: "b"}); err != nil {
		t.Fatalf("PredictGoals: %v", err)
	}

	after := m.Store().Snapshot()
	if len(after) != len(before) {
		t.Fatalf("prediction changed store size: %d -> %d", len(before), len(after))
	}
	for team, r := range before {
		if after[team] != r {
			t.Errorf("prediction moved %s: %v -> %v", team, r, after[team])
		}
	}
	if len(m.History()) != folds {
		t.Errorf("prediction appended history: %d -> %d", folds, len(m.History()))
	}
}

func TestPredictWinner(t *testing.T) {
	m := newTestModel(t, DefaultParams())
	m.Store().Set("strong", 1700)
	m.Store().Set("weak", 1300)

	winner, p, err := m.PredictWinner(Match{HomeTeam: "strong", AwayTeam: "weak"})
	if err != nil {
		t.Fatalf("PredictWinner: %v", err)
	}
	if winner != "strong" {
		t.Errorf("expected strong got %q", winner)
	}
	if math.Abs(p-0.9091) > 0.001 {
		t.Errorf("expected 0.9091 got %v", p)
	}

	// The favorite wins from either venue; the probability is theirs.
	winner, p, err = m.PredictWinner(Match{HomeTeam: "weak", AwayTeam: "strong"})
	if err != nil {
		t.Fatalf("PredictWinner: %v", err)
	}
	if winner != "strong" {
		t.Errorf("expected strong got %q", winner)
	}
	if math.Abs(p-0.9091) > 0.001 {
		t.Errorf("expected 0.9091 got %v", p)
	}
}

func TestPredictWinnerDeadEven(t *testing.T) {
	m := newTestModel(t, DefaultParams())
	winner, p, err := m.PredictWinner(Match{HomeTeam: "a", AwayTeam: "b"})
	if err != nil {
		t.Fatalf("PredictWinner: %v", err)
	}
	if winner != "b" {
		t.Errorf("expected dead even matchup to report the away side, got %q", winner)
	}
	if p != 0.5 {
		t.Errorf("expected 0.5 got %v", p)
	}
}

func TestPredictGoals(t *testing.T) {
	m := newTestModel(t, DefaultParams())

	home, away, err := m.PredictGoals(Match{HomeTeam: "a", AwayTeam: "b"})
	if err != nil {
		t.Fatalf("PredictGoals: %v", err)
	}
	if home != 3.0 || away != 3.0 {
		t.Errorf("even matchup: expected 3.0/3.0 got %v/%v", home, away)
	}

	m.Store().Set("strong", 1700)
	m.Store().Set("weak", 1300)
	home, away, err = m.PredictGoals(Match{HomeTeam: "strong", AwayTeam: "weak"})
	if err != nil {
		t.Fatalf("PredictGoals: %v", err)
	}
	if math.Abs(home-5.4545) > 0.001 {
		t.Errorf("expected 5.4545 got %v", home)
	}
	if math.Abs(away-0.5455) > 0.001 {
		t.Errorf("expected 0.5455 got %v", away)
	}
	if math.Abs(home+away-6.0) > 1e-9 {
		t.Errorf("expected totals pinned to twice the league average, got %v", home+away)
	}
}

func TestPredictMissingTeam(t *testing.T) {
	m := newTestModel(t, DefaultParams())
	_, err := m.WinProbability(Match{HomeTeam: "", AwayTeam: "b"})
	if err == nil {
		t.Fatal("expected error for blank home team, got nil")
	}
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "home_team" {
		t.Errorf("expected field home_team got %q", missing.Field)
	}
}
