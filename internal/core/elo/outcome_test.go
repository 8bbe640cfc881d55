package elo

import (
	"math"
	"testing"
)

func TestActualScore(t *testing.T) {
	p := DefaultParams()
	for _, test := range []struct {
		name     string
		outcome  Outcome
		expected float64
	}{
		{"regulation win", OutcomeRegulationWin, 1.0},
		{"overtime win", OutcomeOvertimeWin, 0.75},
		{"overtime loss", OutcomeOvertimeLoss, 0.25},
		{"regulation loss", OutcomeRegulationLoss, 0.0},
		{"none", OutcomeNone, 0.0},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := p.actualScore(test.outcome)
			if math.Abs(got-test.expected) > 1e-9 {
				t.Errorf("expected %v got %v", test.expected, got)
			}
		})
	}
}

func TestOvertimeScoresSumToOne(t *testing.T) {
	// The two sides of an overtime game split a single point between them.
	for _, mult := range []float64{0.5, 0.6, 0.75, 0.9, 1.0} {
		p := DefaultParams()
		p.OTWinMultiplier = mult
		sum := p.actualScore(OutcomeOvertimeWin) + p.actualScore(OutcomeOvertimeLoss)
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("multiplier %v: winner %v + loser %v = %v, want 1", mult,
				p.actualScore(OutcomeOvertimeWin), p.actualScore(OutcomeOvertimeLoss), sum)
		}
	}
}
