package elo

import (
	"math"
	"testing"
)

func TestExpectedScore(t *testing.T) {
	for _, test := range []struct {
		name     string
		r        float64
		opponent float64
		expected float64
	}{
		{"even", 1500, 1500, 0.5},
		{"plus 400 heavy favorite", 1900, 1500, 0.9091},
		{"minus 400 underdog", 1500, 1900, 0.0909},
		{"plus 100", 1550, 1450, 0.6401},
		{"huge gap nears certainty", 2900, 1100, 0.99997},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := ExpectedScore(test.r, test.opponent)
			if math.Abs(got-test.expected) > 0.001 {
				t.Errorf("expected %v got %v", test.expected, got)
			}
		})
	}
}

func TestExpectedScoreSymmetry(t *testing.T) {
	ratings := []float64{800, 1200, 1500, 1503.7, 1900, 2400}
	for _, a := range ratings {
		for _, b := range ratings {
			sum := ExpectedScore(a, b) + ExpectedScore(b, a)
			if math.Abs(sum-1.0) > 1e-12 {
				t.Errorf("ExpectedScore(%v,%v)+ExpectedScore(%v,%v) = %v, want 1", a, b, b, a, sum)
			}
		}
	}
}

func TestAdjust(t *testing.T) {
	p := DefaultParams()
	p.HomeAdvantage = 50
	p.B2BPenalty = 30

	for _, test := range []struct {
		name     string
		rating   float64
		ctx      sideContext
		expected float64
	}{
		{"home ice", 1500, sideContext{home: true, restDays: 2}, 1550},
		{"away no context", 1500, sideContext{restDays: 2}, 1500},
		{"one rest day is a back to back", 1500, sideContext{home: true, restDays: 1}, 1520},
		{"zero rest days too", 1500, sideContext{restDays: 0}, 1470},
		{"travel", 1500, sideContext{restDays: 3, travelMiles: 2000}, 1470},
		{"travel ignored at home", 1500, sideContext{home: true, restDays: 3, travelMiles: 2000}, 1550},
		{"injuries", 1500, sideContext{restDays: 2, injuries: 2}, 1450},
		{"stacked penalties", 1500, sideContext{restDays: 1, travelMiles: 1000, injuries: 1}, 1430},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := p.adjust(test.rating, test.ctx)
			if math.Abs(got-test.expected) > 1e-9 {
				t.Errorf("expected %v got %v", test.expected, got)
			}
		})
	}
}
