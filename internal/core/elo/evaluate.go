package elo

import (
	"fmt"
	"math"
)

// Metrics aggregates prediction error over a held-out set of games.
type Metrics struct {
	RMSE float64 `json:"rmse"`
	MAE  float64 `json:"mae"`
	R2   float64 `json:"r2"`
}

// Evaluate predicts home goals for each match read-only and scores the
// predictions against the observed counts. R2 is 0 when the observed
// goals carry no variance; an empty holdout yields zero metrics.
func (m *Model) Evaluate(matches []Match) (Metrics, error) {
	predicted := make([]float64, 0, len(matches))
	observed := make([]float64, 0, len(matches))

	for i := range matches {
		if err := matches[i].Validate(); err != nil {
			return Metrics{}, fmt.Errorf("match %d: %w", i, err)
		}
		home, _, err := m.PredictGoals(matches[i])
		if err != nil {
			return Metrics{}, fmt.Errorf("match %d: %w", i, err)
		}
		predicted = append(predicted, home)
		observed = append(observed, float64(matches[i].HomeGoals))
	}
	return score(predicted, observed), nil
}

func score(predicted, observed []float64) Metrics {
	n := float64(len(predicted))
	if n == 0 {
		return Metrics{}
	}

	var mean float64
	for _, o := range observed {
		mean += o
	}
	mean /= n

	var ssRes, absSum, ssTot float64
	for i := range predicted {
		e := predicted[i] - observed[i]
		ssRes += e * e
		absSum += math.Abs(e)
		d := observed[i] - mean
		ssTot += d * d
	}

	met := Metrics{
		RMSE: math.Sqrt(ssRes / n),
		MAE:  absSum / n,
	}
	if ssTot > 0 {
		met.R2 = 1 - ssRes/ssTot
	}
	return met
}
