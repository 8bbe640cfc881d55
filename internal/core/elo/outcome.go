package elo

// Outcome is the closed set of game results the engine recognizes, seen
// from the home side. OutcomeNone marks a record whose feed carried no
// explicit code; the engine then falls back to the win flag, and last to
// the goal comparison.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeRegulationWin
	OutcomeOvertimeWin
	OutcomeOvertimeLoss
	OutcomeRegulationLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRegulationWin:
		return "regulation_win"
	case OutcomeOvertimeWin:
		return "overtime_win"
	case OutcomeOvertimeLoss:
		return "overtime_loss"
	case OutcomeRegulationLoss:
		return "regulation_loss"
	default:
		return "none"
	}
}

// actualScore maps an outcome to the home side's realized score in [0,1].
// An overtime result splits the point between the sides instead of
// awarding it whole.
func (p Params) actualScore(o Outcome) float64 {
	switch o {
	case OutcomeRegulationWin:
		return 1.0
	case OutcomeOvertimeWin:
		return p.OTWinMultiplier
	case OutcomeOvertimeLoss:
		return 1.0 - p.OTWinMultiplier
	default:
		return 0.0
	}
}
