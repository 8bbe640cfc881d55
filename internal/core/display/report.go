package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/csvy/hockey-elo/internal/core/elo"
	"github.com/csvy/hockey-elo/internal/core/history"
)

const divider = "========================================================================"

// Rankings writes the standings as an aligned table, best team first.
func Rankings(w io.Writer, rankings []elo.Ranking) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "rank\tteam\trating")
	fmt.Fprintln(tw, "----\t----\t------")
	for i, r := range rankings {
		fmt.Fprintf(tw, "%d\t%s\t%.1f\n", i+1, r.Team, r.Rating)
	}
	tw.Flush()
}

// RunSummary writes the post-training report: run identity, fold counts,
// and holdout metrics when a holdout was evaluated.
func RunSummary(w io.Writer, run history.Run, teams int) {
	fmt.Fprintf(w, "%s\n", divider)
	fmt.Fprintf(w, "  Training run %s\n", run.ID)
	fmt.Fprintf(w, "%s\n", divider)
	fmt.Fprintf(w, "    %-24s%s\n", "Matches folded:", humanize.Comma(int64(run.Matches)))
	fmt.Fprintf(w, "    %-24s%d\n", "Teams rated:", teams)
	fmt.Fprintf(w, "    %-24sk=%.0f home=%.0f mov=%.2f (%s)\n", "Params:",
		run.Params.KFactor, run.Params.HomeAdvantage, run.Params.MOVMultiplier, run.Params.MOVMethod)
	if run.Metrics != nil {
		Metrics(w, *run.Metrics)
	}
	fmt.Fprintf(w, "%s\n", divider)
}

// Metrics writes holdout error metrics with aligned labels.
func Metrics(w io.Writer, m elo.Metrics) {
	fmt.Fprintf(w, "    %-24s%.4f\n", "RMSE (goals):", m.RMSE)
	fmt.Fprintf(w, "    %-24s%.4f\n", "MAE (goals):", m.MAE)
	fmt.Fprintf(w, "    %-24s%.4f\n", "R2:", m.R2)
}

// Matchup writes a prediction report for one game.
func Matchup(w io.Writer, match elo.Match, homeProb float64, winner string, homeGoals, awayGoals float64) {
	home := shortName(match.HomeTeam)
	away := shortName(match.AwayTeam)

	fmt.Fprintf(w, "%s\n", divider)
	fmt.Fprintf(w, "  %s @ %s\n", match.AwayTeam, match.HomeTeam)
	fmt.Fprintf(w, "%s\n", divider)
	fmt.Fprintf(w, "    %-24s%s %.1f%%  |  %s %.1f%%\n",
		"Win probability:", home, homeProb*100, away, (1-homeProb)*100)
	fmt.Fprintf(w, "    %-24s%s\n", "Predicted winner:", winner)
	fmt.Fprintf(w, "    %-24s%.2f - %.2f\n", "Expected goals:", homeGoals, awayGoals)
	fmt.Fprintf(w, "%s\n", divider)
}

func shortName(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return name
	}
	return parts[len(parts)-1]
}
