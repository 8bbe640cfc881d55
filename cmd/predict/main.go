package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/csvy/hockey-elo/internal/config"
	"github.com/csvy/hockey-elo/internal/core/display"
	"github.com/csvy/hockey-elo/internal/core/elo"
	"github.com/csvy/hockey-elo/internal/core/history"
	"github.com/csvy/hockey-elo/internal/core/team"
	"github.com/csvy/hockey-elo/internal/telemetry"
)

func main() {
	cfg := config.Load()

	home := flag.String("home", "", "home team name")
	away := flag.String("away", "", "away team name")
	dbPath := flag.String("db", cfg.RatingsDBPath, "ratings database path")
	paramsPath := flag.String("params", cfg.ParamsPath, "model parameter YAML")
	homeRest := flag.Int("home-rest", -1, "home side days of rest (-1 = unknown)")
	awayRest := flag.Int("away-rest", -1, "away side days of rest (-1 = unknown)")
	travel := flag.Float64("travel", 0, "away travel miles")
	homeInj := flag.Int("home-injuries", 0, "home key injuries out")
	awayInj := flag.Int("away-injuries", 0, "away key injuries out")
	flag.Parse()

	telemetry.Init(telemetry.ParseLogLevel(cfg.LogLevel))

	if *home == "" || *away == "" {
		fmt.Fprintln(os.Stderr, "usage: predict -home <team> -away <team> [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	params, err := config.LoadModelParams(*paramsPath)
	if err != nil {
		telemetry.Warnf("params file %s: %v, using defaults", *paramsPath, err)
		params = elo.DefaultParams()
	}

	model, err := elo.NewModel(params)
	if err != nil {
		telemetry.Errorf("model: %v", err)
		os.Exit(1)
	}

	store, err := history.Open(*dbPath)
	if err != nil {
		telemetry.Errorf("open ratings store: %v", err)
		os.Exit(1)
	}
	runID, ratings, err := store.LatestRatings()
	store.Close()
	if err != nil {
		telemetry.Errorf("load ratings: %v (run train first)", err)
		os.Exit(1)
	}
	model.Store().Restore(ratings)
	telemetry.Infof("loaded %d team ratings from run %s", len(ratings), runID)

	match := elo.Match{
		HomeTeam:        team.Normalize(*home),
		AwayTeam:        team.Normalize(*away),
		AwayTravelMiles: *travel,
		HomeInjuries:    *homeInj,
		AwayInjuries:    *awayInj,
	}
	if *homeRest >= 0 {
		match.HomeRest = homeRest
	}
	if *awayRest >= 0 {
		match.AwayRest = awayRest
	}

	prob, err := model.WinProbability(match)
	if err != nil {
		telemetry.Errorf("predict: %v", err)
		os.Exit(1)
	}
	winner, _, err := model.PredictWinner(match)
	if err != nil {
		telemetry.Errorf("predict: %v", err)
		os.Exit(1)
	}
	homeGoals, awayGoals, err := model.PredictGoals(match)
	if err != nil {
		telemetry.Errorf("predict: %v", err)
		os.Exit(1)
	}

	display.Matchup(os.Stdout, match, prob, winner, homeGoals, awayGoals)
}
