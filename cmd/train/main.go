package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/csvy/hockey-elo/internal/adapters/inbound/gamescsv"
	"github.com/csvy/hockey-elo/internal/config"
	"github.com/csvy/hockey-elo/internal/core/display"
	"github.com/csvy/hockey-elo/internal/core/elo"
	"github.com/csvy/hockey-elo/internal/core/history"
	"github.com/csvy/hockey-elo/internal/core/season"
	"github.com/csvy/hockey-elo/internal/telemetry"
)

func main() {
	cfg := config.Load()

	paramsPath := flag.String("params", cfg.ParamsPath, "model parameter YAML")
	evalPath := flag.String("eval", "", "holdout CSV to evaluate after training")
	topN := flag.Int("top", 10, "rankings rows to print (0 = all)")
	carryover := flag.Bool("carryover", false, "treat each CSV as one season and regress ratings between files")
	dbPath := flag.String("db", cfg.RatingsDBPath, "ratings database path")
	noSave := flag.Bool("no-save", false, "skip persisting the run")
	flag.Parse()

	telemetry.Init(telemetry.ParseLogLevel(cfg.LogLevel))

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: train [flags] season1.csv [season2.csv ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	params := loadParams(*paramsPath)
	model, err := elo.NewModel(params)
	if err != nil {
		telemetry.Errorf("model: %v", err)
		os.Exit(1)
	}

	start := time.Now()
	folded, err := trainAll(model, params, paths, *carryover)
	if err != nil {
		telemetry.Errorf("train: %v", err)
		os.Exit(1)
	}
	telemetry.Infof("trained on %s matches across %d files in %s",
		humanize.Comma(int64(folded)), len(paths), time.Since(start).Round(time.Millisecond))

	run := history.Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Params:    params,
		Matches:   folded,
	}

	if *evalPath != "" {
		holdout, err := gamescsv.LoadFile(*evalPath)
		if err != nil {
			telemetry.Errorf("load holdout: %v", err)
			os.Exit(1)
		}
		metrics, err := model.Evaluate(holdout)
		if err != nil {
			telemetry.Errorf("evaluate: %v", err)
			os.Exit(1)
		}
		run.Metrics = &metrics
	}

	display.RunSummary(os.Stdout, run, model.Store().Len())
	fmt.Println()
	display.Rankings(os.Stdout, model.Store().Rankings(*topN))

	if *noSave {
		return
	}

	store, err := history.Open(*dbPath)
	if err != nil {
		telemetry.Errorf("open ratings store: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.SaveRun(run, model.History(), model.Store().Snapshot()); err != nil {
		telemetry.Errorf("save run: %v", err)
		os.Exit(1)
	}
	telemetry.Infof("run %s persisted to %s", run.ID, *dbPath)
}

// loadParams falls back to engine defaults when the file is absent or
// unreadable.
func loadParams(path string) elo.Params {
	params, err := config.LoadModelParams(path)
	if err != nil {
		telemetry.Warnf("params file %s: %v, using defaults", path, err)
		return elo.DefaultParams()
	}
	return params
}

// trainAll folds every file through the model. With carryover, each file
// is one season: the first fits the roster, later files regress ratings
// at the boundary and then fold match by match. Each file is validated
// in full before any of its matches move a rating.
func trainAll(model *elo.Model, params elo.Params, paths []string, carryover bool) (int, error) {
	if !carryover {
		matches, err := gamescsv.LoadFiles(paths)
		if err != nil {
			return 0, err
		}
		if err := model.Fit(matches); err != nil {
			return 0, err
		}
		return len(matches), nil
	}

	folded := 0
	for i, path := range paths {
		matches, err := gamescsv.LoadFile(path)
		if err != nil {
			return folded, err
		}

		if i == 0 {
			if err := model.Fit(matches); err != nil {
				return folded, fmt.Errorf("%s: %w", path, err)
			}
			folded += len(matches)
			continue
		}

		for j := range matches {
			if err := matches[j].Validate(); err != nil {
				return folded, fmt.Errorf("%s: match %d: %w", path, j, err)
			}
		}
		season.Rollover(model.Store(), params)
		for j := range matches {
			if err := model.Update(matches[j]); err != nil {
				return folded, fmt.Errorf("%s: match %d: %w", path, j, err)
			}
			folded++
		}
	}
	return folded, nil
}
