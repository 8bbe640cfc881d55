package gamescsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/csvy/hockey-elo/internal/core/elo"
	"github.com/csvy/hockey-elo/internal/core/team"
	"github.com/csvy/hockey-elo/internal/telemetry"
)

// mandatoryColumns must all appear in the header.
var mandatoryColumns = []string{"home_team", "away_team", "home_goals", "away_goals"}

// Parse reads game records in feed order. A record with an empty or
// unparseable mandatory cell rejects the whole batch, matching the
// engine's validate-everything-first contract; optional cells degrade to
// "absent" instead.
func Parse(r io.Reader) ([]elo.Match, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range mandatoryColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("header: %w", &elo.MissingFieldError{Field: col})
		}
	}

	var matches []elo.Match
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		m, err := parseRow(row, idx)
		if err != nil {
			telemetry.Metrics.RecordsRejected.Inc()
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func parseRow(row []string, idx map[string]int) (elo.Match, error) {
	m := elo.Match{
		HomeTeam: team.Normalize(getCol(row, idx, "home_team")),
		AwayTeam: team.Normalize(getCol(row, idx, "away_team")),
		Division: strings.ToUpper(getCol(row, idx, "division")),
	}
	if m.HomeTeam == "" {
		return elo.Match{}, &elo.MissingFieldError{Field: "home_team"}
	}
	if m.AwayTeam == "" {
		return elo.Match{}, &elo.MissingFieldError{Field: "away_team"}
	}

	var err error
	if m.HomeGoals, err = mandatoryInt(row, idx, "home_goals"); err != nil {
		return elo.Match{}, err
	}
	if m.AwayGoals, err = mandatoryInt(row, idx, "away_goals"); err != nil {
		return elo.Match{}, err
	}

	m.Outcome = ParseOutcome(getCol(row, idx, "home_outcome"))
	m.HomeWin = optBool(getCol(row, idx, "home_win"))
	m.HomeRest = optDays(getCol(row, idx, "home_rest"))
	m.AwayRest = optDays(getCol(row, idx, "away_rest"))
	m.AwayTravelMiles = optMiles(getColAlias(row, idx, "away_travel_dist", "travel_distance"))
	m.HomeInjuries = optCount(getColAlias(row, idx, "home_injuries", "injuries"))
	m.AwayInjuries = optCount(getColAlias(row, idx, "away_injuries", "injuries"))
	return m, nil
}

// ParseOutcome maps a raw feed code onto the closed outcome set.
// Unrecognized non-empty codes degrade to a regulation loss: the row may
// still carry a usable score, and the fold must keep moving.
func ParseOutcome(code string) elo.Outcome {
	switch strings.ToUpper(code) {
	case "":
		return elo.OutcomeNone
	case "RW", "W", "1":
		return elo.OutcomeRegulationWin
	case "OTW":
		return elo.OutcomeOvertimeWin
	case "OTL":
		return elo.OutcomeOvertimeLoss
	case "RL", "L", "0":
		return elo.OutcomeRegulationLoss
	default:
		telemetry.Metrics.UnknownOutcomes.Inc()
		telemetry.Debugf("unknown outcome code %q, scoring as regulation loss", code)
		return elo.OutcomeRegulationLoss
	}
}

// getCol returns the named cell trimmed, or "" when the column is absent.
func getCol(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// getColAlias returns the first present column among names. Older exports
// used unprefixed spellings for travel and injuries.
func getColAlias(row []string, idx map[string]int, names ...string) string {
	for _, name := range names {
		if _, ok := idx[name]; ok {
			return getCol(row, idx, name)
		}
	}
	return ""
}

func mandatoryInt(row []string, idx map[string]int, name string) (int, error) {
	raw := getCol(row, idx, name)
	if raw == "" {
		return 0, &elo.MissingFieldError{Field: name}
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &elo.MissingFieldError{Field: name}
	}
	return n, nil
}

func optBool(raw string) *bool {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		telemetry.Debugf("unparseable win flag %q, ignoring", raw)
		return nil
	}
	return &v
}

func optDays(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		telemetry.Debugf("unparseable rest days %q, ignoring", raw)
		return nil
	}
	return &n
}

func optMiles(raw string) float64 {
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

func optCount(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
