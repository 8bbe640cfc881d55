package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	_ "modernc.org/sqlite"
)

var runsQuery = `SELECT substr(id, 1, 8) AS run,
	substr(created_at, 1, 19) AS created,
	matches,
	CASE WHEN rmse IS NULL THEN '-' ELSE printf('%.4f', rmse) END AS rmse,
	CASE WHEN mae  IS NULL THEN '-' ELSE printf('%.4f', mae)  END AS mae,
	CASE WHEN r2   IS NULL THEN '-' ELSE printf('%.4f', r2)   END AS r2
FROM runs ORDER BY created_at DESC LIMIT ?`

var ledgerQuery = `SELECT seq, home_team, away_team,
	printf('%.1f', home_rating_after) AS home_after,
	printf('%.1f', away_rating_after) AS away_after
FROM rating_history WHERE run_id LIKE ? ORDER BY seq DESC LIMIT ?`

var ratingsQuery = `SELECT team, printf('%.1f', rating) AS rating
FROM ratings WHERE run_id LIKE ? ORDER BY rating DESC LIMIT ?`

func main() {
	dbPath := flag.String("db", "data/ratings.db", "ratings database path")
	n := flag.Int("n", 10, "rows to display")
	runID := flag.String("run", "", "run id (or prefix): show its ledger tail and final ratings")
	flag.Parse()

	db, err := sql.Open("sqlite", *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open %s: %v\n", *dbPath, err)
		os.Exit(1)
	}
	defer db.Close()

	if *runID != "" {
		printRun(db, *runID, *n)
		return
	}
	printRuns(db, *n)
}

func printRuns(db *sql.DB, n int) {
	fmt.Println("=== Training Runs ===")

	count := 0
	if err := db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&count); err != nil {
		fmt.Printf("  (cannot count runs: %v)\n", err)
		return
	}
	if count == 0 {
		fmt.Println("(no runs)")
		return
	}

	fmt.Printf("Runs: %d  |  Showing last %d:\n", count, min(n, count))
	printQuery(db, runsQuery, n)
}

func printRun(db *sql.DB, runID string, n int) {
	pattern := runID + "%"

	fmt.Printf("=== Run %s: final ratings (top %d) ===\n", runID, n)
	printQuery(db, ratingsQuery, pattern, n)

	fmt.Printf("\n=== Run %s: rating ledger (last %d folds) ===\n", runID, n)
	printQuery(db, ledgerQuery, pattern, n)
}

func printQuery(db *sql.DB, query string, args ...any) {
	rows, err := db.Query(query, args...)
	if err != nil {
		fmt.Printf("  (query error: %v)\n", err)
		return
	}
	defer rows.Close()

	colNames, _ := rows.Columns()
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(colNames, "\t"))
	fmt.Fprintln(w, strings.Repeat("----\t", len(colNames)))

	vals := make([]any, len(colNames))
	ptrs := make([]any, len(colNames))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			fmt.Fprintf(os.Stderr, "  scan error: %v\n", err)
			continue
		}
		cells := make([]string, len(colNames))
		for i, v := range vals {
			cells[i] = fmtCell(v)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
}

func fmtCell(v any) string {
	if v == nil {
		return "-"
	}
	switch x := v.(type) {
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%.5f", x)
	case int64:
		return fmt.Sprintf("%d", x)
	case []byte:
		return string(x)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", v)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
