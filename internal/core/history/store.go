package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/csvy/hockey-elo/internal/core/elo"
	"github.com/csvy/hockey-elo/internal/telemetry"

	_ "modernc.org/sqlite"
)

// ErrNoRuns is returned when the store holds no persisted runs yet.
var ErrNoRuns = errors.New("no persisted runs")

// Run captures one training run's identity and summary.
type Run struct {
	ID        string
	CreatedAt time.Time
	Params    elo.Params
	Matches   int

	// Metrics is nil when no holdout was evaluated; the columns are
	// written as SQL NULL.
	Metrics *elo.Metrics
}

// Store persists training runs in SQLite: one row per run plus the
// per-match rating ledger and the final ratings snapshot.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id         TEXT PRIMARY KEY,
			created_at TEXT    NOT NULL,
			params     TEXT    NOT NULL,
			matches    INTEGER NOT NULL,
			rmse       REAL,
			mae        REAL,
			r2         REAL
		)`,
		`CREATE TABLE IF NOT EXISTS rating_history (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id            TEXT    NOT NULL,
			seq               INTEGER NOT NULL,
			home_team         TEXT    NOT NULL,
			away_team         TEXT    NOT NULL,
			home_rating_after REAL    NOT NULL,
			away_rating_after REAL    NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS ratings (
			run_id TEXT NOT NULL,
			team   TEXT NOT NULL,
			rating REAL NOT NULL,
			PRIMARY KEY (run_id, team)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rh_run_seq ON rating_history(run_id, seq)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init schema (%s): %w", stmt, err)
		}
	}

	var runs int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&runs); err != nil {
		db.Close()
		return nil, fmt.Errorf("read run count: %w", err)
	}

	telemetry.Plainf("ratings store: opened %s  runs=%d", path, runs)

	return &Store{db: db}, nil
}

// SaveRun writes the run row, its full rating ledger, and the final
// ratings snapshot in one transaction.
func (s *Store) SaveRun(run Run, ledger []elo.HistoryEntry, ratings map[string]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	paramsJSON, err := json.Marshal(run.Params)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin run tx: %w", err)
	}
	defer tx.Rollback()

	var rmse, mae, r2 any
	if run.Metrics != nil {
		rmse, mae, r2 = run.Metrics.RMSE, run.Metrics.MAE, run.Metrics.R2
	}

	if _, err := tx.Exec(
		`INSERT INTO runs (id, created_at, params, matches, rmse, mae, r2)
		 VALUES (?,?,?,?,?,?,?)`,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		string(paramsJSON),
		run.Matches,
		rmse, mae, r2,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	insertEntry, err := tx.Prepare(
		`INSERT INTO rating_history (run_id, seq, home_team, away_team, home_rating_after, away_rating_after)
		 VALUES (?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare ledger insert: %w", err)
	}
	defer insertEntry.Close()

	for seq, e := range ledger {
		if _, err := insertEntry.Exec(run.ID, seq, e.HomeTeam, e.AwayTeam, e.HomeRating, e.AwayRating); err != nil {
			return fmt.Errorf("insert ledger row %d: %w", seq, err)
		}
	}

	insertRating, err := tx.Prepare(`INSERT INTO ratings (run_id, team, rating) VALUES (?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare rating insert: %w", err)
	}
	defer insertRating.Close()

	for team, rating := range ratings {
		if _, err := insertRating.Exec(run.ID, team, rating); err != nil {
			return fmt.Errorf("insert rating for %s: %w", team, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}

	telemetry.Metrics.RunsPersisted.Inc()
	return nil
}

// LatestRatings returns the final ratings snapshot of the most recent
// run, keyed by its run id.
func (s *Store) LatestRatings() (string, map[string]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var runID string
	err := s.db.QueryRow(`SELECT id FROM runs ORDER BY created_at DESC LIMIT 1`).Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, ErrNoRuns
	}
	if err != nil {
		return "", nil, fmt.Errorf("find latest run: %w", err)
	}

	rows, err := s.db.Query(`SELECT team, rating FROM ratings WHERE run_id = ?`, runID)
	if err != nil {
		return "", nil, fmt.Errorf("load ratings: %w", err)
	}
	defer rows.Close()

	ratings := make(map[string]float64)
	for rows.Next() {
		var team string
		var rating float64
		if err := rows.Scan(&team, &rating); err != nil {
			return "", nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings[team] = rating
	}
	if err := rows.Err(); err != nil {
		return "", nil, fmt.Errorf("iterate ratings: %w", err)
	}
	return runID, ratings, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
