// SPDX-License-Identifier: MIT

// Package store keeps the history of finished ranking runs.
//
// Backends:
//   - SQLite (modernc.org/sqlite, pure Go) for a file path or ":memory:".
//   - PostgreSQL (github.com/lib/pq) for a postgres:// DSN.
//
// Both share one schema; queries are written with "?" placeholders and
// rebound to "$n" for PostgreSQL.
//
// Store is safe for concurrent use; SaveRun writes a run and its scores in
// one transaction.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvmcdm/internal/config"
	"github.com/katalvlaran/lvmcdm/topsis"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure-Go SQLite driver
)

// DefaultListLimit is used by ListRuns for a non-positive limit.
const DefaultListLimit = 20

var (
	// ErrRunNotFound is returned by GetRun for an unknown ID.
	ErrRunNotFound = errors.New("store: run not found")

	// ErrEmptyRun is returned by SaveRun for a run without scores.
	ErrEmptyRun = errors.New("store: run has no scores")
)

// RunScore is one ranked alternative of a stored run.
type RunScore struct {
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	Index         int     `json:"index"`
	Score         float64 `json:"score"`
	DistanceBest  float64 `json:"distance_best"`
	DistanceWorst float64 `json:"distance_worst"`
}

// Run is a stored ranking.
type Run struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Label     string             `json:"label,omitempty"`
	Criteria  []topsis.Criterion `json:"criteria"`
	Scores    []RunScore         `json:"scores"`
}

// Summary is the listing view of a run.
type Summary struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Label        string    `json:"label,omitempty"`
	Alternatives int       `json:"alternatives"`
	Best         string    `json:"best"`
	BestScore    float64   `json:"best_score"`
}

// NewRun converts a ranking result into an unsaved Run.
func NewRun(label string, res *topsis.Result) Run {
	run := Run{Label: label}
	if res == nil {
		return run
	}
	run.Criteria = append([]topsis.Criterion(nil), res.Criteria...)
	run.Scores = make([]RunScore, len(res.Ranking))
	for i, s := range res.Ranking {
		run.Scores[i] = RunScore{
			Rank:          s.Rank,
			Name:          s.Alternative.Name,
			Index:         s.Index,
			Score:         s.Score,
			DistanceBest:  s.DistanceBest,
			DistanceWorst: s.DistanceWorst,
		}
	}

	return run
}

// Store persists runs in SQLite or PostgreSQL.
type Store struct {
	db       *sql.DB
	postgres bool
	now      func() time.Time
}

// Open connects to dsn and migrates the schema. A postgres:// DSN selects
// PostgreSQL; anything else is a SQLite path.
func Open(ctx context.Context, dsn string) (*Store, error) {
	s := &Store{postgres: config.IsPostgres(dsn), now: time.Now}

	driver := "sqlite"
	if s.postgres {
		driver = "postgres"
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", driver, err)
	}
	s.db = db

	if s.postgres {
		if err = db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: ping: %w", err)
		}
	} else {
		// One writer at a time avoids SQLITE_BUSY under concurrent SaveRun.
		db.SetMaxOpenConns(1)
		if _, err = db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: enable WAL: %w", err)
		}
	}

	if err = s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Backend returns "sqlite" or "postgres".
func (s *Store) Backend() string {
	if s.postgres {
		return "postgres"
	}

	return "sqlite"
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at BIGINT NOT NULL,
		label TEXT NOT NULL DEFAULT '',
		criteria TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS run_scores (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		rank INTEGER NOT NULL,
		name TEXT NOT NULL,
		input_index INTEGER NOT NULL,
		score DOUBLE PRECISION NOT NULL,
		distance_best DOUBLE PRECISION NOT NULL,
		distance_worst DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (run_id, rank)
	)`,
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

// rebind rewrites "?" placeholders to "$1..$n" for PostgreSQL.
func (s *Store) rebind(query string) string {
	if !s.postgres {
		return query
	}

	return Rebind(query)
}

// Rebind rewrites "?" placeholders to "$1..$n".
func Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))

			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// SaveRun stores run and returns it with ID and CreatedAt filled in when
// they were empty.
func (s *Store) SaveRun(ctx context.Context, run Run) (Run, error) {
	if len(run.Scores) == 0 {
		return Run{}, ErrEmptyRun
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now()
	}
	run.CreatedAt = run.CreatedAt.UTC()

	criteria, err := json.Marshal(run.Criteria)
	if err != nil {
		return Run{}, fmt.Errorf("store: encode criteria: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		s.rebind(`INSERT INTO runs (id, created_at, label, criteria) VALUES (?, ?, ?, ?)`),
		run.ID, run.CreatedAt.UnixNano(), run.Label, string(criteria),
	); err != nil {
		return Run{}, fmt.Errorf("store: insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, s.rebind(`
		INSERT INTO run_scores (run_id, rank, name, input_index, score, distance_best, distance_worst)
		VALUES (?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return Run{}, fmt.Errorf("store: prepare scores: %w", err)
	}
	defer stmt.Close()

	for _, sc := range run.Scores {
		if _, err = stmt.ExecContext(ctx, run.ID, sc.Rank, sc.Name, sc.Index, sc.Score, sc.DistanceBest, sc.DistanceWorst); err != nil {
			return Run{}, fmt.Errorf("store: insert score %d: %w", sc.Rank, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("store: commit: %w", err)
	}

	return run, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT r.id, r.created_at, r.label, s.name, s.score,
			(SELECT COUNT(*) FROM run_scores c WHERE c.run_id = r.id)
		FROM runs r
		JOIN run_scores s ON s.run_id = r.id AND s.rank = 1
		ORDER BY r.created_at DESC, r.id
		LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var created int64
		if err = rows.Scan(&sum.ID, &created, &sum.Label, &sum.Best, &sum.BestScore, &sum.Alternatives); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		sum.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, sum)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}

	return out, nil
}

// GetRun loads one run with its scores in rank order.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	var (
		run      Run
		created  int64
		criteria string
	)
	err := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT id, created_at, label, criteria FROM runs WHERE id = ?`), id,
	).Scan(&run.ID, &created, &run.Label, &criteria)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("store: get run: %w", err)
	}
	run.CreatedAt = time.Unix(0, created).UTC()
	if err = json.Unmarshal([]byte(criteria), &run.Criteria); err != nil {
		return Run{}, fmt.Errorf("store: decode criteria: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT rank, name, input_index, score, distance_best, distance_worst
		FROM run_scores WHERE run_id = ? ORDER BY rank`), id)
	if err != nil {
		return Run{}, fmt.Errorf("store: get scores: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var sc RunScore
		if err = rows.Scan(&sc.Rank, &sc.Name, &sc.Index, &sc.Score, &sc.DistanceBest, &sc.DistanceWorst); err != nil {
			return Run{}, fmt.Errorf("store: scan score: %w", err)
		}
		run.Scores = append(run.Scores, sc)
	}
	if err = rows.Err(); err != nil {
		return Run{}, fmt.Errorf("store: get scores: %w", err)
	}

	return run, nil
}

// DeleteRun removes a run and its scores.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, s.rebind(`DELETE FROM run_scores WHERE run_id = ?`), id); err != nil {
		return fmt.Errorf("store: delete scores: %w", err)
	}
	res, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM runs WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("store: delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	return tx.Commit()
}
