// internal/results/db.go
//
// SQLite persistence for graded rounds.
// Responsibilities:
//   - Opening the SQLite database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Recording graded rounds and reading learner history / daily best.
//
// Only finished scores are stored. In-progress matching state never touches
// the database.

package results

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordmatch/assets"
)

/**
 * Open opens (and creates if missing) a SQLite database file and migrates it.
 *
 * - Ensures parent directory exists for relative DSNs (e.g. ./data/wordmatch.db).
 * - Configures busy timeout and WAL journaling mode.
 * - Enforces foreign keys.
 */
func Open(dsn string) (*Store, error) {
	if dsn != ":memory:" {
		dir := filepath.Dir(dsn)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	migrations, err := assets.Migrations()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := migrate(db, migrations); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

/**
 * migrate applies *.sql files from fsys in lexical order.
 *
 * - Uses a _migrations table to track applied files.
 * - Each file runs inside its own transaction.
 */
func migrate(db *sql.DB, fsys fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		if strings.TrimSpace(string(body)) == "" {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Result is one graded round.
type Result struct {
	GameID    string    `json:"gameId"`
	LearnerID string    `json:"-"`
	Mode      string    `json:"mode"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Correct   int       `json:"correct"`
	Total     int       `json:"total"`
	Percent   int       `json:"percent"`
	ElapsedMs int64     `json:"elapsedMs"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store wraps the results database.
type Store struct{ db *sql.DB }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

/**
 * Insert records a graded round.
 *
 * Grading the same game again replaces the earlier row, so history keeps
 * the learner's final score for each round.
 */
func (s *Store) Insert(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR REPLACE INTO results
            (game_id, learner_id, mode, date, correct, total, percent, elapsed_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.LearnerID, r.Mode, r.Date, r.Correct, r.Total, r.Percent, r.ElapsedMs,
	)
	return err
}

// Recent returns a learner's latest results, newest first (default limit 20).
func (s *Store) Recent(ctx context.Context, learnerID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(ctx, `
        SELECT game_id, learner_id, mode, date, correct, total, percent, elapsed_ms, created_at
        FROM results
        WHERE learner_id=?
        ORDER BY created_at DESC, rowid DESC
        LIMIT ?`, learnerID, limit)
}

// DailyBest returns the best daily-round results for a date: highest percent,
// then fastest, then earliest (default limit 20).
func (s *Store) DailyBest(ctx context.Context, date string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(ctx, `
        SELECT game_id, learner_id, mode, date, correct, total, percent, elapsed_ms, created_at
        FROM results
        WHERE mode='daily' AND date=?
        ORDER BY percent DESC, elapsed_ms ASC, created_at ASC
        LIMIT ?`, date, limit)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Result{}
	for rows.Next() {
		var r Result
		var created string
		if err := rows.Scan(&r.GameID, &r.LearnerID, &r.Mode, &r.Date, &r.Correct, &r.Total,
			&r.Percent, &r.ElapsedMs, &created); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, r)
	}
	return out, rows.Err()
}
