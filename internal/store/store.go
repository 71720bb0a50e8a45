// Package store handles SQLite persistence of finished drills.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/verbdrill/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for drill history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS drills (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			mode TEXT NOT NULL,
			tense TEXT NOT NULL,
			subject TEXT NOT NULL,
			direction TEXT NOT NULL,
			verb_type TEXT NOT NULL,
			items INTEGER NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS drill_mistakes (
			drill_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			infinitive TEXT NOT NULL,
			translation TEXT NOT NULL,
			direction TEXT NOT NULL,
			field TEXT NOT NULL,
			expected TEXT NOT NULL,
			given TEXT NOT NULL,
			PRIMARY KEY (drill_id, seq, field)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_drills_ended_at ON drills(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_drill_mistakes_infinitive ON drill_mistakes(infinitive);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertDrill stores a finished drill and the wrong fields of its
// mistakes. An empty record ID is replaced by a new UUID, which is returned.
func (s *Store) InsertDrill(ctx context.Context, rec model.DrillRecord, mistakes []model.Mistake) (id string, err error) {
	id = rec.ID
	if id == "" {
		id = uuid.NewString()
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO drills (id, started_at, ended_at, mode, tense, subject, direction, verb_type, items, score, total, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		rec.StartedAt.Format(time.RFC3339Nano),
		rec.EndedAt.Format(time.RFC3339Nano),
		rec.Mode,
		rec.Tense,
		rec.Subject,
		rec.Direction,
		rec.VerbType,
		rec.Items,
		rec.Score,
		rec.Total,
		rec.DurationMs,
	); err != nil {
		return "", err
	}

	if len(mistakes) > 0 {
		stmt, perr := tx.PrepareContext(ctx,
			`INSERT INTO drill_mistakes (drill_id, seq, infinitive, translation, direction, field, expected, given)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if perr != nil {
			err = perr
			return "", err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for seq, m := range mistakes {
			for _, f := range m.Wrong() {
				if _, err = stmt.ExecContext(ctx, id, seq, m.Infinitive, m.Translation, m.Direction, string(f.Field), f.Expected, f.Given); err != nil {
					return "", err
				}
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// ListDrills returns drill aggregates filtered by stats config, oldest
// first. Last keeps only the most recent N drills.
func (s *Store) ListDrills(ctx context.Context, cfg model.StatsConfig) ([]model.DrillAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Mode != "" {
		clauses = append(clauses, "mode = ?")
		args = append(args, cfg.Mode)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, ended_at, mode, tense, items, score, total, duration_ms
		FROM drills
		WHERE %s
		ORDER BY ended_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var drills []model.DrillAggregate
	for rows.Next() {
		var agg model.DrillAggregate
		var endedAt string
		if err := rows.Scan(&agg.DrillID, &endedAt, &agg.Mode, &agg.Tense, &agg.Items, &agg.Score, &agg.Total, &agg.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		drills = append(drills, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(drills) > cfg.Last {
		drills = drills[len(drills)-cfg.Last:]
	}
	return drills, nil
}

// ListMissedVerbs aggregates wrong fields per verb across the given drills,
// most missed first.
func (s *Store) ListMissedVerbs(ctx context.Context, drillIDs []string) ([]model.VerbAggregate, error) {
	if len(drillIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(drillIDs))
	args := make([]any, len(drillIDs))
	for i, id := range drillIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT infinitive, MAX(translation),
		COUNT(DISTINCT drill_id || ':' || seq) AS misses,
		SUM(CASE WHEN field = 'praesens' THEN 1 ELSE 0 END),
		SUM(CASE WHEN field = 'praeteritum' THEN 1 ELSE 0 END),
		SUM(CASE WHEN field = 'perfekt' THEN 1 ELSE 0 END),
		SUM(CASE WHEN field = 'meaning' THEN 1 ELSE 0 END)
		FROM drill_mistakes
		WHERE drill_id IN (%s)
		GROUP BY infinitive
		ORDER BY misses DESC, infinitive ASC`, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.VerbAggregate
	for rows.Next() {
		var agg model.VerbAggregate
		if err := rows.Scan(&agg.Infinitive, &agg.Translation, &agg.Misses, &agg.Praesens, &agg.Praeteritum, &agg.Perfekt, &agg.Meaning); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
