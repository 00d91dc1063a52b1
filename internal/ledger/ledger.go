// Package ledger keeps an append-only history of recorded goal events in a
// local SQLite database and summarizes it.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema is executed on every open; IF NOT EXISTS keeps it idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS events (
    id          TEXT PRIMARY KEY,
    goal        TEXT NOT NULL,
    kind        TEXT NOT NULL,
    points      INTEGER NOT NULL,
    score       INTEGER NOT NULL,
    level       INTEGER NOT NULL,
    leveled_up  INTEGER NOT NULL DEFAULT 0,
    completed   INTEGER NOT NULL DEFAULT 0,
    recorded_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS events_recorded_at ON events(recorded_at);
`

// timeLayout sorts lexically in chronological order for UTC times.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Entry is one recorded event.
type Entry struct {
	ID         string
	Goal       string
	Kind       string
	Points     int
	Score      int
	Level      int
	LeveledUp  bool
	Completed  bool
	RecordedAt time.Time
}

// Stats summarizes the whole ledger.
type Stats struct {
	Events       int
	Points       int
	Completions  int
	LevelUps     int
	ActiveDays   int
	PointsPerDay float64 // Points averaged over ActiveDays.
	TopGoal      string
	TopPoints    int
	First, Last  time.Time
}

// Ledger is a SQLite-backed event history.
type Ledger struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the ledger database at path in WAL mode.
func Open(ctx context.Context, path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("ledger: open database: %w", err)
	}
	// SQLite has a single writer; one connection keeps PRAGMAs in effect.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("ledger: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("ledger: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ledger: create schema: %w", err)
	}
	return &Ledger{db: db, now: time.Now}, nil
}

// Close closes the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record appends e. A missing ID is filled with a new UUID and a zero
// RecordedAt with the current time.
func (l *Ledger) Record(ctx context.Context, e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = l.now()
	}
	const q = `
		INSERT INTO events (id, goal, kind, points, score, level, leveled_up, completed, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := l.db.ExecContext(ctx, q,
		e.ID, e.Goal, e.Kind, e.Points, e.Score, e.Level,
		boolInt(e.LeveledUp), boolInt(e.Completed), formatTime(e.RecordedAt))
	if err != nil {
		return fmt.Errorf("ledger: record %q: %w", e.Goal, err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (l *Ledger) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	const q = `
		SELECT id, goal, kind, points, score, level, leveled_up, completed, recorded_at
		FROM events ORDER BY recorded_at DESC, rowid DESC LIMIT ?`
	rows, err := l.db.QueryContext(ctx, q, n)
	if err != nil {
		return nil, fmt.Errorf("ledger: query events: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e          Entry
			up, done   int
			recordedAt string
		)
		if err := rows.Scan(&e.ID, &e.Goal, &e.Kind, &e.Points, &e.Score, &e.Level, &up, &done, &recordedAt); err != nil {
			return nil, fmt.Errorf("ledger: scan event: %w", err)
		}
		e.LeveledUp, e.Completed = up != 0, done != 0
		if e.RecordedAt, err = parseTime(recordedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ledger: iterate events: %w", err)
	}
	return out, nil
}

// Stats summarizes every recorded event.
func (l *Ledger) Stats(ctx context.Context) (Stats, error) {
	var (
		s           Stats
		first, last sql.NullString
	)
	const totals = `
		SELECT COUNT(*), COALESCE(SUM(points), 0), COALESCE(SUM(completed), 0),
		       COALESCE(SUM(leveled_up), 0), COUNT(DISTINCT substr(recorded_at, 1, 10)),
		       MIN(recorded_at), MAX(recorded_at)
		FROM events`
	err := l.db.QueryRowContext(ctx, totals).Scan(
		&s.Events, &s.Points, &s.Completions, &s.LevelUps, &s.ActiveDays, &first, &last)
	if err != nil {
		return Stats{}, fmt.Errorf("ledger: query totals: %w", err)
	}
	if s.Events == 0 {
		return s, nil
	}
	if s.First, err = parseTime(first.String); err != nil {
		return Stats{}, err
	}
	if s.Last, err = parseTime(last.String); err != nil {
		return Stats{}, err
	}
	s.PointsPerDay = float64(s.Points) / float64(s.ActiveDays)

	const top = `
		SELECT goal, SUM(points) AS total FROM events
		GROUP BY goal ORDER BY total DESC, goal ASC LIMIT 1`
	if err := l.db.QueryRowContext(ctx, top).Scan(&s.TopGoal, &s.TopPoints); err != nil {
		return Stats{}, fmt.Errorf("ledger: query top goal: %w", err)
	}
	return s, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("ledger: parse timestamp %q: %w", s, err)
	}
	return t, nil
}
