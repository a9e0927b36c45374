// Package storage provides SQLite-based persistence for run recordings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

// timeLayout is how created_at is stored.
const timeLayout = "2006-01-02 15:04:05"

// ErrNotFound is returned when a recording does not exist.
var ErrNotFound = errors.New("storage: recording not found")

// Store manages the SQLite database connection for recordings.
type Store struct {
	db *sql.DB
}

// RunSummary is a recording without its input, for listings.
type RunSummary struct {
	ID        string
	GameID    string
	Seed      int64
	GridW     int
	GridH     int
	Ticks     uint64
	Score     int
	EndReason string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			grid_w INTEGER NOT NULL,
			grid_h INTEGER NOT NULL,
			heading TEXT NOT NULL,
			tick_rate INTEGER NOT NULL,
			screen_w INTEGER NOT NULL DEFAULT 0,
			screen_h INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS inputs (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			tick INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			action TEXT NOT NULL,
			PRIMARY KEY (run_id, tick, seq)
		);

		CREATE TABLE IF NOT EXISTS resizes (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			tick INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRecording stores a finished recording with all of its input.
func (s *Store) SaveRecording(rec replay.Recording) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	cfg := rec.Config
	_, err = tx.Exec(
		`INSERT INTO runs
		 (id, game_id, seed, grid_w, grid_h, heading, tick_rate, screen_w, screen_h, ticks, score, end_reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.GameID, cfg.Seed, cfg.GridW, cfg.GridH, cfg.Heading, cfg.TickRate,
		cfg.ScreenW, cfg.ScreenH, int64(rec.Ticks), rec.Score, rec.EndReason,
		createdAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save recording: %w", err)
	}

	for _, f := range rec.Frames {
		for seq, a := range f.Actions {
			if _, err := tx.Exec(
				"INSERT INTO inputs (run_id, tick, seq, action) VALUES (?, ?, ?, ?)",
				rec.ID, int64(f.Tick), seq, a.String(),
			); err != nil {
				return fmt.Errorf("storage: cannot save input: %w", err)
			}
		}
	}

	for seq, r := range rec.Resizes {
		if _, err := tx.Exec(
			"INSERT INTO resizes (run_id, tick, seq, width, height) VALUES (?, ?, ?, ?, ?)",
			rec.ID, int64(r.Tick), seq, r.Width, r.Height,
		); err != nil {
			return fmt.Errorf("storage: cannot save resize: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit recording: %w", err)
	}
	return nil
}

// Ensure Store implements replay.Saver
var _ replay.Saver = (*Store)(nil)

// LoadRecording retrieves a recording by ID. A unique ID prefix is accepted.
func (s *Store) LoadRecording(id string) (replay.Recording, error) {
	var rec replay.Recording

	id, err := s.resolveID(id)
	if err != nil {
		return rec, err
	}

	var ticks int64
	var createdAt any
	err = s.db.QueryRow(
		`SELECT id, game_id, seed, grid_w, grid_h, heading, tick_rate, screen_w, screen_h,
		        ticks, score, end_reason, created_at
		 FROM runs WHERE id = ?`,
		id,
	).Scan(
		&rec.ID, &rec.GameID, &rec.Config.Seed, &rec.Config.GridW, &rec.Config.GridH,
		&rec.Config.Heading, &rec.Config.TickRate, &rec.Config.ScreenW, &rec.Config.ScreenH,
		&ticks, &rec.Score, &rec.EndReason, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, ErrNotFound
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query recording: %w", err)
	}
	rec.Ticks = uint64(ticks)
	rec.CreatedAt = parseTime(createdAt)

	if rec.Frames, err = s.loadFrames(id); err != nil {
		return rec, err
	}
	if rec.Resizes, err = s.loadResizes(id); err != nil {
		return rec, err
	}
	return rec, nil
}

// resolveID expands an ID prefix to the full recording ID.
func (s *Store) resolveID(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrNotFound
	}
	pattern := strings.NewReplacer("%", `\%`, "_", `\_`).Replace(prefix) + "%"
	rows, err := s.db.Query(`SELECT id FROM runs WHERE id LIKE ? ESCAPE '\' LIMIT 2`, pattern)
	if err != nil {
		return "", fmt.Errorf("storage: cannot query recording: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", ErrNotFound
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("storage: recording id %q is ambiguous", prefix)
	}
}

func (s *Store) loadFrames(id string) ([]replay.Frame, error) {
	rows, err := s.db.Query(
		"SELECT tick, action FROM inputs WHERE run_id = ? ORDER BY tick, seq",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query inputs: %w", err)
	}
	defer rows.Close()

	var frames []replay.Frame
	for rows.Next() {
		var tick int64
		var name string
		if err := rows.Scan(&tick, &name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		action, err := core.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("storage: recording %s: %w", id, err)
		}

		if n := len(frames); n > 0 && frames[n-1].Tick == uint64(tick) {
			frames[n-1].Actions = append(frames[n-1].Actions, action)
			continue
		}
		frames = append(frames, replay.Frame{Tick: uint64(tick), Actions: []core.Action{action}})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return frames, nil
}

func (s *Store) loadResizes(id string) ([]replay.Resize, error) {
	rows, err := s.db.Query(
		"SELECT tick, width, height FROM resizes WHERE run_id = ? ORDER BY seq",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query resizes: %w", err)
	}
	defer rows.Close()

	var resizes []replay.Resize
	for rows.Next() {
		var r replay.Resize
		var tick int64
		if err := rows.Scan(&tick, &r.Width, &r.Height); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Tick = uint64(tick)
		resizes = append(resizes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return resizes, nil
}

// RecentRecordings lists the newest recordings first.
// An empty gameID lists every game.
func (s *Store) RecentRecordings(gameID string, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, grid_w, grid_h, ticks, score, end_reason, created_at
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recordings: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Seed, &r.GridW, &r.GridH, &ticks, &r.Score, &r.EndReason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// DeleteRecording removes a recording and its input.
func (s *Store) DeleteRecording(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for _, q := range []string{
		"DELETE FROM inputs WHERE run_id = ?",
		"DELETE FROM resizes WHERE run_id = ?",
		"DELETE FROM runs WHERE id = ?",
	} {
		if _, err := tx.Exec(q, id); err != nil {
			return fmt.Errorf("storage: cannot delete recording: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles the datetime column coming back as either time.Time or
// string depending on how it was written.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
