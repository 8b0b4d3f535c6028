package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ayoisaiah/focustab/internal/models"
	"github.com/ayoisaiah/focustab/internal/osutil"
)

const memoryDSN = ":memory:"

// migrations are applied in order every time the database is opened, so each
// statement must be idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id            TEXT PRIMARY KEY,
		label         TEXT NOT NULL DEFAULT '',
		mode          TEXT NOT NULL,
		start_time    INTEGER NOT NULL,
		end_time      INTEGER NOT NULL,
		total_seconds INTEGER NOT NULL DEFAULT 0,
		pomodoros     INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_start ON sessions(start_time)`,
}

// SQLite is a SQLite backed store.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens the SQLite database at path. If path is ":memory:", an
// in-memory database is used.
func NewSQLite(path string) (*SQLite, error) {
	if path != memoryDSN {
		err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
		if err != nil {
			return nil, errOpenStore.Fmt(DriverSQLite).Wrap(err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errOpenStore.Fmt(DriverSQLite).Wrap(err)
	}

	// every connection to :memory: is a separate database
	if path == memoryDSN {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, errOpenStore.Fmt(DriverSQLite).Wrap(err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return errMigrate.Fmt(i).Wrap(err)
		}
	}

	return nil
}

func (s *SQLite) SaveState(ctx context.Context, state *models.FocusState) error {
	value, err := json.Marshal(state)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		stateKey,
		string(value),
		time.Now().UnixMilli(),
	)

	return err
}

func (s *SQLite) LoadState(ctx context.Context) (*models.FocusState, error) {
	var value string

	err := s.db.QueryRowContext(
		ctx,
		`SELECT value FROM kv WHERE key = ?`,
		stateKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var state models.FocusState

	err = json.Unmarshal([]byte(value), &state)
	if err != nil {
		return nil, errDecode.Fmt("focus session").Wrap(err)
	}

	return &state, nil
}

func (s *SQLite) ClearState(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, stateKey)

	return err
}

func (s *SQLite) AppendSession(
	ctx context.Context,
	r *models.SessionRecord,
) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO sessions
			(id, label, mode, start_time, end_time, total_seconds, pomodoros)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Label,
		string(r.Mode),
		r.StartTime.UnixMilli(),
		r.EndTime.UnixMilli(),
		r.TotalSeconds,
		r.Pomodoros,
	)

	return err
}

func (s *SQLite) Sessions(
	ctx context.Context,
	start, end time.Time,
) ([]*models.SessionRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, label, mode, start_time, end_time, total_seconds, pomodoros
		FROM sessions
		WHERE start_time >= ? AND start_time <= ?
		ORDER BY start_time`,
		start.UnixMilli(),
		end.UnixMilli(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.SessionRecord

	for rows.Next() {
		var (
			r          models.SessionRecord
			mode       string
			startMilli int64
			endMilli   int64
		)

		err = rows.Scan(
			&r.ID,
			&r.Label,
			&mode,
			&startMilli,
			&endMilli,
			&r.TotalSeconds,
			&r.Pomodoros,
		)
		if err != nil {
			return nil, err
		}

		r.Mode = models.TimerMode(mode)
		r.StartTime = time.UnixMilli(startMilli)
		r.EndTime = time.UnixMilli(endMilli)

		records = append(records, &r)
	}

	return records, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
