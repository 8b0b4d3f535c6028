// Package store persists the focus session and the history of finished
// sessions
package store

import (
	"context"
	"time"

	"github.com/ayoisaiah/focustab/internal/models"
)

// Supported storage drivers.
const (
	DriverBolt   = "bolt"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

// stateKey is the fixed logical name under which the live session is
// stored.
const stateKey = "focusSession"

// Store is the storage interface shared by every driver.
type Store interface {
	// SaveState overwrites the persisted focus session.
	SaveState(ctx context.Context, state *models.FocusState) error
	// LoadState returns the persisted focus session, or nil if nothing has
	// been saved yet.
	LoadState(ctx context.Context) (*models.FocusState, error)
	// ClearState removes the persisted focus session.
	ClearState(ctx context.Context) error
	// AppendSession adds a finished session to the history.
	AppendSession(ctx context.Context, record *models.SessionRecord) error
	// Sessions returns the sessions that started within [start, end] in
	// chronological order.
	Sessions(
		ctx context.Context,
		start, end time.Time,
	) ([]*models.SessionRecord, error)
	// Close ends the connection to the data store.
	Close() error
}

// Options selects and configures a driver.
type Options struct {
	Driver      string
	BoltPath    string
	SQLitePath  string
	RedisAddr   string
	RedisPrefix string
}

// Open connects to the store selected by opts.Driver.
func Open(opts Options) (Store, error) {
	switch opts.Driver {
	case DriverBolt, "":
		return NewBolt(opts.BoltPath)
	case DriverSQLite:
		return NewSQLite(opts.SQLitePath)
	case DriverRedis:
		return NewRedis(opts.RedisAddr, opts.RedisPrefix)
	default:
		return nil, errUnknownDriver.Fmt(opts.Driver)
	}
}
