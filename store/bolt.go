package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/focustab/internal/models"
	"github.com/ayoisaiah/focustab/internal/osutil"
	"github.com/ayoisaiah/focustab/internal/timeutil"
)

const (
	stateBucket   = "state"
	sessionBucket = "sessions"
)

// Bolt is a BoltDB backed store. It holds an exclusive lock on the database
// file while open.
type Bolt struct {
	db *bolt.DB
}

// NewBolt opens or creates the database at path.
func NewBolt(path string) (*Bolt, error) {
	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return nil, errOpenStore.Fmt(DriverBolt).Wrap(err)
	}

	db, err := openDB(path)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(stateBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		if err != nil {
			return err
		}

		return migrateSessionKeys(tx)
	})
	if err != nil {
		_ = db.Close()

		return nil, errOpenStore.Fmt(DriverBolt).Wrap(err)
	}

	return &Bolt{db: db}, nil
}

// openDB creates or opens a database and locks it.
func openDB(path string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		path,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrInUse
		}

		return nil, errOpenStore.Fmt(DriverBolt).Wrap(err)
	}

	return db, nil
}

func (b *Bolt) SaveState(_ context.Context, state *models.FocusState) error {
	value, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Put([]byte(stateKey), value)
	})
}

func (b *Bolt) LoadState(_ context.Context) (*models.FocusState, error) {
	var state *models.FocusState

	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(stateBucket)).Get([]byte(stateKey))
		if len(v) == 0 {
			return nil
		}

		state = &models.FocusState{}

		err := json.Unmarshal(v, state)
		if err != nil {
			return errDecode.Fmt("focus session").Wrap(err)
		}

		return nil
	})

	return state, err
}

func (b *Bolt) ClearState(_ context.Context) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Delete([]byte(stateKey))
	})
}

func (b *Bolt) AppendSession(
	_ context.Context,
	record *models.SessionRecord,
) error {
	value, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).
			Put(timeutil.ToKey(record.StartTime), value)
	})
}

func (b *Bolt) Sessions(
	_ context.Context,
	start, end time.Time,
) ([]*models.SessionRecord, error) {
	var records []*models.SessionRecord

	err := b.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(sessionBucket)).Cursor()

		minKey := timeutil.ToKey(start)
		maxKey := timeutil.ToKey(end)

		for k, v := c.Seek(minKey); k != nil && bytes.Compare(k, maxKey) <= 0; k, v = c.Next() {
			var r models.SessionRecord

			err := json.Unmarshal(v, &r)
			if err != nil {
				return errDecode.Fmt("session").Wrap(err)
			}

			records = append(records, &r)
		}

		return nil
	})

	return records, err
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
