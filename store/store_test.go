package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/focustab/internal/models"
)

var base = time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)

type driver struct {
	name string
	open func(t *testing.T) Store
}

func drivers() []driver {
	return []driver{
		{
			name: DriverBolt,
			open: func(t *testing.T) Store {
				t.Helper()

				s, err := NewBolt(filepath.Join(t.TempDir(), "focustab.db"))
				require.NoError(t, err)

				return s
			},
		},
		{
			name: DriverSQLite,
			open: func(t *testing.T) Store {
				t.Helper()

				s, err := NewSQLite(memoryDSN)
				require.NoError(t, err)

				return s
			},
		},
		{
			name: DriverRedis,
			open: func(t *testing.T) Store {
				t.Helper()

				addr := os.Getenv("FOCUSTAB_REDIS_ADDR")
				if addr == "" {
					addr = "localhost:6379"
				}

				prefix := "focustab_test:" + uuid.NewString() + ":"

				s, err := NewRedis(addr, prefix)
				if err != nil {
					t.Skip("Redis not available, skipping test")
				}

				t.Cleanup(func() {
					ctx := context.Background()
					_ = s.client.Del(
						ctx,
						s.key(stateKey),
						s.key(sessionsKey),
					).Err()
				})

				return s
			},
		},
	}
}

func record(start time.Time, label string) *models.SessionRecord {
	return &models.SessionRecord{
		ID:           uuid.NewString(),
		Label:        label,
		Mode:         models.ModePomodoro,
		StartTime:    start,
		EndTime:      start.Add(30 * time.Minute),
		TotalSeconds: 1800,
		Pomodoros:    1,
	}
}

// timeEqual compares instants regardless of location.
var timeEqual = cmp.Comparer(func(a, b time.Time) bool {
	return a.Equal(b)
})

func TestStateRoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, d := range drivers() {
		t.Run(d.name, func(t *testing.T) {
			s := d.open(t)
			defer s.Close()

			got, err := s.LoadState(ctx)
			require.NoError(t, err)
			assert.Nil(t, got)

			want := &models.FocusState{
				SessionStartTime:    base,
				Settings:            models.DefaultSettings(),
				TimerMode:           models.ModeCountUp,
				FocusTask:           "Write report",
				TotalSessionSeconds: 120,
				PomodorosCompleted:  3,
			}

			require.NoError(t, s.SaveState(ctx, want))

			want.PomodorosCompleted = 4
			require.NoError(t, s.SaveState(ctx, want))

			got, err = s.LoadState(ctx)
			require.NoError(t, err)

			if diff := cmp.Diff(want, got, timeEqual); diff != "" {
				t.Fatalf("state mismatch (-want +got):\n%s", diff)
			}

			require.NoError(t, s.ClearState(ctx))

			got, err = s.LoadState(ctx)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestSessionsRange(t *testing.T) {
	ctx := context.Background()

	for _, d := range drivers() {
		t.Run(d.name, func(t *testing.T) {
			s := d.open(t)
			defer s.Close()

			records := []*models.SessionRecord{
				record(base.Add(48*time.Hour), "third"),
				record(base, "first"),
				record(base.Add(24*time.Hour+500*time.Millisecond), "second"),
				record(base.Add(-24*time.Hour), "before"),
			}

			for _, r := range records {
				require.NoError(t, s.AppendSession(ctx, r))
			}

			got, err := s.Sessions(ctx, base, base.Add(48*time.Hour))
			require.NoError(t, err)

			want := []*models.SessionRecord{records[1], records[2], records[0]}

			if diff := cmp.Diff(want, got, timeEqual); diff != "" {
				t.Fatalf("sessions mismatch (-want +got):\n%s", diff)
			}

			got, err = s.Sessions(ctx, base.Add(72*time.Hour), base.Add(96*time.Hour))
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestBoltSingleInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focustab.db")

	s, err := NewBolt(path)
	require.NoError(t, err)

	defer s.Close()

	_, err = NewBolt(path)
	assert.ErrorIs(t, err, ErrInUse)
}

func TestBoltMigratesSessionKeys(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "focustab.db")

	s, err := NewBolt(path)
	require.NoError(t, err)

	r := record(base, "legacy")

	// store a record under an RFC3339 key as older releases did
	err = s.db.Update(func(tx *bolt.Tx) error {
		v, err := json.Marshal(r)
		if err != nil {
			return err
		}

		return tx.Bucket([]byte(sessionBucket)).
			Put([]byte(r.StartTime.Format(time.RFC3339)), v)
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewBolt(path)
	require.NoError(t, err)

	defer s.Close()

	got, err := s.Sessions(ctx, base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "legacy", got[0].Label)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(Options{Driver: "mongo"})
	assert.ErrorIs(t, err, errUnknownDriver)
}

func TestOpenSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "focustab.sqlite")

	s, err := Open(Options{Driver: DriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// migrations are idempotent
	s, err = Open(Options{Driver: DriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
