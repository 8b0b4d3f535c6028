package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ayoisaiah/focustab/internal/models"
)

// sessionsKey is the sorted set holding the session history, scored by
// start time in unix milliseconds.
const sessionsKey = "focusSessions"

// Redis is a Redis backed store.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to the Redis server at addr. Every key is prefixed with
// prefix.
func NewRedis(addr, prefix string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Test the connection
	err := client.Ping(ctx).Err()
	if err != nil {
		_ = client.Close()

		return nil, errOpenStore.Fmt(DriverRedis).Wrap(err)
	}

	return &Redis{
		client: client,
		prefix: prefix,
	}, nil
}

func (r *Redis) key(name string) string {
	return r.prefix + name
}

func (r *Redis) SaveState(ctx context.Context, state *models.FocusState) error {
	value, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.key(stateKey), value, 0).Err()
}

func (r *Redis) LoadState(ctx context.Context) (*models.FocusState, error) {
	value, err := r.client.Get(ctx, r.key(stateKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var state models.FocusState

	err = json.Unmarshal(value, &state)
	if err != nil {
		return nil, errDecode.Fmt("focus session").Wrap(err)
	}

	return &state, nil
}

func (r *Redis) ClearState(ctx context.Context) error {
	return r.client.Del(ctx, r.key(stateKey)).Err()
}

func (r *Redis) AppendSession(
	ctx context.Context,
	record *models.SessionRecord,
) error {
	value, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return r.client.ZAdd(ctx, r.key(sessionsKey), redis.Z{
		Score:  float64(record.StartTime.UnixMilli()),
		Member: value,
	}).Err()
}

func (r *Redis) Sessions(
	ctx context.Context,
	start, end time.Time,
) ([]*models.SessionRecord, error) {
	members, err := r.client.ZRangeByScore(
		ctx,
		r.key(sessionsKey),
		&redis.ZRangeBy{
			Min: strconv.FormatInt(start.UnixMilli(), 10),
			Max: strconv.FormatInt(end.UnixMilli(), 10),
		},
	).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*models.SessionRecord, 0, len(members))

	for _, m := range members {
		var rec models.SessionRecord

		err = json.Unmarshal([]byte(m), &rec)
		if err != nil {
			return nil, errDecode.Fmt("session").Wrap(err)
		}

		records = append(records, &rec)
	}

	return records, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
