package store

import (
	"bytes"
	"encoding/json"

	"go.etcd.io/bbolt"

	"github.com/ayoisaiah/focustab/internal/models"
	"github.com/ayoisaiah/focustab/internal/timeutil"
)

// migrateSessionKeys re-keys sessions that were stored under a key format
// other than the current one so that range scans stay in start time order.
func migrateSessionKeys(tx *bbolt.Tx) error {
	bucket := tx.Bucket([]byte(sessionBucket))

	type rekey struct {
		oldKey []byte
		newKey []byte
		value  []byte
	}

	var pending []rekey

	err := bucket.ForEach(func(k, v []byte) error {
		var r models.SessionRecord

		err := json.Unmarshal(v, &r)
		if err != nil {
			return err
		}

		newKey := timeutil.ToKey(r.StartTime)
		if bytes.Equal(k, newKey) {
			return nil
		}

		pending = append(pending, rekey{
			oldKey: bytes.Clone(k),
			newKey: newKey,
			value:  bytes.Clone(v),
		})

		return nil
	})
	if err != nil {
		return err
	}

	for _, p := range pending {
		err = bucket.Delete(p.oldKey)
		if err != nil {
			return err
		}

		err = bucket.Put(p.newKey, p.value)
		if err != nil {
			return err
		}
	}

	return nil
}
