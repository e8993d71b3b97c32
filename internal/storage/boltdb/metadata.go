package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/dicklancube/quotesync/internal/storage"
)

const (
	keySchemaVersion = "schema_version"
	keyLastSync      = "last_sync"
)

// SaveLastSync saves the timestamp of the last successful sync cycle
func (s *Storage) SaveLastSync(ctx context.Context, t time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		raw := make([]byte, 8)
		binary.BigEndian.PutUint64(raw, uint64(t.Unix()))

		if err := bucket.Put([]byte(keyLastSync), raw); err != nil {
			return fmt.Errorf("failed to save last sync timestamp: %w", err)
		}
		return nil
	})
}

// LoadLastSync reads the timestamp of the last successful sync cycle.
// Returns the zero time if no sync has been performed yet.
func (s *Storage) LoadLastSync(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var t time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		raw := bucket.Get([]byte(keyLastSync))
		if raw == nil || len(raw) != 8 {
			return nil
		}

		t = time.Unix(int64(binary.BigEndian.Uint64(raw)), 0)
		return nil
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load last sync timestamp: %w", err)
	}
	return t, nil
}
