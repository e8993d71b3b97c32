package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/dicklancube/quotesync/internal/storage"
)

// SaveDirty replaces the durable set of dirty record ids
func (s *Storage) SaveDirty(ctx context.Context, ids []string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := replaceBucket(tx, bucketDirty)
		if err != nil {
			return err
		}

		for _, id := range ids {
			if err := bucket.Put([]byte(id), nil); err != nil {
				return fmt.Errorf("failed to save dirty id: %w", err)
			}
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// LoadDirty reads the durable set of dirty record ids
func (s *Storage) LoadDirty(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ids []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		if err := checkSchemaVersion(tx); err != nil {
			return err
		}

		bucket := tx.Bucket(bucketDirty)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to load dirty ids: %w", err)
	}
	return ids, nil
}
