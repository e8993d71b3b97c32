package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/dicklancube/quotesync/internal/models"
	"github.com/dicklancube/quotesync/internal/storage"
)

// SaveConflicts replaces the durable conflict log
func (s *Storage) SaveConflicts(ctx context.Context, entries []models.ConflictEntry) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := replaceBucket(tx, bucketConflicts)
		if err != nil {
			return err
		}

		for i, entry := range entries {
			data, err := json.Marshal(entry)
			if err != nil {
				return fmt.Errorf("failed to marshal conflict entry: %w", err)
			}
			if err := bucket.Put(itob(uint64(i)), data); err != nil {
				return fmt.Errorf("failed to save conflict entry: %w", err)
			}
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// LoadConflicts reads the durable conflict log in discovery order.
// Malformed entries are skipped.
func (s *Storage) LoadConflicts(ctx context.Context) ([]models.ConflictEntry, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entries []models.ConflictEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		if err := checkSchemaVersion(tx); err != nil {
			return err
		}

		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var entry models.ConflictEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return nil
			}
			entries = append(entries, entry)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to load conflicts: %w", err)
	}
	return entries, nil
}
