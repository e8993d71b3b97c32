package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/dicklancube/quotesync/internal/models"
	"github.com/dicklancube/quotesync/internal/storage"
)

// SaveRecords replaces the durable record collection
func (s *Storage) SaveRecords(ctx context.Context, records []*models.Record) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := replaceBucket(tx, bucketRecords)
		if err != nil {
			return err
		}

		for i, record := range records {
			data, err := json.Marshal(record)
			if err != nil {
				return fmt.Errorf("failed to marshal record: %w", err)
			}
			if err := bucket.Put(itob(uint64(i)), data); err != nil {
				return fmt.Errorf("failed to save record: %w", err)
			}
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// LoadRecords reads the durable record collection in insertion order.
// Entries that fail to decode or have empty text/category after trimming are
// filtered out rather than failing the whole load.
func (s *Storage) LoadRecords(ctx context.Context) ([]*models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []*models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		if err := checkSchemaVersion(tx); err != nil {
			return err
		}

		bucket := tx.Bucket(bucketRecords)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var record models.Record
			if err := json.Unmarshal(v, &record); err != nil {
				// Malformed entry, skip it
				return nil
			}
			record.Normalize()
			if record.ID == "" || record.Validate() != nil {
				return nil
			}
			records = append(records, &record)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return records, nil
}
