// Package boltdb implements the client storage contract on top of a single
// BoltDB file.
package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/dicklancube/quotesync/internal/storage"
)

var (
	// BoltDB bucket names
	bucketRecords   = []byte("records")
	bucketDirty     = []byte("dirty")
	bucketConflicts = []byte("conflicts")
	bucketMetadata  = []byte("metadata")
)

// Storage represents BoltDB storage implementation for the client
type Storage struct {
	db *bbolt.DB
}

var _ storage.Storage = (*Storage)(nil)

// New creates a new BoltDB storage instance.
// dbPath is the path to the BoltDB database file.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets creates the required buckets and stamps the schema version on
// first use. An existing version is left untouched so reads can detect a
// store written by a newer build.
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketRecords, bucketDirty, bucketConflicts, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}

		meta := tx.Bucket(bucketMetadata)
		if meta.Get([]byte(keySchemaVersion)) == nil {
			return putSchemaVersion(meta, storage.SchemaVersion)
		}
		return nil
	})
}

// checkSchemaVersion rejects documents written by a schema newer than this
// build. Version 0 means the store predates versioning and is read as v1.
func checkSchemaVersion(tx *bbolt.Tx) error {
	meta := tx.Bucket(bucketMetadata)
	if meta == nil {
		return nil
	}
	raw := meta.Get([]byte(keySchemaVersion))
	if raw == nil || len(raw) != 8 {
		return nil
	}
	if version := binary.BigEndian.Uint64(raw); version > storage.SchemaVersion {
		return fmt.Errorf("%w: %d", storage.ErrBadSchemaVersion, version)
	}
	return nil
}

func putSchemaVersion(meta *bbolt.Bucket, version uint64) error {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, version)
	if err := meta.Put([]byte(keySchemaVersion), raw); err != nil {
		return fmt.Errorf("failed to save schema version: %w", err)
	}
	return nil
}

// itob converts a collection index into a big-endian key so bucket iteration
// preserves insertion order.
func itob(i uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, i)
	return b
}

// replaceBucket drops and recreates a bucket inside tx, implementing the
// replace-whole-document persistence model.
func replaceBucket(tx *bbolt.Tx, name []byte) (*bbolt.Bucket, error) {
	if err := tx.DeleteBucket(name); err != nil && err != bbolt.ErrBucketNotFound {
		return nil, fmt.Errorf("failed to delete %s bucket: %w", name, err)
	}
	bucket, err := tx.CreateBucket(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s bucket: %w", name, err)
	}
	return bucket, nil
}
