// Package storage defines the durable client storage contract. The record
// collection, the dirty-id set, the conflict log and the sync metadata are
// persisted as independent documents so an interrupted sync never loses
// pending local edits.
package storage

import (
	"context"
	"time"

	"github.com/dicklancube/quotesync/internal/models"
)

// SchemaVersion is embedded alongside every persisted document. Version 0
// (absent) is read as the current version for compatibility with stores
// written before versioning existed.
const SchemaVersion = 1

//go:generate moq -out storage_mock.go . Storage

// Storage persists the client's local state between process runs.
type Storage interface {
	// SaveRecords replaces the durable record collection.
	SaveRecords(ctx context.Context, records []*models.Record) error

	// LoadRecords reads the durable record collection. Entries that fail to
	// decode or validate are filtered out rather than failing the load.
	// Returns ErrBadSchemaVersion if the store was written by a newer schema.
	LoadRecords(ctx context.Context) ([]*models.Record, error)

	// SaveDirty replaces the durable set of dirty record ids.
	SaveDirty(ctx context.Context, ids []string) error

	// LoadDirty reads the durable set of dirty record ids.
	LoadDirty(ctx context.Context) ([]string, error)

	// SaveConflicts replaces the durable conflict log.
	SaveConflicts(ctx context.Context, entries []models.ConflictEntry) error

	// LoadConflicts reads the durable conflict log in discovery order.
	LoadConflicts(ctx context.Context) ([]models.ConflictEntry, error)

	// SaveLastSync saves the timestamp of the last successful sync cycle.
	SaveLastSync(ctx context.Context, t time.Time) error

	// LoadLastSync reads the timestamp of the last successful sync cycle.
	// Returns the zero time if no sync has completed yet.
	LoadLastSync(ctx context.Context) (time.Time, error)

	// Close releases the underlying database.
	Close() error
}
