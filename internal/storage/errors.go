package storage

import "errors"

// Common client storage errors
var (
	// ErrRecordNotFound indicates that a record was not found
	ErrRecordNotFound = errors.New("record not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrBadSchemaVersion indicates a persisted document written by a newer
	// schema than this build understands
	ErrBadSchemaVersion = errors.New("unsupported schema version")
)
