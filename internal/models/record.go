package models

import (
	"fmt"
	"strings"
	"time"
)

// Record represents a single quote in the local collection.
type Record struct {
	// ID is the process-local identifier, assigned at creation and never
	// reused. Records materialized from a pull use "srv_<remoteID>" so
	// repeated pulls map to the same local record.
	ID string `json:"id"`

	// RemoteID is the identifier assigned by the remote authority after the
	// first successful push. Empty until then, never cleared once set.
	RemoteID string `json:"remoteId,omitempty"`

	Text     string `json:"text"`
	Category string `json:"category"`

	// UpdatedAt tracks the last local or merge mutation. Informational
	// ordering only, never a conflict tie-breaker.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Published reports whether the record is known to the remote authority.
func (r *Record) Published() bool {
	return r.RemoteID != ""
}

// Normalize trims text and category in place.
func (r *Record) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
	r.Category = strings.TrimSpace(r.Category)
}

// Validate checks that text and category are non-empty after normalization.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return &ValidationError{Field: "text"}
	}
	if strings.TrimSpace(r.Category) == "" {
		return &ValidationError{Field: "category"}
	}
	return nil
}

// ValidationError indicates a record field that is empty after trimming.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record %s must not be empty", e.Field)
}

// ConflictEntry is an immutable pair of snapshots captured at the moment a
// conflict is detected. It stays in the conflict log until a human restores
// or dismisses it.
type ConflictEntry struct {
	Local      Record    `json:"local"`
	Server     Record    `json:"server"`
	DetectedAt time.Time `json:"detectedAt"`
}
