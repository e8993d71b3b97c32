// Package store holds the client's working state: the in-memory record
// collection, the dirty-id set, the conflict log and the last-sync marker,
// mirrored to durable storage. The in-memory state stays authoritative for
// the process lifetime even when persistence fails.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dicklancube/quotesync/internal/models"
	"github.com/dicklancube/quotesync/internal/storage"
)

// Store is the single context object shared by the sync service and the UI
// collaborator. All access goes through its methods; the mutex substitutes
// for the single-threaded ownership model when a periodic sync goroutine is
// running.
type Store struct {
	mu        sync.Mutex
	storage   storage.Storage
	logger    *slog.Logger
	records   []*models.Record
	dirty     map[string]struct{}
	conflicts []models.ConflictEntry
	lastSync  time.Time
}

// New creates a store over the given durable storage. Call Load before use.
func New(st storage.Storage, logger *slog.Logger) *Store {
	return &Store{
		storage: st,
		logger:  logger,
		dirty:   make(map[string]struct{}),
	}
}

// Load reads the durable documents. A missing, malformed or unreadable
// record collection falls back to the built-in seed; the dirty set, conflict
// log and last-sync marker fall back to empty. Load never fails.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.storage.LoadRecords(ctx)
	if err != nil {
		s.logger.Warn("failed to load records, using seed collection", "error", err)
		records = nil
	}
	if len(records) == 0 {
		records = models.Seed(time.Now())
	}
	s.records = records

	s.dirty = make(map[string]struct{})
	ids, err := s.storage.LoadDirty(ctx)
	if err != nil {
		s.logger.Warn("failed to load dirty set, starting empty", "error", err)
	}
	for _, id := range ids {
		s.dirty[id] = struct{}{}
	}

	s.conflicts = nil
	conflicts, err := s.storage.LoadConflicts(ctx)
	if err != nil {
		s.logger.Warn("failed to load conflict log, starting empty", "error", err)
	} else {
		s.conflicts = conflicts
	}

	lastSync, err := s.storage.LoadLastSync(ctx)
	if err != nil {
		s.logger.Warn("failed to load last sync marker", "error", err)
	}
	s.lastSync = lastSync
}

// Save persists all documents. The returned error lets callers and tests
// observe persistence failures; the in-memory state remains authoritative
// either way.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *Store) saveLocked(ctx context.Context) error {
	if err := s.storage.SaveRecords(ctx, s.records); err != nil {
		return err
	}
	ids := make([]string, 0, len(s.dirty))
	for id := range s.dirty {
		ids = append(ids, id)
	}
	if err := s.storage.SaveDirty(ctx, ids); err != nil {
		return err
	}
	return s.storage.SaveConflicts(ctx, s.conflicts)
}

// persistLocked saves and downgrades failures to a warning. Mutating
// operations keep going on persistence errors per the degradation policy.
func (s *Store) persistLocked(ctx context.Context) {
	if err := s.saveLocked(ctx); err != nil {
		s.logger.Warn("failed to persist local state", "error", err)
	}
}

// Add validates, appends and dirties a new record. Returns a
// *models.ValidationError if text or category is empty after trimming.
func (s *Store) Add(ctx context.Context, text, category string) (*models.Record, error) {
	record := &models.Record{
		ID:        uuid.NewString(),
		Text:      text,
		Category:  category,
		UpdatedAt: time.Now(),
	}
	record.Normalize()
	if err := record.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	s.dirty[record.ID] = struct{}{}
	s.persistLocked(ctx)
	return record, nil
}

// Update edits an existing record's content and re-marks it dirty.
func (s *Store) Update(ctx context.Context, id, text, category string) error {
	probe := &models.Record{Text: text, Category: category}
	probe.Normalize()
	if err := probe.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.findLocked(id)
	if record == nil {
		return storage.ErrRecordNotFound
	}
	record.Text = probe.Text
	record.Category = probe.Category
	record.UpdatedAt = time.Now()
	s.dirty[id] = struct{}{}
	s.persistLocked(ctx)
	return nil
}

// Import appends a batch of externally produced records. Entries with empty
// text or category after trimming are filtered out silently; every imported
// record gets a fresh local id and is marked dirty. Returns the number of
// records added.
func (s *Store) Import(ctx context.Context, records []*models.Record) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, in := range records {
		record := &models.Record{
			ID:        uuid.NewString(),
			Text:      in.Text,
			Category:  in.Category,
			UpdatedAt: time.Now(),
		}
		record.Normalize()
		if record.Validate() != nil {
			continue
		}
		s.records = append(s.records, record)
		s.dirty[record.ID] = struct{}{}
		added++
	}
	if added > 0 {
		s.persistLocked(ctx)
	}
	return added
}

// Records returns a snapshot of the current collection.
func (s *Store) Records() []*models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record with the given local id, or nil.
func (s *Store) Get(id string) *models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(id)
}

func (s *Store) findLocked(id string) *models.Record {
	for _, record := range s.records {
		if record.ID == id {
			return record
		}
	}
	return nil
}

// FindByRemoteID returns the record published under the given remote id, or
// nil. Collections are small, a linear scan is fine.
func (s *Store) FindByRemoteID(remoteID string) *models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findByRemoteIDLocked(remoteID)
}

func (s *Store) findByRemoteIDLocked(remoteID string) *models.Record {
	if remoteID == "" {
		return nil
	}
	for _, record := range s.records {
		if record.RemoteID == remoteID {
			return record
		}
	}
	return nil
}

// Append adds a record without marking it dirty. Used by the merge engine
// for brand-new remote records.
func (s *Store) Append(record *models.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
}

// SetContent overwrites a record's mutable fields in place, preserving its
// identity. Used by the merge engine for clean updates and conflict
// overwrites.
func (s *Store) SetContent(id, text, category string, updatedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := s.findLocked(id)
	if record == nil {
		return
	}
	record.Text = text
	record.Category = category
	record.UpdatedAt = updatedAt
}

// MarkDirty adds a record id to the dirty set.
func (s *Store) MarkDirty(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty[id] = struct{}{}
}

// ClearDirty removes a record id from the dirty set.
func (s *Store) ClearDirty(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dirty, id)
}

// IsDirty reports whether a record has unsynced local edits.
func (s *Store) IsDirty(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.dirty[id]
	return ok
}

// DirtyCount returns the number of records awaiting sync.
func (s *Store) DirtyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dirty)
}

// PushSet returns the records the next cycle must push: everything without a
// remote id plus everything dirty.
func (s *Store) PushSet() []*models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Record
	for _, record := range s.records {
		if !record.Published() {
			out = append(out, record)
			continue
		}
		if _, ok := s.dirty[record.ID]; ok {
			out = append(out, record)
		}
	}
	return out
}

// RecordConflict appends an entry to the conflict log.
func (s *Store) RecordConflict(entry models.ConflictEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conflicts = append(s.conflicts, entry)
}

// Conflicts returns the conflict log in discovery order.
func (s *Store) Conflicts() []models.ConflictEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ConflictEntry, len(s.conflicts))
	copy(out, s.conflicts)
	return out
}

// RestoreConflict re-applies the local snapshot of the chosen entry onto the
// live record matched by remote id, re-marks it dirty and removes the entry
// from the log. An out-of-range index is a no-op. Returns whether a restore
// happened.
func (s *Store) RestoreConflict(ctx context.Context, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.conflicts) {
		return false
	}
	entry := s.conflicts[index]

	record := s.findByRemoteIDLocked(entry.Server.RemoteID)
	if record == nil {
		s.logger.Warn("conflict restore target no longer present",
			"remote_id", entry.Server.RemoteID)
		return false
	}

	record.Text = entry.Local.Text
	record.Category = entry.Local.Category
	record.UpdatedAt = time.Now()
	s.dirty[record.ID] = struct{}{}

	s.conflicts = append(s.conflicts[:index], s.conflicts[index+1:]...)
	s.persistLocked(ctx)
	return true
}

// LastSync returns the last-sync marker. Advisory only.
func (s *Store) LastSync() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSync
}

// SetLastSync records the completion time of a successful sync cycle.
func (s *Store) SetLastSync(ctx context.Context, t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSync = t
	if err := s.storage.SaveLastSync(ctx, t); err != nil {
		s.logger.Warn("failed to persist last sync marker", "error", err)
	}
}
