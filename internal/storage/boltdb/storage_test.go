package boltdb

import (
	"context"
	"encoding/binary"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/dicklancube/quotesync/internal/models"
	"github.com/dicklancube/quotesync/internal/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestRecords_SaveLoad(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	records := []*models.Record{
		{ID: "b", Text: "second added first", Category: "Two", UpdatedAt: time.Now().UTC()},
		{ID: "a", RemoteID: "7", Text: "first added second", Category: "One", UpdatedAt: time.Now().UTC()},
	}
	require.NoError(t, s.SaveRecords(ctx, records))

	got, err := s.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Insertion order survives the round trip
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "7", got[1].RemoteID)
}

func TestRecords_SaveReplacesPrevious(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveRecords(ctx, []*models.Record{
		{ID: "a", Text: "one", Category: "C"},
		{ID: "b", Text: "two", Category: "C"},
	}))
	require.NoError(t, s.SaveRecords(ctx, []*models.Record{
		{ID: "c", Text: "three", Category: "C"},
	}))

	got, err := s.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
}

func TestRecords_LoadFiltersMalformedEntries(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveRecords(ctx, []*models.Record{
		{ID: "good", Text: "kept", Category: "C"},
	}))

	// Inject garbage and an invalid record directly
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if err := bucket.Put(itob(100), []byte("{not json")); err != nil {
			return err
		}
		return bucket.Put(itob(101), []byte(`{"id":"bad","text":"  ","category":"C"}`))
	})
	require.NoError(t, err)

	got, err := s.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "good", got[0].ID)
}

func TestRecords_LoadEmptyStore(t *testing.T) {
	s := newTestStorage(t)

	got, err := s.LoadRecords(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDirty_SaveLoad(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDirty(ctx, []string{"a", "b"}))

	got, err := s.LoadDirty(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, got)

	// Replace semantics
	require.NoError(t, s.SaveDirty(ctx, []string{"c"}))
	got, err = s.LoadDirty(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, got)
}

func TestConflicts_SaveLoadKeepsOrder(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	entries := []models.ConflictEntry{
		{Local: models.Record{ID: "x", Text: "l1", Category: "C"}, Server: models.Record{ID: "srv_1", RemoteID: "1", Text: "s1", Category: "C"}},
		{Local: models.Record{ID: "y", Text: "l2", Category: "C"}, Server: models.Record{ID: "srv_2", RemoteID: "2", Text: "s2", Category: "C"}},
	}
	require.NoError(t, s.SaveConflicts(ctx, entries))

	got, err := s.LoadConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Server.RemoteID)
	assert.Equal(t, "2", got[1].Server.RemoteID)
}

func TestLastSync_SaveLoad(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	got, err := s.LoadLastSync(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	now := time.Now().Truncate(time.Second)
	require.NoError(t, s.SaveLastSync(ctx, now))

	got, err = s.LoadLastSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, now.Unix(), got.Unix())
}

func TestSchemaVersion_NewerStoreRejected(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveRecords(ctx, []*models.Record{
		{ID: "a", Text: "t", Category: "C"},
	}))

	// Pretend a future build wrote this store
	err := s.db.Update(func(tx *bbolt.Tx) error {
		raw := make([]byte, 8)
		binary.BigEndian.PutUint64(raw, storage.SchemaVersion+1)
		return tx.Bucket(bucketMetadata).Put([]byte(keySchemaVersion), raw)
	})
	require.NoError(t, err)

	_, err = s.LoadRecords(ctx)
	assert.ErrorIs(t, err, storage.ErrBadSchemaVersion)
	_, err = s.LoadDirty(ctx)
	assert.ErrorIs(t, err, storage.ErrBadSchemaVersion)
	_, err = s.LoadConflicts(ctx)
	assert.ErrorIs(t, err, storage.ErrBadSchemaVersion)
}

func TestClosedStorage(t *testing.T) {
	s, err := New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	s.db = nil

	ctx := context.Background()
	assert.ErrorIs(t, s.SaveRecords(ctx, nil), storage.ErrStorageClosed)
	_, err = s.LoadRecords(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
