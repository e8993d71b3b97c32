package sync

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicklancube/quotesync/internal/models"
	"github.com/dicklancube/quotesync/internal/remote"
	"github.com/dicklancube/quotesync/internal/storage/boltdb"
	"github.com/dicklancube/quotesync/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "sync.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	s := store.New(db, testLogger())
	s.Load(context.Background())
	return s
}

// fakeServer simulates the remote with an auto-incrementing id counter, the
// push side of the mock only.
func fakeServer() *remote.APIMock {
	nextID := 100
	return &remote.APIMock{
		PushFunc: func(ctx context.Context, record *models.Record) error {
			nextID++
			if record.RemoteID == "" {
				record.RemoteID = fmt.Sprintf("%d", nextID)
			}
			record.UpdatedAt = time.Now()
			return nil
		},
		PullFunc: func(ctx context.Context, limit int) ([]*models.Record, error) {
			return nil, nil
		},
	}
}

func TestRunCycle_PushesSeedAndPullsNewRecord(t *testing.T) {
	st := newTestStore(t)
	api := fakeServer()
	api.PullFunc = func(ctx context.Context, limit int) ([]*models.Record, error) {
		return []*models.Record{
			{ID: "srv_7", RemoteID: "7", Text: "fresh from the server", Category: "Server", UpdatedAt: time.Now()},
		}, nil
	}

	var gotMessage string
	var gotSeverity Severity
	notify := func(message string, severity Severity, hasConflicts bool) {
		gotMessage = message
		gotSeverity = severity
		assert.False(t, hasConflicts)
	}

	svc := NewService(api, st, 10, notify, testLogger())
	result, err := svc.RunCycle(context.Background())
	require.NoError(t, err)

	// All five seed records had no remote id, so all were pushed
	assert.Equal(t, 5, result.Pushed)
	assert.Equal(t, 1, result.Pulled)
	assert.Equal(t, 1, result.Merged)
	assert.Equal(t, 0, result.Conflicts)

	for _, record := range st.Records() {
		assert.True(t, record.Published(), "record %s should have a remote id", record.ID)
	}
	assert.Equal(t, 0, st.DirtyCount())

	added := st.Get("srv_7")
	require.NotNil(t, added)
	assert.Equal(t, "fresh from the server", added.Text)
	assert.False(t, st.IsDirty("srv_7"))

	assert.False(t, st.LastSync().IsZero())
	assert.Equal(t, SeveritySuccess, gotSeverity)
	assert.Contains(t, gotMessage, "5 pushed")
	assert.Equal(t, StateIdle, svc.State())
}

func TestRunCycle_DirtyCounterpartProducesConflict(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	st.Append(&models.Record{ID: "srv_7", RemoteID: "7", Text: "my local edit", Category: "Mine", UpdatedAt: time.Now()})
	st.MarkDirty("srv_7")

	api := fakeServer()
	api.PullFunc = func(ctx context.Context, limit int) ([]*models.Record, error) {
		return []*models.Record{
			{ID: "srv_7", RemoteID: "7", Text: "server version", Category: "Server", UpdatedAt: time.Now()},
		}, nil
	}

	var sawConflicts bool
	notify := func(message string, severity Severity, hasConflicts bool) {
		sawConflicts = hasConflicts
		assert.Equal(t, SeverityWarning, severity)
	}

	svc := NewService(api, st, 10, notify, testLogger())
	result, err := svc.RunCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Conflicts)
	assert.True(t, sawConflicts)

	// Remote wins, the record keeps its identity but carries server content
	record := st.Get("srv_7")
	require.NotNil(t, record)
	assert.Equal(t, "server version", record.Text)
	assert.Equal(t, "Server", record.Category)
	assert.False(t, st.IsDirty("srv_7"))

	// The pre-overwrite local state is preserved in the conflict log
	conflicts := st.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, "my local edit", conflicts[0].Local.Text)
	assert.Equal(t, "server version", conflicts[0].Server.Text)
	assert.False(t, conflicts[0].DetectedAt.IsZero())

	// The user can still get the local version back
	require.True(t, st.RestoreConflict(ctx, 0))
	assert.Equal(t, "my local edit", st.Get("srv_7").Text)
	assert.True(t, st.IsDirty("srv_7"))
}

func TestRunCycle_CleanCounterpartOverwrittenWithoutConflict(t *testing.T) {
	st := newTestStore(t)

	st.Append(&models.Record{ID: "srv_3", RemoteID: "3", Text: "old pull", Category: "Server", UpdatedAt: time.Now()})

	api := fakeServer()
	api.PullFunc = func(ctx context.Context, limit int) ([]*models.Record, error) {
		return []*models.Record{
			{ID: "srv_3", RemoteID: "3", Text: "refreshed", Category: "Server", UpdatedAt: time.Now()},
		}, nil
	}

	svc := NewService(api, st, 10, nil, testLogger())
	result, err := svc.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.Conflicts)
	assert.Equal(t, "refreshed", st.Get("srv_3").Text)
	assert.Empty(t, st.Conflicts())
}

func TestRunCycle_DoublePullIsIdempotent(t *testing.T) {
	st := newTestStore(t)

	api := fakeServer()
	api.PullFunc = func(ctx context.Context, limit int) ([]*models.Record, error) {
		return []*models.Record{
			{ID: "srv_7", RemoteID: "7", Text: "same thing", Category: "Server", UpdatedAt: time.Now()},
		}, nil
	}

	svc := NewService(api, st, 10, nil, testLogger())

	_, err := svc.RunCycle(context.Background())
	require.NoError(t, err)
	countAfterFirst := len(st.Records())

	_, err = svc.RunCycle(context.Background())
	require.NoError(t, err)

	// The second pull resolves to the same local record, no duplicate
	assert.Equal(t, countAfterFirst, len(st.Records()))
	assert.Empty(t, st.Conflicts())
}

func TestRunCycle_OverlappingCycleRejected(t *testing.T) {
	st := newTestStore(t)

	release := make(chan struct{})
	entered := make(chan struct{})
	api := fakeServer()
	api.PullFunc = func(ctx context.Context, limit int) ([]*models.Record, error) {
		close(entered)
		<-release
		return nil, nil
	}

	svc := NewService(api, st, 10, nil, testLogger())

	done := make(chan error, 1)
	go func() {
		_, err := svc.RunCycle(context.Background())
		done <- err
	}()

	<-entered
	_, err := svc.RunCycle(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)

	// Once the first cycle finishes the guard is released
	api.PullFunc = func(ctx context.Context, limit int) ([]*models.Record, error) {
		return nil, nil
	}
	_, err = svc.RunCycle(context.Background())
	assert.NoError(t, err)
}

func TestRunCycle_PushFailureAbortsCycle(t *testing.T) {
	st := newTestStore(t)

	calls := 0
	api := &remote.APIMock{
		PushFunc: func(ctx context.Context, record *models.Record) error {
			calls++
			if calls == 1 {
				record.RemoteID = "100"
				return nil
			}
			return &remote.NetworkError{Op: "push", Err: fmt.Errorf("connection reset")}
		},
		PullFunc: func(ctx context.Context, limit int) ([]*models.Record, error) {
			return nil, nil
		},
	}

	var gotSeverity Severity
	notify := func(message string, severity Severity, hasConflicts bool) {
		gotSeverity = severity
	}

	svc := NewService(api, st, 10, notify, testLogger())
	_, err := svc.RunCycle(context.Background())
	require.Error(t, err)
	assert.Equal(t, SeverityError, gotSeverity)

	// The first record was confirmed, the rest still await the next cycle
	assert.Empty(t, api.PullCalls())
	assert.Len(t, st.PushSet(), 4)
	assert.True(t, st.LastSync().IsZero())

	// The guard is released after a failed cycle
	api.PushFunc = func(ctx context.Context, record *models.Record) error {
		if record.RemoteID == "" {
			record.RemoteID = fmt.Sprintf("re_%s", record.ID)
		}
		return nil
	}
	result, err := svc.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, result.Pushed)
	assert.Empty(t, st.PushSet())
}

func TestRunCycle_PullFailureKeepsPushedState(t *testing.T) {
	st := newTestStore(t)

	api := fakeServer()
	api.PullFunc = func(ctx context.Context, limit int) ([]*models.Record, error) {
		return nil, &remote.NetworkError{Op: "pull", Err: fmt.Errorf("timeout")}
	}

	svc := NewService(api, st, 10, nil, testLogger())
	_, err := svc.RunCycle(context.Background())
	require.Error(t, err)

	// Pushes before the failing pull are confirmed and not repeated
	for _, record := range st.Records() {
		assert.True(t, record.Published())
	}
	assert.True(t, st.LastSync().IsZero())
}

func TestRunPeriodic_StopsOnCancel(t *testing.T) {
	st := newTestStore(t)
	api := fakeServer()

	svc := NewService(api, st, 10, nil, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		svc.RunPeriodic(ctx, time.Hour)
		close(stopped)
	}()

	// The immediate cycle runs before the first tick
	require.Eventually(t, func() bool {
		return len(api.PullCalls()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("RunPeriodic did not stop after cancellation")
	}
}
