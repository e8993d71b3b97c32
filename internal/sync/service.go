// Package sync implements the synchronization engine: the push→pull→merge
// cycle, the periodic scheduler and the remote-wins merge policy.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dicklancube/quotesync/internal/remote"
	"github.com/dicklancube/quotesync/internal/store"
)

// DefaultInterval between scheduled sync cycles.
const DefaultInterval = 30 * time.Second

// ErrSyncInProgress is returned when a cycle is requested while another is
// still running. At most one cycle may be in flight: concurrent merges
// against the same collection would corrupt the dirty-set invariants.
var ErrSyncInProgress = errors.New("sync cycle already in progress")

// Severity classifies a status notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier receives sync outcome notifications. The engine assumes nothing
// about the rendering surface.
type Notifier func(message string, severity Severity, hasConflicts bool)

// State of the cycle state machine.
type State string

const (
	StateIdle    State = "idle"
	StatePushing State = "pushing"
	StatePulling State = "pulling"
	StateMerging State = "merging"
	StateFailed  State = "failed"
)

// Result contains the outcome of one sync cycle.
type Result struct {
	Pushed    int // records pushed to the remote
	Pulled    int // records received from the remote
	Merged    int // pulled records applied locally
	Conflicts int // conflict entries produced by the merge
}

// Service sequences push, pull and merge against a single store.
type Service struct {
	client    remote.API
	store     *store.Store
	logger    *slog.Logger
	notify    Notifier
	pullLimit int
	inFlight  atomic.Bool
	state     atomic.Value // State
}

// NewService creates a sync service. notify may be nil.
func NewService(client remote.API, st *store.Store, pullLimit int, notify Notifier, logger *slog.Logger) *Service {
	if notify == nil {
		notify = func(string, Severity, bool) {}
	}
	if pullLimit <= 0 {
		pullLimit = remote.DefaultPullLimit
	}
	s := &Service{
		client:    client,
		store:     st,
		logger:    logger,
		notify:    notify,
		pullLimit: pullLimit,
	}
	s.state.Store(StateIdle)
	return s
}

// State returns the current cycle state.
func (s *Service) State() State {
	return s.state.Load().(State)
}

// RunCycle performs one full synchronization cycle: push every record that
// has no remote id or is dirty, pull the remote collection, merge the pulled
// batch, then record the last-sync marker. Returns ErrSyncInProgress when a
// cycle is already running. On any step failure the remainder of the cycle
// is aborted; records not yet confirmed pushed keep their dirty flags and
// the next cycle retries.
func (s *Service) RunCycle(ctx context.Context) (*Result, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer func() {
		s.state.Store(StateIdle)
		s.inFlight.Store(false)
	}()

	s.logger.Info("starting sync cycle")
	result := &Result{}

	s.state.Store(StatePushing)
	pushSet := s.store.PushSet()
	for _, record := range pushSet {
		// Sequential on purpose: remote id adoption stays deterministic and
		// a failure is attributable to one record.
		if err := s.client.Push(ctx, record); err != nil {
			return nil, s.fail(ctx, fmt.Errorf("push failed for record %s: %w", record.ID, err))
		}
		s.store.ClearDirty(record.ID)
		result.Pushed++
	}
	s.persist(ctx)

	s.state.Store(StatePulling)
	pulled, err := s.client.Pull(ctx, s.pullLimit)
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("pull failed: %w", err))
	}
	result.Pulled = len(pulled)

	s.state.Store(StateMerging)
	result.Merged, result.Conflicts = s.merge(pulled)
	s.persist(ctx)

	s.store.SetLastSync(ctx, time.Now())

	s.logger.Info("sync cycle completed",
		"pushed", result.Pushed,
		"pulled", result.Pulled,
		"merged", result.Merged,
		"conflicts", result.Conflicts)

	message := fmt.Sprintf("Synced: %d pushed, %d pulled", result.Pushed, result.Pulled)
	severity := SeveritySuccess
	if result.Conflicts > 0 {
		message = fmt.Sprintf("%s, %d conflict(s) resolved from server", message, result.Conflicts)
		severity = SeverityWarning
	}
	s.notify(message, severity, result.Conflicts > 0)

	return result, nil
}

// fail persists whatever the cycle confirmed before the failing step and
// reports a retryable failure.
func (s *Service) fail(ctx context.Context, err error) error {
	s.state.Store(StateFailed)
	s.persist(ctx)
	s.logger.Warn("sync cycle aborted", "error", err)
	s.notify("Sync failed, will retry: "+err.Error(), SeverityError, false)
	return err
}

// persist saves the store, downgrading failures to a warning. The in-memory
// state stays authoritative.
func (s *Service) persist(ctx context.Context) {
	if err := s.store.Save(ctx); err != nil {
		s.logger.Warn("failed to persist state during sync", "error", err)
	}
}

// RunPeriodic runs one cycle immediately, then one per interval until ctx is
// cancelled. A tick that fires while a cycle is still running is skipped; a
// skipped tick loses nothing because every cycle reconciles in full.
func (s *Service) RunPeriodic(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	s.runScheduled(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runScheduled(ctx)
		}
	}
}

func (s *Service) runScheduled(ctx context.Context) {
	if _, err := s.RunCycle(ctx); err != nil {
		if errors.Is(err, ErrSyncInProgress) {
			s.logger.Debug("previous sync cycle still running, skipping tick")
			return
		}
		s.logger.Warn("scheduled sync cycle failed, retrying next tick", "error", err)
	}
}
