package sync

import (
	"time"

	"github.com/dicklancube/quotesync/internal/models"
)

// merge integrates a pulled batch into the store. For each pulled record:
// an unknown remote id is appended as a clean local record; a known, clean
// counterpart is overwritten in place; a known, dirty counterpart is a
// conflict: the remote authority wins, the pre-overwrite local state and
// the incoming server state are snapshotted into the conflict log, and the
// dirty flag is cleared pending manual review. Returns the number of applied
// records and the number of conflicts produced.
func (s *Service) merge(pulled []*models.Record) (merged, conflicts int) {
	for _, server := range pulled {
		existing := s.store.FindByRemoteID(server.RemoteID)
		if existing == nil {
			s.store.Append(server)
			merged++
			continue
		}

		if s.store.IsDirty(existing.ID) {
			s.store.RecordConflict(models.ConflictEntry{
				Local:      *existing,
				Server:     *server,
				DetectedAt: time.Now(),
			})
			s.store.ClearDirty(existing.ID)
			conflicts++
			s.logger.Warn("merge conflict, remote wins",
				"record_id", existing.ID,
				"remote_id", server.RemoteID)
		}

		// Identity is preserved, only content changes.
		s.store.SetContent(existing.ID, server.Text, server.Category, server.UpdatedAt)
		merged++
	}
	return merged, conflicts
}
