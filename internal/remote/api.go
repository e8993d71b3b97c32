package remote

import (
	"context"

	"github.com/dicklancube/quotesync/internal/models"
)

//go:generate moq -out client_mock.go . API

// API is the remote collection contract the sync service depends on.
type API interface {
	// Pull fetches up to limit remote items mapped into record-shaped
	// values. Returns a *NetworkError on transport or decode failure.
	Pull(ctx context.Context, limit int) ([]*models.Record, error)

	// Push publishes a record's content as a creation request and adopts the
	// remote-assigned identifier into record.RemoteID when the record had
	// none. Returns a *NetworkError on transport or decode failure.
	Push(ctx context.Context, record *models.Record) error
}
