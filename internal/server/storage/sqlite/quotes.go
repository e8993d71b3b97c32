package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/dicklancube/quotesync/pkg/api"
)

// Insert stores a new quote and returns its assigned id.
func (s *Storage) Insert(ctx context.Context, title, body string) (int64, error) {
	query := `INSERT INTO quotes (title, body, created_at) VALUES (?, ?, ?)`

	res, err := s.db.ExecContext(ctx, query, title, body, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to insert quote: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	return id, nil
}

// List returns up to limit quotes, most recent first.
func (s *Storage) List(ctx context.Context, limit int) ([]api.Item, error) {
	query := `SELECT id, title, body FROM quotes ORDER BY id DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	items := make([]api.Item, 0, limit)
	for rows.Next() {
		var it api.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Body); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotes: %w", err)
	}
	return items, nil
}
