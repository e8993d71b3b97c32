package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dicklancube/quotesync/internal/models"
)

// pushRequest is the creation payload: the category travels as the title and
// the text as the body, the inverse of the pull mapping.
type pushRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Push publishes the record's content as a creation request. The remote
// contract has no update verb, so pushing an already-published dirty record
// creates a new remote entry and re-adopts whatever identifier comes back.
func (c *Client) Push(ctx context.Context, record *models.Record) error {
	payload, err := json.Marshal(pushRequest{
		Title: record.Category,
		Body:  record.Text,
	})
	if err != nil {
		return &NetworkError{Op: "push", Err: fmt.Errorf("failed to marshal request body: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return &NetworkError{Op: "push", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return &NetworkError{Op: "push", Err: err}
	}

	var assigned item
	if err := json.Unmarshal(body, &assigned); err != nil {
		return &NetworkError{Op: "push", Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if assigned.ID.String() == "" {
		return &NetworkError{Op: "push", Err: fmt.Errorf("response missing assigned id")}
	}

	// A push always yields a non-empty remote id. Once set it is never
	// cleared, so re-pushes keep the original adoption.
	if record.RemoteID == "" {
		record.RemoteID = assigned.ID.String()
	}
	record.UpdatedAt = time.Now()
	return nil
}
