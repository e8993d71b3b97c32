package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/dicklancube/quotesync/internal/models"
)

// item is the wire shape of one remote collection entry.
type item struct {
	ID    json.Number `json:"id"`
	Title string      `json:"title"`
	Body  string      `json:"body"`
}

// Pull fetches up to limit remote items. Each item maps to a record: the
// remote identifier becomes RemoteID, the first word of the title (stripped
// of non-word characters) becomes the category, the body becomes the text.
// The local id is derived from the remote identifier so repeated pulls of
// the same item resolve to the same local record instead of duplicating it.
func (c *Client) Pull(ctx context.Context, limit int) ([]*models.Record, error) {
	if limit <= 0 {
		limit = DefaultPullLimit
	}

	url := fmt.Sprintf("%s?limit=%d", c.baseURL, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{Op: "pull", Err: err}
	}

	body, err := c.do(req)
	if err != nil {
		return nil, &NetworkError{Op: "pull", Err: err}
	}

	var items []item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &NetworkError{Op: "pull", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	now := time.Now()
	records := make([]*models.Record, 0, len(items))
	for _, it := range items {
		remoteID := it.ID.String()
		if remoteID == "" {
			continue
		}
		records = append(records, &models.Record{
			ID:        LocalID(remoteID),
			RemoteID:  remoteID,
			Category:  categoryFromTitle(it.Title),
			Text:      textFromBody(it.Body),
			UpdatedAt: now,
		})
	}
	return records, nil
}

// LocalID derives the deterministic local id for a remote item.
func LocalID(remoteID string) string {
	return "srv_" + remoteID
}

var nonWord = regexp.MustCompile(`[^0-9A-Za-z_]`)

// categoryFromTitle folds a remote title into a category: first
// whitespace-delimited token, stripped of non-word characters, "Server" when
// nothing usable remains.
func categoryFromTitle(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return "Server"
	}
	token := nonWord.ReplaceAllString(fields[0], "")
	if token == "" {
		return "Server"
	}
	return token
}

// textFromBody returns the remote body, or a placeholder when it is empty.
func textFromBody(body string) string {
	text := strings.TrimSpace(body)
	if text == "" {
		return "Server quote"
	}
	return text
}
