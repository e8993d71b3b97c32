// Package remote implements the HTTP client for the remote quote collection.
package remote

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Per-request timeout. The only bounding mechanism on a sync cycle.
const requestTimeout = 10 * time.Second

// DefaultPullLimit caps how many remote items a pull fetches when the caller
// does not say otherwise.
const DefaultPullLimit = 10

// NetworkError wraps any transport or decode failure of a pull or push.
// Callers treat it as retryable: the next scheduled cycle tries again.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Client represents an HTTP client for the remote quote collection
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ API = (*Client)(nil)

// NewClient creates a new remote client. baseURL is the collection endpoint,
// e.g. "https://example.com/api/v1/quotes".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// do executes the request and returns the response body, treating any
// non-2xx status as a failure.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
