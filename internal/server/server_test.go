package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicklancube/quotesync/internal/server/storage/sqlite"
	"github.com/dicklancube/quotesync/pkg/api"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	storage, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, storage.Close())
	})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	server := httptest.NewServer(Routes(logger, storage))
	t.Cleanup(server.Close)
	return server
}

func createQuote(t *testing.T, server *httptest.Server, title, body string) api.Item {
	t.Helper()

	payload, err := json.Marshal(api.CreateRequest{Title: title, Body: body})
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/api/v1/quotes", "application/json", strings.NewReader(string(payload)))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var item api.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
	return item
}

func listQuotes(t *testing.T, server *httptest.Server, query string) (*http.Response, []api.Item) {
	t.Helper()

	resp, err := http.Get(server.URL + "/api/v1/quotes" + query)
	require.NoError(t, err)
	t.Cleanup(func() {
		resp.Body.Close()
	})

	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}
	var items []api.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	return resp, items
}

func TestCreateQuote(t *testing.T) {
	server := newTestServer(t)

	item := createQuote(t, server, "Wisdom", "The quote body.")
	assert.Positive(t, item.ID)
	assert.Equal(t, "Wisdom", item.Title)
	assert.Equal(t, "The quote body.", item.Body)

	// Ids are assigned sequentially
	next := createQuote(t, server, "More", "Another one.")
	assert.Equal(t, item.ID+1, next.ID)
}

func TestCreateQuote_InvalidBody(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/v1/quotes", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListQuotes(t *testing.T) {
	server := newTestServer(t)

	first := createQuote(t, server, "One", "first")
	second := createQuote(t, server, "Two", "second")
	third := createQuote(t, server, "Three", "third")

	resp, items := listQuotes(t, server, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	// Most recent first
	require.Len(t, items, 3)
	assert.Equal(t, third.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
	assert.Equal(t, first.ID, items[2].ID)
}

func TestListQuotes_Limit(t *testing.T) {
	server := newTestServer(t)

	for i := 0; i < 5; i++ {
		createQuote(t, server, "T", "b")
	}

	_, items := listQuotes(t, server, "?limit=2")
	assert.Len(t, items, 2)
}

func TestListQuotes_InvalidLimit(t *testing.T) {
	server := newTestServer(t)

	for _, query := range []string{"?limit=abc", "?limit=0", "?limit=-1"} {
		resp, _ := listQuotes(t, server, query)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "query %s", query)
	}
}

func TestListQuotes_Empty(t *testing.T) {
	server := newTestServer(t)

	resp, items := listQuotes(t, server, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, items)
}

func TestMethodNotAllowed(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/v1/quotes", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
