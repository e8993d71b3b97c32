// Package server implements the reference remote collection: a create-only
// quote endpoint the client pushes to and pulls from.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dicklancube/quotesync/internal/server/middleware"
	"github.com/dicklancube/quotesync/pkg/api"
)

// DefaultListLimit applies when a pull does not pass a limit.
const DefaultListLimit = 10

// Storage defines the quote persistence the handlers need.
type Storage interface {
	// Insert stores a new quote and returns its assigned id.
	Insert(ctx context.Context, title, body string) (int64, error)

	// List returns up to limit quotes, most recent first.
	List(ctx context.Context, limit int) ([]api.Item, error)
}

// QuotesHandler handles the collection endpoint
type QuotesHandler struct {
	logger  *slog.Logger
	storage Storage
}

// NewQuotesHandler creates a new quotes handler
func NewQuotesHandler(logger *slog.Logger, storage Storage) *QuotesHandler {
	return &QuotesHandler{
		logger:  logger,
		storage: storage,
	}
}

// Routes builds the HTTP handler with logging and recovery middleware.
func Routes(logger *slog.Logger, storage Storage) http.Handler {
	h := NewQuotesHandler(logger, storage)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/quotes", h.HandleQuotes)

	var handler http.Handler = mux
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)
	return handler
}

// HandleQuotes dispatches GET (pull) and POST (push) requests
func (h *QuotesHandler) HandleQuotes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// handleList handles GET /api/v1/quotes?limit=n
func (h *QuotesHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := DefaultListLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			h.logger.Warn("Invalid limit parameter", "limit", limitStr)
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	items, err := h.storage.List(ctx, limit)
	if err != nil {
		h.logger.Error("Failed to list quotes", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(items); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

// handleCreate handles POST /api/v1/quotes
func (h *QuotesHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode create request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.storage.Insert(ctx, req.Title, req.Body)
	if err != nil {
		h.logger.Error("Failed to insert quote", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	item := api.Item{ID: id, Title: req.Title, Body: req.Body}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(item); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}

	h.logger.Info("Quote created", "id", id)
}
