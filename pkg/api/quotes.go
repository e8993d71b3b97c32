// Package api defines the wire types of the remote quote collection.
package api

// Item represents one entry of the remote collection.
type Item struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CreateRequest represents a creation request. The remote contract has no
// update verb; every push creates a new entry.
type CreateRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
