package models

import (
	"fmt"
	"time"
)

// Seed returns the built-in starter collection used when no durable state
// exists or the stored collection is unreadable.
func Seed(now time.Time) []*Record {
	quotes := []struct {
		text     string
		category string
	}{
		{"The only limit to our realization of tomorrow is our doubts of today.", "Motivation"},
		{"Simplicity is the ultimate sophistication.", "Design"},
		{"Programs must be written for people to read, and only incidentally for machines to execute.", "Programming"},
		{"What gets measured gets managed.", "Product"},
		{"Premature optimization is the root of all evil.", "Programming"},
	}

	records := make([]*Record, 0, len(quotes))
	for i, q := range quotes {
		records = append(records, &Record{
			ID:        fmt.Sprintf("seed_%d", i+1),
			Text:      q.text,
			Category:  q.category,
			UpdatedAt: now,
		})
	}
	return records
}
