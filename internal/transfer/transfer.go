// Package transfer reads and writes record collections as JSON files.
package transfer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dicklancube/quotesync/internal/models"
)

// Export writes the collection as indented JSON.
func Export(w io.Writer, records []*models.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return nil
}

// ExportFile writes the collection to a file.
func ExportFile(path string, records []*models.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()
	return Export(f, records)
}

// Import reads a JSON list of records. Validation and filtering of the
// entries is the store's job; Import only rejects JSON that is not a list.
func Import(r io.Reader) ([]*models.Record, error) {
	var records []*models.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return records, nil
}

// ImportFile reads a JSON list of records from a file.
func ImportFile(path string) ([]*models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()
	return Import(f)
}
