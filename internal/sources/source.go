// Package sources provides adapters for reading password exports into rows.
package sources

import (
	"github.com/nvinuesa/applewarden/internal/model"
)

// Source defines the interface for export readers.
// Each adapter reads rows from one export format (Apple Passwords CSV,
// Chrome CSV) and maps its columns onto model.Row.
type Source interface {
	// Name returns the unique identifier for this source (e.g., "apple").
	Name() string

	// Description returns a human-readable description of the source.
	Description() string

	// SupportedExtensions returns file extensions this source handles (e.g., [".csv"]).
	SupportedExtensions() []string

	// Detect checks if the given path is valid for this source.
	// Returns a confidence score from 0-100 (100 = definitely this format).
	Detect(path string) (confidence int, err error)

	// Open prepares the source for reading the given path.
	Open(path string) error

	// Read returns every row of the export in file order.
	// Any parse or encoding failure aborts the read; no rows are returned.
	Read() ([]model.Row, error)

	// Close releases any resources held by the source.
	Close() error
}
