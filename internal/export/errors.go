package export

import (
	"errors"
	"fmt"
)

// Exporter errors.
var (
	ErrNilExport    = errors.New("export is nil")
	ErrNoOutputPath = errors.New("output path is required")
)

// ErrWrite indicates the export could not be written to its destination.
type ErrWrite struct {
	Path string // Destination path, or "-" for stdout
	Op   string // Operation that failed (stat, write)
	Err  error  // Underlying error
}

func (e *ErrWrite) Error() string {
	msg := fmt.Sprintf("cannot %s %q", e.Op, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ErrWrite) Unwrap() error {
	return e.Err
}

// IsWriteError returns true if the error is an output write error.
func IsWriteError(err error) bool {
	var writeErr *ErrWrite
	return errors.As(err, &writeErr)
}
