// Package export serializes Bitwarden exports and writes them to a file
// or to standard output.
package export

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/nvinuesa/applewarden/internal/bitwarden"
	"github.com/nvinuesa/applewarden/internal/security"
)

// StdoutPath is the output path that selects standard output.
const StdoutPath = "-"

// Options configures export writing.
type Options struct {
	// OutputPath is the destination file path, or StdoutPath.
	OutputPath string
	// Stdout receives the document when OutputPath is StdoutPath.
	// Defaults to os.Stdout.
	Stdout io.Writer
}

// Export serializes doc and writes it to opts.OutputPath.
//
// The document is fully serialized before the destination is touched.
// Files are replaced atomically, so a failed write leaves any previous
// file intact and never a truncated one. New files are created with
// mode 0600; a replaced file keeps its mode.
func Export(doc *bitwarden.Export, opts Options) error {
	if opts.OutputPath == "" {
		return ErrNoOutputPath
	}

	data, err := ExportToBytes(doc)
	if err != nil {
		return err
	}
	defer security.Wipe(&data)

	if opts.OutputPath == StdoutPath {
		out := opts.Stdout
		if out == nil {
			out = os.Stdout
		}
		if _, err := out.Write(data); err != nil {
			return &ErrWrite{Path: StdoutPath, Op: "write", Err: err}
		}
		return nil
	}

	// The destination directory must already exist.
	dir := filepath.Dir(opts.OutputPath)
	if _, err := os.Stat(dir); err != nil {
		return &ErrWrite{Path: opts.OutputPath, Op: "stat", Err: err}
	}

	if err := atomic.WriteFile(opts.OutputPath, bytes.NewReader(data)); err != nil {
		return &ErrWrite{Path: opts.OutputPath, Op: "write", Err: err}
	}

	return nil
}

// ExportToBytes returns the document as indented JSON followed by a newline.
// HTML characters are not escaped so URLs stay readable.
func ExportToBytes(doc *bitwarden.Export) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilExport
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
