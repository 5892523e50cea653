package sources

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/nvinuesa/applewarden/internal/model"
)

// field identifies the model.Row field a CSV column maps onto.
type field int

const (
	fieldTitle field = iota
	fieldUsername
	fieldPassword
	fieldURL
	fieldNotes
	fieldOTPAuth
)

// minDetectColumns is the number of known columns a header must carry
// before a CSV format reports any confidence.
const minDetectColumns = 3

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvFormat describes how one exporter lays out its CSV.
type csvFormat struct {
	name        string
	description string
	// columns maps lowercase header names to row fields.
	columns map[string]field
	// signature lists the headers that identify the format.
	signature []string
}

// csvSource implements Source for header-addressed CSV exports.
// Columns are matched by name, case-insensitively; extra columns are
// ignored and missing ones read as empty.
type csvSource struct {
	format   csvFormat
	filePath string
	isOpen   bool
	rows     []model.Row
}

// Name returns the unique identifier for this source.
func (s *csvSource) Name() string {
	return s.format.name
}

// Description returns a human-readable description.
func (s *csvSource) Description() string {
	return s.format.description
}

// SupportedExtensions returns file extensions this source handles.
func (s *csvSource) SupportedExtensions() []string {
	return []string{".csv"}
}

// Detect scores the header row of path against the format signature.
func (s *csvSource) Detect(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, &ErrFileNotFound{Path: path}
		}
		return 0, err
	}

	if info.IsDir() {
		return 0, nil
	}

	if strings.ToLower(filepath.Ext(path)) != ".csv" {
		return 0, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := csv.NewReader(skipBOM(f))
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return 0, nil // Not a valid CSV
	}

	return s.format.detectHeader(header), nil
}

// detectHeader scores header against the format, as a percentage.
// Matched signature columns count for the format; header columns the
// format does not know count against it, so a partial export of one
// layout still outscores a layout that would drop its columns.
func (f csvFormat) detectHeader(header []string) int {
	present := make(map[string]bool, len(header))
	unknown := 0
	for _, h := range header {
		name := normalizeHeader(h)
		if name == "" || present[name] {
			continue
		}
		present[name] = true
		if _, ok := f.columns[name]; !ok {
			unknown++
		}
	}

	found := 0
	for _, col := range f.signature {
		if present[col] {
			found++
		}
	}

	if found < minDetectColumns {
		return 0
	}

	return found * 100 / (len(f.signature) + unknown)
}

// Open initializes the source with the given file path.
func (s *csvSource) Open(path string) error {
	if s.isOpen {
		return ErrAlreadyOpen
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ErrFileNotFound{Path: path}
		}
		return &ErrPermissionDenied{Path: path, Op: "stat", Err: err}
	}

	if info.IsDir() {
		return &ErrInvalidFormat{
			Source:  s.Name(),
			Path:    path,
			Details: "path must be a file, not a directory",
		}
	}

	s.filePath = path
	s.isOpen = true
	s.rows = nil

	return nil
}

// Read parses the whole CSV and returns its rows in file order.
func (s *csvSource) Read() ([]model.Row, error) {
	if !s.isOpen {
		return nil, ErrNotOpen
	}

	if s.rows != nil {
		return s.rows, nil
	}

	f, err := os.Open(s.filePath)
	if err != nil {
		return nil, &ErrPermissionDenied{Path: s.filePath, Op: "open", Err: err}
	}
	defer f.Close()

	rows, err := s.format.parse(skipBOM(f))
	if err != nil {
		var formatErr *ErrInvalidFormat
		if errors.As(err, &formatErr) {
			formatErr.Source = s.Name()
			formatErr.Path = s.filePath
			return nil, formatErr
		}
		return nil, &ErrPermissionDenied{Path: s.filePath, Op: "read", Err: err}
	}

	s.rows = rows
	return rows, nil
}

// parse reads a header row followed by records. Every record must have
// as many fields as the header and hold valid UTF-8.
func (f csvFormat) parse(r io.Reader) ([]model.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if err == io.EOF {
		return []model.Row{}, nil
	}
	if err != nil {
		return nil, parseFailure(err, "failed to read CSV header")
	}
	if err := checkUTF8(header); err != nil {
		return nil, &ErrInvalidFormat{Line: 1, Details: "header: " + err.Error()}
	}

	colIndex := make(map[field]int)
	for i, h := range header {
		fld, ok := f.columns[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, seen := colIndex[fld]; !seen {
			colIndex[fld] = i
		}
	}

	rows := []model.Row{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseFailure(err, "")
		}

		if err := checkUTF8(record); err != nil {
			line, _ := reader.FieldPos(0)
			return nil, &ErrInvalidFormat{Line: line, Details: err.Error()}
		}

		rows = append(rows, buildRow(record, colIndex))
	}

	return rows, nil
}

// buildRow maps a record onto a row through the column index.
func buildRow(record []string, colIndex map[field]int) model.Row {
	get := func(fld field) string {
		if idx, ok := colIndex[fld]; ok && idx < len(record) {
			return record[idx]
		}
		return ""
	}

	return model.Row{
		Title:    get(fieldTitle),
		Username: get(fieldUsername),
		Password: get(fieldPassword),
		URL:      get(fieldURL),
		Notes:    get(fieldNotes),
		OTPAuth:  get(fieldOTPAuth),
	}
}

// Close releases resources.
func (s *csvSource) Close() error {
	s.isOpen = false
	s.filePath = ""
	s.rows = nil
	return nil
}

// parseFailure converts an encoding/csv error into ErrInvalidFormat,
// keeping the line it occurred on. Non-parse errors pass through.
func parseFailure(err error, details string) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &ErrInvalidFormat{Line: parseErr.Line, Details: details, Err: parseErr.Err}
	}
	return err
}

// checkUTF8 fails on the first field that is not valid UTF-8.
func checkUTF8(record []string) error {
	for i, v := range record {
		if !utf8.ValidString(v) {
			return fmt.Errorf("invalid UTF-8 in column %d", i+1)
		}
	}
	return nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// skipBOM returns a reader positioned after a leading UTF-8 byte order mark.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}
