package listing

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"

	"arbor/pkg/progress"
)

// Reader streams entry records out of a listing. A Reader owns buffered
// scratch state and is not safe for concurrent use; every goroutine opens
// its own.
type Reader struct {
	format  Format
	scanner *bufio.Scanner
	closer  io.Closer
	line    int
}

// Open opens a listing for reading, picking format and compression from the
// file extension. The path "-" streams plain-line records from stdin.
func Open(path string) (*Reader, error) {
	if path == "-" {
		return NewReader(&progress.Reader{R: os.Stdin}, FormatLines), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open listing: %w", err)
	}
	format, compressed := DetectFormat(path)
	var src io.Reader = &progress.Reader{R: f}
	if compressed {
		src = lz4.NewReader(src)
	}
	r := NewReader(src, format)
	r.closer = f
	return r, nil
}

// NewReader wraps an already open stream in the given format.
func NewReader(src io.Reader, format Format) *Reader {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{format: format, scanner: scanner}
}

// Next returns the next record, or io.EOF after the final one. Blank lines
// and lines starting with # are skipped.
func (r *Reader) Next() (*Entry, error) {
	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSuffix(r.scanner.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		entry, err := r.decode(text)
		if err != nil {
			return nil, fmt.Errorf("listing line %d: %w", r.line, err)
		}
		progress.AddEntries(1)
		return entry, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read listing: %w", err)
	}
	return nil, io.EOF
}

// decode parses one non-blank line according to the format.
func (r *Reader) decode(text string) (*Entry, error) {
	if r.format == FormatJSONL {
		entry := &Entry{}
		if err := json.Unmarshal([]byte(text), entry); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		return entry, nil
	}
	return &Entry{RelPath: text, Dir: strings.HasSuffix(text, separator)}, nil
}

// ReadAll drains the remaining records into memory.
func (r *Reader) ReadAll() ([]*Entry, error) {
	var records []*Entry
	for {
		entry, err := r.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, entry)
	}
}

// Close releases the underlying file, if Open owns one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	if err := r.closer.Close(); err != nil {
		return fmt.Errorf("close listing: %w", err)
	}
	return nil
}
