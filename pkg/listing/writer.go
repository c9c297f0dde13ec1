package listing

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// Writer emits entry records into a listing. Not safe for concurrent use.
type Writer struct {
	format Format
	buf    *bufio.Writer
	zw     *lz4.Writer
	file   *os.File
}

// Create creates or truncates a listing file, picking format and compression
// from the extension.
func Create(path string) (*Writer, error) {
	format, compressed := DetectFormat(path)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	w := &Writer{format: format, file: f}
	var sink io.Writer = f
	if compressed {
		w.zw = lz4.NewWriter(f)
		sink = w.zw
	}
	w.buf = bufio.NewWriter(sink)
	return w, nil
}

// NewWriter wraps an already open stream in the given format; the caller
// owns the stream's lifetime.
func NewWriter(sink io.Writer, format Format) *Writer {
	return &Writer{format: format, buf: bufio.NewWriter(sink)}
}

// Write appends one record.
func (w *Writer) Write(e *Entry) error {
	if w.format == FormatJSONL {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		data = append(data, '\n')
		if _, err := w.buf.Write(data); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		return nil
	}
	path := e.RelPath
	if e.Dir && !strings.HasSuffix(path, separator) {
		path += separator
	}
	if _, err := w.buf.WriteString(path + "\n"); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// Flush forces buffered records down to the underlying stream.
func (w *Writer) Flush() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("flush listing: %w", err)
	}
	return nil
}

// Close flushes every layer and closes what Create opened.
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	if w.zw != nil {
		if err := w.zw.Close(); err != nil {
			return fmt.Errorf("close LZ4 writer: %w", err)
		}
	}
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return fmt.Errorf("close listing: %w", err)
		}
	}
	return nil
}
