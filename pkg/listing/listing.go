// Package listing reads and writes archive path listings: the serialized
// entry records the tree builders consume. Listings come as plain lines or
// JSONL, optionally LZ4-compressed, from files, stdin, or a scan of a real
// directory tree.
package listing

import (
	"path/filepath"
	"strings"

	"arbor/pkg/tree"
)

// separator is the archive path separator listings use.
const separator = "/"

// Format identifies how a listing encodes its entries.
type Format byte

const (
	// FormatLines holds one path per line; a trailing separator marks a
	// directory.
	FormatLines Format = iota
	// FormatJSONL holds one JSON object per line with path, dir and size
	// fields.
	FormatJSONL
)

// Entry is one archived path record.
type Entry struct {
	RelPath string `json:"path"`           // Path within the archive
	Dir     bool   `json:"dir,omitempty"`  // Entry denotes a container
	Size    int64  `json:"size,omitempty"` // Uncompressed size, informational
}

// Path returns the entry's archive path.
func (e *Entry) Path() string { return e.RelPath }

// IsDirectory reports whether the entry denotes a container.
func (e *Entry) IsDirectory() bool { return e.Dir }

// DetectFormat reports the entry format for a listing path and whether the
// stream is LZ4-compressed, judging by extension.
func DetectFormat(path string) (Format, bool) {
	compressed := filepath.Ext(path) == ".lz4"
	if compressed {
		path = strings.TrimSuffix(path, ".lz4")
	}
	if filepath.Ext(path) == ".jsonl" {
		return FormatJSONL, compressed
	}
	return FormatLines, compressed
}

// TreeEntries converts records to the builder's entry view.
func TreeEntries(records []*Entry) []tree.Entry {
	entries := make([]tree.Entry, len(records))
	for i, r := range records {
		entries[i] = r
	}
	return entries
}
