package listing

import (
	"fmt"
	"os"
	"path/filepath"
)

// Scan walks a directory tree and returns its contents as listing records:
// directories with trailing separators, files with their sizes, all paths
// slash-separated and relative to root.
func Scan(root string) ([]*Entry, error) {
	var records []*Entry

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("get relative path for %s: %w", path, err)
		}
		relPath = filepath.ToSlash(relPath)
		if info.IsDir() {
			records = append(records, &Entry{RelPath: relPath + separator, Dir: true})
			return nil
		}
		records = append(records, &Entry{RelPath: relPath, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan directory %s: %w", root, err)
	}
	return records, nil
}
