// Package transcript scans directories of JSONL session transcripts and
// extracts lightweight metadata from them without loading whole files.
package transcript

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Walk returns the absolute paths of all files under root whose name ends
// with ext, recursing into subdirectories. Directories that cannot be read
// are treated as empty. The order of the result is unspecified.
func Walk(root, ext string) []string {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	var files []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d == nil {
			// Unreadable entry: skip it and keep walking siblings.
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	return files
}
