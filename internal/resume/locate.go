package resume

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// WrapperMarker is written into every wrapper script the installer
// generates, so binary lookup can tell wrappers from the real binary.
const WrapperMarker = "codex-resume-shim"

// ErrBinaryNotFound is returned when no candidate binary exists.
var ErrBinaryNotFound = errors.New("binary not found")

// LocateOptions configures LocateBinary.
type LocateOptions struct {
	Name     string   // binary name without extension, e.g. "codex"
	Override string   // explicit path; used when it exists
	PathList []string // directories to search, in order
	SkipDirs []string // directories never searched (our own install dirs)
}

// LocateBinary resolves the real external binary. The override wins when it
// exists; otherwise PATH entries are searched in order, skipping SkipDirs
// and any wrapper script carrying WrapperMarker.
func LocateBinary(opts LocateOptions) (string, error) {
	if opts.Override != "" {
		if _, err := os.Stat(opts.Override); err == nil {
			return opts.Override, nil
		}
	}

	skip := make(map[string]bool, len(opts.SkipDirs))
	for _, d := range opts.SkipDirs {
		if n := NormalizePath(d); n != "" {
			skip[n] = true
		}
	}

	for _, dir := range opts.PathList {
		if dir == "" || skip[NormalizePath(dir)] {
			continue
		}
		for _, ext := range executableExts {
			candidate := filepath.Join(dir, opts.Name+ext)
			info, err := os.Stat(candidate)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			if isWrapperScript(candidate) {
				continue
			}
			return candidate, nil
		}
	}
	return "", ErrBinaryNotFound
}

// isWrapperScript checks the head of the file for WrapperMarker.
func isWrapperScript(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, 4096)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false
	}
	return bytes.Contains(head[:n], []byte(WrapperMarker))
}
