package resume

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

var drivePathRe = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// NormalizePath converts p to a comparable form: forward slashes, absolute,
// cleaned, and without a trailing slash (except for the root itself).
// Relative paths are resolved against the process working directory.
// Returns "" for an empty path.
func NormalizePath(p string) string {
	if strings.TrimSpace(p) == "" {
		return ""
	}
	s := strings.ReplaceAll(p, `\`, "/")
	if drivePathRe.MatchString(s) {
		s = path.Clean(s)
	} else if abs, err := filepath.Abs(filepath.FromSlash(s)); err == nil {
		s = filepath.ToSlash(abs)
	} else {
		s = path.Clean(s)
	}
	if len(s) > 1 && strings.HasSuffix(s, "/") {
		s = strings.TrimSuffix(s, "/")
	}
	return s
}

// IsPathWithin reports whether p equals base or lies below it.
// Comparison is by path segment, so /foo-bar is not within /foo.
func IsPathWithin(p, base string) bool {
	np := NormalizePath(p)
	nb := NormalizePath(base)
	if np == "" || nb == "" {
		return false
	}
	if np == nb {
		return true
	}
	if !strings.HasSuffix(nb, "/") {
		nb += "/"
	}
	return strings.HasPrefix(np, nb)
}

// LooksLikeAbsPath reports whether s resembles an absolute filesystem
// path: a slash followed by at least two characters, or a drive letter
// followed by `:\`.
func LooksLikeAbsPath(s string) bool {
	if strings.HasPrefix(s, "/") && len(s) >= 3 {
		return true
	}
	return len(s) >= 3 && isASCIILetter(s[0]) && s[1] == ':' && s[2] == '\\'
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
