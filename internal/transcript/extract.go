package transcript

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/wethinkt/codex-resume/internal/resume"
)

// userRoleRe catches user records whose role sits somewhere the structured
// lookup does not reach.
var userRoleRe = regexp.MustCompile(`"role"\s*:\s*"user"`)

// Meta is the metadata extracted from one transcript.
type Meta struct {
	Turns   int    // user-authored records seen
	WorkDir string // first working directory found; empty if none
	Preview string // summary of the first meaningful user request
}

// Extract streams JSONL records from r and collects Meta. Blank lines,
// invalid JSON, non-object values and lines over resume.MaxLineSize are
// skipped. The returned error is only set for read failures; whatever was
// gathered before the failure is still returned.
func Extract(r io.Reader, maxPreview int) (Meta, error) {
	var m Meta
	err := resume.ForEachLine(r, resume.MaxLineSize, func(b []byte) {
		line := strings.TrimSpace(string(b))
		if line == "" {
			return
		}
		rec, ok := ParseRecord(line)
		if !ok {
			return
		}
		m.observe(rec, maxPreview)
	})
	return m, err
}

// ExtractFile opens path and extracts its Meta.
func ExtractFile(path string, maxPreview int) (Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return Meta{}, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	m, err := Extract(f, maxPreview)
	if err != nil {
		return m, fmt.Errorf("read transcript %s: %w", path, err)
	}
	return m, nil
}

func (m *Meta) observe(rec Record, maxPreview int) {
	if isUserRecord(rec) {
		m.Turns++
		if m.Preview == "" {
			m.Preview = Summarize(rec.UserText(), maxPreview)
		}
	}

	if m.Preview == "" && rec.HasSummary() {
		m.Preview = Summarize(rec.SummaryText(), maxPreview)
	}

	if m.WorkDir == "" {
		m.WorkDir = WorkDir(rec)
	}
}

// isUserRecord checks the structured role first. The textual match is only
// consulted when the record has no role field at all.
func isUserRecord(rec Record) bool {
	if role := rec.Role(); role != "" {
		return role == "user"
	}
	return userRoleRe.MatchString(rec.Raw())
}
