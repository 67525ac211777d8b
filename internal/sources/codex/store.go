package codex

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/wethinkt/codex-resume/internal/debuglog"
	"github.com/wethinkt/codex-resume/internal/resume"
	"github.com/wethinkt/codex-resume/internal/transcript"
)

// TranscriptExt is the extension of Codex transcript files.
const TranscriptExt = ".jsonl"

// Store reads Codex sessions from a sessions directory. It keeps no
// state between scans.
type Store struct {
	sessionsDir string
	maxPreview  int
	log         *debuglog.Logger
}

// NewStore creates a store rooted at sessionsDir.
func NewStore(sessionsDir string, log *debuglog.Logger) *Store {
	return &Store{
		sessionsDir: sessionsDir,
		maxPreview:  transcript.DefaultPreviewLength,
		log:         log,
	}
}

// SessionsDir returns the directory the store scans.
func (s *Store) SessionsDir() string {
	return s.sessionsDir
}

// Scan reads every transcript under the sessions directory, one file at a
// time. Files that vanish or cannot be read are skipped. The only error
// returned is ctx's.
func (s *Store) Scan(ctx context.Context) ([]resume.Session, error) {
	files := transcript.Walk(s.sessionsDir, TranscriptExt)
	s.log.Debug("scan", "dir", s.sessionsDir, "files", len(files))

	sessions := make([]resume.Session, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sess, ok := s.readSession(path)
		if !ok {
			continue
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

func (s *Store) readSession(path string) (resume.Session, bool) {
	info, err := os.Stat(path)
	if err != nil {
		s.log.Debug("unreadable", "file", path, "err", err)
		return resume.Session{}, false
	}
	meta, err := transcript.ExtractFile(path, s.maxPreview)
	if err != nil {
		s.log.Debug("unreadable", "file", path, "err", err)
		return resume.Session{}, false
	}
	return resume.Session{
		ID:         strings.TrimSuffix(filepath.Base(path), TranscriptExt),
		FullPath:   path,
		WorkDir:    meta.WorkDir,
		Turns:      meta.Turns,
		Preview:    meta.Preview,
		ModifiedAt: info.ModTime(),
	}, true
}
