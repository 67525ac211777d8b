package codex

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/wethinkt/codex-resume/internal/debuglog"
	"github.com/wethinkt/codex-resume/internal/resume"
)

func TestStore_Scan(t *testing.T) {
	base := t.TempDir()
	projectPath := mkdirAll(t, filepath.Join(base, "repo"))
	sessionsDir := filepath.Join(base, "sessions")

	sessionPath := filepath.Join(sessionsDir, "2026", "02", "10", "rollout-1.jsonl")
	writeFile(t, sessionPath, strings.Join([]string{
		`{"timestamp":"2026-02-10T00:00:00Z","type":"session_meta","payload":{"id":"sess-1","cwd":"` + filepath.ToSlash(projectPath) + `"}}`,
		`{"timestamp":"2026-02-10T00:00:01Z","type":"response_item","payload":{"type":"message","role":"user","content":[{"type":"input_text","text":"My request for Codex:\n\nFix the login bug"}]}}`,
		`{"timestamp":"2026-02-10T00:00:01Z","type":"event_msg","payload":{"type":"user_message","message":"Fix the login bug"}}`,
		`{"timestamp":"2026-02-10T00:00:02Z","type":"response_item","payload":{"type":"message","role":"assistant","content":[{"type":"output_text","text":"hi"}]}}`,
	}, "\n"))
	mtime := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	if err := os.Chtimes(sessionPath, mtime, mtime); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	writeFile(t, filepath.Join(sessionsDir, "notes.txt"), "ignored")

	var logBuf bytes.Buffer
	store := NewStore(sessionsDir, debuglog.New(&logBuf, true))
	sessions, err := store.Scan(context.Background())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}

	s := sessions[0]
	if s.ID != "rollout-1" {
		t.Errorf("ID = %q", s.ID)
	}
	if s.FullPath != sessionPath {
		t.Errorf("FullPath = %q, want %q", s.FullPath, sessionPath)
	}
	if s.WorkDir != filepath.ToSlash(projectPath) {
		t.Errorf("WorkDir = %q", s.WorkDir)
	}
	if s.Turns != 1 {
		t.Errorf("Turns = %d, want 1", s.Turns)
	}
	if s.Preview != "Fix the login …" {
		t.Errorf("Preview = %q", s.Preview)
	}
	if !s.ModifiedAt.Equal(mtime) {
		t.Errorf("ModifiedAt = %v, want %v", s.ModifiedAt, mtime)
	}
	if !strings.Contains(logBuf.String(), "[debug] scan") {
		t.Errorf("missing scan debug line: %q", logBuf.String())
	}
}

func TestStore_ScanMissingDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope"), nil)
	sessions, err := store.Scan(context.Background())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(sessions))
	}
}

func TestStore_ScanCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.jsonl"), `{"role":"user","content":"x"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewStore(dir, nil).Scan(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestStore_ScanKeepsSessionWithOversizedLine(t *testing.T) {
	dir := t.TempDir()
	image := strings.Repeat("A", resume.MaxLineSize+1<<20)
	writeFile(t, filepath.Join(dir, "rollout-img.jsonl"), strings.Join([]string{
		`{"type":"session_meta","payload":{"id":"img","cwd":"/p"}}`,
		`{"type":"response_item","payload":{"type":"message","role":"user","content":[{"type":"input_text","text":"Fix the login bug"}]}}`,
		`{"type":"response_item","payload":{"type":"message","role":"user","content":[{"type":"input_image","image_url":"data:image/png;base64,` + image + `"}]}}`,
		`{"type":"response_item","payload":{"type":"message","role":"user","content":[{"type":"input_text","text":"and the logout one"}]}}`,
	}, "\n"))

	sessions, err := NewStore(dir, nil).Scan(context.Background())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	s := sessions[0]
	if s.WorkDir != "/p" {
		t.Errorf("WorkDir = %q, want /p", s.WorkDir)
	}
	if s.Preview != "Fix the login …" {
		t.Errorf("Preview = %q", s.Preview)
	}
	if s.Turns != 2 {
		t.Errorf("Turns = %d, want 2 (oversized line skipped, later line read)", s.Turns)
	}
}
