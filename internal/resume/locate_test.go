package resume

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeExecutable(t *testing.T, dir, name, body string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLocateBinary_OverrideWins(t *testing.T) {
	base := t.TempDir()
	override := writeExecutable(t, filepath.Join(base, "custom"), "codex-real", "#!/bin/sh\n")
	onPath := filepath.Join(base, "bin")
	writeExecutable(t, onPath, "codex", "#!/bin/sh\n")

	got, err := LocateBinary(LocateOptions{Name: "codex", Override: override, PathList: []string{onPath}})
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if got != override {
		t.Fatalf("got %q, want override %q", got, override)
	}
}

func TestLocateBinary_MissingOverrideFallsBackToPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension search differs on windows")
	}
	base := t.TempDir()
	onPath := filepath.Join(base, "bin")
	want := writeExecutable(t, onPath, "codex", "#!/bin/sh\n")

	got, err := LocateBinary(LocateOptions{
		Name:     "codex",
		Override: filepath.Join(base, "does-not-exist"),
		PathList: []string{"", onPath},
	})
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLocateBinary_SkipsSelfDirAndWrappers(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension search differs on windows")
	}
	base := t.TempDir()
	selfDir := filepath.Join(base, "self")
	writeExecutable(t, selfDir, "codex", "#!/bin/sh\n")
	wrapperDir := filepath.Join(base, "local-bin")
	writeExecutable(t, wrapperDir, "codex", "#!/usr/bin/env bash\n# "+WrapperMarker+"\n")
	realDir := filepath.Join(base, "real")
	want := writeExecutable(t, realDir, "codex", "\x7fELF binary")

	got, err := LocateBinary(LocateOptions{
		Name:     "codex",
		PathList: []string{selfDir + "/", wrapperDir, realDir},
		SkipDirs: []string{selfDir},
	})
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLocateBinary_SkipsDirectories(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "bin", "codex"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := LocateBinary(LocateOptions{Name: "codex", PathList: []string{filepath.Join(base, "bin")}})
	if !errors.Is(err, ErrBinaryNotFound) {
		t.Fatalf("expected ErrBinaryNotFound, got %v", err)
	}
}

func TestLocateBinary_NotFound(t *testing.T) {
	_, err := LocateBinary(LocateOptions{Name: "codex", PathList: []string{t.TempDir()}})
	if !errors.Is(err, ErrBinaryNotFound) {
		t.Fatalf("expected ErrBinaryNotFound, got %v", err)
	}
}
