// Package project detects the root directory of the project the user is
// working in.
package project

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
)

// gitTimeout bounds the git CLI fallback.
const gitTimeout = 5 * time.Second

// DetectRoot returns the top-level directory of the git worktree that
// contains dir, or dir itself when dir is not inside a repository. The
// result has symlinks resolved, matching the physical paths Codex records.
func DetectRoot(ctx context.Context, dir string) string {
	return physical(detectRoot(ctx, dir))
}

func detectRoot(ctx context.Context, dir string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	switch {
	case err == nil:
		if wt, err := repo.Worktree(); err == nil {
			return wt.Filesystem.Root()
		}
	case errors.Is(err, git.ErrRepositoryNotExists):
		return dir
	}

	// go-git could not make sense of the repository layout; ask git.
	if top := showToplevel(ctx, dir); top != "" {
		return top
	}
	return dir
}

// physical resolves symlinks in dir, leaving it unchanged when that fails.
func physical(dir string) string {
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		return resolved
	}
	return dir
}

func showToplevel(ctx context.Context, dir string) string {
	ctx, cancel := context.WithTimeout(ctx, gitTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "-C", dir, "rev-parse", "--show-toplevel") //nolint:gosec // G204 - dir is the process working directory
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
