// Package install places the codex wrapper script and the resume shim in
// the user's home directory.
package install

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/wethinkt/codex-resume/internal/debuglog"
	"github.com/wethinkt/codex-resume/internal/i18n"
	"github.com/wethinkt/codex-resume/internal/resume"
)

// AppDir is the directory under the XDG data home holding the shim.
const AppDir = "codex-resume"

// ErrRealCodexNotFound is returned when no real codex binary can be found.
var ErrRealCodexNotFound = errors.New("real codex binary not found")

// Options configures Install. Paths normally come from config.Config.
type Options struct {
	CodexReal string   // explicit real binary; used as is when set
	PathList  []string // PATH entries searched for the real binary
	SelfDir   string   // directory holding the shim built alongside the installer
	DataHome  string   // XDG data home
	BinHome   string   // directory receiving the "codex" wrapper
	Out       io.Writer
	Log       *debuglog.Logger
}

// Result describes what Install wrote.
type Result struct {
	RealCodex string
	Shim      string
	Wrapper   string
}

// ShimName is the file name of the shim executable.
func ShimName() string {
	if runtime.GOOS == "windows" {
		return "codex-shim.exe"
	}
	return "codex-shim"
}

// Install copies the shim into <DataHome>/codex-resume and writes the
// wrapper script <BinHome>/codex.
func Install(opts Options) (Result, error) {
	realCodex, err := resolveRealCodex(opts)
	if err != nil {
		return Result{}, err
	}
	opts.Log.Debug("real codex", "path", realCodex)

	shimDir := filepath.Join(opts.DataHome, AppDir)
	if err := os.MkdirAll(shimDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create %s: %w", shimDir, err)
	}
	shim := filepath.Join(shimDir, ShimName())
	if err := copyExecutable(filepath.Join(opts.SelfDir, ShimName()), shim); err != nil {
		return Result{}, err
	}

	script, err := WrapperScript(realCodex, shim)
	if err != nil {
		return Result{}, fmt.Errorf("render wrapper: %w", err)
	}
	if err := os.MkdirAll(opts.BinHome, 0o755); err != nil {
		return Result{}, fmt.Errorf("create %s: %w", opts.BinHome, err)
	}
	wrapper := filepath.Join(opts.BinHome, "codex")
	if err := writeExecutable(wrapper, []byte(script)); err != nil {
		return Result{}, err
	}

	if opts.Out != nil {
		fmt.Fprintln(opts.Out, i18n.Tf("install.installed", "Installed wrapper: %s", wrapper))
		fmt.Fprintln(opts.Out, i18n.Tf("install.pathHint",
			"If 'codex --resume' is not found or still calls the original, ensure '%s' is at the front of your PATH.", opts.BinHome))
	}
	return Result{RealCodex: realCodex, Shim: shim, Wrapper: wrapper}, nil
}

// resolveRealCodex finds the binary the wrapper forwards to. Our own bin
// directory and earlier wrappers are skipped; as a last resort a
// "codex.real" next to the first codex on PATH is accepted.
func resolveRealCodex(opts Options) (string, error) {
	if opts.CodexReal != "" {
		return opts.CodexReal, nil
	}
	bin, err := resume.LocateBinary(resume.LocateOptions{
		Name:     "codex",
		PathList: opts.PathList,
		SkipDirs: []string{opts.BinHome},
	})
	if err == nil {
		return bin, nil
	}

	for _, dir := range opts.PathList {
		if dir == "" {
			continue
		}
		first := filepath.Join(dir, "codex")
		if _, err := os.Stat(first); err != nil {
			continue
		}
		if _, err := os.Stat(first + ".real"); err == nil {
			return first + ".real", nil
		}
		break
	}
	return "", ErrRealCodexNotFound
}

func copyExecutable(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open shim: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".codex-shim-*")
	if err != nil {
		return fmt.Errorf("create shim: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return fmt.Errorf("copy shim: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("copy shim: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o755); err != nil {
		return fmt.Errorf("chmod shim: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("install shim: %w", err)
	}
	return nil
}

func writeExecutable(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o755); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	// WriteFile leaves the mode of an existing file alone.
	if err := os.Chmod(path, 0o755); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}
