// Package cmd provides the CLI commands for codex-resume.
package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/wethinkt/codex-resume/internal/config"
	"github.com/wethinkt/codex-resume/internal/i18n"
	"github.com/wethinkt/codex-resume/internal/resume"
)

// newShimCommand builds the "codex" shim. Flag parsing is disabled so every
// argument, --help included, reaches the real binary untouched.
func newShimCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "codex [--resume] [args...]",
		Short: "Resume a previous Codex session, or run codex as usual",
		Long: `codex --resume lists the Codex sessions recorded under the current
project root (the git top-level, or the working directory) and relaunches
codex against the one you pick.

Without --resume every argument is passed to the real codex binary.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), args)
		},
	}
}

// runShim executes the shim command for app and returns the exit code.
// The CPU profile, when requested, is flushed on every return path.
func runShim(ctx context.Context, app *App) int {
	stop, err := startProfile(app.Config.Profile)
	if err != nil {
		return exitCode(err, app.Stdio.Err)
	}
	defer stop()

	cmd := newShimCommand(app)
	// cobra falls back to os.Args for nil args.
	cmd.SetArgs(nonNil(app.Config.Args))
	cmd.SetIn(app.Stdio.In)
	cmd.SetOut(app.Stdio.Out)
	cmd.SetErr(app.Stdio.Err)
	return exitCode(cmd.ExecuteContext(ctx), app.Stdio.Err)
}

// ExecuteShim runs the shim against the real process and returns the
// process exit code.
func ExecuteShim() int {
	cfg := config.Load(os.Args[1:])
	i18n.Init(cfg.Lang)
	return runShim(context.Background(), NewApp(cfg, resume.OSStdio()))
}

// startProfile starts CPU profiling into path. An empty path is a no-op.
func startProfile(path string) (stop func(), err error) {
	if path == "" {
		return func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("start CPU profile: %w", err)
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

func nonNil(args []string) []string {
	if args == nil {
		return []string{}
	}
	return args
}
