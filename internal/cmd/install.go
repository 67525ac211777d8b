package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wethinkt/codex-resume/internal/config"
	"github.com/wethinkt/codex-resume/internal/debuglog"
	"github.com/wethinkt/codex-resume/internal/i18n"
	"github.com/wethinkt/codex-resume/internal/install"
	"github.com/wethinkt/codex-resume/internal/resume"
	"github.com/wethinkt/codex-resume/internal/version"
)

// installAliases are the first arguments that select installation.
var installAliases = map[string]bool{
	"install":        true,
	"--install":      true,
	"--install-shim": true,
}

// usageExitCode is returned for arguments the installer does not know.
const usageExitCode = 2

// newInstallerCommand builds "codex-resume". Flag parsing is disabled so
// unknown first arguments, flags included, reach the usage check.
func newInstallerCommand(cfg config.Config, stdio resume.Stdio) *cobra.Command {
	log := debuglog.New(stdio.Err, cfg.Debug)

	return &cobra.Command{
		Use:                "codex-resume [install]",
		Short:              "Install the codex wrapper that adds 'codex --resume'",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && !installAliases[args[0]] {
				return &ExitError{Code: usageExitCode, Msg: usageText()}
			}
			log.Debug("codex-resume install", "version", version.Get())
			return runInstall(cfg, stdio.Out, log)
		},
	}
}

func runInstall(cfg config.Config, out io.Writer, log *debuglog.Logger) error {
	_, err := install.Install(install.Options{
		CodexReal: cfg.CodexReal,
		PathList:  cfg.PathList,
		SelfDir:   cfg.SelfDir,
		DataHome:  cfg.DataHome,
		BinHome:   cfg.BinHome,
		Out:       out,
		Log:       log,
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, install.ErrRealCodexNotFound):
		return &ExitError{
			Code: 1,
			Err:  err,
			Msg: i18n.T("install.realNotFound",
				"Could not find the real 'codex'. Set CODEX_REAL=/abs/path/to/codex and re-run: codex-resume install"),
		}
	default:
		return &ExitError{Code: 1, Err: fmt.Errorf("install: %w", err)}
	}
}

func usageText() string {
	return i18n.T("install.usage", "Usage: codex-resume install\nThis installs a wrapper so you can run 'codex --resume'.")
}

// runInstaller executes the installer command and returns the exit code.
func runInstaller(ctx context.Context, cfg config.Config, stdio resume.Stdio) int {
	cmd := newInstallerCommand(cfg, stdio)
	cmd.SetArgs(nonNil(cfg.Args))
	cmd.SetIn(stdio.In)
	cmd.SetOut(stdio.Out)
	cmd.SetErr(stdio.Err)
	return exitCode(cmd.ExecuteContext(ctx), stdio.Err)
}

// ExecuteInstaller runs the installer against the real process and
// returns the process exit code.
func ExecuteInstaller() int {
	cfg := config.Load(os.Args[1:])
	i18n.Init(cfg.Lang)
	return runInstaller(context.Background(), cfg, resume.OSStdio())
}
