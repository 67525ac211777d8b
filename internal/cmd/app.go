package cmd

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/wethinkt/codex-resume/internal/cli"
	"github.com/wethinkt/codex-resume/internal/config"
	"github.com/wethinkt/codex-resume/internal/debuglog"
	"github.com/wethinkt/codex-resume/internal/i18n"
	"github.com/wethinkt/codex-resume/internal/project"
	"github.com/wethinkt/codex-resume/internal/resume"
	"github.com/wethinkt/codex-resume/internal/sources/codex"
	"github.com/wethinkt/codex-resume/internal/version"
)

// ResumeFlag switches the shim from pass-through to the resume flow.
const ResumeFlag = "--resume"

// ErrNoSessions is returned when no transcript belongs to the project.
var ErrNoSessions = errors.New("no sessions under project root")

// App runs the shim. Every external effect goes through its fields so the
// flow can be driven from tests.
type App struct {
	Config     config.Config
	Stdio      resume.Stdio
	Runner     resume.Runner
	Log        *debuglog.Logger
	Now        func() time.Time
	DetectRoot func(ctx context.Context, dir string) string
	Pick       func(sessions []resume.Session, now time.Time) (int, error)
}

// NewApp wires an App to the real process.
func NewApp(cfg config.Config, stdio resume.Stdio) *App {
	return &App{
		Config:     cfg,
		Stdio:      stdio,
		Runner:     resume.ExecRunner{},
		Log:        debuglog.New(stdio.Err, cfg.Debug),
		Now:        time.Now,
		DetectRoot: project.DetectRoot,
		Pick:       cli.PickSessionInteractive,
	}
}

// Run dispatches on the presence of --resume.
func (a *App) Run(ctx context.Context, args []string) error {
	a.Log.Debugf("%s args=%d", version.String("codex-shim"), len(args))
	if slices.Contains(args, ResumeFlag) {
		return a.Resume(ctx)
	}
	return a.Passthrough(ctx, args)
}

// Passthrough runs the real binary with args, minus any --resume, and
// mirrors its exit code.
func (a *App) Passthrough(ctx context.Context, args []string) error {
	bin, err := a.locateCodex()
	if err != nil {
		return err
	}
	forwarded := slices.DeleteFunc(slices.Clone(args), func(s string) bool { return s == ResumeFlag })
	return a.launch(ctx, resume.ResumeInfo{Command: bin, Args: forwarded, Dir: a.Config.Cwd})
}

// Resume lists the project's sessions, asks for one and relaunches the
// real binary against it.
func (a *App) Resume(ctx context.Context) error {
	sessionsDir := codex.SessionsDir(a.Config.CodexHome, a.Log)
	root := a.DetectRoot(ctx, a.Config.Cwd)
	a.Log.Debugf("sessions_dir=%s", sessionsDir)
	a.Log.Debugf("project_root=%s", root)

	all, err := codex.NewStore(sessionsDir, a.Log).Scan(ctx)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("scan sessions: %w", err)}
	}
	sessions := cli.SelectSessions(all, cli.SelectOptions{Root: root, Limit: cli.DefaultLimit, Log: a.Log})
	a.Log.Debugf("sessions.length=%d", len(sessions))
	if len(sessions) == 0 {
		return &ExitError{
			Code: 1,
			Err:  ErrNoSessions,
			Msg:  i18n.Tf("resume.noSessions", "No sessions under project root: %s", root),
		}
	}

	idx, err := a.choose(sessions)
	if err != nil {
		if errors.Is(err, cli.ErrInvalidSelection) {
			return &ExitError{Code: 1, Err: err, Msg: i18n.T("resume.invalidSelection", "Invalid selection")}
		}
		return &ExitError{Code: 1, Err: err}
	}
	if idx == cli.Quit {
		return nil
	}
	chosen := sessions[idx]

	bin, err := a.locateCodex()
	if err != nil {
		return err
	}
	info := codex.ResumeCommand(bin, chosen, a.Config.Cwd)
	fmt.Fprintln(a.Stdio.Out, i18n.Tf("resume.launching", "\nLaunching: %s -c %s", bin, codex.ResumeArg(chosen.FullPath)))
	return a.launch(ctx, info)
}

func (a *App) choose(sessions []resume.Session) (int, error) {
	now := a.Now()
	if a.Config.TUI && a.Pick != nil && cli.CanPick(a.Stdio.In, a.Stdio.Out) {
		return a.Pick(sessions, now)
	}
	if err := cli.NewSessionsFormatter(a.Stdio.Out).FormatTable(sessions, now); err != nil {
		return 0, err
	}
	return cli.Prompt(a.Stdio.In, a.Stdio.Out, len(sessions))
}

func (a *App) locateCodex() (string, error) {
	bin, err := resume.LocateBinary(resume.LocateOptions{
		Name:     "codex",
		Override: a.Config.CodexReal,
		PathList: a.Config.PathList,
		SkipDirs: []string{a.Config.SelfDir},
	})
	if err != nil {
		return "", &ExitError{
			Code: 1,
			Err:  err,
			Msg:  i18n.T("resume.binaryNotFound", "Could not locate the real 'codex' binary. Set CODEX_REAL to its path."),
		}
	}
	a.Log.Debug("real codex", "path", bin)
	return bin, nil
}

func (a *App) launch(ctx context.Context, info resume.ResumeInfo) error {
	code, err := a.Runner.Run(ctx, info, a.Stdio)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("launch %s: %w", info.Command, err)}
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
