package resume

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
)

// Stdio is the set of streams handed to a child process.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// OSStdio returns the process's own standard streams.
func OSStdio() Stdio {
	return Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Runner runs a command to completion and reports its exit code.
type Runner interface {
	Run(ctx context.Context, info ResumeInfo, stdio Stdio) (int, error)
}

// ExecRunner runs commands as child processes that share the caller's
// terminal.
type ExecRunner struct{}

// Run starts info.Command, waits for it and returns its exit code.
// Interrupts are left to the child while it runs; a child killed by a
// signal reports exit code 1. An error is returned only when the child
// could not be started or waited on.
func (ExecRunner) Run(ctx context.Context, info ResumeInfo, stdio Stdio) (int, error) {
	cmd := exec.CommandContext(ctx, info.Command, info.Args...)
	cmd.Dir = info.Dir
	cmd.Stdin = stdio.In
	cmd.Stdout = stdio.Out
	cmd.Stderr = stdio.Err

	// The terminal delivers Ctrl-C to the whole process group. Swallow it
	// here so the child decides how to react and we still report its code.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("start %s: %w", info.Command, err)
	}

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return 1, nil
	}
	return 1, fmt.Errorf("wait %s: %w", info.Command, err)
}
