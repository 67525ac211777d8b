package cmd

import (
	"errors"
	"fmt"
	"io"
)

// ExitError carries a process exit code out of a command. Msg, when set,
// is what the user sees on stderr; Err is the underlying cause.
type ExitError struct {
	Code int
	Err  error
	Msg  string
}

func (e *ExitError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return fmt.Sprintf("exit status %d", e.Code)
	}
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCode reports err on stderr and maps it to a process exit code.
// A bare ExitError (no message, no cause) is silent.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		if ee.Msg != "" || ee.Err != nil {
			fmt.Fprintln(stderr, ee.Error())
		}
		return ee.Code
	}
	fmt.Fprintln(stderr, err)
	return 1
}
