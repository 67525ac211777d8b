// Package debuglog writes diagnostic lines to the error stream when
// DEBUG_RESUME is set. A nil or disabled Logger discards everything.
package debuglog

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Logger writes "[debug] msg key=value ..." lines.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	enabled bool
}

// New returns a logger writing to w. When enabled is false every call is
// a no-op.
func New(w io.Writer, enabled bool) *Logger {
	return &Logger{w: w, enabled: enabled && w != nil}
}

// Discard returns a disabled logger.
func Discard() *Logger {
	return &Logger{}
}

// Enabled returns whether logging is active.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Writer returns the underlying io.Writer, or io.Discard when disabled.
func (l *Logger) Writer() io.Writer {
	if !l.Enabled() {
		return io.Discard
	}
	return l.w
}

// Debug logs msg with optional key-value pairs. String values containing
// spaces or quotes are quoted.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.Enabled() {
		return
	}

	var b strings.Builder
	b.WriteString("[debug] ")
	b.WriteString(msg)
	for i := 0; i < len(keyvals)-1; i += 2 {
		fmt.Fprintf(&b, " %v=%s", keyvals[i], formatValue(keyvals[i+1]))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, b.String())
}

// Debugf logs a formatted message.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "[debug] "+format+"\n", args...)
}

func formatValue(v any) string {
	s, ok := v.(string)
	if !ok {
		if err, isErr := v.(error); isErr {
			s = err.Error()
		} else {
			return fmt.Sprint(v)
		}
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
