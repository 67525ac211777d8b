// Package cli selects, presents and prompts for resumable sessions.
package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"

	"github.com/wethinkt/codex-resume/internal/debuglog"
	"github.com/wethinkt/codex-resume/internal/i18n"
	"github.com/wethinkt/codex-resume/internal/resume"
)

// DefaultLimit caps how many sessions are offered.
const DefaultLimit = 50

// maxDecisionLogs bounds the "skip" and the "add" debug lines per
// selection, each counted separately.
const maxDecisionLogs = 5

// Column widths of the session table.
const (
	indexWidth   = 3
	elapsedWidth = 9
	turnsWidth   = 5
	dividerWidth = 140
)

// SelectOptions configures SelectSessions.
type SelectOptions struct {
	Root  string // project root; sessions outside it are dropped
	Limit int    // maximum sessions returned; <= 0 means DefaultLimit
	Log   *debuglog.Logger
}

// SelectSessions keeps the sessions recorded under opts.Root, newest first,
// capped to opts.Limit.
func SelectSessions(all []resume.Session, opts SelectOptions) []resume.Session {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	kept := FilterSessions(all, opts.Root, opts.Log)
	SortSessions(kept)
	kept = LimitSessions(kept, limit)
	opts.Log.Debug("selected", "scanned", len(all), "matched", len(kept), "limit", limit)
	return kept
}

// FilterSessions returns the sessions whose working directory is root or
// lies beneath it. Sessions without a working directory never match.
func FilterSessions(sessions []resume.Session, root string, log *debuglog.Logger) []resume.Session {
	kept := make([]resume.Session, 0, len(sessions))
	skipped := 0
	for _, s := range sessions {
		if !resume.IsPathWithin(s.WorkDir, root) {
			if skipped < maxDecisionLogs {
				log.Debug("skip", "file", s.FullPath, "cwd", s.WorkDir)
			}
			skipped++
			continue
		}
		if len(kept) < maxDecisionLogs {
			log.Debug("add", "file", s.FullPath)
		}
		kept = append(kept, s)
	}
	return kept
}

// SortSessions orders sessions by modification time, newest first.
func SortSessions(sessions []resume.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].ModifiedAt.After(sessions[j].ModifiedAt)
	})
}

// LimitSessions returns at most n sessions.
func LimitSessions(sessions []resume.Session, n int) []resume.Session {
	if n >= 0 && len(sessions) > n {
		return sessions[:n]
	}
	return sessions
}

// SessionsFormatter handles session table output.
type SessionsFormatter struct {
	w      io.Writer
	styled bool
}

// NewSessionsFormatter creates a formatter. The header is styled only when
// w is a terminal.
func NewSessionsFormatter(w io.Writer) *SessionsFormatter {
	return &SessionsFormatter{w: w, styled: isTerminal(w)}
}

// FormatTable writes the numbered session table. Columns are aligned by
// display width, so wide CJK previews keep the table straight.
func (f *SessionsFormatter) FormatTable(sessions []resume.Session, now time.Time) error {
	header := joinColumns(
		resume.PadRight("#", indexWidth),
		resume.PadLeft(i18n.T("table.elapsed", "Elapsed"), elapsedWidth),
		resume.PadLeft(i18n.T("table.turns", "Turns"), turnsWidth),
		i18n.T("table.summary", "Summary"),
	)
	if f.styled {
		header = lipgloss.NewStyle().Bold(true).Render(header)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", dividerWidth))
	b.WriteString("\n")
	for i, s := range sessions {
		b.WriteString(joinColumns(
			resume.PadRight(strconv.Itoa(i+1), indexWidth),
			resume.PadLeft(s.Elapsed(now), elapsedWidth),
			resume.PadLeft(strconv.Itoa(s.Turns), turnsWidth),
			s.Preview,
		))
		b.WriteString("\n")
	}

	_, err := io.WriteString(f.w, b.String())
	if err != nil {
		return fmt.Errorf("write session table: %w", err)
	}
	return nil
}

func joinColumns(cols ...string) string {
	return strings.Join(cols, " | ")
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
