package transcript

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/wethinkt/codex-resume/internal/resume"
)

// DefaultPreviewLength is the preview size used in the session table.
const DefaultPreviewLength = 15

// requestMarker introduces the user's actual request in IDE-generated
// prompts.
const requestMarker = "My request for Codex:"

var (
	envContextRe = regexp.MustCompile(`(?s)<environment_context>.*?</environment_context>`)
	codeFenceRe  = regexp.MustCompile("(?s)```.*?```")
	whitespaceRe = regexp.MustCompile(`\s+`)

	contextFromRe = regexp.MustCompile(`(?is)#\s*Context\s*from.*?(?:\n\n|\z)`)
	activeFileRe  = regexp.MustCompile(`(?im)^##?\s+Active file:(?s:.*?)(?:\n\n|\z)`)
	openTabsRe    = regexp.MustCompile(`(?im)^##?\s+Open tabs:(?s:.*?)(?:\n\n|\z)`)
	requestHeadRe = regexp.MustCompile(`(?im)^##?\s+My request for Codex:[^\n]*\n`)

	headingLineRe     = regexp.MustCompile(`^#{1,6}\s`)
	bulletLineRe      = regexp.MustCompile(`^[-*]\s`)
	boilerplateLineRe = regexp.MustCompile(`(?i)^Active file:|^Open tabs:|^Context\b|^#\s*Context\b`)
	usageLineRe       = regexp.MustCompile(`(?i)^Token usage:|^Usage: codex\b`)
	letterRe          = regexp.MustCompile(`[A-Za-z\x{3040}-\x{30FF}\x{4E00}-\x{9FFF}]`)
)

// Summarize turns a raw user message into a one-line preview of at most
// max runes. It drops environment blocks, code fences and IDE boilerplate,
// prefers the text after "My request for Codex:", and returns the first
// line containing a Latin letter or CJK character. When no such line
// exists it falls back to Sanitize.
func Summarize(s string, max int) string {
	if s == "" {
		return ""
	}
	t := ansi.Strip(s)
	t = envContextRe.ReplaceAllString(t, "")
	t = codeFenceRe.ReplaceAllString(t, "\n")
	t = strings.ReplaceAll(t, "\r\n", "\n")
	t = strings.ReplaceAll(t, "\r", "\n")

	if idx := strings.Index(t, requestMarker); idx >= 0 {
		if req := firstMeaningfulLine(t[idx+len(requestMarker):]); req != "" {
			return resume.Truncate(req, max)
		}
	}

	t = contextFromRe.ReplaceAllString(t, "\n")
	t = activeFileRe.ReplaceAllString(t, "\n")
	t = openTabsRe.ReplaceAllString(t, "\n")
	t = requestHeadRe.ReplaceAllString(t, "")

	if line := firstMeaningfulLine(t); line != "" {
		return resume.Truncate(line, max)
	}
	return Sanitize(s, max)
}

// Sanitize collapses s onto a single line without environment blocks or
// code fences and truncates it to max runes.
func Sanitize(s string, max int) string {
	if s == "" {
		return ""
	}
	t := ansi.Strip(s)
	t = envContextRe.ReplaceAllString(t, "")
	t = codeFenceRe.ReplaceAllString(t, "")
	t = strings.TrimSpace(whitespaceRe.ReplaceAllString(t, " "))
	return resume.Truncate(t, max)
}

func firstMeaningfulLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case headingLineRe.MatchString(line):
		case bulletLineRe.MatchString(line):
		case boilerplateLineRe.MatchString(line):
		case usageLineRe.MatchString(line):
		case letterRe.MatchString(line):
			return line
		}
	}
	return ""
}
