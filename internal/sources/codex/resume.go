package codex

import (
	"fmt"
	"os"
	"strings"

	"github.com/wethinkt/codex-resume/internal/resume"
)

// ResumeKey is the Codex config override that points it at a transcript.
const ResumeKey = "experimental_resume"

// ResumeArg returns the -c value that resumes the transcript at path.
func ResumeArg(path string) string {
	return ResumeKey + "=" + tomlString(path)
}

// ResumeCommand returns how to relaunch bin against session. The child runs
// in the session's working directory when it still exists, otherwise in
// fallbackDir.
func ResumeCommand(bin string, session resume.Session, fallbackDir string) resume.ResumeInfo {
	dir := fallbackDir
	if session.WorkDir != "" {
		if info, err := os.Stat(session.WorkDir); err == nil && info.IsDir() {
			dir = session.WorkDir
		}
	}
	return resume.ResumeInfo{
		Command: bin,
		Args:    []string{"-c", ResumeArg(session.FullPath)},
		Dir:     dir,
	}
}

// tomlString quotes s as a TOML basic string, the format Codex parses -c
// values with.
func tomlString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
