package transcript

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/wethinkt/codex-resume/internal/resume"
)

var (
	jsonCwdRe = regexp.MustCompile(`"cwd"\s*:\s*"([^"]+)"`)
	xmlCwdRe  = regexp.MustCompile(`<cwd>([^<]+)</cwd>`)
)

// workDirKeys are the field names accepted by the deep search.
var workDirKeys = map[string]bool{
	"cwd":               true,
	"workdir":           true,
	"working_directory": true,
	"dir":               true,
	"directory":         true,
}

// WorkDir returns the working directory recorded in r, or "" if none.
// Sources are tried in order: structured cwd fields, a JSON-shaped
// "cwd" inside string content, a <cwd> tag inside textual content, and
// finally any path-like field named in workDirKeys anywhere in the record.
func WorkDir(r Record) string {
	for _, path := range []string{"environment.cwd", "cwd", "payload.cwd"} {
		if cwd := strings.TrimSpace(r.String(path)); cwd != "" {
			return cwd
		}
	}

	if content := r.ContentString(); strings.Contains(content, `"cwd"`) {
		if m := jsonCwdRe.FindStringSubmatch(content); m != nil {
			if cwd := strings.TrimSpace(m[1]); cwd != "" {
				return cwd
			}
		}
	}

	if text := r.ContentText(); strings.Contains(text, "<cwd>") {
		if m := xmlCwdRe.FindStringSubmatch(text); m != nil {
			if cwd := strings.TrimSpace(m[1]); cwd != "" {
				return cwd
			}
		}
	}

	return strings.TrimSpace(findPathField(r.Value(), workDirKeys))
}

// findPathField walks v depth-first in pre-order, visiting object keys in
// document order, and returns the first string value that is stored under
// one of keys and looks like an absolute path.
func findPathField(v gjson.Result, keys map[string]bool) string {
	var found string
	var walk func(node gjson.Result) bool
	walk = func(node gjson.Result) bool {
		isObject := node.IsObject()
		node.ForEach(func(key, child gjson.Result) bool {
			if isObject && keys[key.Str] && child.Type == gjson.String && resume.LooksLikeAbsPath(child.Str) {
				found = child.Str
				return false
			}
			if child.IsObject() || child.IsArray() {
				return !walk(child)
			}
			return true
		})
		return found != ""
	}
	walk(v)
	return found
}
