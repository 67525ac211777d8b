package transcript

import (
	"strings"

	"github.com/tidwall/gjson"
)

// maxExtractRunes bounds the text taken from a single record before it is
// summarized.
const maxExtractRunes = 500

// Record is one parsed transcript line. Transcript lines have no fixed
// shape, so every accessor is optional and yields a zero value when the
// field is missing or has an unexpected type.
type Record struct {
	raw string
	v   gjson.Result
}

// ParseRecord parses a single JSONL line. It reports false for invalid JSON
// and for JSON values that are not objects.
func ParseRecord(line string) (Record, bool) {
	if !gjson.Valid(line) {
		return Record{}, false
	}
	v := gjson.Parse(line)
	if !v.IsObject() {
		return Record{}, false
	}
	return Record{raw: line, v: v}, true
}

// Raw returns the original line.
func (r Record) Raw() string {
	return r.raw
}

// Get returns the value at a gjson path.
func (r Record) Get(path string) gjson.Result {
	return r.v.Get(path)
}

// Value returns the whole parsed record.
func (r Record) Value() gjson.Result {
	return r.v
}

// String returns the value at path if it is a JSON string.
func (r Record) String(path string) string {
	return stringValue(r.v.Get(path))
}

// Has reports whether path is present and not null.
func (r Record) Has(path string) bool {
	v := r.v.Get(path)
	return v.Exists() && v.Type != gjson.Null
}

// Role returns the author role of the record: a direct "role" field, or
// one nested under "message" or "payload". Empty when none is present.
func (r Record) Role() string {
	for _, path := range []string{"role", "message.role", "payload.role"} {
		if role := r.String(path); role != "" {
			return role
		}
	}
	return ""
}

// UserText returns the text of a user message: a string content field,
// the first non-blank text element of a content list, or a plain text
// field.
func (r Record) UserText() string {
	for _, path := range []string{"content", "message.content", "payload.content"} {
		if t := firstText(r.v.Get(path)); t != "" {
			return t
		}
	}
	for _, path := range []string{"text", "payload.message"} {
		if t := r.String(path); t != "" {
			return t
		}
	}
	return ""
}

// HasSummary reports whether the record carries a "summary" field, as
// reasoning records do.
func (r Record) HasSummary() bool {
	return r.Has("summary") || r.Has("payload.summary")
}

// SummaryText returns text from a summary list when present, falling back to
// the record's content or text. The result is capped at maxExtractRunes.
func (r Record) SummaryText() string {
	for _, path := range []string{"summary", "payload.summary"} {
		if s := joinTexts(r.v.Get(path), " "); s != "" {
			return clip(s, maxExtractRunes)
		}
	}
	for _, path := range []string{"content", "payload.content"} {
		v := r.v.Get(path)
		if v.Type == gjson.String {
			return clip(v.Str, maxExtractRunes)
		}
		if t := firstTypedText(v, "text"); t != "" {
			return clip(t, maxExtractRunes)
		}
	}
	if t := r.String("text"); t != "" {
		return clip(t, maxExtractRunes)
	}
	if t := r.String("message.content"); t != "" {
		return clip(t, maxExtractRunes)
	}
	return ""
}

// ContentString returns "content" when it is a plain string.
func (r Record) ContentString() string {
	for _, path := range []string{"content", "payload.content"} {
		if s := r.String(path); s != "" {
			return s
		}
	}
	return ""
}

// ContentText returns the record's textual content: the string content
// itself, or the text of every content part joined by newlines.
func (r Record) ContentText() string {
	var parts []string
	for _, path := range []string{"content", "payload.content"} {
		v := r.v.Get(path)
		switch {
		case v.Type == gjson.String:
			parts = append(parts, v.Str)
		case v.IsArray():
			parts = append(parts, joinTexts(v, "\n"))
		}
	}
	return strings.Join(parts, "\n")
}

func stringValue(v gjson.Result) string {
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

// firstText returns v itself when it is a string, or the first element of
// the list v whose "text" is a non-blank string.
func firstText(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.Str
	}
	if !v.IsArray() {
		return ""
	}
	var out string
	v.ForEach(func(_, item gjson.Result) bool {
		if t := stringValue(item.Get("text")); strings.TrimSpace(t) != "" {
			out = t
			return false
		}
		return true
	})
	return out
}

// firstTypedText returns the text of the first list element with the
// given "type".
func firstTypedText(v gjson.Result, typ string) string {
	if !v.IsArray() {
		return ""
	}
	var out string
	v.ForEach(func(_, item gjson.Result) bool {
		if stringValue(item.Get("type")) == typ {
			if t := stringValue(item.Get("text")); t != "" {
				out = t
				return false
			}
		}
		return true
	})
	return out
}

// joinTexts joins the non-empty "text" fields of a list. A plain string is
// returned as is.
func joinTexts(v gjson.Result, sep string) string {
	if v.Type == gjson.String {
		return v.Str
	}
	if !v.IsArray() {
		return ""
	}
	var parts []string
	v.ForEach(func(_, item gjson.Result) bool {
		if t := stringValue(item.Get("text")); t != "" {
			parts = append(parts, t)
		}
		return true
	})
	return strings.Join(parts, sep)
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
