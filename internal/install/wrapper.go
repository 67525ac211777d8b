package install

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/wethinkt/codex-resume/internal/resume"
)

// WrapperData is the template data for the codex wrapper script.
type WrapperData struct {
	RealCodex string // resolved real binary, used when CODEX_REAL is unset
	Shim      string // installed shim executable
	Marker    string
}

const wrapperTemplate = `#!/usr/bin/env bash
# {{.Marker}}: installed by codex-resume. Delete this file to uninstall.
set -euo pipefail
if [[ -z "${CODEX_REAL:-}" ]]; then CODEX_REAL={{quote .RealCodex}}; fi
export CODEX_REAL
WRAPPER_PATH="$0"
if [[ "$CODEX_REAL" == "$WRAPPER_PATH" ]]; then
  IFS=:
  for d in $PATH; do
    [[ -z "$d" ]] && continue; cand="$d/codex"; [[ "$cand" == "$WRAPPER_PATH" ]] && continue
    if [[ -x "$cand" ]] && ! grep -q {{quote .Marker}} "$cand" 2>/dev/null; then CODEX_REAL="$cand"; export CODEX_REAL; break; fi
  done
fi
if [[ "$CODEX_REAL" == "$WRAPPER_PATH" || -z "$CODEX_REAL" ]]; then echo "codex-resume: could not resolve real codex. Set CODEX_REAL=/abs/path/to/codex" 1>&2; exit 1; fi
for arg in "$@"; do
  if [[ "$arg" == "--resume" ]]; then exec {{quote .Shim}} "$@"; fi
done
exec "$CODEX_REAL" "$@"
`

var wrapperTmpl = template.Must(template.New("wrapper").
	Funcs(template.FuncMap{"quote": shellQuote}).
	Parse(wrapperTemplate))

// WrapperScript renders the bash wrapper installed as "codex". It routes
// any invocation carrying --resume to the shim and everything else to the
// real binary.
func WrapperScript(realCodex, shim string) (string, error) {
	var buf bytes.Buffer
	err := wrapperTmpl.Execute(&buf, WrapperData{
		RealCodex: realCodex,
		Shim:      shim,
		Marker:    resume.WrapperMarker,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// shellQuote wraps s in single quotes for bash.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
