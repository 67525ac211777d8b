// codex-resume installs the codex wrapper and the codex-shim it delegates
// "codex --resume" to.
package main

import (
	"os"

	"github.com/wethinkt/codex-resume/internal/cmd"
)

func main() {
	os.Exit(cmd.ExecuteInstaller())
}
