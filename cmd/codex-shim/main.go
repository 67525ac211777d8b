// codex-shim runs in place of codex: "codex --resume" picks a previous
// session of the current project, anything else goes to the real binary.
package main

import (
	"os"

	"github.com/wethinkt/codex-resume/internal/cmd"
)

func main() {
	os.Exit(cmd.ExecuteShim())
}
