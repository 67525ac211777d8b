// Package version reports the build version of codex-resume.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the current version of the application.
// This can be set at build time using ldflags:
// -ldflags="-X github.com/wethinkt/codex-resume/internal/version.Version=v1.0.0"
var Version = ""

// Get returns the version string, falling back to module build info and
// then to a short VCS revision.
func Get() string {
	if Version != "" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			return "dev-" + shortRevision(setting.Value)
		}
	}
	return "dev"
}

// String returns "<name> version <version>".
func String(name string) string {
	return fmt.Sprintf("%s version %s", name, Get())
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
