// Package config collects the process environment once at startup into a
// Config that is threaded through the rest of the program.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/wethinkt/codex-resume/internal/i18n"
)

// Environment variables read by Load.
const (
	EnvCodexHome = "CODEX_HOME"           // Codex data directory, default ~/.codex
	EnvCodexReal = "CODEX_REAL"           // path to the real codex binary
	EnvDebug     = "DEBUG_RESUME"         // any non-empty value enables debug lines
	EnvDataHome  = "XDG_DATA_HOME"        // base for the installed shim
	EnvLang      = "CODEX_RESUME_LANG"    // message language override
	EnvTUI       = "CODEX_RESUME_TUI"     // use the full-screen picker
	EnvProfile   = "CODEX_RESUME_PROFILE" // write a CPU profile to this file
)

// Config holds everything the program reads from its environment.
type Config struct {
	Args      []string // command-line arguments, excluding argv[0]
	Home      string   // user home directory
	Cwd       string   // process working directory
	CodexHome string   // Codex data directory
	CodexReal string   // explicit real binary override
	Debug     bool     // emit [debug] lines to stderr
	DataHome  string   // XDG data directory
	BinHome   string   // directory the wrapper script is installed into
	PathList  []string // PATH entries in order
	SelfDir   string   // directory of the running executable
	Lang      string   // message language (BCP 47)
	TUI       bool     // interactive picker instead of the numeric prompt
	Profile   string   // CPU profile output path
}

// FromEnv builds a Config from getenv alone. Fields that need the
// filesystem (Cwd, SelfDir) are left empty.
func FromEnv(getenv func(string) string, args []string) Config {
	home := getenv("HOME")
	if home == "" {
		home = getenv("USERPROFILE")
	}

	c := Config{
		Args:      args,
		Home:      home,
		CodexHome: getenv(EnvCodexHome),
		CodexReal: getenv(EnvCodexReal),
		Debug:     getenv(EnvDebug) != "",
		DataHome:  getenv(EnvDataHome),
		PathList:  filepath.SplitList(getenv("PATH")),
		Lang:      i18n.ResolveLocale(getenv(EnvLang), getenv),
		TUI:       truthy(getenv(EnvTUI)),
		Profile:   getenv(EnvProfile),
	}
	c.fillDefaults()
	return c
}

// Load reads the real process environment.
func Load(args []string) Config {
	c := FromEnv(os.Getenv, args)
	if c.Home == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.Home = home
			c.fillDefaults()
		}
	}
	if wd, err := os.Getwd(); err == nil {
		c.Cwd = wd
	}
	c.SelfDir = executableDir()
	return c
}

func (c *Config) fillDefaults() {
	if c.Home == "" {
		return
	}
	if c.CodexHome == "" {
		c.CodexHome = filepath.Join(c.Home, ".codex")
	}
	if c.DataHome == "" {
		c.DataHome = filepath.Join(c.Home, ".local", "share")
	}
	if c.BinHome == "" {
		c.BinHome = filepath.Join(c.Home, ".local", "bin")
	}
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}
