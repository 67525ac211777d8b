// Package codex locates and scans Codex CLI session transcripts.
package codex

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/wethinkt/codex-resume/internal/debuglog"
)

// SessionsDir resolves the directory holding Codex transcripts under
// codexHome. config.json is consulted first, then config.toml; the first
// configured directory that exists wins. Unreadable or malformed config
// files are ignored.
func SessionsDir(codexHome string, log *debuglog.Logger) string {
	if dir := fromJSONConfig(filepath.Join(codexHome, "config.json"), log); dir != "" {
		return dir
	}
	if dir := fromTOMLConfig(filepath.Join(codexHome, "config.toml"), log); dir != "" {
		return dir
	}
	return filepath.Join(codexHome, "sessions")
}

func fromJSONConfig(path string, log *debuglog.Logger) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Debug("ignoring config", "path", path, "err", err)
		return ""
	}

	if dataDir := firstString(cfg, "data_dir", "dataDir", "root_dir", "rootDir"); dataDir != "" && exists(dataDir) {
		if candidate := filepath.Join(dataDir, "sessions"); exists(candidate) {
			return candidate
		}
	}
	if dir := firstString(cfg, "sessions_dir"); dir != "" && exists(dir) {
		return dir
	}
	return ""
}

func fromTOMLConfig(path string, log *debuglog.Logger) string {
	var cfg map[string]any
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !os.IsNotExist(err) {
			log.Debug("ignoring config", "path", path, "err", err)
		}
		return ""
	}

	if dir := firstString(cfg, "sessions_dir"); dir != "" && exists(dir) {
		return dir
	}
	if dataDir := firstString(cfg, "data_dir", "root_dir"); dataDir != "" {
		if candidate := filepath.Join(dataDir, "sessions"); exists(candidate) {
			return candidate
		}
	}
	return ""
}

// firstString returns the first non-empty string value among keys.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
