// Package resume holds the core types shared by the transcript scanner,
// the session selector and the launcher.
package resume

import "time"

// Session is one Codex transcript found on disk, reduced to the metadata
// needed to present and resume it.
type Session struct {
	ID         string    // file base name without extension
	FullPath   string    // absolute path to the transcript file
	WorkDir    string    // directory the session ran in; empty if unknown
	Turns      int       // number of user-authored messages
	Preview    string    // short summary of the first user request
	ModifiedAt time.Time // transcript file modification time
}

// ResumeInfo describes how to run the external assistant binary.
type ResumeInfo struct {
	Command string   // absolute path to binary
	Args    []string // arguments, excluding argv[0]
	Dir     string   // working directory to run in (empty = current)
}
