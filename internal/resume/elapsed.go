package resume

import (
	"fmt"
	"time"
)

// ElapsedLabel formats d as whole minutes ("42m") below one hour and as
// hours plus minutes ("3h7m") otherwise. Negative durations read as "0m".
func ElapsedLabel(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d / time.Minute)
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh%dm", mins/60, mins%60)
}

// Elapsed returns the time since the transcript was last modified.
func (s Session) Elapsed(now time.Time) string {
	return ElapsedLabel(now.Sub(s.ModifiedAt))
}
