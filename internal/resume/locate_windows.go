//go:build windows

package resume

var executableExts = []string{".cmd", ".exe", ""}
