//go:build !windows

package resume

var executableExts = []string{""}
