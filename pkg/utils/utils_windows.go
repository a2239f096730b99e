//go:build windows

package utils

import "golang.org/x/sys/windows"

// IsElevated reports whether the process runs with an elevated token, which
// raw access to physical drives requires.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
