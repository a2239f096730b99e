//go:build !windows

package utils

import "os"

func IsElevated() bool {
	return os.Geteuid() == 0
}
