//go:build !windows

package ioctl

// Open always fails outside windows.
func Open(path string) (Handle, error) {
	return nil, &HandleError{Path: path, Err: ErrPlatform}
}
