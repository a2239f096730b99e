package ioctl

import "fmt"

// Handle is an open, read-capable device. Implementations write the response
// into out and return how many bytes of it are valid.
type Handle interface {
	DeviceIoControl(code uint32, in []byte, out []byte) (uint32, error)
	Close() error
}

// OpenFunc acquires a Handle for a device path such as \\.\PhysicalDrive0.
type OpenFunc func(path string) (Handle, error)

// DrivePath returns the device path of the n-th physical drive.
func DrivePath(n int) string {
	return fmt.Sprintf(`\\.\PhysicalDrive%d`, n)
}
