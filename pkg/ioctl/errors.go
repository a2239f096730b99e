package ioctl

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	ErrUnsupported = errors.New("not supported")
	ErrPlatform    = errors.New("storage ioctls are only available on windows")
)

// Win32 status codes a driver uses to reject a request it does not implement.
const (
	errorInvalidFunction  = syscall.Errno(1)
	errorNotSupported     = syscall.Errno(50)
	errorInvalidParameter = syscall.Errno(87)
)

// HandleError is returned when the device could not be opened. Nothing can be
// queried without a handle, so callers treat it as fatal.
type HandleError struct {
	Path string
	Err  error
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("error opening %s: %v", e.Path, e.Err)
}

func (e *HandleError) Unwrap() error {
	return e.Err
}

// QueryError wraps the status of a failed ioctl exchange.
type QueryError struct {
	Property PropertyKind
	Code     uint32
	Err      error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s query (ioctl %#08x) failed: %v", e.Property, e.Code, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Unsupported reports whether the driver rejected the request as not implemented
// for this property or device.
func (e *QueryError) Unsupported() bool {
	var errno syscall.Errno
	if !errors.As(e.Err, &errno) {
		return false
	}
	switch errno {
	case errorInvalidFunction, errorNotSupported, errorInvalidParameter:
		return true
	}
	return false
}

func (e *QueryError) Is(target error) bool {
	return target == ErrUnsupported && e.Unsupported()
}
