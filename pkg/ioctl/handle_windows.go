//go:build windows

package ioctl

import (
	"golang.org/x/sys/windows"
)

type fileHandle struct {
	handle windows.Handle
}

// Open opens a physical drive for reading with the same sharing mode the disk
// management tools use, so other readers and writers are not locked out.
func Open(path string) (Handle, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, &HandleError{Path: path, Err: err}
	}

	h, err := windows.CreateFile(
		name,
		windows.GENERIC_READ,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return nil, &HandleError{Path: path, Err: err}
	}

	return &fileHandle{handle: h}, nil
}

func (f *fileHandle) DeviceIoControl(code uint32, in []byte, out []byte) (uint32, error) {
	var inPtr, outPtr *byte
	if len(in) > 0 {
		inPtr = &in[0]
	}
	if len(out) > 0 {
		outPtr = &out[0]
	}

	var bytesReturned uint32
	err := windows.DeviceIoControl(
		f.handle,
		code,
		inPtr,
		uint32(len(in)),
		outPtr,
		uint32(len(out)),
		&bytesReturned,
		nil,
	)
	if err != nil {
		return 0, err
	}
	return bytesReturned, nil
}

func (f *fileHandle) Close() error {
	return windows.CloseHandle(f.handle)
}
