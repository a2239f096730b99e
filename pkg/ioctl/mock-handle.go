package ioctl

import (
	"encoding/binary"
)

// MockHandle replays canned responses per property kind. Properties without a
// response fail the way a driver that does not implement them would.
type MockHandle struct {
	Responses map[PropertyKind][]byte
	Errors    map[PropertyKind]error
	CloseErr  error

	Calls      []PropertyKind
	CloseCalls int
}

func NewMockHandle() *MockHandle {
	return &MockHandle{
		Responses: make(map[PropertyKind][]byte),
		Errors:    make(map[PropertyKind]error),
	}
}

// Opener returns an OpenFunc that always hands out this mock.
func (m *MockHandle) Opener() OpenFunc {
	return func(string) (Handle, error) {
		return m, nil
	}
}

// FailingOpener returns an OpenFunc that never yields a handle.
func FailingOpener(err error) OpenFunc {
	return func(path string) (Handle, error) {
		return nil, &HandleError{Path: path, Err: err}
	}
}

func (m *MockHandle) DeviceIoControl(code uint32, in []byte, out []byte) (uint32, error) {
	kind, err := decodeRequest(code, in)
	if err != nil {
		return 0, err
	}
	m.Calls = append(m.Calls, kind)

	if err, found := m.Errors[kind]; found {
		return 0, err
	}
	response, found := m.Responses[kind]
	if !found {
		return 0, errorInvalidFunction
	}

	// Fill the whole buffer first so callers that read past bytesReturned notice.
	for i := range out {
		out[i] = 0xCC
	}
	n := copy(out, response)
	return uint32(n), nil
}

func (m *MockHandle) Close() error {
	m.CloseCalls++
	return m.CloseErr
}

func decodeRequest(code uint32, in []byte) (PropertyKind, error) {
	switch code {
	case IOCTL_STORAGE_QUERY_PROPERTY:
		if len(in) != propertyQuerySize {
			return 0, errorInvalidParameter
		}
		kind := PropertyKind(binary.LittleEndian.Uint32(in[0:]))
		if _, ok := kind.propertyID(); !ok {
			return 0, errorInvalidParameter
		}
		return kind, nil
	case IOCTL_STORAGE_GET_PHYSICAL_ELEMENT_STATUS:
		if len(in) != elementStatusRequestSize || binary.LittleEndian.Uint32(in[4:]) != elementStatusRequestSize {
			return 0, errorInvalidParameter
		}
		return PhysicalElementStatus, nil
	default:
		return 0, errorInvalidFunction
	}
}
