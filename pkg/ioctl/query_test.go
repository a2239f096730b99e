package ioctl

import (
	"encoding/binary"
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandle captures the raw exchange so the request encoding can be checked.
type recordingHandle struct {
	code     uint32
	in       []byte
	outLen   int
	response []byte
	reported uint32
	err      error
}

func (r *recordingHandle) DeviceIoControl(code uint32, in []byte, out []byte) (uint32, error) {
	r.code = code
	r.in = append([]byte(nil), in...)
	r.outLen = len(out)
	if r.err != nil {
		return 0, r.err
	}
	copy(out, r.response)
	return r.reported, nil
}

func (r *recordingHandle) Close() error {
	return errors.New("executor must not close the handle")
}

func TestExecuteEncodesPropertyQuery(t *testing.T) {
	tests := []struct {
		kind   PropertyKind
		wantID uint32
	}{
		{DeviceProperty, 0},
		{AdapterProperty, 1},
		{DeviceIdProperty, 2},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			h := &recordingHandle{response: []byte{1, 2, 3, 4}, reported: 4}

			raw, err := Execute(h, tt.kind, PropertyStandardQuery, 0)
			require.NoError(t, err)

			assert.Equal(t, uint32(IOCTL_STORAGE_QUERY_PROPERTY), h.code)
			assert.Equal(t, ResponseBufferSize, h.outLen)
			require.Len(t, h.in, 12)
			assert.Equal(t, tt.wantID, binary.LittleEndian.Uint32(h.in[0:]))
			assert.Equal(t, uint32(PropertyStandardQuery), binary.LittleEndian.Uint32(h.in[4:]))
			assert.Equal(t, []byte{0, 0, 0, 0}, h.in[8:])
			assert.Equal(t, []byte{1, 2, 3, 4}, raw)
		})
	}
}

func TestExecuteRejectsElementStatusKind(t *testing.T) {
	h := &recordingHandle{}
	_, err := Execute(h, PhysicalElementStatus, PropertyStandardQuery, 0)
	require.Error(t, err)
	assert.Nil(t, h.in, "no exchange should have been attempted")
}

func TestExecuteReturnsOnlyReportedBytes(t *testing.T) {
	m := NewMockHandle()
	m.Responses[DeviceProperty] = []byte{0xde, 0xad, 0xbe, 0xef}

	raw, err := Execute(m, DeviceProperty, PropertyStandardQuery, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, raw)
	assert.Equal(t, 0, m.CloseCalls)
}

func TestExecuteEmptyResponse(t *testing.T) {
	h := &recordingHandle{reported: 0}
	raw, err := Execute(h, AdapterProperty, PropertyStandardQuery, 0)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestExecuteOverReportedLength(t *testing.T) {
	// Lengths past the signed int range must not wrap on 32-bit targets
	for _, reported := range []uint32{ResponseBufferSize + 1, 0x80000000, 0xffffffff} {
		h := &recordingHandle{reported: reported}
		raw, err := Execute(h, DeviceProperty, PropertyStandardQuery, 0)

		var queryErr *QueryError
		require.ErrorAs(t, err, &queryErr, "reported %d", reported)
		assert.False(t, queryErr.Unsupported())
		assert.Nil(t, raw)
	}
}

func TestExecuteAdditionalParameters(t *testing.T) {
	h := &recordingHandle{reported: 0}
	_, err := Execute(h, DeviceProperty, PropertyStandardQuery, 0x5a)
	require.NoError(t, err)

	require.Len(t, h.in, 12)
	assert.Equal(t, byte(0x5a), h.in[8])
	assert.Equal(t, []byte{0, 0, 0}, h.in[9:], "padding")
}

func TestExecuteFailureIsTyped(t *testing.T) {
	tests := []struct {
		name        string
		status      error
		unsupported bool
	}{
		{"invalid function", syscall.Errno(1), true},
		{"not supported", syscall.Errno(50), true},
		{"invalid parameter", syscall.Errno(87), true},
		{"invalid handle", syscall.Errno(6), false},
		{"insufficient buffer", syscall.Errno(122), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &recordingHandle{err: tt.status}
			_, err := Execute(h, DeviceIdProperty, PropertyStandardQuery, 0)

			var queryErr *QueryError
			require.ErrorAs(t, err, &queryErr)
			assert.Equal(t, DeviceIdProperty, queryErr.Property)
			assert.Equal(t, uint32(IOCTL_STORAGE_QUERY_PROPERTY), queryErr.Code)
			assert.ErrorIs(t, err, tt.status)
			assert.Equal(t, tt.unsupported, errors.Is(err, ErrUnsupported))
		})
	}
}

func TestExecuteElementStatusUsesDistinctIoctl(t *testing.T) {
	h := &recordingHandle{response: make([]byte, 16), reported: 16}

	_, err := ExecuteElementStatus(h, NewElementStatusRequest())
	require.NoError(t, err)

	assert.Equal(t, uint32(IOCTL_STORAGE_GET_PHYSICAL_ELEMENT_STATUS), h.code)
	require.Len(t, h.in, 16)
	assert.Equal(t, uint32(16), binary.LittleEndian.Uint32(h.in[0:]), "version")
	assert.Equal(t, uint32(16), binary.LittleEndian.Uint32(h.in[4:]), "size")
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(h.in[8:]), "starting element")
	assert.Equal(t, []byte{0, 0, 0, 0}, h.in[12:], "filter, report type, reserved")
}

func TestNewElementStatusRequest(t *testing.T) {
	req := NewElementStatusRequest()
	assert.Equal(t, uint32(16), req.Version)
	assert.Equal(t, req.Version, req.Size)
	assert.Zero(t, req.StartingElement)
	assert.Zero(t, req.Filter)
	assert.Zero(t, req.ReportType)
}

func TestMockHandleUnknownPropertyFails(t *testing.T) {
	m := NewMockHandle()
	_, err := ExecuteElementStatus(m, NewElementStatusRequest())
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, []PropertyKind{PhysicalElementStatus}, m.Calls)
}

func TestFailingOpener(t *testing.T) {
	open := FailingOpener(syscall.Errno(5))
	_, err := open(DrivePath(3))

	var handleErr *HandleError
	require.ErrorAs(t, err, &handleErr)
	assert.Equal(t, `\\.\PhysicalDrive3`, handleErr.Path)
}
