package ioctl

import (
	"fmt"
	"log"
	"os"
)

// Execute issues one IOCTL_STORAGE_QUERY_PROPERTY exchange and returns the bytes
// the driver reported as written. additional is sent as the query's single
// AdditionalParameters byte. The handle is neither modified nor closed.
//
// Responses longer than ResponseBufferSize are truncated by the driver. Callers
// can detect this by comparing a descriptor's self-reported size with the length
// of the returned slice.
func Execute(h Handle, kind PropertyKind, queryType QueryType, additional byte) ([]byte, error) {
	query := PropertyQuery{
		Kind:                 kind,
		QueryType:            queryType,
		AdditionalParameters: [1]byte{additional},
	}
	in, err := query.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return exchange(h, kind, IOCTL_STORAGE_QUERY_PROPERTY, in)
}

// ExecuteElementStatus issues IOCTL_STORAGE_GET_PHYSICAL_ELEMENT_STATUS with the
// given request.
func ExecuteElementStatus(h Handle, request ElementStatusRequest) ([]byte, error) {
	in, err := request.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return exchange(h, PhysicalElementStatus, IOCTL_STORAGE_GET_PHYSICAL_ELEMENT_STATUS, in)
}

func exchange(h Handle, kind PropertyKind, code uint32, in []byte) ([]byte, error) {
	out := make([]byte, ResponseBufferSize)

	n, err := h.DeviceIoControl(code, in, out)
	if os.Getenv("VERBOSE") == "true" {
		log.Printf("ioctl %#08x (%s): %d bytes returned, err=%v", code, kind, n, err)
	}
	if err != nil {
		return nil, &QueryError{Property: kind, Code: code, Err: err}
	}
	if uint64(n) > uint64(len(out)) {
		return nil, &QueryError{
			Property: kind,
			Code:     code,
			Err:      fmt.Errorf("driver reported %d bytes for a %d byte buffer", n, len(out)),
		}
	}

	// The tail past n is whatever the driver left behind and must not leak out.
	raw := make([]byte, n)
	copy(raw, out[:n])
	return raw, nil
}
