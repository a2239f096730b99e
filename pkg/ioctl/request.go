package ioctl

import (
	"encoding/binary"
	"fmt"
)

// Encoded sizes of the request records, including trailing padding.
const (
	propertyQuerySize        = 12
	elementStatusRequestSize = 16
)

// PropertyQuery is the STORAGE_PROPERTY_QUERY input record.
type PropertyQuery struct {
	Kind                 PropertyKind
	QueryType            QueryType
	AdditionalParameters [1]byte
}

// MarshalBinary encodes the query in the driver's little-endian layout.
func (q PropertyQuery) MarshalBinary() ([]byte, error) {
	id, ok := q.Kind.propertyID()
	if !ok {
		return nil, fmt.Errorf("%s cannot be requested as a storage property", q.Kind)
	}

	b := make([]byte, propertyQuerySize)
	binary.LittleEndian.PutUint32(b[0:], id)
	binary.LittleEndian.PutUint32(b[4:], uint32(q.QueryType))
	b[8] = q.AdditionalParameters[0]
	return b, nil
}

// ElementStatusRequest is the PHYSICAL_ELEMENT_STATUS_REQUEST input record.
type ElementStatusRequest struct {
	Version         uint32
	Size            uint32
	StartingElement uint32
	Filter          uint8
	ReportType      uint8
	Reserved        [2]byte
}

// NewElementStatusRequest asks for the physical status of all elements,
// starting from the first one.
func NewElementStatusRequest() ElementStatusRequest {
	return ElementStatusRequest{
		Version:         elementStatusRequestSize,
		Size:            elementStatusRequestSize,
		StartingElement: 0,
		Filter:          0, // all elements, not only restored ones
		ReportType:      0, // physical element status
	}
}

func (r ElementStatusRequest) MarshalBinary() ([]byte, error) {
	b := make([]byte, elementStatusRequestSize)
	binary.LittleEndian.PutUint32(b[0:], r.Version)
	binary.LittleEndian.PutUint32(b[4:], r.Size)
	binary.LittleEndian.PutUint32(b[8:], r.StartingElement)
	b[12] = r.Filter
	b[13] = r.ReportType
	copy(b[14:], r.Reserved[:])
	return b, nil
}
