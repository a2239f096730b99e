package disk

import (
	"github.com/jpnorenam/disk-health/pkg/ioctl"
	"github.com/jpnorenam/disk-health/pkg/types"
)

// PHYSICAL_ELEMENT_STATUS_DESCRIPTOR header. The element type at byte 12 is not
// decoded.
const (
	elementIdentifierOffset = 8
	elementHealthOffset     = 13

	ElementStatusDescriptorSize = 16
)

// ElementStatusInfo requests the physical element status of all elements. Many
// drives and drivers do not implement this ioctl.
func ElementStatusInfo(h ioctl.Handle) (*types.ElementStatus, error) {
	raw, err := ioctl.ExecuteElementStatus(h, ioctl.NewElementStatusRequest())
	if err != nil {
		return nil, err
	}
	return ElementStatusInfoFromRawData(raw)
}

func ElementStatusInfoFromRawData(raw []byte) (*types.ElementStatus, error) {
	if err := checkLength(ioctl.PhysicalElementStatus, raw, ElementStatusDescriptorSize); err != nil {
		return nil, err
	}

	return &types.ElementStatus{
		Version:           u32(raw, 0),
		Size:              u32(raw, 4),
		ElementIdentifier: u32(raw, elementIdentifierOffset),
		Health:            types.ElementHealth(raw[elementHealthOffset]),
		Partial:           partial(raw),
	}, nil
}
