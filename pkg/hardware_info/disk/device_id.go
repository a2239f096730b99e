package disk

import (
	"github.com/jpnorenam/disk-health/pkg/ioctl"
	"github.com/jpnorenam/disk-health/pkg/types"
)

const (
	numberOfIdentifiersOffset = 8

	DeviceIdDescriptorSize = 12
)

// DeviceIdInfo queries the device identifier property. Only the identifier
// count is decoded.
// TODO: walk STORAGE_IDENTIFIER records (NextOffset chain) to report EUI-64/WWN.
func DeviceIdInfo(h ioctl.Handle) (*types.DeviceIdDescriptor, error) {
	raw, err := ioctl.Execute(h, ioctl.DeviceIdProperty, ioctl.PropertyStandardQuery, 0)
	if err != nil {
		return nil, err
	}
	return DeviceIdInfoFromRawData(raw)
}

func DeviceIdInfoFromRawData(raw []byte) (*types.DeviceIdDescriptor, error) {
	if err := checkLength(ioctl.DeviceIdProperty, raw, DeviceIdDescriptorSize); err != nil {
		return nil, err
	}

	return &types.DeviceIdDescriptor{
		Version:             u32(raw, 0),
		Size:                u32(raw, 4),
		NumberOfIdentifiers: u32(raw, numberOfIdentifiersOffset),
		Partial:             partial(raw),
	}, nil
}
