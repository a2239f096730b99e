package disk

import (
	"github.com/jpnorenam/disk-health/pkg/ioctl"
	"github.com/jpnorenam/disk-health/pkg/types"
)

// STORAGE_DEVICE_DESCRIPTOR layout. The header ends before RawDeviceProperties.
const (
	deviceTypeOffset            = 8
	deviceTypeModifierOffset    = 9
	removableMediaOffset        = 10
	deviceCommandQueueingOffset = 11
	vendorIdOffset              = 12
	productIdOffset             = 16
	productRevisionOffset       = 20
	serialNumberOffset          = 24
	deviceBusTypeOffset         = 28

	DeviceDescriptorSize = 36
)

// DeviceInfo queries the device property of an open drive and decodes it.
func DeviceInfo(h ioctl.Handle) (*types.DeviceDescriptor, error) {
	raw, err := ioctl.Execute(h, ioctl.DeviceProperty, ioctl.PropertyStandardQuery, 0)
	if err != nil {
		return nil, err
	}
	return DeviceInfoFromRawData(raw)
}

// DeviceInfoFromRawData decodes a raw STORAGE_DEVICE_DESCRIPTOR response.
func DeviceInfoFromRawData(raw []byte) (*types.DeviceDescriptor, error) {
	if err := checkLength(ioctl.DeviceProperty, raw, DeviceDescriptorSize); err != nil {
		return nil, err
	}

	return &types.DeviceDescriptor{
		Version:            u32(raw, 0),
		Size:               u32(raw, 4),
		DeviceType:         types.DeviceType(raw[deviceTypeOffset]),
		DeviceTypeModifier: raw[deviceTypeModifierOffset],
		BusType:            types.BusType(u32(raw, deviceBusTypeOffset)),
		Removable:          flag(raw, removableMediaOffset),
		CommandQueueing:    flag(raw, deviceCommandQueueingOffset),
		Vendor:             stringAt(raw, u32(raw, vendorIdOffset)),
		Product:            stringAt(raw, u32(raw, productIdOffset)),
		Revision:           stringAt(raw, u32(raw, productRevisionOffset)),
		SerialNumber:       stringAt(raw, u32(raw, serialNumberOffset)),
		Partial:            partial(raw),
	}, nil
}
