package disk

import (
	"github.com/jpnorenam/disk-health/pkg/ioctl"
	"github.com/jpnorenam/disk-health/pkg/types"
)

// STORAGE_ADAPTER_DESCRIPTOR layout. Byte 25 is padding.
const (
	maxTransferLengthOffset      = 8
	maxPhysicalPagesOffset       = 12
	alignmentMaskOffset          = 16
	adapterUsesPioOffset         = 20
	adapterScansDownOffset       = 21
	adapterCommandQueueingOffset = 22
	acceleratedTransferOffset    = 23
	adapterBusTypeOffset         = 24
	busMajorVersionOffset        = 26
	busMinorVersionOffset        = 28
	srbTypeOffset                = 30
	addressTypeOffset            = 31

	AdapterDescriptorSize = 32
)

// AdapterInfo queries the adapter (controller) property of an open drive.
func AdapterInfo(h ioctl.Handle) (*types.AdapterDescriptor, error) {
	raw, err := ioctl.Execute(h, ioctl.AdapterProperty, ioctl.PropertyStandardQuery, 0)
	if err != nil {
		return nil, err
	}
	return AdapterInfoFromRawData(raw)
}

func AdapterInfoFromRawData(raw []byte) (*types.AdapterDescriptor, error) {
	if err := checkLength(ioctl.AdapterProperty, raw, AdapterDescriptorSize); err != nil {
		return nil, err
	}

	return &types.AdapterDescriptor{
		Version:               u32(raw, 0),
		Size:                  u32(raw, 4),
		MaximumTransferLength: u32(raw, maxTransferLengthOffset),
		MaximumPhysicalPages:  u32(raw, maxPhysicalPagesOffset),
		AlignmentMask:         u32(raw, alignmentMaskOffset),
		AdapterUsesPio:        flag(raw, adapterUsesPioOffset),
		AdapterScansDown:      flag(raw, adapterScansDownOffset),
		CommandQueueing:       flag(raw, adapterCommandQueueingOffset),
		AcceleratedTransfer:   flag(raw, acceleratedTransferOffset),
		BusType:               raw[adapterBusTypeOffset],
		BusMajorVersion:       u16(raw, busMajorVersionOffset),
		BusMinorVersion:       u16(raw, busMinorVersionOffset),
		SrbType:               raw[srbTypeOffset],
		AddressType:           raw[addressTypeOffset],
		Partial:               partial(raw),
	}, nil
}
