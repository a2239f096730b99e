package types

import "fmt"

// DeviceType is the SCSI peripheral device type reported in a device descriptor.
type DeviceType uint8

const (
	DeviceTypeDirectAccess     DeviceType = 0
	DeviceTypeSequentialAccess DeviceType = 1
	DeviceTypeCdRom            DeviceType = 5
)

func (t DeviceType) Known() bool {
	switch t {
	case DeviceTypeDirectAccess, DeviceTypeSequentialAccess, DeviceTypeCdRom:
		return true
	}
	return false
}

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeDirectAccess:
		return "Direct Access (HDD/SSD)"
	case DeviceTypeSequentialAccess:
		return "Sequential Access (Tape)"
	case DeviceTypeCdRom:
		return "CD/DVD-ROM"
	default:
		return fmt.Sprintf("Unknown (%d)", uint8(t))
	}
}

func (t DeviceType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// BusType is the STORAGE_BUS_TYPE of a device. Only the bus types the report
// names are listed; every other value is carried through as-is.
type BusType uint32

const (
	BusTypeScsi BusType = 1
	BusTypeUsb  BusType = 7
	BusTypeSata BusType = 11
	BusTypeNvme BusType = 17
)

func (b BusType) Known() bool {
	switch b {
	case BusTypeScsi, BusTypeUsb, BusTypeSata, BusTypeNvme:
		return true
	}
	return false
}

func (b BusType) String() string {
	switch b {
	case BusTypeNvme:
		return "NVMe"
	case BusTypeSata:
		return "SATA"
	case BusTypeUsb:
		return "USB"
	case BusTypeScsi:
		return "SCSI"
	default:
		return fmt.Sprintf("Unknown (%d)", uint32(b))
	}
}

func (b BusType) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// ElementHealth is the health state of a physical element.
type ElementHealth uint8

const (
	HealthHealthy  ElementHealth = 0
	HealthWarning  ElementHealth = 1
	HealthCritical ElementHealth = 2
)

func (h ElementHealth) Known() bool {
	return h <= HealthCritical
}

func (h ElementHealth) String() string {
	switch h {
	case HealthHealthy:
		return "Healthy"
	case HealthWarning:
		return "Warning"
	case HealthCritical:
		return "Critical"
	default:
		return fmt.Sprintf("Unknown (%d)", uint8(h))
	}
}

func (h ElementHealth) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}
