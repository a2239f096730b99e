package ioctl

import "fmt"

const (
	IOCTL_STORAGE_QUERY_PROPERTY              = 0x002D1400
	IOCTL_STORAGE_GET_PHYSICAL_ELEMENT_STATUS = 0x002D1424
)

// ResponseBufferSize is the capacity of the scratch buffer handed to the driver.
// Responses larger than this are cut off by the driver, not by us.
const ResponseBufferSize = 4 * 1024

type PropertyKind uint32

const (
	DeviceProperty PropertyKind = iota
	AdapterProperty
	DeviceIdProperty
	PhysicalElementStatus
)

func (k PropertyKind) String() string {
	switch k {
	case DeviceProperty:
		return "Device Property"
	case AdapterProperty:
		return "Adapter Property"
	case DeviceIdProperty:
		return "Device ID Property"
	case PhysicalElementStatus:
		return "Physical Element Status"
	default:
		return fmt.Sprintf("Property(%d)", uint32(k))
	}
}

// propertyID returns the STORAGE_PROPERTY_ID sent on the wire. Physical element
// status has its own ioctl and no property id.
func (k PropertyKind) propertyID() (uint32, bool) {
	switch k {
	case DeviceProperty, AdapterProperty, DeviceIdProperty:
		return uint32(k), true
	default:
		return 0, false
	}
}

type QueryType uint32

// Only the standard query is issued; it returns the descriptor itself.
const PropertyStandardQuery QueryType = 0
