package types

// DeviceDescriptor is the decoded STORAGE_DEVICE_DESCRIPTOR.
// String fields are nil when the driver did not supply a usable offset.
type DeviceDescriptor struct {
	Version            uint32     `json:"version" yaml:"version"`
	Size               uint32     `json:"size" yaml:"size"`
	DeviceType         DeviceType `json:"device-type" yaml:"device-type"`
	DeviceTypeModifier uint8      `json:"device-type-modifier" yaml:"device-type-modifier"`
	BusType            BusType    `json:"bus-type" yaml:"bus-type"`
	Removable          bool       `json:"removable" yaml:"removable"`
	CommandQueueing    bool       `json:"command-queueing" yaml:"command-queueing"`
	Vendor             *string    `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Product            *string    `json:"product,omitempty" yaml:"product,omitempty"`
	Revision           *string    `json:"revision,omitempty" yaml:"revision,omitempty"`
	SerialNumber       *string    `json:"serial-number,omitempty" yaml:"serial-number,omitempty"`

	// Partial is set when the descriptor claims to be larger than the returned data.
	Partial bool `json:"partial,omitempty" yaml:"partial,omitempty"`
}

// AdapterDescriptor is the decoded STORAGE_ADAPTER_DESCRIPTOR. Bus, SRB and
// address types are kept as raw codes.
type AdapterDescriptor struct {
	Version               uint32 `json:"version" yaml:"version"`
	Size                  uint32 `json:"size" yaml:"size"`
	MaximumTransferLength uint32 `json:"max-transfer-length" yaml:"max-transfer-length"`
	MaximumPhysicalPages  uint32 `json:"max-physical-pages" yaml:"max-physical-pages"`
	AlignmentMask         uint32 `json:"alignment-mask" yaml:"alignment-mask"`
	AdapterUsesPio        bool   `json:"adapter-uses-pio" yaml:"adapter-uses-pio"`
	AdapterScansDown      bool   `json:"adapter-scans-down" yaml:"adapter-scans-down"`
	CommandQueueing       bool   `json:"command-queueing" yaml:"command-queueing"`
	AcceleratedTransfer   bool   `json:"accelerated-transfer" yaml:"accelerated-transfer"`
	BusType               uint8  `json:"bus-type" yaml:"bus-type"`
	BusMajorVersion       uint16 `json:"bus-major-version" yaml:"bus-major-version"`
	BusMinorVersion       uint16 `json:"bus-minor-version" yaml:"bus-minor-version"`
	SrbType               uint8  `json:"srb-type" yaml:"srb-type"`
	AddressType           uint8  `json:"address-type" yaml:"address-type"`
	Partial               bool   `json:"partial,omitempty" yaml:"partial,omitempty"`
}

// DeviceIdDescriptor only carries the identifier count; the identifier list
// itself is not decoded.
type DeviceIdDescriptor struct {
	Version             uint32 `json:"version" yaml:"version"`
	Size                uint32 `json:"size" yaml:"size"`
	NumberOfIdentifiers uint32 `json:"number-of-identifiers" yaml:"number-of-identifiers"`
	Partial             bool   `json:"partial,omitempty" yaml:"partial,omitempty"`
}

type ElementStatus struct {
	Version           uint32        `json:"version" yaml:"version"`
	Size              uint32        `json:"size" yaml:"size"`
	ElementIdentifier uint32        `json:"element-identifier" yaml:"element-identifier"`
	Health            ElementHealth `json:"health" yaml:"health"`
	Partial           bool          `json:"partial,omitempty" yaml:"partial,omitempty"`
}
