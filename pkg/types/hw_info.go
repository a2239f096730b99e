package types

// Report sections, in the order they are queried.
const (
	SectionDevice        = "device"
	SectionAdapter       = "adapter"
	SectionDeviceId      = "device-id"
	SectionElementStatus = "element-status"
)

type DiskHealth struct {
	Drive         string              `json:"drive" yaml:"drive"`
	Device        *DeviceDescriptor   `json:"device,omitempty" yaml:"device,omitempty"`
	Adapter       *AdapterDescriptor  `json:"adapter,omitempty" yaml:"adapter,omitempty"`
	DeviceId      *DeviceIdDescriptor `json:"device-id,omitempty" yaml:"device-id,omitempty"`
	ElementStatus *ElementStatus      `json:"element-status,omitempty" yaml:"element-status,omitempty"`
	Notices       []Notice            `json:"notices,omitempty" yaml:"notices,omitempty"`
}

// Notice marks a section that could not be reported. It is advisory; the
// remaining sections are still valid.
type Notice struct {
	Section string `json:"section" yaml:"section"`
	Message string `json:"message" yaml:"message"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Supported returns how many sections were populated.
func (h *DiskHealth) Supported() int {
	var n int
	if h.Device != nil {
		n++
	}
	if h.Adapter != nil {
		n++
	}
	if h.DeviceId != nil {
		n++
	}
	if h.ElementStatus != nil {
		n++
	}
	return n
}
