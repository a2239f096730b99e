package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusType(t *testing.T) {
	tests := []struct {
		code  uint32
		want  string
		known bool
	}{
		{17, "NVMe", true},
		{11, "SATA", true},
		{7, "USB", true},
		{1, "SCSI", true},
		{0, "Unknown (0)", false},
		{8, "Unknown (8)", false},
		{0xffffffff, "Unknown (4294967295)", false},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			bus := BusType(tt.code)
			assert.Equal(t, tt.want, bus.String())
			assert.Equal(t, tt.known, bus.Known())
			assert.Equal(t, tt.code, uint32(bus), "raw code must survive decoding")
		})
	}
}

func TestElementHealth(t *testing.T) {
	tests := []struct {
		code  uint8
		want  string
		known bool
	}{
		{0, "Healthy", true},
		{1, "Warning", true},
		{2, "Critical", true},
		{3, "Unknown (3)", false},
		{255, "Unknown (255)", false},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			health := ElementHealth(tt.code)
			assert.Equal(t, tt.want, health.String())
			assert.Equal(t, tt.known, health.Known())
			assert.Equal(t, tt.code, uint8(health))
		})
	}
}

func TestDeviceType(t *testing.T) {
	assert.Equal(t, "Direct Access (HDD/SSD)", DeviceType(0).String())
	assert.Equal(t, "Sequential Access (Tape)", DeviceType(1).String())
	assert.Equal(t, "CD/DVD-ROM", DeviceType(5).String())
	assert.Equal(t, "Unknown (14)", DeviceType(14).String())
	assert.False(t, DeviceType(14).Known())
}
