package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testDiskHealth() DiskHealth {
	vendor := "Samsung"
	return DiskHealth{
		Drive: `\\.\PhysicalDrive0`,
		Device: &DeviceDescriptor{
			Version:    40,
			Size:       120,
			DeviceType: DeviceTypeDirectAccess,
			BusType:    BusType(42),
			Vendor:     &vendor,
		},
		ElementStatus: &ElementStatus{Health: ElementHealth(9)},
		Notices: []Notice{
			{Section: SectionAdapter, Message: "Adapter Property not supported on this drive"},
		},
	}
}

func TestDiskHealthYaml(t *testing.T) {
	health := testDiskHealth()

	out, err := yaml.Marshal(health)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "device-type: Direct Access (HDD/SSD)")
	assert.Contains(t, s, "bus-type: Unknown (42)")
	assert.Contains(t, s, "vendor: Samsung")
	assert.Contains(t, s, "health: Unknown (9)")
	assert.NotContains(t, s, "product:")
	assert.NotContains(t, s, "adapter:\n")
}

func TestDiskHealthJson(t *testing.T) {
	health := testDiskHealth()

	out, err := json.Marshal(health)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(out, &generic))

	device := generic["device"].(map[string]any)
	assert.Equal(t, "Unknown (42)", device["bus-type"])
	assert.NotContains(t, device, "serial-number")
	assert.NotContains(t, generic, "device-id")
	assert.Len(t, generic["notices"], 1)
}

func TestDiskHealthSupported(t *testing.T) {
	health := testDiskHealth()
	assert.Equal(t, 2, health.Supported())

	var empty DiskHealth
	assert.Zero(t, empty.Supported())
}
