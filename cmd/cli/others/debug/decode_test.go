package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jpnorenam/disk-health/cmd/cli/common"
	"github.com/jpnorenam/disk-health/pkg/hardware_info/disk"
	"github.com/jpnorenam/disk-health/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const machinesDir = "../../../../test_data/machines"

func TestDecodeHexElementStatus(t *testing.T) {
	input := "# element status\n" +
		"28 00 00 00 28 00 00 00\n" +
		"03 00 00 00 01 02 00 00\n"

	result, err := decode(types.SectionElementStatus, []byte(input), true)
	require.NoError(t, err)

	status, ok := result.(*types.ElementStatus)
	require.True(t, ok)
	assert.Equal(t, uint32(3), status.ElementIdentifier)
	assert.Equal(t, types.HealthCritical, status.Health)
	assert.True(t, status.Partial, "declared size is larger than the input")
}

func TestDecodeErrors(t *testing.T) {
	_, err := decode("smart", nil, false)
	assert.ErrorContains(t, err, `unknown property "smart"`)

	_, err = decode(types.SectionAdapter, []byte("0g"), true)
	assert.ErrorContains(t, err, "error decoding hex input")

	_, err = decode(types.SectionAdapter, make([]byte, 8), false)
	assert.ErrorIs(t, err, disk.ErrTruncated)
}

func TestDecodeCommand(t *testing.T) {
	cmd := DecodeCommand(&common.Context{})

	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("0c 00 00 00 0c 00 00 00 02 00 00 00"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--property=device-id", "--hex", "--format=json"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), `"number-of-identifiers": 2`)
}

func TestValidateCaptures(t *testing.T) {
	cmd := ValidateCommand(&common.Context{})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		machinesDir + "/nvme-workstation/device.hex",
		machinesDir + "/nvme-workstation/element-status.hex",
	})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, 2, strings.Count(out.String(), "✅"))

	// Captured from a drive that answers with a bare header
	out.Reset()
	cmd.SetArgs([]string{machinesDir + "/usb-stick/device-id.hex"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	assert.Error(t, cmd.Execute())
	assert.Contains(t, out.String(), "❌")
}
