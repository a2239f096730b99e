package basic

import (
	"bytes"
	"syscall"
	"testing"

	"github.com/jpnorenam/disk-health/cmd/cli/common"
	"github.com/jpnorenam/disk-health/pkg/config"
	"github.com/jpnorenam/disk-health/pkg/ioctl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFlagsOverrideConfig(t *testing.T) {
	m := ioctl.NewMockHandle()
	var opened []string
	ctx := &common.Context{
		Config: config.NewConfig(),
		Open: func(path string) (ioctl.Handle, error) {
			opened = append(opened, path)
			return m, nil
		},
	}

	cmd := CheckCommand(ctx)
	cmd.SetArgs([]string{`--drive=\\.\PhysicalDrive3`, "--format=json", "--color=never", "--skip-element-status"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, []string{`\\.\PhysicalDrive3`}, opened)
	assert.NotContains(t, m.Calls, ioctl.PhysicalElementStatus)
	assert.Len(t, m.Calls, 3)
	assert.Equal(t, 1, m.CloseCalls)

	format, err := config.GetString(ctx.Config, config.OutputFormat)
	require.NoError(t, err)
	assert.Equal(t, "json", format)
}

func TestCheckDefaults(t *testing.T) {
	m := ioctl.NewMockHandle()
	var opened string
	ctx := &common.Context{
		Config: config.NewConfig(),
		Open: func(path string) (ioctl.Handle, error) {
			opened = path
			return m, nil
		},
	}

	cmd := CheckCommand(ctx)
	cmd.SetArgs([]string{"--color=never"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, `\\.\PhysicalDrive0`, opened)
	assert.Contains(t, m.Calls, ioctl.PhysicalElementStatus)
}

func TestCheckOpenFails(t *testing.T) {
	ctx := &common.Context{
		Config: config.NewConfig(),
		Open:   ioctl.FailingOpener(syscall.Errno(5)),
	}

	cmd := CheckCommand(ctx)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--format=text", "--color=never"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	err := cmd.Execute()

	var handleErr *ioctl.HandleError
	assert.ErrorAs(t, err, &handleErr)

	// No section or header is printed for a drive that could not be opened
	assert.NotContains(t, out.String(), "►")
	assert.NotContains(t, out.String(), "=== Storage Device Information ===")
	assert.NotContains(t, out.String(), "⚠")
}

func TestCheckWritesReportToCommandOutput(t *testing.T) {
	m := ioctl.NewMockHandle()
	m.Responses[ioctl.AdapterProperty] = make([]byte, 32)
	ctx := &common.Context{Config: config.NewConfig(), Open: m.Opener()}

	cmd := CheckCommand(ctx)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format=text", "--color=never"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Starting Disk Health Check...")
	assert.Contains(t, out.String(), "► Adapter Properties:")
	assert.Contains(t, out.String(), "⚠ Device Property not supported on this drive")
}

func TestCheckInvalidFormat(t *testing.T) {
	m := ioctl.NewMockHandle()
	ctx := &common.Context{Config: config.NewConfig(), Open: m.Opener()}

	cmd := CheckCommand(ctx)
	cmd.SetArgs([]string{"--format=xml"})
	cmd.SilenceErrors = true
	assert.ErrorContains(t, cmd.Execute(), `unknown format "xml"`)
	assert.Empty(t, m.Calls, "nothing is queried with an invalid format")
}
