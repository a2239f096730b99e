package config

import (
	"bytes"
	"testing"

	"github.com/jpnorenam/disk-health/cmd/cli/common"
	"github.com/jpnorenam/disk-health/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValues(t *testing.T) {
	cfg := config.NewConfig()

	err := SetValues(cfg, []string{`drive.path=\\.\PhysicalDrive1`, "output.format=json"})
	require.NoError(t, err)

	path, err := config.GetString(cfg, config.DrivePath)
	require.NoError(t, err)
	assert.Equal(t, `\\.\PhysicalDrive1`, path)

	assert.ErrorContains(t, SetValues(cfg, []string{"=json"}), "key must not be empty")
	assert.ErrorContains(t, SetValues(cfg, []string{"output.format"}), "expected key=value")
	assert.ErrorContains(t, SetValues(cfg, []string{"drive.letter=C"}), "unknown key")
}

func TestGet(t *testing.T) {
	cfg := config.NewConfig()
	require.NoError(t, SetValues(cfg, []string{"output.color=never"}))

	var out bytes.Buffer
	cmd := getCommand{Context: &common.Context{Config: cfg}, out: &out}

	require.NoError(t, cmd.getValue("output.color"))
	assert.Equal(t, "never\n", out.String())

	out.Reset()
	require.NoError(t, cmd.getValue("output"))
	assert.Contains(t, out.String(), "output.color: never\n")
	assert.Contains(t, out.String(), "output.format: ")

	out.Reset()
	require.NoError(t, cmd.getValues())
	assert.Contains(t, out.String(), "query.element-status: \"true\"\n")

	assert.ErrorContains(t, cmd.getValue("nothing"), "no value set")
}
