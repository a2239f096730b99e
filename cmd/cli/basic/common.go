package basic

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/jpnorenam/disk-health/cmd/cli/common"
	"github.com/jpnorenam/disk-health/pkg/config"
	"github.com/jpnorenam/disk-health/pkg/utils"
	"github.com/spf13/cobra"
)

const groupID = "basic"

var (
	formats     = []string{"text", "yaml", "json"}
	colorModes  = []string{"auto", "always", "never"}
	probeDrives = 16
)

func Group(title string) *cobra.Group {
	return &cobra.Group{
		ID:    groupID,
		Title: title,
	}
}

// getConfigValue retrieves a single configuration value by key.
func getConfigValue(ctx *common.Context, key string) (string, error) {
	value, err := config.GetString(ctx.Config, key)
	if err != nil {
		return "", fmt.Errorf("error getting %q: %v", key, err)
	}
	return value, nil
}

// outputFormat returns the configured format after validating it
func outputFormat(ctx *common.Context) (string, error) {
	format, err := getConfigValue(ctx, config.OutputFormat)
	if err != nil {
		return "", err
	}
	if !slices.Contains(formats, format) {
		return "", fmt.Errorf("unknown format %q", format)
	}
	return format, nil
}

// applyColorMode configures fatih/color globally. In auto mode the library
// detects whether stdout is a terminal.
func applyColorMode(ctx *common.Context) error {
	mode, err := getConfigValue(ctx, config.OutputColor)
	if err != nil {
		return err
	}

	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		color.NoColor = color.NoColor || !utils.IsTerminalOutput()
	default:
		return fmt.Errorf("unknown color mode %q, expected one of %v", mode, colorModes)
	}
	return nil
}
