package basic

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/jpnorenam/disk-health/cmd/cli/common"
	"github.com/jpnorenam/disk-health/pkg/config"
	"github.com/jpnorenam/disk-health/pkg/hardware_info"
	"github.com/jpnorenam/disk-health/pkg/types"
	"github.com/jpnorenam/disk-health/pkg/utils"
	"github.com/spf13/cobra"
)

type checkCommand struct {
	*common.Context

	// flags
	drive             string
	format            string
	color             string
	selectDrive       bool
	skipElementStatus bool
}

func CheckCommand(ctx *common.Context) *cobra.Command {
	var cmd checkCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:   "check",
		Short: "Check the health of a physical drive",
		Long: "Query the device, adapter, device identifier and physical element status\n" +
			"properties of a physical drive and print a report.\n\n" +
			"Properties the drive does not support are reported as notices.",
		GroupID:           groupID,
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		PreRunE:           cmd.applyFlags,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVarP(&cmd.drive, "drive", "d", "", `device path of the drive, e.g. \\.\PhysicalDrive1`)
	cobraCmd.Flags().StringVar(&cmd.format, "format", "", "output format: text, yaml or json")
	cobraCmd.Flags().StringVar(&cmd.color, "color", "", "colorize text output: auto, always or never")
	cobraCmd.Flags().BoolVar(&cmd.selectDrive, "select", false, "pick the drive interactively")
	cobraCmd.Flags().BoolVar(&cmd.skipElementStatus, "skip-element-status", false, "skip the physical element status query")

	return cobraCmd
}

// applyFlags stores explicitly set flags as user configuration, overriding
// package defaults and the environment
func (cmd *checkCommand) applyFlags(cobraCmd *cobra.Command, _ []string) error {
	overrides := []struct {
		flag, key, value string
	}{
		{"drive", config.DrivePath, cmd.drive},
		{"format", config.OutputFormat, cmd.format},
		{"color", config.OutputColor, cmd.color},
		{"skip-element-status", config.QueryElementStatus, fmt.Sprint(!cmd.skipElementStatus)},
	}

	for _, o := range overrides {
		if !cobraCmd.Flags().Changed(o.flag) {
			continue
		}
		if err := cmd.Config.Set(o.key, o.value, config.UserConfig); err != nil {
			return fmt.Errorf("error setting %q: %v", o.key, err)
		}
	}
	return nil
}

func (cmd *checkCommand) run(cobraCmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd.Context)
	if err != nil {
		return err
	}
	if err := applyColorMode(cmd.Context); err != nil {
		return err
	}

	drivePath, err := getConfigValue(cmd.Context, config.DrivePath)
	if err != nil {
		return err
	}
	if cmd.selectDrive {
		drivePath, err = cmd.pickDrive(drivePath)
		if err != nil {
			return err
		}
	}

	queryElementStatus, err := config.GetBool(cmd.Config, config.QueryElementStatus)
	if err != nil {
		return err
	}

	out := cobraCmd.OutOrStdout()
	if format == "text" {
		color.New(color.FgHiGreen, color.Bold).Fprintln(out, "Starting Disk Health Check...")
	}

	health, err := cmd.check(drivePath, queryElementStatus)
	if err != nil {
		if hint := common.OpenFailureHint(err, cobraCmd.Root().Name()); hint != "" {
			fmt.Fprintln(cobraCmd.ErrOrStderr(), hint)
		}
		return err
	}

	return renderReport(out, health, format)
}

func (cmd *checkCommand) check(drivePath string, queryElementStatus bool) (*types.DiskHealth, error) {
	if utils.IsTerminalOutput() && !cmd.Verbose {
		stopProgress := common.StartProgressSpinner("Querying " + drivePath)
		defer stopProgress()
	}

	return hardware_info.Get(cmd.Open, drivePath, hardware_info.Options{
		SkipElementStatus: !queryElementStatus,
		Verbose:           cmd.Verbose,
	})
}

// pickDrive offers the drives that can be opened, preselecting current
func (cmd *checkCommand) pickDrive(current string) (string, error) {
	stopProgress := common.StartProgressSpinner("Looking for drives")
	drives := hardware_info.ProbeDrives(cmd.Open, probeDrives)
	stopProgress()

	if len(drives) == 0 {
		return "", fmt.Errorf("no drives found")
	}

	options := make([]huh.Option[string], len(drives))
	for i, drive := range drives {
		options[i] = huh.NewOption(drive, drive)
	}

	selected := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a drive to check").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("no drive selected: %w", err)
	}

	return selected, nil
}
