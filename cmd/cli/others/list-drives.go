package others

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jpnorenam/disk-health/cmd/cli/common"
	"github.com/jpnorenam/disk-health/pkg/hardware_info"
	"github.com/jpnorenam/disk-health/pkg/hardware_info/disk"
	"github.com/jpnorenam/disk-health/pkg/types"
	"github.com/jpnorenam/disk-health/pkg/utils"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

const unknownField = "-"

type listDrivesCommand struct {
	*common.Context

	// flags
	max int
}

func ListDrivesCommand(ctx *common.Context) *cobra.Command {
	var cmd listDrivesCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "list-drives",
		Short:             "List the physical drives that can be opened",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().IntVar(&cmd.max, "max", 16, "number of drive paths to probe")

	return cobraCmd
}

func (cmd *listDrivesCommand) run(_ *cobra.Command, _ []string) error {
	stopProgress := func() {}
	if !cmd.Verbose {
		stopProgress = common.StartProgressSpinner("Looking for drives")
	}
	drives := hardware_info.ProbeDrives(cmd.Open, cmd.max)
	rows := cmd.driveRows(drives)
	stopProgress()

	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "No drives found.")
		if !utils.IsElevated() {
			fmt.Fprintln(os.Stderr, common.SuggestElevatedPrompt())
		}
		return nil
	}

	err := printDrivesTable(os.Stdout, rows)
	if err != nil {
		return fmt.Errorf("error printing list: %v", err)
	}

	return nil
}

// driveRows queries the device property of each drive. A drive that opens
// but does not answer is listed with unknown fields.
func (cmd *listDrivesCommand) driveRows(drives []string) [][]string {
	var rows [][]string
	for _, drive := range drives {
		row := []string{drive, unknownField, unknownField, unknownField}

		device, err := cmd.deviceInfo(drive)
		if err != nil {
			if cmd.Verbose {
				log.Printf("%s: %v", drive, err)
			}
		} else {
			row[1] = device.BusType.String()
			row[2] = model(device)
			if device.SerialNumber != nil && *device.SerialNumber != "" {
				row[3] = *device.SerialNumber
			}
		}

		rows = append(rows, row)
	}
	return rows
}

func (cmd *listDrivesCommand) deviceInfo(drive string) (*types.DeviceDescriptor, error) {
	h, err := cmd.Open(drive)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = h.Close()
	}()

	return disk.DeviceInfo(h)
}

// model joins vendor and product, either of which may be absent
func model(device *types.DeviceDescriptor) string {
	var parts []string
	for _, s := range []*string{device.Vendor, device.Product} {
		if s != nil && *s != "" {
			parts = append(parts, *s)
		}
	}
	if len(parts) == 0 {
		return unknownField
	}
	return strings.Join(parts, " ")
}

func printDrivesTable(w io.Writer, rows [][]string) error {
	options := []tablewriter.Option{
		tablewriter.WithRenderer(renderer.NewColorized(renderer.ColorizedConfig{
			Header: renderer.Tint{
				FG: renderer.Colors{color.Bold}, // Bold headers
			},
			Column: renderer.Tint{
				FG: renderer.Colors{color.Reset},
				BG: renderer.Colors{color.Reset},
			},
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off, ShowFooter: tw.Off, BetweenRows: tw.Off, BetweenColumns: tw.Off},
				Lines: tw.Lines{
					ShowTop:        tw.Off,
					ShowBottom:     tw.Off,
					ShowHeaderLine: tw.Off,
					ShowFooterLine: tw.Off,
				},
				CompactMode: tw.On,
			},
		})),
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
	}

	table := tablewriter.NewTable(w, options...)
	table.Header([]string{"drive", "bus", "model", "serial"})
	err := table.Bulk(rows)
	if err != nil {
		return fmt.Errorf("error adding data to table: %v", err)
	}
	err = table.Render()
	if err != nil {
		return fmt.Errorf("error rendering table: %v", err)
	}
	return nil
}
