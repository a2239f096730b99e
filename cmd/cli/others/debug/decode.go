package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/jpnorenam/disk-health/cmd/cli/common"
	"github.com/jpnorenam/disk-health/pkg/hardware_info"
	"github.com/jpnorenam/disk-health/pkg/hardware_info/disk"
	"github.com/jpnorenam/disk-health/pkg/types"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Interpreters for raw responses, by report section
var decoders = map[string]func([]byte) (any, error){
	types.SectionDevice: func(raw []byte) (any, error) {
		return disk.DeviceInfoFromRawData(raw)
	},
	types.SectionAdapter: func(raw []byte) (any, error) {
		return disk.AdapterInfoFromRawData(raw)
	},
	types.SectionDeviceId: func(raw []byte) (any, error) {
		return disk.DeviceIdInfoFromRawData(raw)
	},
	types.SectionElementStatus: func(raw []byte) (any, error) {
		return disk.ElementStatusInfoFromRawData(raw)
	},
}

func sections() []string {
	return slices.Sorted(maps.Keys(decoders))
}

type decodeCommand struct {
	*common.Context

	// flags
	property string
	hex      bool
	format   string
}

func DecodeCommand(ctx *common.Context) *cobra.Command {
	var cmd decodeCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a captured property response",
		Long: "Interpret a raw property response piped in via stdin, without accessing a drive.\n" +
			"Use --hex for hex text as stored in the test data.",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.property, "property", types.SectionDevice, fmt.Sprintf("response property, one of %v", sections()))
	cobraCmd.Flags().BoolVar(&cmd.hex, "hex", false, "input is hex text")
	cobraCmd.Flags().StringVar(&cmd.format, "format", "yaml", "output format")

	return cobraCmd
}

func (cmd *decodeCommand) run(cobraCmd *cobra.Command, _ []string) error {
	data, err := io.ReadAll(cobraCmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("error reading input: %s", err)
	}

	result, err := decode(cmd.property, data, cmd.hex)
	if err != nil {
		return err
	}

	var resultStr string
	switch cmd.format {
	case "json":
		jsonString, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %s", err)
		}
		resultStr = string(jsonString) + "\n"
	case "yaml":
		yamlString, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %s", err)
		}
		resultStr = string(yamlString)
	default:
		return fmt.Errorf("unknown format %q", cmd.format)
	}

	fmt.Fprint(cobraCmd.OutOrStdout(), resultStr)
	return nil
}

func decode(property string, data []byte, isHex bool) (any, error) {
	decoder, found := decoders[property]
	if !found {
		return nil, fmt.Errorf("unknown property %q, expected one of %v", property, sections())
	}

	raw := data
	if isHex {
		var err error
		raw, err = hardware_info.DecodeHex(string(data))
		if err != nil {
			return nil, fmt.Errorf("error decoding hex input: %s", err)
		}
	}

	result, err := decoder(raw)
	if err != nil {
		return nil, fmt.Errorf("error interpreting %s response: %w", property, err)
	}
	return result, nil
}
