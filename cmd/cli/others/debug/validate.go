package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpnorenam/disk-health/cmd/cli/common"
	"github.com/spf13/cobra"
)

const fixtureExt = ".hex"

type validateCommand struct {
	*common.Context
}

func ValidateCommand(ctx *common.Context) *cobra.Command {
	var cmd validateCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "validate-captures <file>...",
		Short:             "Validate captured property responses",
		Long:              "Check that hex captures named <property>.hex decode without errors",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	return cobraCmd
}

func (cmd *validateCommand) run(cobraCmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no capture specified")
	}

	out := cobraCmd.OutOrStdout()
	allCapturesValid := true
	for _, capturePath := range args {
		err := validateCapture(capturePath)
		if err != nil {
			allCapturesValid = false
			fmt.Fprintf(out, "❌ %s: %s\n", capturePath, err)
		} else {
			fmt.Fprintf(out, "✅ %s\n", capturePath)
		}
	}

	if !allCapturesValid {
		return fmt.Errorf("not all captures are valid")
	}
	return nil
}

// validateCapture infers the property from the file name, e.g. device-id.hex
func validateCapture(path string) error {
	name := filepath.Base(path)
	if filepath.Ext(name) != fixtureExt {
		return fmt.Errorf("expected a %s file", fixtureExt)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	_, err = decode(strings.TrimSuffix(name, fixtureExt), data, true)
	return err
}
