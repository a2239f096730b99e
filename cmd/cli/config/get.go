package config

import (
	"fmt"
	"io"
	"os"

	"github.com/jpnorenam/disk-health/cmd/cli/common"
	"github.com/jpnorenam/disk-health/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type getCommand struct {
	*common.Context
	out io.Writer
}

func GetCommand(ctx *common.Context) *cobra.Command {
	var cmd getCommand
	cmd.Context = ctx
	cmd.out = os.Stdout

	cobraCmd := &cobra.Command{
		Use:   "get [<key>]",
		Short: "Print configurations",
		Long: "Print one or more effective configurations.\n\n" +
			"Values set with --set override the environment, which overrides the defaults.\n" +
			"Each key can be set in the environment as " + config.EnvPrefix + "<KEY>, e.g. " + config.EnvVar(config.DrivePath) + ".",
		GroupID:           groupID,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	return cobraCmd
}

func (cmd *getCommand) run(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.getValues()
	} else {
		return cmd.getValue(args[0])
	}
}

func (cmd *getCommand) getValue(key string) error {
	value, err := cmd.Config.Get(key)
	if err != nil {
		return fmt.Errorf("error getting value of %q: %v", key, err)
	}

	if len(value) == 0 {
		return fmt.Errorf("no value set for key %q", key)
	}

	if v, found := value[key]; found && len(value) == 1 {
		fmt.Fprintln(cmd.out, v)
	} else {
		// print as yaml
		yamlOutput, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("error serializing value: %v", err)
		}
		fmt.Fprintf(cmd.out, "%s", yamlOutput) // the yaml output ends with a newline
	}

	return nil
}

func (cmd *getCommand) getValues() error {
	values, err := cmd.Config.GetAll()
	if err != nil {
		return fmt.Errorf("error getting values: %v", err)
	}

	// print config value
	yamlOutput, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("error serializing values: %v", err)
	}
	fmt.Fprintf(cmd.out, "%s", yamlOutput) // the yaml output ends with a newline

	return nil
}
