package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpnorenam/disk-health/cmd/cli/basic"
	"github.com/jpnorenam/disk-health/cmd/cli/common"
	"github.com/jpnorenam/disk-health/cmd/cli/config"
	"github.com/jpnorenam/disk-health/cmd/cli/others"
	"github.com/jpnorenam/disk-health/cmd/cli/others/debug"
	pkgconfig "github.com/jpnorenam/disk-health/pkg/config"
	"github.com/jpnorenam/disk-health/pkg/ioctl"
	"github.com/spf13/cobra"
)

func main() {
	ctx := &common.Context{
		Config: pkgconfig.NewConfig(),
		Open:   ioctl.Open,
	}

	instanceName := strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
	if instanceName == "" {
		instanceName = "disk-health"
	}

	var overrides []string

	// rootCmd is the base command
	// It gets populated with subcommands
	rootCmd := &cobra.Command{
		SilenceUsage: true,
		Long: instanceName + " reports the properties and health of a physical drive,\n" +
			"as returned by the storage driver.\n\n" +
			"Use this command to check a drive, or to list the drives that can be checked.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := persistentPreRunE(cmd, args); err != nil {
				return err
			}
			return config.SetValues(ctx.Config, overrides)
		},
		Use: instanceName,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&ctx.Verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringArrayVar(&overrides, "set", nil, "override a configuration for this run, as key=value")

	// Disable command sorting to keep commands sorted as added below
	cobra.EnableCommandSorting = false

	rootCmd.AddGroup(basic.Group("Basic Commands:"))
	rootCmd.AddCommand(
		basic.CheckCommand(ctx),
	)

	rootCmd.AddGroup(config.Group("Configuration Commands:"))
	rootCmd.AddCommand(
		config.GetCommand(ctx),
	)

	// other commands (help is added by default)
	rootCmd.AddCommand(
		others.ListDrivesCommand(ctx),
		debug.DebugCommand(ctx),
	)

	// disable logging timestamps
	log.SetFlags(0)

	// Hide the 'completion' command from help text
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	// get value of verbose flag
	verbose := cmd.Flags().Lookup("verbose").Value.String() == "true"
	if verbose {
		log.Println("Verbose output enabled globally.")
		return os.Setenv("VERBOSE", "true")
	}
	return nil
}
