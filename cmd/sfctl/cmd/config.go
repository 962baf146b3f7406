package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	fabric "github.com/ozanturksever/go-fabric"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings files",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a settings file with default values",
	Long: `Write a settings file with default values. The format follows the
file extension: .yaml and .yml write YAML, anything else JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "sfctl.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := fabric.WriteConfigToFile(fabric.NewDefaultFileConfig(), path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a settings file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fc, err := fabric.LoadConfigFromFile(args[0])
		if err != nil {
			return err
		}
		if err := fc.Validate(); err != nil {
			return fmt.Errorf("invalid settings: %w", err)
		}
		fc.ApplyDefaults()
		if jsonOutput() {
			return printJSON(fc)
		}
		fmt.Printf("%s is valid\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configValidateCmd)
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
}
