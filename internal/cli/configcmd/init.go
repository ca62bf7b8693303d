package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/prompts"
	"github.com/grafctl/grafctl/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize global grafctl configuration",
	Long: `Initialize the global grafctl configuration at ~/.grafctl/config.yaml.

This is a one-time setup for your machine. To create a connection profile,
use 'grafctl datasources sync' instead.

Example:
  grafctl config init`,
	RunE: runConfigInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"Reset an existing config to defaults")
	Cmd.AddCommand(initCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if config.GlobalConfigExists() && initForce {
		overwrite, err := prompts.Confirm("Global config exists, reset to defaults?", false)
		if err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("aborted")
		}
		if err := config.ForceInitGlobalConfig(); err != nil {
			return fmt.Errorf("failed to reset config: %w", err)
		}
	} else if err := config.InitGlobalConfig(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	configPath, _ := config.GetGlobalConfigPath()
	fmt.Printf("Global config initialized at: %s\n", configPath)
	fmt.Println("\nYou can customize this file to set default profiles and backup targets.")
	return nil
}
