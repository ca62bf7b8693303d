package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/alertcmd"
	"github.com/grafctl/grafctl/internal/cli/configcmd"
	"github.com/grafctl/grafctl/internal/cli/dashboardcmd"
	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/config"
	"github.com/grafctl/grafctl/internal/ui"
)

var (
	// CLI flags
	profileFile string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "grafctl",
	Short: "grafctl - Grafana operations from the command line",
	Long: `grafctl queries Prometheus datasources through Grafana, manages
dashboards and alerts, and keeps per-environment connection profiles.

Profile selection:
  1. --profile-file flag (explicit path)
  2. GRAFANA_ENV environment variable (~/.grafctl/config-<env>.json)
  3. Default: ~/.grafctl/config.json

Examples:
  grafctl datasources sync                 Create a profile from GRAFANA_URL/GRAFANA_API_TOKEN
  grafctl query "Prometheus 1" 'up'        Query the last hour
  grafctl dashboard list                   List dashboards
  grafctl alert summary                    Alert counts by state`,
	Version: "1.0.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ui.SetVerbose(verbose)

		// Skip initialization for help, version, and completion commands
		if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		shared.Resolver, err = config.NewResolver(profileFile)
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		if path, err := shared.Resolver.ResolveProfilePath(); err == nil {
			ui.Debug("Using profile: %s", path)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&profileFile, "profile-file", "p", "",
		"Path to a profile file (default: auto-detect under ~/.grafctl)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(datasourcesCmd)
	rootCmd.AddCommand(dashboardcmd.Cmd)
	rootCmd.AddCommand(alertcmd.Cmd)
	rootCmd.AddCommand(configcmd.Cmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(doctorCmd)
}

// newSetupCmd creates the setup subcommand for global configuration
func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Initialize global grafctl configuration",
		Long: `Initialize the global grafctl configuration at ~/.grafctl/config.yaml.

This is a one-time setup for your machine. To create a connection profile
for a Grafana instance, use 'grafctl datasources sync' instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitGlobalConfig(); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			configPath, _ := config.GetGlobalConfigPath()
			fmt.Printf("Global config initialized at: %s\n", configPath)
			fmt.Println("\nNext, set GRAFANA_URL and GRAFANA_API_TOKEN and run 'grafctl datasources sync'.")
			return nil
		},
	}
}
