package configcmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/config"
)

var showCmd = &cobra.Command{
	Use:   "show [profile]",
	Short: "Show grafctl configuration",
	Long: `Show the global grafctl configuration and the active profile.

With a profile name argument, that profile is shown instead of the active
one (prod means ~/.grafctl/config-prod.json).

The profile's API token is never printed.

Examples:
  grafctl config show
  grafctl config show prod`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		named := ""
		if len(args) > 0 {
			named = args[0]
		}
		return showSetupInfo(named)
	},
}

func init() {
	Cmd.AddCommand(showCmd)
}

func showSetupInfo(namedProfile string) error {
	resolver := shared.Resolver
	if resolver == nil {
		return fmt.Errorf("config not initialized")
	}

	globalConfigPath, _ := config.GetGlobalConfigPath()

	var profilePath string
	var err error
	if namedProfile != "" {
		home, err := config.GetGrafctlHome()
		if err != nil {
			return err
		}
		profilePath = filepath.Join(home, config.ProfileFileName(namedProfile))
	} else {
		profilePath, err = resolver.ResolveProfilePath()
		if err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Println("  grafctl Configuration")
	fmt.Println("  " + strings.Repeat("─", 40))
	fmt.Println()
	fmt.Printf("  Global config:  %s\n", globalConfigPath)
	fmt.Printf("  Active profile: %s\n", profilePath)
	fmt.Println()

	if gc := resolver.GlobalConfig; gc != nil {
		fmt.Println("  Global Settings")
		fmt.Println("  " + strings.Repeat("─", 40))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Setting", "Value"})

		if gc.DefaultProfile != "" {
			t.AppendRow(table.Row{"default_profile", gc.DefaultProfile})
		}
		t.AppendRow(table.Row{"http.timeout_seconds", gc.HTTP.TimeoutSeconds})
		t.AppendRow(table.Row{"http.max_retries", gc.HTTP.MaxRetries})
		if gc.Backup.Bucket != "" {
			t.AppendRow(table.Row{"backup.bucket", gc.Backup.Bucket})
		}
		t.AppendRow(table.Row{"backup.prefix", gc.Backup.Prefix})
		t.AppendRow(table.Row{"backup.region", gc.Backup.Region})
		if gc.Backup.Endpoint != "" {
			t.AppendRow(table.Row{"backup.endpoint", gc.Backup.Endpoint})
		}

		t.Render()
		fmt.Println()
	}

	// The profile may not exist yet; that is fine for show
	var profile *config.Profile
	if namedProfile != "" {
		profile, err = config.LoadProfile(profilePath)
	} else {
		profile, err = shared.Profile()
	}
	if err != nil {
		fmt.Println("  No profile loaded. Run 'grafctl datasources sync' to create one.")
		fmt.Println()
		return nil
	}

	fmt.Println("  Active Profile")
	fmt.Println("  " + strings.Repeat("─", 40))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Setting", "Value"})
	t.AppendRow(table.Row{"grafana_url", profile.GrafanaURL})
	t.AppendRow(table.Row{"api_token", "(hidden)"})
	if profile.DefaultDatasource != "" {
		t.AppendRow(table.Row{"default_datasource", profile.DefaultDatasource})
	}
	t.AppendRow(table.Row{"datasources", strings.Join(profile.DatasourceNames(), ", ")})
	t.Render()
	fmt.Println()

	return nil
}
