package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/prompts"
	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/config"
	"github.com/grafctl/grafctl/internal/grafana"
	"github.com/grafctl/grafctl/internal/ui"
)

var datasourcesCmd = &cobra.Command{
	Use:     "datasources",
	Aliases: []string{"ds"},
	Short:   "Manage datasources in the active profile",
	Long: `Commands for the datasources known to the active profile.

Examples:
  grafctl datasources sync    Fetch datasources from Grafana and write a profile
  grafctl datasources list    List datasources in the active profile`,
}

var syncForce bool

var datasourcesSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Create or refresh a profile from the Grafana API",
	Long: `Fetch all datasources from a Grafana instance and write a connection
profile with their UIDs and ids.

Reads GRAFANA_URL and GRAFANA_API_TOKEN from the environment (a .env file
in the current directory is honored) and prompts for whichever is missing.
With GRAFANA_ENV set, the profile is written to ~/.grafctl/config-<env>.json
instead of config.json.

Examples:
  export GRAFANA_URL="http://grafana.example.com"
  export GRAFANA_API_TOKEN="<token>"
  grafctl datasources sync

  GRAFANA_ENV=prod grafctl datasources sync`,
	RunE: runDatasourcesSync,
}

var datasourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List datasources in the active profile",
	RunE:  runDatasourcesList,
}

func init() {
	datasourcesSyncCmd.Flags().BoolVarP(&syncForce, "force", "f", false,
		"Overwrite an existing profile without asking")

	datasourcesCmd.AddCommand(datasourcesSyncCmd)
	datasourcesCmd.AddCommand(datasourcesListCmd)
}

func runDatasourcesSync(cmd *cobra.Command, args []string) error {
	// A .env in the working directory is a convenience, not a requirement
	if err := godotenv.Load(); err == nil {
		ui.Debug("loaded .env from working directory")
	}

	grafanaURL := strings.TrimRight(os.Getenv("GRAFANA_URL"), "/")
	if grafanaURL == "" {
		entered, err := prompts.Text("Grafana URL", "http://localhost:3000")
		if err != nil {
			return fmt.Errorf("GRAFANA_URL environment variable not set\n\nSet it with: export GRAFANA_URL=<url>")
		}
		grafanaURL = strings.TrimRight(entered, "/")
	}
	apiToken := os.Getenv("GRAFANA_API_TOKEN")
	if apiToken == "" {
		entered, err := prompts.Secret("Grafana API token")
		if err != nil || entered == "" {
			return fmt.Errorf("GRAFANA_API_TOKEN environment variable not set\n\nSet it with: export GRAFANA_API_TOKEN=<token>")
		}
		apiToken = entered
	}

	targetPath, err := syncTargetPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(targetPath); err == nil && !syncForce {
		overwrite, err := prompts.Confirm(fmt.Sprintf("Profile %s exists, overwrite?", targetPath), true)
		if err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("aborted")
		}
	}

	ui.Infof("Fetching datasources from %s", grafanaURL)

	client := grafana.NewClient(grafanaURL, apiToken)
	datasources, err := client.ListDatasources(cmd.Context())
	if err != nil {
		return describeSyncError(err, grafanaURL)
	}

	if len(datasources) == 0 {
		return fmt.Errorf("no datasources found on %s", grafanaURL)
	}

	profile := buildProfile(grafanaURL, apiToken, datasources)

	for _, ds := range datasources {
		marker := ""
		if ds.IsDefault {
			marker = " [DEFAULT]"
		}
		ui.Step("%s (type: %s, uid: %s)%s", ds.Name, ds.Type, ds.UID, marker)
	}

	if profile.DefaultDatasource == "" {
		ui.Warnf("No default datasource found; queries must name a datasource explicitly")
	}

	if err := config.SaveProfile(profile, targetPath); err != nil {
		return err
	}

	ui.Successf("Profile saved to %s (mode 0600)", targetPath)
	if env := os.Getenv(config.EnvProfile); env != "" {
		fmt.Printf("\nTo use this profile later: export %s=%s\n", config.EnvProfile, env)
	}

	return nil
}

// syncTargetPath decides where sync writes the profile: the --profile-file
// flag wins, then GRAFANA_ENV picks the file name under the grafctl home
func syncTargetPath() (string, error) {
	if profileFile != "" {
		return filepath.Abs(profileFile)
	}

	home, err := config.GetGrafctlHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, config.ProfileFileName(os.Getenv(config.EnvProfile))), nil
}

func buildProfile(grafanaURL, apiToken string, datasources []grafana.DatasourceInfo) *config.Profile {
	profile := &config.Profile{
		GrafanaURL:  grafanaURL,
		APIToken:    apiToken,
		Datasources: map[string]config.Datasource{},
	}

	for _, ds := range datasources {
		if ds.Name == "" || ds.UID == "" {
			continue
		}

		profile.Datasources[ds.Name] = config.Datasource{
			UID:       ds.UID,
			ID:        ds.ID,
			IsDefault: ds.IsDefault,
		}

		if ds.IsDefault {
			profile.DefaultDatasource = ds.Name
		}
	}

	return profile
}

func describeSyncError(err error, grafanaURL string) error {
	var apiErr *grafana.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 401:
			return fmt.Errorf("invalid API token, check GRAFANA_API_TOKEN: %w", err)
		case 403:
			return fmt.Errorf("access denied, the API token may lack permissions: %w", err)
		}
		return err
	}
	return fmt.Errorf("could not connect to Grafana at %s: %w", grafanaURL, err)
}

func runDatasourcesList(cmd *cobra.Command, args []string) error {
	profile, err := shared.Profile()
	if err != nil {
		return err
	}

	if len(profile.Datasources) == 0 {
		fmt.Println("No datasources in profile")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Name", "UID", "ID", "Default"})

	for _, name := range profile.DatasourceNames() {
		ds := profile.Datasources[name]
		def := ""
		if ds.IsDefault {
			def = "yes"
		}
		t.AppendRow(table.Row{name, ds.UID, ds.ID, def})
	}

	t.Render()
	return nil
}
