package dashboardcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/ui"
)

var (
	updateTitle   string
	updateTags    []string
	updateRefresh string
	updateMessage string
)

var updateCmd = &cobra.Command{
	Use:   "update <uid>",
	Short: "Update dashboard fields",
	Long: `Update top-level fields of a dashboard. The current document is
fetched, the given fields are applied, and the version is bumped.

Examples:
  grafctl dashboard update a1b2c3 --title "New Title"
  grafctl dashboard update a1b2c3 --tag prod --tag api -m "retag"
  grafctl dashboard update a1b2c3 --refresh 30s`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New dashboard title")
	updateCmd.Flags().StringArrayVar(&updateTags, "tag", nil, "Replacement tag set (repeatable)")
	updateCmd.Flags().StringVar(&updateRefresh, "refresh", "", "Refresh interval (e.g. 30s)")
	updateCmd.Flags().StringVarP(&updateMessage, "message", "m", "", "Change message")

	Cmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	updates := map[string]any{}
	if updateTitle != "" {
		updates["title"] = updateTitle
	}
	if updateTags != nil {
		updates["tags"] = updateTags
	}
	if updateRefresh != "" {
		updates["refresh"] = updateRefresh
	}
	if len(updates) == 0 {
		return fmt.Errorf("nothing to update: set --title, --tag, or --refresh")
	}

	client, _, err := shared.Client()
	if err != nil {
		return err
	}

	response, err := client.UpdateDashboard(cmd.Context(), args[0], updates, updateMessage)
	if err != nil {
		return err
	}

	ui.Successf("Dashboard %s updated to version %d", response.UID, response.Version)
	return nil
}
