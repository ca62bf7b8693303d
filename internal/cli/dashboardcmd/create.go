package dashboardcmd

import (
	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/grafana"
	"github.com/grafctl/grafctl/internal/ui"
)

var (
	createTitle     string
	createTags      []string
	createFolderID  int64
	createOverwrite bool
	createMessage   string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an empty dashboard",
	Long: `Create a new dashboard with a minimal panel-less skeleton.

Examples:
  grafctl dashboard create --title "My Dashboard"
  grafctl dashboard create --title "My Dashboard" --tag monitoring --tag prod --folder-id 3`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "Dashboard title (required)")
	createCmd.Flags().StringArrayVar(&createTags, "tag", nil, "Dashboard tag (repeatable)")
	createCmd.Flags().Int64Var(&createFolderID, "folder-id", 0, "Folder id (0 for General)")
	createCmd.Flags().BoolVar(&createOverwrite, "overwrite", false, "Overwrite an existing dashboard with the same title")
	createCmd.Flags().StringVarP(&createMessage, "message", "m", "", "Change message")
	createCmd.MarkFlagRequired("title")

	Cmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	client, _, err := shared.Client()
	if err != nil {
		return err
	}

	response, err := client.CreateDashboard(cmd.Context(), grafana.CreateDashboardOptions{
		Title:     createTitle,
		Tags:      createTags,
		FolderID:  createFolderID,
		Overwrite: createOverwrite,
		Message:   createMessage,
	})
	if err != nil {
		return err
	}

	ui.Successf("Dashboard created: uid %s, url %s", response.UID, response.URL)
	return nil
}
