package dashboardcmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/format"
	"github.com/grafctl/grafctl/internal/grafana"
)

var (
	listQuery   string
	listTag     string
	listStarred bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List dashboards",
	Long: `List dashboards, optionally filtered by title, tag, or starred state.

Examples:
  grafctl dashboard list
  grafctl dashboard list --tag prod
  grafctl dashboard list --query gateway --starred`,
	RunE: runList,
}

var searchCmd = &cobra.Command{
	Use:   "search <title>",
	Short: "Search dashboards by title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listQuery = args[0]
		return runList(cmd, nil)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Filter by title substring")
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "Filter by tag")
	listCmd.Flags().BoolVar(&listStarred, "starred", false, "Only starred dashboards")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(searchCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	client, _, err := shared.Client()
	if err != nil {
		return err
	}

	hits, err := client.SearchDashboards(cmd.Context(), grafana.SearchOptions{
		Query:   listQuery,
		Tag:     listTag,
		Starred: listStarred,
	})
	if err != nil {
		return err
	}

	format.DashboardList(os.Stdout, hits)
	return nil
}
