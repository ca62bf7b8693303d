package alertcmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/format"
	"github.com/grafctl/grafctl/internal/grafana"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show alert counts by state",
	RunE:  runSummary,
}

func init() {
	Cmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	client, _, err := shared.Client()
	if err != nil {
		return err
	}

	alerts, err := client.ListAlerts(cmd.Context(), "")
	if err != nil {
		return err
	}

	format.AlertSummary(os.Stdout, grafana.SummarizeAlerts(alerts))
	return nil
}
