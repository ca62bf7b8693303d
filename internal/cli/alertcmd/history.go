package alertcmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/format"
	"github.com/grafctl/grafctl/internal/grafana"
	"github.com/grafctl/grafctl/internal/ui"
)

var (
	historyDashboardID int64
	historyPanelID     int64
	historyHours       int
	historyLimit       int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show alert state change history",
	Long: `Show alert state changes recorded as annotations, newest first.

Examples:
  grafctl alert history
  grafctl alert history --hours 72
  grafctl alert history --dashboard-id 42 --panel-id 3`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int64Var(&historyDashboardID, "dashboard-id", 0, "Filter by numeric dashboard id")
	historyCmd.Flags().Int64Var(&historyPanelID, "panel-id", 0, "Filter by panel id")
	historyCmd.Flags().IntVar(&historyHours, "hours", 24, "How far back to look")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 100, "Maximum number of events")

	Cmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	client, _, err := shared.Client()
	if err != nil {
		return err
	}

	events, err := client.AlertHistory(cmd.Context(), grafana.HistoryOptions{
		DashboardID: historyDashboardID,
		PanelID:     historyPanelID,
		Hours:       historyHours,
		Limit:       historyLimit,
	})
	if err != nil {
		return err
	}

	if len(events) == 0 {
		ui.Infof("No alert events in the last %dh", historyHours)
		return nil
	}

	format.AlertHistory(os.Stdout, events)
	return nil
}
