package alertcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/format"
	"github.com/grafctl/grafctl/internal/grafana"
	"github.com/grafctl/grafctl/internal/ui"
)

var (
	listState        string
	listDashboardUID string
	listDetailed     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List alert rules",
	Long: `List alert rules, optionally filtered by state or dashboard.

Valid states: alerting, ok, paused, pending, no_data.

Examples:
  grafctl alert list
  grafctl alert list --state alerting
  grafctl alert list --dashboard-uid abc123 --detailed`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listState, "state", "s", "", "Filter by alert state")
	listCmd.Flags().StringVarP(&listDashboardUID, "dashboard-uid", "d", "", "Filter by dashboard UID")
	listCmd.Flags().BoolVar(&listDetailed, "detailed", false, "Show message and evaluation columns")

	Cmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if err := validateState(listState); err != nil {
		return err
	}

	client, _, err := shared.Client()
	if err != nil {
		return err
	}

	var alerts []grafana.Alert
	if listDashboardUID != "" {
		alerts, err = client.AlertsByDashboard(cmd.Context(), listDashboardUID)
		if err != nil {
			return err
		}
		alerts = filterByState(alerts, listState)
	} else {
		alerts, err = client.ListAlerts(cmd.Context(), listState)
		if err != nil {
			return err
		}
	}

	if len(alerts) == 0 {
		ui.Infof("No alerts found")
		return nil
	}

	format.AlertList(os.Stdout, alerts, listDetailed)
	return nil
}

func validateState(state string) error {
	switch state {
	case "", grafana.StateAlerting, grafana.StateOK, grafana.StatePaused,
		grafana.StatePending, grafana.StateNoData:
		return nil
	}
	return fmt.Errorf("invalid state %q (valid: alerting, ok, paused, pending, no_data)", state)
}

func filterByState(alerts []grafana.Alert, state string) []grafana.Alert {
	if state == "" {
		return alerts
	}
	filtered := make([]grafana.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if alert.State == state {
			filtered = append(filtered, alert)
		}
	}
	return filtered
}
