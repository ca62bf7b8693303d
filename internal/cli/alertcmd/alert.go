// Package alertcmd provides the alert command group for inspecting and
// managing legacy Grafana alert rules.
package alertcmd

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for alert operations
var Cmd = &cobra.Command{
	Use:   "alert",
	Short: "Inspect and manage Grafana alerts",
	Long: `Inspect and manage legacy Grafana alert rules.

Covers listing alerts by state, fetching rule details, pausing and
resuming rules, reviewing state change history, and a per-state summary.`,
}
