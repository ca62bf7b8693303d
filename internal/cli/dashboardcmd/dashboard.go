package dashboardcmd

import "github.com/spf13/cobra"

// Cmd is the parent command for dashboard operations
var Cmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Manage Grafana dashboards",
	Long: `Commands for listing, inspecting, and changing Grafana dashboards.

Examples:
  grafctl dashboard list
  grafctl dashboard search "API Gateway"
  grafctl dashboard get a1b2c3
  grafctl dashboard export a1b2c3 dashboard.json
  grafctl dashboard backup --bucket my-backups`,
}
