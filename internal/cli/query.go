package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/format"
	"github.com/grafctl/grafctl/internal/grafana"
	"github.com/grafctl/grafctl/internal/ui"
)

var (
	queryRange  string
	queryStart  string
	queryEnd    string
	queryStep   int
	queryOutput string
	queryViaDS  bool
	queryLegend string
)

var queryCmd = &cobra.Command{
	Use:   "query <datasource> <expr>",
	Short: "Run a PromQL range query through Grafana",
	Long: `Run a PromQL range query against a Prometheus datasource, routed
through the Grafana datasource proxy.

The datasource is looked up by name in the active profile. The window is
either a relative range or an absolute --start/--end pair.

Examples:
  grafctl query "Prometheus 1" 'up'
  grafctl query "Prometheus 1" 'rate(http_requests_total[5m])' --range 24h
  grafctl query "Prometheus 1" 'up' --start "2026-01-28 19:00:00" --end "2026-01-28 19:30:00"
  grafctl query "Prometheus 1" 'up' --start 1769598000 --end 1769599800
  grafctl query "Prometheus 1" 'up' --output json
  grafctl query "Prometheus 1" 'up' --ds-query   # for Grafana 7.5 compatibility`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&queryRange, "range", "r", "1h",
		"Relative time range (30s, 5m, 1h, 24h, 7d, 2w, or now-1h)")
	queryCmd.Flags().StringVar(&queryStart, "start", "",
		"Absolute start time (unix seconds, 'YYYY-MM-DD HH:MM:SS', or RFC3339)")
	queryCmd.Flags().StringVar(&queryEnd, "end", "",
		"Absolute end time (same formats as --start)")
	queryCmd.Flags().IntVar(&queryStep, "step", 15,
		"Query resolution step in seconds")
	queryCmd.Flags().StringVarP(&queryOutput, "output", "o", "table",
		"Output format: table, simple, or json")
	queryCmd.Flags().BoolVar(&queryViaDS, "ds-query", false,
		"Route through /api/ds/query instead of the datasource proxy")
	queryCmd.Flags().StringVar(&queryLegend, "legend", "",
		"Legend format for --ds-query (e.g. '{{instance}}')")
}

func runQuery(cmd *cobra.Command, args []string) error {
	datasourceName, expr := args[0], args[1]

	output, err := format.ParseOutput(queryOutput)
	if err != nil {
		return err
	}

	window, err := grafana.ResolveRange(queryRange, queryStart, queryEnd, time.Now())
	if err != nil {
		return err
	}

	client, profile, err := shared.Client()
	if err != nil {
		return err
	}

	ds, err := profile.Datasource(datasourceName)
	if err != nil {
		return err
	}

	ui.Debug("querying %s (id %d) from %s to %s step %ds",
		datasourceName, ds.ID, window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339), queryStep)

	if queryViaDS {
		result, err := client.QueryDS(cmd.Context(), grafana.DSQuery{
			DatasourceUID: ds.UID,
			DatasourceID:  ds.ID,
			Expr:          expr,
			Range:         window,
			LegendFormat:  queryLegend,
		})
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}
		return format.DSQueryResult(os.Stdout, result, output)
	}

	result, err := client.QueryRange(cmd.Context(), grafana.RangeQuery{
		DatasourceID: ds.ID,
		Expr:         expr,
		Range:        window,
		StepSeconds:  queryStep,
	})
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	return format.PrometheusResult(os.Stdout, result, output)
}
