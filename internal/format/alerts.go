package format

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/grafctl/grafctl/internal/grafana"
)

// AlertList renders alert rules as a table. Detailed adds panel and
// message columns.
func AlertList(w io.Writer, alerts []grafana.Alert, detailed bool) {
	if len(alerts) == 0 {
		fmt.Fprintln(w, "No alerts found")
		return
	}

	t := newTable(w)
	if detailed {
		t.AppendHeader(table.Row{"ID", "Name", "State", "Dashboard", "Panel", "Message"})
	} else {
		t.AppendHeader(table.Row{"ID", "Name", "State", "Dashboard"})
	}

	for _, alert := range alerts {
		if detailed {
			t.AppendRow(table.Row{
				alert.ID, truncate(alert.Name, 40), alert.State,
				alert.DashboardSlug, alert.PanelID, truncate(alert.Message, 50),
			})
		} else {
			t.AppendRow(table.Row{alert.ID, truncate(alert.Name, 40), alert.State, alert.DashboardSlug})
		}
	}

	t.Render()
}

// AlertHistory renders alert state transitions, newest first as returned
// by the annotations API
func AlertHistory(w io.Writer, events []grafana.AlertEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No alert history found")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"When", "Alert", "State", "Message"})

	for _, event := range events {
		when := humanize.Time(time.UnixMilli(event.Time))
		t.AppendRow(table.Row{when, truncate(event.AlertName, 40), event.NewState, truncate(event.Text, 50)})
	}

	t.Render()
}

// AlertSummary renders per-state alert counts
func AlertSummary(w io.Writer, summary grafana.AlertSummary) {
	fmt.Fprintln(w, "Alert Summary:")
	fmt.Fprintf(w, "  Total:    %d\n", summary.Total)
	fmt.Fprintf(w, "  Alerting: %d\n", summary.Alerting)
	fmt.Fprintf(w, "  OK:       %d\n", summary.OK)
	fmt.Fprintf(w, "  Paused:   %d\n", summary.Paused)
	fmt.Fprintf(w, "  Pending:  %d\n", summary.Pending)
	fmt.Fprintf(w, "  No Data:  %d\n", summary.NoData)
}
