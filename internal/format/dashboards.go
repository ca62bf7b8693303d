package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/grafctl/grafctl/internal/grafana"
)

// DashboardList renders dashboard search results as a table
func DashboardList(w io.Writer, hits []grafana.DashboardHit) {
	if len(hits) == 0 {
		fmt.Fprintln(w, "No dashboards found")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Title", "UID", "Tags", "Folder", "URL"})

	for _, hit := range hits {
		tags := strings.Join(hit.Tags, ", ")
		if tags == "" {
			tags = "none"
		}
		folder := hit.FolderTitle
		if folder == "" {
			folder = "General"
		}
		t.AppendRow(table.Row{truncate(hit.Title, 40), hit.UID, tags, folder, hit.URL})
	}

	t.Render()
}

// PermissionList renders dashboard permissions as a table
func PermissionList(w io.Writer, permissions []grafana.Permission) {
	if len(permissions) == 0 {
		fmt.Fprintln(w, "No permissions found")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Role", "User", "Team", "Permission"})

	for _, p := range permissions {
		t.AppendRow(table.Row{p.Role, p.UserLogin, p.Team, p.PermissionName})
	}

	t.Render()
}
