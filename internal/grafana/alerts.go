package grafana

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// Alert is a legacy Grafana alert rule as reported by /api/alerts
type Alert struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	State         string `json:"state"`
	DashboardID   int64  `json:"dashboardId"`
	DashboardUID  string `json:"dashboardUid"`
	DashboardSlug string `json:"dashboardSlug"`
	PanelID       int64  `json:"panelId"`
	Message       string `json:"message"`
}

// Alert states as used by the legacy alerting API
const (
	StateAlerting = "alerting"
	StateOK       = "ok"
	StatePaused   = "paused"
	StatePending  = "pending"
	StateNoData   = "no_data"
)

// ListAlerts lists alerts, optionally filtered by state
func (c *Client) ListAlerts(ctx context.Context, state string) ([]Alert, error) {
	endpoint := "/api/alerts"
	if state != "" {
		endpoint += "?state=" + url.QueryEscape(state)
	}

	var alerts []Alert
	if err := c.get(ctx, endpoint, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// GetAlert fetches a single alert with full detail as a raw document
func (c *Client) GetAlert(ctx context.Context, id int64) (json.RawMessage, error) {
	var alert json.RawMessage
	if err := c.get(ctx, fmt.Sprintf("/api/alerts/%d", id), &alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// PauseAlert pauses or unpauses an alert
func (c *Client) PauseAlert(ctx context.Context, id int64, paused bool) error {
	payload := map[string]bool{"paused": paused}
	return c.post(ctx, fmt.Sprintf("/api/alerts/%d/pause", id), payload, nil)
}

// AlertsByDashboard returns alerts belonging to a dashboard UID
func (c *Client) AlertsByDashboard(ctx context.Context, dashboardUID string) ([]Alert, error) {
	all, err := c.ListAlerts(ctx, "")
	if err != nil {
		return nil, err
	}

	var matched []Alert
	for _, alert := range all {
		if alert.DashboardUID == dashboardUID {
			matched = append(matched, alert)
		}
	}
	return matched, nil
}

// AlertEvent is an alert state transition from the annotations API
type AlertEvent struct {
	ID          int64  `json:"id"`
	AlertID     int64  `json:"alertId"`
	AlertName   string `json:"alertName"`
	DashboardID int64  `json:"dashboardId"`
	PanelID     int64  `json:"panelId"`
	NewState    string `json:"newState"`
	PrevState   string `json:"prevState"`
	Text        string `json:"text"`
	// Time is unix milliseconds
	Time int64 `json:"time"`
}

// HistoryOptions filters an alert history query
type HistoryOptions struct {
	DashboardID int64
	PanelID     int64
	Hours       int
	Limit       int
}

// AlertHistory fetches alert state transitions from the annotations API
func (c *Client) AlertHistory(ctx context.Context, opts HistoryOptions) ([]AlertEvent, error) {
	hours := opts.Hours
	if hours <= 0 {
		hours = 24
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}

	now := time.Now()
	params := url.Values{}
	params.Set("from", fmt.Sprintf("%d", now.Add(-time.Duration(hours)*time.Hour).UnixMilli()))
	params.Set("to", fmt.Sprintf("%d", now.UnixMilli()))
	params.Set("type", "alert")
	params.Set("limit", fmt.Sprintf("%d", limit))
	if opts.DashboardID > 0 {
		params.Set("dashboardId", fmt.Sprintf("%d", opts.DashboardID))
	}
	if opts.PanelID > 0 {
		params.Set("panelId", fmt.Sprintf("%d", opts.PanelID))
	}

	var events []AlertEvent
	if err := c.get(ctx, "/api/annotations?"+params.Encode(), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// AlertSummary is a per-state count of alerts
type AlertSummary struct {
	Total    int
	Alerting int
	OK       int
	Paused   int
	Pending  int
	NoData   int
}

// SummarizeAlerts computes per-state counts. States outside the known set
// count toward Total only.
func SummarizeAlerts(alerts []Alert) AlertSummary {
	summary := AlertSummary{Total: len(alerts)}

	for _, alert := range alerts {
		switch alert.State {
		case StateAlerting:
			summary.Alerting++
		case StateOK:
			summary.OK++
		case StatePaused:
			summary.Paused++
		case StatePending:
			summary.Pending++
		case StateNoData:
			summary.NoData++
		}
	}

	return summary
}
