package grafana

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"
)

func TestListAlerts(t *testing.T) {
	var gotState string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotState = r.URL.Query().Get("state")
		w.Write([]byte(`[
			{"id": 1, "name": "High CPU", "state": "alerting", "dashboardUid": "abc", "panelId": 2},
			{"id": 2, "name": "Disk Space", "state": "ok", "dashboardUid": "def", "panelId": 1}
		]`))
	})

	alerts, err := client.ListAlerts(context.Background(), StateAlerting)
	if err != nil {
		t.Fatalf("ListAlerts() error: %v", err)
	}

	if gotState != "alerting" {
		t.Errorf("state param = %q, want 'alerting'", gotState)
	}
	if len(alerts) != 2 {
		t.Fatalf("Expected 2 alerts, got %d", len(alerts))
	}
	if alerts[0].Name != "High CPU" || alerts[0].State != StateAlerting {
		t.Errorf("Unexpected first alert: %+v", alerts[0])
	}
}

func TestListAlerts_NoStateFilter(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	})

	if _, err := client.ListAlerts(context.Background(), ""); err != nil {
		t.Fatalf("ListAlerts() error: %v", err)
	}
	if gotQuery != "" {
		t.Errorf("Expected no query params, got %q", gotQuery)
	}
}

func TestGetAlert(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id": 7, "name": "High CPU", "state": "alerting", "settings": {"frequency": "60s"}}`))
	})

	raw, err := client.GetAlert(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetAlert() error: %v", err)
	}
	if gotPath != "/api/alerts/7" {
		t.Errorf("Path = %q, want '/api/alerts/7'", gotPath)
	}

	// Full document survives as-is, settings included
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Raw alert should be valid JSON: %v", err)
	}
	if _, ok := doc["settings"]; !ok {
		t.Error("Raw alert should keep the settings block")
	}
}

func TestPauseAlert(t *testing.T) {
	var gotPath string
	var gotPayload map[string]bool
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("Failed to decode payload: %v", err)
		}
		w.Write([]byte(`{"alertId": 7, "state": "paused", "message": "Alert paused"}`))
	})

	if err := client.PauseAlert(context.Background(), 7, true); err != nil {
		t.Fatalf("PauseAlert() error: %v", err)
	}
	if gotPath != "/api/alerts/7/pause" {
		t.Errorf("Path = %q, want '/api/alerts/7/pause'", gotPath)
	}
	if !gotPayload["paused"] {
		t.Error("Payload should set paused true")
	}

	if err := client.PauseAlert(context.Background(), 7, false); err != nil {
		t.Fatalf("PauseAlert(unpause) error: %v", err)
	}
	if gotPayload["paused"] {
		t.Error("Payload should set paused false on unpause")
	}
}

func TestAlertsByDashboard(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "name": "High CPU", "state": "alerting", "dashboardUid": "abc"},
			{"id": 2, "name": "Disk Space", "state": "ok", "dashboardUid": "def"},
			{"id": 3, "name": "Memory", "state": "pending", "dashboardUid": "abc"}
		]`))
	})

	alerts, err := client.AlertsByDashboard(context.Background(), "abc")
	if err != nil {
		t.Fatalf("AlertsByDashboard() error: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("Expected 2 alerts for dashboard abc, got %d", len(alerts))
	}
	for _, alert := range alerts {
		if alert.DashboardUID != "abc" {
			t.Errorf("Alert %d belongs to %q, want 'abc'", alert.ID, alert.DashboardUID)
		}
	}
}

func TestAlertHistory(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[
			{"id": 100, "alertId": 1, "alertName": "High CPU", "newState": "alerting", "prevState": "ok", "time": 1769594400000}
		]`))
	})

	before := time.Now()
	events, err := client.AlertHistory(context.Background(), HistoryOptions{
		DashboardID: 42,
		PanelID:     3,
		Hours:       48,
		Limit:       50,
	})
	if err != nil {
		t.Fatalf("AlertHistory() error: %v", err)
	}

	if got := gotQuery["type"]; len(got) != 1 || got[0] != "alert" {
		t.Errorf("type param = %v, want ['alert']", got)
	}
	if got := gotQuery["limit"]; len(got) != 1 || got[0] != "50" {
		t.Errorf("limit param = %v, want ['50']", got)
	}
	if got := gotQuery["dashboardId"]; len(got) != 1 || got[0] != "42" {
		t.Errorf("dashboardId param = %v, want ['42']", got)
	}
	if got := gotQuery["panelId"]; len(got) != 1 || got[0] != "3" {
		t.Errorf("panelId param = %v, want ['3']", got)
	}

	// from should be roughly 48h before now, in milliseconds
	from, err := strconv.ParseInt(gotQuery["from"][0], 10, 64)
	if err != nil {
		t.Fatalf("from param is not an integer: %v", err)
	}
	expectedFrom := before.Add(-48 * time.Hour).UnixMilli()
	if diff := from - expectedFrom; diff < -5000 || diff > 5000 {
		t.Errorf("from = %d, want about %d", from, expectedFrom)
	}

	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	if events[0].NewState != "alerting" || events[0].PrevState != "ok" {
		t.Errorf("Unexpected event: %+v", events[0])
	}
}

func TestAlertHistory_Defaults(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	if _, err := client.AlertHistory(context.Background(), HistoryOptions{}); err != nil {
		t.Fatalf("AlertHistory() error: %v", err)
	}

	if got := gotQuery["limit"]; len(got) != 1 || got[0] != "100" {
		t.Errorf("limit param = %v, want default ['100']", got)
	}
	if _, has := gotQuery["dashboardId"]; has {
		t.Error("dashboardId should be omitted when unset")
	}
	if _, has := gotQuery["panelId"]; has {
		t.Error("panelId should be omitted when unset")
	}
}

func TestSummarizeAlerts(t *testing.T) {
	alerts := []Alert{
		{State: StateAlerting},
		{State: StateAlerting},
		{State: StateOK},
		{State: StatePaused},
		{State: StatePending},
		{State: StateNoData},
		{State: "unknown_future_state"},
	}

	summary := SummarizeAlerts(alerts)

	if summary.Total != 7 {
		t.Errorf("Total = %d, want 7", summary.Total)
	}
	if summary.Alerting != 2 {
		t.Errorf("Alerting = %d, want 2", summary.Alerting)
	}
	if summary.OK != 1 {
		t.Errorf("OK = %d, want 1", summary.OK)
	}
	if summary.Paused != 1 {
		t.Errorf("Paused = %d, want 1", summary.Paused)
	}
	if summary.Pending != 1 {
		t.Errorf("Pending = %d, want 1", summary.Pending)
	}
	if summary.NoData != 1 {
		t.Errorf("NoData = %d, want 1", summary.NoData)
	}
}

func TestSummarizeAlerts_Empty(t *testing.T) {
	summary := SummarizeAlerts(nil)
	if summary.Total != 0 {
		t.Errorf("Total = %d, want 0", summary.Total)
	}
}
