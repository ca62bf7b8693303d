package alertcmd

import (
	"testing"

	"github.com/grafctl/grafctl/internal/grafana"
)

func TestValidateState(t *testing.T) {
	for _, state := range []string{"", "alerting", "ok", "paused", "pending", "no_data"} {
		if err := validateState(state); err != nil {
			t.Errorf("validateState(%q) error: %v", state, err)
		}
	}

	for _, state := range []string{"firing", "ALERTING", "nodata"} {
		if err := validateState(state); err == nil {
			t.Errorf("validateState(%q) should fail", state)
		}
	}
}

func TestFilterByState(t *testing.T) {
	alerts := []grafana.Alert{
		{ID: 1, State: grafana.StateAlerting},
		{ID: 2, State: grafana.StateOK},
		{ID: 3, State: grafana.StateAlerting},
	}

	filtered := filterByState(alerts, grafana.StateAlerting)
	if len(filtered) != 2 {
		t.Fatalf("Expected 2 alerts, got %d", len(filtered))
	}
	for _, alert := range filtered {
		if alert.State != grafana.StateAlerting {
			t.Errorf("Alert %d has state %q", alert.ID, alert.State)
		}
	}

	// Empty state is no filter
	if got := filterByState(alerts, ""); len(got) != 3 {
		t.Errorf("Expected all alerts back, got %d", len(got))
	}
}

func TestParseAlertID(t *testing.T) {
	if id, err := parseAlertID("42"); err != nil || id != 42 {
		t.Errorf("parseAlertID(42) = %d, %v", id, err)
	}

	for _, input := range []string{"", "abc", "0", "-1", "1.5"} {
		if _, err := parseAlertID(input); err == nil {
			t.Errorf("parseAlertID(%q) should fail", input)
		}
	}
}
