package grafana

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestSearchDashboards(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[
			{"id": 1, "uid": "abc", "title": "API Overview", "tags": ["prod"], "folderTitle": "Services"},
			{"id": 2, "uid": "def", "title": "Node Exporter", "isStarred": true}
		]`))
	})

	hits, err := client.SearchDashboards(context.Background(), SearchOptions{
		Query:   "overview",
		Tag:     "prod",
		Starred: true,
	})
	if err != nil {
		t.Fatalf("SearchDashboards() error: %v", err)
	}

	if got := gotQuery["type"]; len(got) != 1 || got[0] != "dash-db" {
		t.Errorf("type param = %v, want ['dash-db']", got)
	}
	if got := gotQuery["query"]; len(got) != 1 || got[0] != "overview" {
		t.Errorf("query param = %v, want ['overview']", got)
	}
	if got := gotQuery["tag"]; len(got) != 1 || got[0] != "prod" {
		t.Errorf("tag param = %v, want ['prod']", got)
	}
	if got := gotQuery["starred"]; len(got) != 1 || got[0] != "true" {
		t.Errorf("starred param = %v, want ['true']", got)
	}

	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}
	if hits[0].UID != "abc" || hits[0].FolderTitle != "Services" {
		t.Errorf("Unexpected first hit: %+v", hits[0])
	}
	if !hits[1].IsStarred {
		t.Error("Second hit should be starred")
	}
}

func TestGetDashboard(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{
			"dashboard": {"id": 42, "uid": "abc", "title": "API Overview", "version": 7},
			"meta": {"folderId": 3, "folderTitle": "Services", "version": 7}
		}`))
	})

	dashboard, err := client.GetDashboard(context.Background(), "abc")
	if err != nil {
		t.Fatalf("GetDashboard() error: %v", err)
	}

	if gotPath != "/api/dashboards/uid/abc" {
		t.Errorf("Path = %q, want '/api/dashboards/uid/abc'", gotPath)
	}
	if dashboard.UID() != "abc" {
		t.Errorf("UID() = %q, want 'abc'", dashboard.UID())
	}
	id, err := dashboard.ID()
	if err != nil {
		t.Fatalf("ID() error: %v", err)
	}
	if id != 42 {
		t.Errorf("ID() = %d, want 42", id)
	}
	if dashboard.Meta.FolderID != 3 {
		t.Errorf("Meta.FolderID = %d, want 3", dashboard.Meta.FolderID)
	}
}

func TestGetDashboardByTitle(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/search":
			// Search matches substrings; exact title match picks the right hit
			w.Write([]byte(`[
				{"id": 1, "uid": "partial", "title": "API Overview Extended"},
				{"id": 2, "uid": "exact", "title": "API Overview"}
			]`))
		case "/api/dashboards/uid/exact":
			w.Write([]byte(`{"dashboard": {"uid": "exact", "title": "API Overview"}, "meta": {}}`))
		default:
			t.Errorf("Unexpected request: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	dashboard, err := client.GetDashboardByTitle(context.Background(), "API Overview")
	if err != nil {
		t.Fatalf("GetDashboardByTitle() error: %v", err)
	}
	if dashboard == nil {
		t.Fatal("Expected a dashboard")
	}
	if dashboard.UID() != "exact" {
		t.Errorf("UID() = %q, want the exact title match", dashboard.UID())
	}
}

func TestGetDashboardByTitle_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	dashboard, err := client.GetDashboardByTitle(context.Background(), "Missing")
	if err != nil {
		t.Fatalf("GetDashboardByTitle() error: %v", err)
	}
	if dashboard != nil {
		t.Error("Expected nil for an unknown title")
	}
}

func decodeSavePayload(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		t.Fatalf("Failed to decode save payload: %v", err)
	}
	return payload
}

func TestCreateDashboard(t *testing.T) {
	var payload map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		payload = decodeSavePayload(t, r)
		w.Write([]byte(`{"id": 10, "uid": "new", "url": "/d/new", "status": "success", "version": 1}`))
	})

	response, err := client.CreateDashboard(context.Background(), CreateDashboardOptions{
		Title: "Service Health",
		Tags:  []string{"prod"},
	})
	if err != nil {
		t.Fatalf("CreateDashboard() error: %v", err)
	}

	doc, ok := payload["dashboard"].(map[string]any)
	if !ok {
		t.Fatal("Payload should carry a dashboard document")
	}
	if doc["title"] != "Service Health" {
		t.Errorf("title = %v, want 'Service Health'", doc["title"])
	}
	if doc["schemaVersion"] != float64(16) {
		t.Errorf("schemaVersion = %v, want 16", doc["schemaVersion"])
	}
	if doc["version"] != float64(0) {
		t.Errorf("version = %v, want 0 for a new dashboard", doc["version"])
	}
	if payload["message"] != "Created via grafctl" {
		t.Errorf("message = %v, want default creation message", payload["message"])
	}

	if response.UID != "new" || response.Status != "success" {
		t.Errorf("Unexpected response: %+v", response)
	}
}

func TestCreateDashboard_RequiresTitle(t *testing.T) {
	client := NewClient("http://localhost:3000", "token")
	if _, err := client.CreateDashboard(context.Background(), CreateDashboardOptions{}); err == nil {
		t.Fatal("Expected error for missing title")
	}
}

func TestUpdateDashboard_BumpsVersion(t *testing.T) {
	var payload map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte(`{
				"dashboard": {"id": 42, "uid": "abc", "title": "Old Title", "version": 7},
				"meta": {"folderId": 3, "version": 7}
			}`))
		case r.Method == http.MethodPost:
			payload = decodeSavePayload(t, r)
			w.Write([]byte(`{"id": 42, "uid": "abc", "status": "success", "version": 8}`))
		}
	})

	_, err := client.UpdateDashboard(context.Background(), "abc", map[string]any{"title": "New Title"}, "")
	if err != nil {
		t.Fatalf("UpdateDashboard() error: %v", err)
	}

	doc := payload["dashboard"].(map[string]any)
	if doc["title"] != "New Title" {
		t.Errorf("title = %v, want 'New Title'", doc["title"])
	}
	if doc["version"] != float64(8) {
		t.Errorf("version = %v, want bumped to 8", doc["version"])
	}
	if payload["overwrite"] != true {
		t.Error("Update should set overwrite")
	}
	if payload["folderId"] != float64(3) {
		t.Errorf("folderId = %v, want preserved 3", payload["folderId"])
	}
}

func TestDeleteDashboard(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"message": "Dashboard deleted"}`))
	})

	if err := client.DeleteDashboard(context.Background(), "abc"); err != nil {
		t.Fatalf("DeleteDashboard() error: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("Method = %q, want DELETE", gotMethod)
	}
	if gotPath != "/api/dashboards/uid/abc" {
		t.Errorf("Path = %q, want '/api/dashboards/uid/abc'", gotPath)
	}
}

func TestImportDashboard_StripsIDAndVersion(t *testing.T) {
	var payload map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		payload = decodeSavePayload(t, r)
		w.Write([]byte(`{"id": 99, "uid": "imported", "status": "success", "version": 1}`))
	})

	document := map[string]any{
		"id":      float64(42),
		"uid":     "imported",
		"title":   "Imported Dashboard",
		"version": float64(17),
	}

	_, err := client.ImportDashboard(context.Background(), document, 5, true, "")
	if err != nil {
		t.Fatalf("ImportDashboard() error: %v", err)
	}

	doc := payload["dashboard"].(map[string]any)
	if _, hasID := doc["id"]; hasID {
		t.Error("Imported document should have id stripped")
	}
	if doc["version"] != float64(0) {
		t.Errorf("version = %v, want reset to 0", doc["version"])
	}
	if payload["folderId"] != float64(5) {
		t.Errorf("folderId = %v, want 5", payload["folderId"])
	}
	if payload["overwrite"] != true {
		t.Error("overwrite flag should be forwarded")
	}
}

func TestDashboardPermissions(t *testing.T) {
	var gotPermissionsPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/dashboards/uid/abc":
			w.Write([]byte(`{"dashboard": {"id": 42, "uid": "abc"}, "meta": {}}`))
		case "/api/dashboards/id/42/permissions":
			gotPermissionsPath = r.URL.Path
			w.Write([]byte(`[
				{"role": "Viewer", "permissionName": "View"},
				{"userLogin": "ops", "permissionName": "Admin"}
			]`))
		default:
			t.Errorf("Unexpected request: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	permissions, err := client.DashboardPermissions(context.Background(), "abc")
	if err != nil {
		t.Fatalf("DashboardPermissions() error: %v", err)
	}

	// Endpoint is keyed by numeric id, resolved from the UID first
	if gotPermissionsPath != "/api/dashboards/id/42/permissions" {
		t.Errorf("Permissions path = %q, want numeric id endpoint", gotPermissionsPath)
	}
	if len(permissions) != 2 {
		t.Fatalf("Expected 2 permissions, got %d", len(permissions))
	}
	if permissions[1].UserLogin != "ops" || permissions[1].PermissionName != "Admin" {
		t.Errorf("Unexpected permission: %+v", permissions[1])
	}
}
