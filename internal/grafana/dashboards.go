package grafana

import (
	"context"
	"fmt"
	"net/url"
)

// DashboardHit is a dashboard search result from /api/search
type DashboardHit struct {
	ID          int64    `json:"id"`
	UID         string   `json:"uid"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
	FolderTitle string   `json:"folderTitle"`
	IsStarred   bool     `json:"isStarred"`
}

// Dashboard is a full dashboard document with its metadata
type Dashboard struct {
	Dashboard map[string]any `json:"dashboard"`
	Meta      DashboardMeta  `json:"meta"`
}

// DashboardMeta is the metadata Grafana attaches to a dashboard
type DashboardMeta struct {
	FolderID    int64  `json:"folderId"`
	FolderTitle string `json:"folderTitle"`
	Slug        string `json:"slug"`
	Version     int64  `json:"version"`
}

// UID returns the dashboard's UID from the document
func (d *Dashboard) UID() string {
	uid, _ := d.Dashboard["uid"].(string)
	return uid
}

// ID returns the dashboard's numeric id from the document
func (d *Dashboard) ID() (int64, error) {
	// JSON numbers decode as float64 in an untyped document
	id, ok := d.Dashboard["id"].(float64)
	if !ok {
		return 0, fmt.Errorf("dashboard document has no numeric id")
	}
	return int64(id), nil
}

// SearchOptions filters a dashboard search
type SearchOptions struct {
	Query   string
	Tag     string
	Starred bool
}

// SearchDashboards lists dashboards matching the given filters
func (c *Client) SearchDashboards(ctx context.Context, opts SearchOptions) ([]DashboardHit, error) {
	params := url.Values{}
	params.Set("type", "dash-db")
	if opts.Query != "" {
		params.Set("query", opts.Query)
	}
	if opts.Tag != "" {
		params.Set("tag", opts.Tag)
	}
	if opts.Starred {
		params.Set("starred", "true")
	}

	var hits []DashboardHit
	if err := c.get(ctx, "/api/search?"+params.Encode(), &hits); err != nil {
		return nil, err
	}
	return hits, nil
}

// GetDashboard fetches a dashboard by UID
func (c *Client) GetDashboard(ctx context.Context, uid string) (*Dashboard, error) {
	var dashboard Dashboard
	if err := c.get(ctx, "/api/dashboards/uid/"+url.PathEscape(uid), &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// GetDashboardByTitle fetches a dashboard by exact title match.
// Returns nil without error when no dashboard has that title.
func (c *Client) GetDashboardByTitle(ctx context.Context, title string) (*Dashboard, error) {
	hits, err := c.SearchDashboards(ctx, SearchOptions{Query: title})
	if err != nil {
		return nil, err
	}

	for _, hit := range hits {
		if hit.Title == title {
			return c.GetDashboard(ctx, hit.UID)
		}
	}
	return nil, nil
}

// SaveDashboardResponse is the response from /api/dashboards/db
type SaveDashboardResponse struct {
	ID      int64  `json:"id"`
	UID     string `json:"uid"`
	URL     string `json:"url"`
	Status  string `json:"status"`
	Version int64  `json:"version"`
}

// CreateDashboardOptions configures a new dashboard
type CreateDashboardOptions struct {
	Title     string
	Tags      []string
	FolderID  int64
	Panels    []map[string]any
	Overwrite bool
	Message   string
}

// CreateDashboard creates a new dashboard with a minimal schema skeleton
func (c *Client) CreateDashboard(ctx context.Context, opts CreateDashboardOptions) (*SaveDashboardResponse, error) {
	if opts.Title == "" {
		return nil, fmt.Errorf("dashboard title is required")
	}

	tags := opts.Tags
	if tags == nil {
		tags = []string{}
	}
	panels := opts.Panels
	if panels == nil {
		panels = []map[string]any{}
	}
	message := opts.Message
	if message == "" {
		message = "Created via grafctl"
	}

	payload := map[string]any{
		"dashboard": map[string]any{
			"title":         opts.Title,
			"tags":          tags,
			"timezone":      "browser",
			"panels":        panels,
			"schemaVersion": 16,
			"version":       0,
			"refresh":       "5s",
		},
		"folderId":  opts.FolderID,
		"overwrite": opts.Overwrite,
		"message":   message,
	}

	var response SaveDashboardResponse
	if err := c.post(ctx, "/api/dashboards/db", payload, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// UpdateDashboard fetches a dashboard, applies the field updates, bumps the
// version, and saves it back with overwrite
func (c *Client) UpdateDashboard(ctx context.Context, uid string, updates map[string]any, message string) (*SaveDashboardResponse, error) {
	current, err := c.GetDashboard(ctx, uid)
	if err != nil {
		return nil, err
	}

	for key, value := range updates {
		current.Dashboard[key] = value
	}

	version, _ := current.Dashboard["version"].(float64)
	current.Dashboard["version"] = int64(version) + 1

	if message == "" {
		message = "Updated via grafctl"
	}

	payload := map[string]any{
		"dashboard": current.Dashboard,
		"folderId":  current.Meta.FolderID,
		"overwrite": true,
		"message":   message,
	}

	var response SaveDashboardResponse
	if err := c.post(ctx, "/api/dashboards/db", payload, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteDashboard deletes a dashboard by UID
func (c *Client) DeleteDashboard(ctx context.Context, uid string) error {
	return c.delete(ctx, "/api/dashboards/uid/"+url.PathEscape(uid), nil)
}

// ImportDashboard saves a dashboard document under a folder. The document's
// id is stripped and its version reset so Grafana treats it as an import.
func (c *Client) ImportDashboard(ctx context.Context, document map[string]any, folderID int64, overwrite bool, message string) (*SaveDashboardResponse, error) {
	delete(document, "id")
	document["version"] = 0

	if message == "" {
		message = "Imported via grafctl"
	}

	payload := map[string]any{
		"dashboard": document,
		"folderId":  folderID,
		"overwrite": overwrite,
		"message":   message,
	}

	var response SaveDashboardResponse
	if err := c.post(ctx, "/api/dashboards/db", payload, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Permission is a dashboard permission entry
type Permission struct {
	Role           string `json:"role,omitempty"`
	UserLogin      string `json:"userLogin,omitempty"`
	Team           string `json:"team,omitempty"`
	PermissionName string `json:"permissionName"`
}

// DashboardPermissions fetches permissions for a dashboard by UID.
// The permissions endpoint is keyed by numeric id, so the dashboard is
// fetched first to resolve it.
func (c *Client) DashboardPermissions(ctx context.Context, uid string) ([]Permission, error) {
	dashboard, err := c.GetDashboard(ctx, uid)
	if err != nil {
		return nil, err
	}

	id, err := dashboard.ID()
	if err != nil {
		return nil, err
	}

	var permissions []Permission
	if err := c.get(ctx, fmt.Sprintf("/api/dashboards/id/%d/permissions", id), &permissions); err != nil {
		return nil, err
	}
	return permissions, nil
}
