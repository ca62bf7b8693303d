package grafana

import "context"

// DatasourceInfo is a datasource as reported by /api/datasources
type DatasourceInfo struct {
	ID        int64  `json:"id"`
	UID       string `json:"uid"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	IsDefault bool   `json:"isDefault"`
}

// ListDatasources fetches all datasources visible to the API token
func (c *Client) ListDatasources(ctx context.Context) ([]DatasourceInfo, error) {
	var datasources []DatasourceInfo
	if err := c.get(ctx, "/api/datasources", &datasources); err != nil {
		return nil, err
	}
	return datasources, nil
}
