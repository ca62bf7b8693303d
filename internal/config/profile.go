package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultProfileFile is the profile file used when no environment is selected
const DefaultProfileFile = "config.json"

// Profile is a Grafana connection profile stored as JSON under the grafctl home.
// The on-disk shape matches what `grafctl datasources sync` writes:
//
//	{
//	  "grafana_url": "http://grafana.example.com",
//	  "api_token": "...",
//	  "default_datasource": "Prometheus 1",
//	  "datasources": {"Prometheus 1": {"uid": "abc", "id": 3, "is_default": true}}
//	}
type Profile struct {
	GrafanaURL        string                `json:"grafana_url"`
	APIToken          string                `json:"api_token"`
	DefaultDatasource string                `json:"default_datasource,omitempty"`
	Datasources       map[string]Datasource `json:"datasources"`

	// Path is the file the profile was loaded from. Not serialized.
	Path string `json:"-"`
}

// Datasource is a single datasource entry in a profile
type Datasource struct {
	UID       string `json:"uid"`
	ID        int64  `json:"id"`
	IsDefault bool   `json:"is_default"`
}

// ProfileFileName returns the profile file name for an environment.
// An empty env maps to config.json, "prod" maps to config-prod.json.
func ProfileFileName(env string) string {
	if env == "" {
		return DefaultProfileFile
	}
	return fmt.Sprintf("config-%s.json", env)
}

// LoadProfile loads a profile from an explicit file path
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("profile not found: %s\n\nRun 'grafctl datasources sync' to create it", path)
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	if profile.GrafanaURL == "" {
		return nil, fmt.Errorf("profile %s has no grafana_url", path)
	}
	if profile.APIToken == "" {
		return nil, fmt.Errorf("profile %s has no api_token", path)
	}
	if profile.Datasources == nil {
		profile.Datasources = map[string]Datasource{}
	}

	profile.GrafanaURL = strings.TrimRight(profile.GrafanaURL, "/")
	profile.Path = path

	return &profile, nil
}

// SaveProfile writes a profile to the given path with owner-only permissions.
// The file carries an API token, so it is always written 0600.
func SaveProfile(profile *Profile, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	// WriteFile honors umask; enforce the mode for pre-existing files too
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set profile permissions: %w", err)
	}

	return nil
}

// Datasource returns the entry for a datasource name, or an error listing
// the available names when it is not configured.
func (p *Profile) Datasource(name string) (Datasource, error) {
	ds, ok := p.Datasources[name]
	if !ok {
		return Datasource{}, fmt.Errorf("datasource %q not found in profile\n\nAvailable datasources: %s",
			name, strings.Join(p.DatasourceNames(), ", "))
	}
	return ds, nil
}

// DatasourceNames returns the configured datasource names, sorted
func (p *Profile) DatasourceNames() []string {
	names := make([]string, 0, len(p.Datasources))
	for name := range p.Datasources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
