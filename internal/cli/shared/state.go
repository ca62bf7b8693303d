package shared

import (
	"fmt"
	"time"

	"github.com/grafctl/grafctl/internal/config"
	"github.com/grafctl/grafctl/internal/grafana"
)

var (
	// Resolver is the profile resolver initialized by the root command
	Resolver *config.Resolver

	// profile is the lazily loaded active profile
	profile *config.Profile
)

// Profile loads and caches the active profile
func Profile() (*config.Profile, error) {
	if profile != nil {
		return profile, nil
	}
	if Resolver == nil {
		return nil, fmt.Errorf("config not initialized")
	}

	p, err := Resolver.ResolveProfile()
	if err != nil {
		return nil, err
	}

	profile = p
	return profile, nil
}

// Client builds a Grafana API client for the active profile, applying the
// HTTP settings from the global config
func Client() (*grafana.Client, *config.Profile, error) {
	p, err := Profile()
	if err != nil {
		return nil, nil, err
	}

	var opts []grafana.Option
	if Resolver.GlobalConfig != nil {
		httpCfg := Resolver.GlobalConfig.HTTP
		if httpCfg.TimeoutSeconds > 0 {
			opts = append(opts, grafana.WithTimeout(time.Duration(httpCfg.TimeoutSeconds)*time.Second))
		}
		if httpCfg.MaxRetries > 0 {
			opts = append(opts, grafana.WithMaxRetries(httpCfg.MaxRetries))
		}
	}

	return grafana.NewClient(p.GrafanaURL, p.APIToken, opts...), p, nil
}

// ResetForTest clears cached state between tests
func ResetForTest() {
	Resolver = nil
	profile = nil
}
