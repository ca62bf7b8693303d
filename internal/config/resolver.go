package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grafctl/grafctl/internal/ui"
)

// Resolver resolves the active profile from multiple sources
// Priority order (highest to lowest):
// 1. CLI flag (--profile-file)
// 2. GRAFANA_ENV environment variable -> ~/.grafctl/config-<env>.json
// 3. Global config default_profile -> ~/.grafctl/config-<profile>.json
// 4. Default: ~/.grafctl/config.json
type Resolver struct {
	// CLIProfilePath is set via --profile-file flag
	CLIProfilePath string

	// GlobalConfig is the loaded global configuration
	GlobalConfig *GlobalConfig
}

// NewResolver creates a new profile resolver
func NewResolver(cliProfilePath string) (*Resolver, error) {
	globalConfig, err := LoadGlobalConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load global config: %w", err)
	}

	return &Resolver{
		CLIProfilePath: cliProfilePath,
		GlobalConfig:   globalConfig,
	}, nil
}

// ResolveProfilePath resolves the path of the active profile file.
// When GRAFANA_ENV names a profile that does not exist, it warns and falls
// back to config.json rather than failing, so one shell can drive several
// Grafana instances without unsetting the variable.
func (r *Resolver) ResolveProfilePath() (string, error) {
	// 1. CLI flag has highest priority
	if r.CLIProfilePath != "" {
		absPath, err := filepath.Abs(expandPath(r.CLIProfilePath))
		if err != nil {
			return "", fmt.Errorf("failed to resolve profile path: %w", err)
		}
		return absPath, nil
	}

	home, err := GetGrafctlHome()
	if err != nil {
		return "", err
	}

	// 2. Environment variable
	if env := os.Getenv(EnvProfile); env != "" {
		envPath := filepath.Join(home, ProfileFileName(env))
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		ui.Warnf("GRAFANA_ENV=%s but %s not found, using default %s", env, envPath, DefaultProfileFile)
	}

	// 3. Global config default profile
	if r.GlobalConfig != nil && r.GlobalConfig.DefaultProfile != "" {
		defaultPath := filepath.Join(home, ProfileFileName(r.GlobalConfig.DefaultProfile))
		if _, err := os.Stat(defaultPath); err == nil {
			return defaultPath, nil
		}
	}

	// 4. Default config.json
	return filepath.Join(home, DefaultProfileFile), nil
}

// ResolveProfile resolves and loads the active profile
func (r *Resolver) ResolveProfile() (*Profile, error) {
	path, err := r.ResolveProfilePath()
	if err != nil {
		return nil, err
	}
	return LoadProfile(path)
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) == 0 {
		return path
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if len(path) > 1 {
			return filepath.Join(home, path[2:])
		}
		return home
	}

	return path
}
