package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// GlobalConfigDir is the directory for global grafctl configuration
	GlobalConfigDir = ".grafctl"

	// GlobalConfigFile is the global configuration file name
	GlobalConfigFile = "config.yaml"

	// EnvGrafctlHome is the environment variable for the grafctl home directory
	EnvGrafctlHome = "GRAFCTL_HOME"

	// EnvProfile is the environment variable selecting a profile file.
	// GRAFANA_ENV=prod maps to config-prod.json.
	EnvProfile = "GRAFANA_ENV"
)

// GlobalConfig represents the global grafctl configuration
// stored at ~/.grafctl/config.yaml
type GlobalConfig struct {
	// DefaultProfile is the profile used when GRAFANA_ENV is unset
	DefaultProfile string `yaml:"default_profile,omitempty"`

	// HTTP configuration
	HTTP HTTPConfig `yaml:"http,omitempty"`

	// Backup configuration
	Backup BackupConfig `yaml:"backup,omitempty"`
}

// HTTPConfig holds Grafana API client configuration
type HTTPConfig struct {
	// TimeoutSeconds is the per-request timeout (default: 30)
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`

	// MaxRetries is the retry count for transient failures (default: 3)
	MaxRetries int `yaml:"max_retries,omitempty"`
}

// BackupConfig holds dashboard backup configuration
type BackupConfig struct {
	// Bucket is the S3 bucket for dashboard backups
	Bucket string `yaml:"bucket,omitempty"`

	// Prefix is the object key prefix (default: "dashboards")
	Prefix string `yaml:"prefix,omitempty"`

	// Region is the AWS region (default: "us-east-1")
	Region string `yaml:"region,omitempty"`

	// Endpoint is an optional S3-compatible endpoint override
	Endpoint string `yaml:"endpoint,omitempty"`
}

// GetGrafctlHome returns the grafctl home directory
// Priority: GRAFCTL_HOME env var > ~/.grafctl
func GetGrafctlHome() (string, error) {
	if home := os.Getenv(EnvGrafctlHome); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(userHome, GlobalConfigDir), nil
}

// GetGlobalConfigPath returns the path to the global config file
func GetGlobalConfigPath() (string, error) {
	home, err := GetGrafctlHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalConfigFile), nil
}

// LoadGlobalConfig loads the global configuration
// Returns default config if file doesn't exist
func LoadGlobalConfig() (*GlobalConfig, error) {
	configPath, err := GetGlobalConfigPath()
	if err != nil {
		return DefaultGlobalConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultGlobalConfig(), nil
		}
		return nil, fmt.Errorf("failed to read global config: %w", err)
	}

	var config GlobalConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse global config: %w", err)
	}

	config.applyDefaults()

	return &config, nil
}

// SaveGlobalConfig saves the global configuration
func SaveGlobalConfig(config *GlobalConfig) error {
	home, err := GetGrafctlHome()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(home, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(home, GlobalConfigFile)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultGlobalConfig returns the default global configuration
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		HTTP: HTTPConfig{
			TimeoutSeconds: 30,
			MaxRetries:     3,
		},
		Backup: BackupConfig{
			Prefix: "dashboards",
			Region: "us-east-1",
		},
	}
}

// applyDefaults applies default values to unset fields
func (c *GlobalConfig) applyDefaults() {
	defaults := DefaultGlobalConfig()

	if c.HTTP.TimeoutSeconds == 0 {
		c.HTTP.TimeoutSeconds = defaults.HTTP.TimeoutSeconds
	}
	if c.HTTP.MaxRetries == 0 {
		c.HTTP.MaxRetries = defaults.HTTP.MaxRetries
	}
	if c.Backup.Prefix == "" {
		c.Backup.Prefix = defaults.Backup.Prefix
	}
	if c.Backup.Region == "" {
		c.Backup.Region = defaults.Backup.Region
	}
}

// InitGlobalConfig initializes the global config directory and file
func InitGlobalConfig() error {
	configPath, err := GetGlobalConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil // Already exists
	}

	return SaveGlobalConfig(DefaultGlobalConfig())
}

// GlobalConfigExists checks if global config file exists
func GlobalConfigExists() bool {
	configPath, err := GetGlobalConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(configPath)
	return err == nil
}

// ForceInitGlobalConfig initializes the global config, overwriting if exists
func ForceInitGlobalConfig() error {
	return SaveGlobalConfig(DefaultGlobalConfig())
}
