// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigEnv overrides the default configuration file location
const ConfigEnv = "OMNI_CONFIG"

// Config holds omni configuration
type Config struct {
	Debug    bool                     `yaml:"debug"`
	Match    string                   `yaml:"match"`
	Timeout  time.Duration            `yaml:"timeout"`
	Aliases  string                   `yaml:"aliases"`
	Backends map[string]BackendConfig `yaml:"backends"`
}

// BackendConfig holds per-backend overrides
type BackendConfig struct {
	Enabled    *bool  `yaml:"enabled"`     // nil means enabled
	Binary     string `yaml:"binary"`      // listing binary (apt, snap, flatpak)
	InfoBinary string `yaml:"info_binary"` // size binary when it differs (dpkg-query)
}

// IsEnabled reports whether the backend should be queried
func (b BackendConfig) IsEnabled() bool {
	return b.Enabled == nil || *b.Enabled
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Debug:    false,
		Match:    string(MatchLine),
		Aliases:  defaultAliasesPath(),
		Backends: make(map[string]BackendConfig),
	}
}

// Backend returns the overrides for a backend, zero value if none
func (c *Config) Backend(s Source) BackendConfig {
	if c == nil || c.Backends == nil {
		return BackendConfig{}
	}
	return c.Backends[string(s)]
}

// Validate checks the configuration for unknown values
func (c *Config) Validate() error {
	if _, err := ParseMatchMode(c.Match); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	for name := range c.Backends {
		if !Source(name).IsValid() {
			return fmt.Errorf("unknown backend %q in config", name)
		}
	}
	return nil
}

// DefaultConfigPath returns $OMNI_CONFIG or ~/.config/omni/config.yaml
func DefaultConfigPath() string {
	if path := os.Getenv(ConfigEnv); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "omni", "config.yaml")
}

// LoadConfig loads configuration from file. A missing file yields defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Backends == nil {
		cfg.Backends = make(map[string]BackendConfig)
	}
	cfg.Aliases = ExpandHome(cfg.Aliases)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// ExpandHome replaces a leading ~/ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func defaultAliasesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "omni", "aliases.toml")
}
