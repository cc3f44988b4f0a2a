package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
	if cfg.Match != string(MatchLine) {
		t.Errorf("Match = %q, want %q", cfg.Match, MatchLine)
	}
	if !cfg.Backend(SourceSnap).IsEnabled() {
		t.Error("backends should be enabled by default")
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
debug: true
match: name
timeout: 5s
aliases: /tmp/aliases.toml
backends:
  snap:
    enabled: false
  apt:
    binary: /opt/bin/apt
    info_binary: /opt/bin/dpkg-query
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if cfg.Match != "name" {
		t.Errorf("Match = %q, want name", cfg.Match)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %s, want 5s", cfg.Timeout)
	}
	if cfg.Aliases != "/tmp/aliases.toml" {
		t.Errorf("Aliases = %q", cfg.Aliases)
	}
	if cfg.Backend(SourceSnap).IsEnabled() {
		t.Error("snap should be disabled")
	}
	if !cfg.Backend(SourceFlatpak).IsEnabled() {
		t.Error("flatpak should stay enabled")
	}
	apt := cfg.Backend(SourceApt)
	if apt.Binary != "/opt/bin/apt" || apt.InfoBinary != "/opt/bin/dpkg-query" {
		t.Errorf("apt overrides = %+v", apt)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad match", "match: fuzzy\n", "unknown match mode"},
		{"unknown backend", "backends:\n  pacman:\n    enabled: true\n", "unknown backend"},
		{"negative timeout", "timeout: -1s\n", "timeout"},
		{"bad yaml", "backends: [\n", "parsing config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("LoadConfig() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfigPathEnv(t *testing.T) {
	t.Setenv(ConfigEnv, "/etc/omni.yaml")
	if got := DefaultConfigPath(); got != "/etc/omni.yaml" {
		t.Errorf("DefaultConfigPath() = %q, want /etc/omni.yaml", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/x/aliases.toml"); got != filepath.Join(home, "x", "aliases.toml") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome() changed an absolute path: %q", got)
	}
}

func TestConfigBackendNil(t *testing.T) {
	var cfg *Config
	if !cfg.Backend(SourceApt).IsEnabled() {
		t.Error("nil config should report backends enabled")
	}
}
