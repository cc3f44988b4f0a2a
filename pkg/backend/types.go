// pkg/backend/types.go
package backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/igormcsouza/omni-pkg/pkg/core"
	"github.com/igormcsouza/omni-pkg/pkg/platform"
)

// ErrQueryFailed marks a listing that ran but did not succeed
var ErrQueryFailed = errors.New("backend query failed")

// Backend is one package manager probe. The set is closed: apt, snap and flatpak.
type Backend interface {
	// Probe lists installed packages matching query. It never fails;
	// problems are reported through the Outcome status.
	Probe(ctx context.Context, query string) Outcome

	// Name returns the backend identifier
	Name() core.Source

	// Binary returns the listing binary this backend invokes
	Binary() string
}

// Status classifies how a probe ended
type Status int

const (
	// StatusFound means the listing ran; Packages may still be empty
	StatusFound Status = iota
	// StatusUnavailable means the backend binary is not installed
	StatusUnavailable
	// StatusFailed means the listing exited non-zero or could not run
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusUnavailable:
		return "unavailable"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of one probe
type Outcome struct {
	Source   core.Source
	Status   Status
	Packages []core.Package
	Err      error // set for StatusUnavailable and StatusFailed
}

// Records collapses the outcome to the packages it contributes
func (o Outcome) Records() []core.Package {
	if o.Status != StatusFound {
		return nil
	}
	return o.Packages
}

// newOutcome classifies the result of a manager search
func newOutcome(source core.Source, pkgs []core.Package, err error) Outcome {
	switch {
	case err == nil:
		return Outcome{Source: source, Status: StatusFound, Packages: pkgs}
	case errors.Is(err, platform.ErrCommandNotFound):
		return Outcome{Source: source, Status: StatusUnavailable, Err: err}
	default:
		return Outcome{Source: source, Status: StatusFailed, Err: fmt.Errorf("%w: %w", ErrQueryFailed, err)}
	}
}

// Config holds configuration shared by all backends
type Config struct {
	// Runner executes backend commands
	Runner platform.Runner

	// Logger for debug diagnostics
	Logger *log.Logger

	// Match selects line or name matching
	Match core.MatchMode

	// Timeout bounds a whole search, zero means none
	Timeout time.Duration

	// AliasesPath points at the TOML alias registry
	AliasesPath string

	// Backends holds per-backend overrides keyed by core.Source
	Backends map[string]core.BackendConfig
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Runner:   platform.NewExecRunner(),
		Match:    core.MatchLine,
		Backends: make(map[string]core.BackendConfig),
	}
}

// FromCore builds a backend configuration from the loaded config file
func FromCore(c *core.Config) (*Config, error) {
	cfg := DefaultConfig()
	if c == nil {
		return cfg, nil
	}

	match, err := core.ParseMatchMode(c.Match)
	if err != nil {
		return nil, err
	}
	cfg.Match = match
	cfg.Timeout = c.Timeout
	cfg.AliasesPath = c.Aliases
	for name, bc := range c.Backends {
		cfg.Backends[name] = bc
	}
	return cfg, nil
}

// backendConfig returns the overrides for source
func (c *Config) backendConfig(source core.Source) core.BackendConfig {
	if c.Backends == nil {
		return core.BackendConfig{}
	}
	return c.Backends[string(source)]
}

// Enabled reports whether source should be probed
func (c *Config) Enabled(source core.Source) bool {
	return c.backendConfig(source).IsEnabled()
}

// New creates the backend for source
func New(source core.Source, config *Config) (Backend, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch source {
	case core.SourceApt:
		return NewAptBackend(config), nil
	case core.SourceSnap:
		return NewSnapBackend(config), nil
	case core.SourceFlatpak:
		return NewFlatpakBackend(config), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", source)
	}
}

// All creates every enabled backend in registration order: apt, snap, flatpak
func All(config *Config) ([]Backend, error) {
	if config == nil {
		config = DefaultConfig()
	}

	backends := make([]Backend, 0, len(core.Sources))
	for _, source := range core.Sources {
		if !config.Enabled(source) {
			continue
		}
		b, err := New(source, config)
		if err != nil {
			return nil, fmt.Errorf("initializing backend: %w", err)
		}
		backends = append(backends, b)
	}
	return backends, nil
}
