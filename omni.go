// omni.go
package omni

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/igormcsouza/omni-pkg/pkg/backend"
	"github.com/igormcsouza/omni-pkg/pkg/core"
	"github.com/igormcsouza/omni-pkg/pkg/registry"
)

// Re-export types for convenience
type (
	Package = core.Package
	Source  = core.Source
	Config  = backend.Config
	Outcome = backend.Outcome
)

// Re-export source constants
const (
	SourceApt     = core.SourceApt
	SourceSnap    = core.SourceSnap
	SourceFlatpak = core.SourceFlatpak
	SizeUnknown   = core.SizeUnknown
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return backend.DefaultConfig()
}

// Manager searches every enabled backend for installed packages
type Manager struct {
	backends []backend.Backend
	registry *registry.Registry
	config   *Config
	logger   *log.Logger
}

// NewManager creates a manager probing apt, snap and flatpak in that order
func NewManager(config *Config) (*Manager, error) {
	if config == nil {
		config = backend.DefaultConfig()
	}

	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	backends, err := backend.All(config)
	if err != nil {
		return nil, err
	}

	reg, err := registry.Open(config.AliasesPath)
	if err != nil {
		return nil, &Error{Op: "loading aliases", Err: err}
	}
	if reg.Len() > 0 {
		logger.Debug("loaded aliases", "path", reg.Path(), "entries", reg.Len())
	}

	return &Manager{
		backends: backends,
		registry: reg,
		config:   config,
		logger:   logger,
	}, nil
}

// Search queries every backend in order and concatenates their packages.
// Backends that are missing or fail contribute nothing; the only error is
// an empty query.
func (m *Manager) Search(ctx context.Context, query string) ([]core.Package, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &Error{Op: "search", Err: ErrInvalidQuery}
	}

	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	results := []core.Package{}
	for _, outcome := range m.Probe(ctx, query) {
		results = append(results, outcome.Records()...)
	}
	return results, nil
}

// Probe runs every backend and returns the raw outcomes in backend order
func (m *Manager) Probe(ctx context.Context, query string) []backend.Outcome {
	outcomes := make([]backend.Outcome, 0, len(m.backends))
	for _, b := range m.backends {
		term := m.resolve(query, b.Name())

		outcome := b.Probe(ctx, term)
		if outcome.Err != nil {
			m.logger.Debug("backend skipped", "backend", b.Name(), "status", outcome.Status, "err", outcome.Err)
		} else {
			m.logger.Debug("backend probed", "backend", b.Name(), "query", term, "matches", len(outcome.Packages))
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// resolve maps query through the alias registry, falling back to the raw query
func (m *Manager) resolve(query string, source core.Source) string {
	resolved, err := m.registry.Resolve(query, string(source))
	if err != nil {
		return query
	}
	m.logger.Debug("resolved alias", "query", query, "name", resolved, "backend", source)
	return resolved
}

// Backends returns the enabled backends in probe order
func (m *Manager) Backends() []backend.Backend {
	return m.backends
}
