// pkg/backend/apt.go
package backend

import (
	"context"

	"github.com/igormcsouza/omni-pkg/pkg/apt"
	"github.com/igormcsouza/omni-pkg/pkg/core"
)

// AptBackend implements the Backend interface for apt/dpkg
type AptBackend struct {
	manager *apt.PackageManager
}

// NewAptBackend creates a new apt backend
func NewAptBackend(config *Config) *AptBackend {
	bc := config.backendConfig(core.SourceApt)

	manager := apt.NewPackageManager(&apt.Config{
		Binary:     bc.Binary,
		InfoBinary: bc.InfoBinary,
		Match:      config.Match,
		Runner:     config.Runner,
		Logger:     config.Logger,
	})

	return &AptBackend{manager: manager}
}

// Probe searches installed apt packages
func (b *AptBackend) Probe(ctx context.Context, query string) Outcome {
	pkgs, err := b.manager.Search(ctx, query)
	return newOutcome(core.SourceApt, pkgs, err)
}

// Name returns the backend name
func (b *AptBackend) Name() core.Source {
	return core.SourceApt
}

// Binary returns the listing binary
func (b *AptBackend) Binary() string {
	return b.manager.Binary()
}
