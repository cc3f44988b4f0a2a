// pkg/backend/snap.go
package backend

import (
	"context"

	"github.com/igormcsouza/omni-pkg/pkg/core"
	"github.com/igormcsouza/omni-pkg/pkg/snap"
)

// SnapBackend implements the Backend interface for snapd
type SnapBackend struct {
	manager *snap.PackageManager
}

// NewSnapBackend creates a new snap backend
func NewSnapBackend(config *Config) *SnapBackend {
	bc := config.backendConfig(core.SourceSnap)

	manager := snap.NewPackageManager(&snap.Config{
		Binary: bc.Binary,
		Match:  config.Match,
		Runner: config.Runner,
		Logger: config.Logger,
	})

	return &SnapBackend{manager: manager}
}

// Probe searches installed snaps
func (b *SnapBackend) Probe(ctx context.Context, query string) Outcome {
	pkgs, err := b.manager.Search(ctx, query)
	return newOutcome(core.SourceSnap, pkgs, err)
}

// Name returns the backend name
func (b *SnapBackend) Name() core.Source {
	return core.SourceSnap
}

// Binary returns the listing binary
func (b *SnapBackend) Binary() string {
	return b.manager.Binary()
}
