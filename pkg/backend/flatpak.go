// pkg/backend/flatpak.go
package backend

import (
	"context"

	"github.com/igormcsouza/omni-pkg/pkg/core"
	"github.com/igormcsouza/omni-pkg/pkg/flatpak"
)

// FlatpakBackend implements the Backend interface for flatpak applications
type FlatpakBackend struct {
	manager *flatpak.PackageManager
}

// NewFlatpakBackend creates a new flatpak backend
func NewFlatpakBackend(config *Config) *FlatpakBackend {
	bc := config.backendConfig(core.SourceFlatpak)

	manager := flatpak.NewPackageManager(&flatpak.Config{
		Binary: bc.Binary,
		Match:  config.Match,
		Runner: config.Runner,
		Logger: config.Logger,
	})

	return &FlatpakBackend{manager: manager}
}

// Probe searches installed flatpak applications
func (b *FlatpakBackend) Probe(ctx context.Context, query string) Outcome {
	pkgs, err := b.manager.Search(ctx, query)
	return newOutcome(core.SourceFlatpak, pkgs, err)
}

// Name returns the backend name
func (b *FlatpakBackend) Name() core.Source {
	return core.SourceFlatpak
}

// Binary returns the listing binary
func (b *FlatpakBackend) Binary() string {
	return b.manager.Binary()
}
