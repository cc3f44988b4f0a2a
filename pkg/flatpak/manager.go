// pkg/flatpak/manager.go
package flatpak

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/igormcsouza/omni-pkg/pkg/core"
	"github.com/igormcsouza/omni-pkg/pkg/platform"
)

// NewPackageManager creates a new flatpak probe
func NewPackageManager(cfg *Config) *PackageManager {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	if cfg.Match == "" {
		cfg.Match = core.MatchLine
	}

	runner := cfg.Runner
	if runner == nil {
		runner = platform.NewExecRunner()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &PackageManager{
		config: cfg,
		runner: runner,
		logger: logger.WithPrefix("flatpak"),
	}
}

// Binary returns the flatpak binary
func (pm *PackageManager) Binary() string {
	return pm.config.Binary
}

// List runs `flatpak list --app`. flatpak has no name filter, so every
// installed application is listed and filtered here.
func (pm *PackageManager) List(ctx context.Context, query string) (*Listing, error) {
	out, err := pm.runner.Run(ctx, pm.config.Binary, "list", "--app")
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	listing := ParseList(out, query, pm.config.Match)
	for _, line := range listing.Skipped {
		pm.logger.Debug("skipping malformed line", "line", line)
	}
	return listing, nil
}

// ResolveSize reads the installed size from `flatpak info <name>`
func (pm *PackageManager) ResolveSize(ctx context.Context, name string) string {
	out, err := pm.runner.Run(ctx, pm.config.Binary, "info", name)
	if err != nil {
		pm.logger.Debug("info failed", "package", name, "err", err)
		return core.SizeUnknown
	}

	size, ok := ParseInstalledSize(out)
	if !ok {
		pm.logger.Debug("no installed size line", "package", name)
		return core.SizeUnknown
	}
	return size
}

// Search lists installed applications matching query with their sizes
func (pm *PackageManager) Search(ctx context.Context, query string) ([]core.Package, error) {
	listing, err := pm.List(ctx, query)
	if err != nil {
		return nil, err
	}

	packages := make([]core.Package, 0, len(listing.Entries))
	for _, entry := range listing.Entries {
		packages = append(packages, core.Package{
			Name:    entry.Name,
			Version: entry.Version,
			Size:    pm.ResolveSize(ctx, entry.Name),
			Source:  core.SourceFlatpak,
		})
	}

	pm.logger.Debug("search complete", "query", query, "matches", len(packages))
	return packages, nil
}
