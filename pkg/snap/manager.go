// pkg/snap/manager.go
package snap

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/igormcsouza/omni-pkg/pkg/core"
	"github.com/igormcsouza/omni-pkg/pkg/platform"
)

// NewPackageManager creates a new snap probe
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
		logger: logger.WithPrefix("snap"),
	}
}

// Binary returns the snap client binary
func (pm *PackageManager) Binary() string {
	return pm.config.Binary
}

// List runs `snap list <query>`; snap exits non-zero when nothing matches
func (pm *PackageManager) List(ctx context.Context, query string) (*Listing, error) {
	out, err := pm.runner.Run(ctx, pm.config.Binary, "list", query)
	if err != nil {
		return nil, fmt.Errorf("listing snaps: %w", err)
	}

	listing := ParseList(out, query, pm.config.Match)
	for _, line := range listing.Skipped {
		pm.logger.Debug("skipping malformed line", "line", line)
	}
	return listing, nil
}

// ResolveSize reads the installed size from `snap info <name>`
func (pm *PackageManager) ResolveSize(ctx context.Context, name string) string {
	out, err := pm.runner.Run(ctx, pm.config.Binary, "info", name)
	if err != nil {
		pm.logger.Debug("info failed", "package", name, "err", err)
		return core.SizeUnknown
	}

	size, ok := ParseInstalledSize(out)
	if !ok {
		pm.logger.Debug("no installed line", "package", name)
		return core.SizeUnknown
	}
	return size
}

// Search lists installed snaps matching query with their sizes
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
			Source:  core.SourceSnap,
		})
	}

	pm.logger.Debug("search complete", "query", query, "matches", len(packages))
	return packages, nil
}
