// pkg/apt/manager.go
package apt

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/igormcsouza/omni-pkg/pkg/core"
	"github.com/igormcsouza/omni-pkg/pkg/platform"
)

// NewPackageManager creates a new apt probe
func NewPackageManager(cfg *Config) *PackageManager {
	if cfg == nil {
		cfg = &Config{}
	}

	// Set defaults
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	if cfg.InfoBinary == "" {
		cfg.InfoBinary = DefaultInfoBinary
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
		logger: logger.WithPrefix("apt"),
	}
}

// Binary returns the listing binary
func (pm *PackageManager) Binary() string {
	return pm.config.Binary
}

// List runs `apt list --installed <query>` and parses the matching lines.
// A missing binary or a non-zero exit is returned as an error.
func (pm *PackageManager) List(ctx context.Context, query string) (*Listing, error) {
	out, err := pm.runner.Run(ctx, pm.config.Binary, "list", "--installed", query)
	if err != nil {
		return nil, fmt.Errorf("listing installed packages: %w", err)
	}

	listing := ParseList(out, query, pm.config.Match)
	for _, line := range listing.Skipped {
		pm.logger.Debug("skipping malformed line", "line", line)
	}
	return listing, nil
}

// ResolveSize reads the installed size of name from dpkg. Failures yield core.SizeUnknown.
func (pm *PackageManager) ResolveSize(ctx context.Context, name string) string {
	out, err := pm.runner.Run(ctx, pm.config.InfoBinary, "-Wf", InstalledSizeFormat, name)
	if err != nil {
		pm.logger.Debug("size query failed", "package", name, "err", err)
		return core.SizeUnknown
	}

	size, err := ParseInstalledSize(out)
	if err != nil {
		pm.logger.Debug("size unreadable", "package", name, "err", err)
		return core.SizeUnknown
	}
	return size
}

// Search lists installed packages matching query with their sizes
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
			Source:  core.SourceApt,
		})
	}

	pm.logger.Debug("search complete", "query", query, "matches", len(packages))
	return packages, nil
}
