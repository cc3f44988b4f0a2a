// pkg/flatpak/types.go
package flatpak

import (
	"github.com/charmbracelet/log"

	"github.com/igormcsouza/omni-pkg/pkg/core"
	"github.com/igormcsouza/omni-pkg/pkg/platform"
)

// Config configures the flatpak probe
type Config struct {
	Binary string          // Default: flatpak
	Match  core.MatchMode  // Default: core.MatchLine
	Runner platform.Runner // Default: platform.ExecRunner
	Logger *log.Logger     // Custom logger (optional)
}

// PackageManager queries installed flatpak applications
type PackageManager struct {
	config *Config
	runner platform.Runner
	logger *log.Logger
}

// Entry is one matched row of `flatpak list --app`
type Entry struct {
	Name    string // second column, the application ID
	Version string // third column
}

// Listing is the parsed result of one listing call
type Listing struct {
	Entries []Entry
	Skipped []string
}
