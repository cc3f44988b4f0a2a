// pkg/snap/types.go
package snap

import (
	"github.com/charmbracelet/log"

	"github.com/igormcsouza/omni-pkg/pkg/core"
	"github.com/igormcsouza/omni-pkg/pkg/platform"
)

// Config configures the snap probe
type Config struct {
	Binary string          // Default: snap
	Match  core.MatchMode  // Default: core.MatchLine
	Runner platform.Runner // Default: platform.ExecRunner
	Logger *log.Logger     // Custom logger (optional)
}

// PackageManager queries snapd through the snap client
type PackageManager struct {
	config *Config
	runner platform.Runner
	logger *log.Logger
}

// Entry is one matched row of `snap list`
type Entry struct {
	Name    string
	Version string
}

// Listing is the parsed result of one listing call
type Listing struct {
	Entries []Entry
	Skipped []string
}
