// pkg/apt/types.go
package apt

import (
	"github.com/charmbracelet/log"

	"github.com/igormcsouza/omni-pkg/pkg/core"
	"github.com/igormcsouza/omni-pkg/pkg/platform"
)

// Config configures the apt probe
type Config struct {
	Binary     string          // Default: apt
	InfoBinary string          // Default: dpkg-query
	Match      core.MatchMode  // Default: core.MatchLine
	Runner     platform.Runner // Default: platform.ExecRunner
	Logger     *log.Logger     // Custom logger (optional)
}

// PackageManager queries the local apt/dpkg database
type PackageManager struct {
	config *Config
	runner platform.Runner
	logger *log.Logger
}

// Entry is one matched line of `apt list --installed`
type Entry struct {
	Name    string // text of the first token up to '/'
	Version string // second token
}

// Listing is the parsed result of one listing call
type Listing struct {
	Entries []Entry
	Skipped []string // malformed lines that were dropped
}
