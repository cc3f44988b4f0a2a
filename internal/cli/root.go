// internal/cli/root.go
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/igormcsouza/omni-pkg/pkg/core"
	"github.com/igormcsouza/omni-pkg/pkg/platform"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information printed by `omni version`.
// Called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app carries flag values and collaborators shared by all commands
type app struct {
	cfgFile string
	verbose bool
	match   string

	runner platform.Runner
	config *core.Config
}

func newApp() *app {
	return &app{runner: platform.NewExecRunner()}
}

// Execute executes the root command
func Execute() error {
	return newRootCmd(newApp()).ExecuteContext(context.Background())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "omni",
		Short: "Search packages across multiple package managers",
		Long: `omni - Manage Linux packages across multiple package managers

Look up an installed package in apt, snap and flatpak at once and
print a single table of what each of them reports.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}

	// Global flags
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/omni/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.match, "match", "", "match the query against the whole listing line or the package name (line, name)")

	// Add commands
	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newBackendsCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// initConfig loads the config file, applies flag overrides and attaches a logger
func (a *app) initConfig(cmd *cobra.Command) error {
	level := charmlog.InfoLevel
	if a.verbose {
		level = charmlog.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	config, err := core.LoadConfig(a.cfgFile)
	if err != nil {
		cmd.SilenceUsage = true
		return fmt.Errorf("loading config: %w", err)
	}

	// Override config with flags
	if a.match != "" {
		if _, err := core.ParseMatchMode(a.match); err != nil {
			return fmt.Errorf("invalid --match: %w", err)
		}
		config.Match = a.match
	}
	if config.Debug {
		logger.SetLevel(charmlog.DebugLevel)
	}

	a.config = config
	cmd.SetContext(withLogger(cmd.Context(), logger))
	return nil
}
