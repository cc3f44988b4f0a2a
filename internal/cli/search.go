// internal/cli/search.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	omni "github.com/igormcsouza/omni-pkg"
	"github.com/igormcsouza/omni-pkg/pkg/backend"
	"github.com/igormcsouza/omni-pkg/pkg/table"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <package_name>",
		Short: "Search the presence of a package on the system",
		Long: `Search apt, snap and flatpak for installed packages matching a name.

Examples:
  omni search vim
  omni search firefox --match=name
  omni search htop -v`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return a.runSearch(cmd, args[0])
		},
	}
}

func (a *app) runSearch(cmd *cobra.Command, query string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	mgr, err := a.manager(cmd)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	pkgs, err := mgr.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("searching %s: %w", query, err)
	}
	prog.done(fmt.Sprintf("Found %d packages", len(pkgs)))

	return table.Render(cmd.OutOrStdout(), pkgs)
}

// manager builds an omni.Manager from the loaded config
func (a *app) manager(cmd *cobra.Command) (*omni.Manager, error) {
	cfg, err := backend.FromCore(a.config)
	if err != nil {
		return nil, fmt.Errorf("building config: %w", err)
	}
	cfg.Runner = a.runner
	cfg.Logger = loggerFromContext(cmd.Context())

	mgr, err := omni.NewManager(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing backends: %w", err)
	}
	return mgr, nil
}
