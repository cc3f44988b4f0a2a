// internal/cli/backends.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/igormcsouza/omni-pkg/pkg/core"
	"github.com/igormcsouza/omni-pkg/pkg/platform"
)

func newBackendsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List supported package managers",
		Long:  `List apt, snap and flatpak and whether each one is installed and enabled on this system.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return a.runBackends(cmd)
		},
	}
}

func (a *app) runBackends(cmd *cobra.Command) error {
	mgr, err := a.manager(cmd)
	if err != nil {
		return err
	}

	binaries := make(map[core.Source]string)
	var bins []string
	for _, b := range mgr.Backends() {
		binaries[b.Name()] = b.Binary()
		bins = append(bins, b.Binary())
	}
	plat := platform.Detect(a.runner, bins...)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Platform: %s/%s\n\n", plat.OS, plat.Arch)
	fmt.Fprintf(out, "Backends:\n")
	for _, source := range core.Sources {
		bin, enabled := binaries[source]
		switch {
		case !enabled:
			fmt.Fprintf(out, "  %s %-8s %s\n", markerDisabled(), source, StyleDim.Render("disabled"))
		case plat.Has(bin):
			fmt.Fprintf(out, "  %s %-8s %s\n", markerAvailable(), source, StyleDim.Render(bin))
		default:
			fmt.Fprintf(out, "  %s %-8s %s\n", markerMissing(), source, StyleDim.Render(bin+" not found"))
		}
	}

	return nil
}
