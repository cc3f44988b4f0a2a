// internal/cli/ui.go
package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen = lipgloss.Color("35")  // installed
	colorRed   = lipgloss.Color("167") // missing
	colorDim   = lipgloss.Color("240") // disabled, secondary text
)

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconMuted   = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconMuted   = "-"
)

func markerAvailable() string { return styleIconSuccess.Render(iconSuccess) }
func markerMissing() string   { return styleIconError.Render(iconError) }
func markerDisabled() string  { return styleIconMuted.Render(iconMuted) }
