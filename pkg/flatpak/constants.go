// pkg/flatpak/constants.go
package flatpak

const (
	// DefaultBinary is the flatpak command line tool
	DefaultBinary = "flatpak"

	// installedSizeLabel starts the `flatpak info` line carrying the size
	installedSizeLabel = "Installed size:"

	// minListFields covers the Name, Application ID and Version columns
	minListFields = 3
)
