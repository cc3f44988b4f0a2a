// pkg/apt/constants.go
package apt

const (
	// DefaultBinary lists installed packages
	DefaultBinary = "apt"

	// DefaultInfoBinary reads the installed size from the dpkg database
	DefaultInfoBinary = "dpkg-query"

	// InstalledSizeFormat is the dpkg-query show format for the size field
	InstalledSizeFormat = "${Installed-Size}"

	// listingBanner starts the progress line apt prints before results
	listingBanner = "Listing..."

	// minListFields is the token count of the shortest usable listing line
	minListFields = 2
)
