// pkg/snap/constants.go
package snap

const (
	// DefaultBinary is the snapd command line client
	DefaultBinary = "snap"

	// installedLabel starts the `snap info` line carrying the local revision
	installedLabel = "installed:"

	// minListFields is the token count of the shortest usable listing line
	minListFields = 2
)
