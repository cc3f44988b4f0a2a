// errors.go
package omni

import (
	"errors"
	"fmt"

	"github.com/igormcsouza/omni-pkg/pkg/backend"
	"github.com/igormcsouza/omni-pkg/pkg/platform"
)

var (
	// ErrInvalidQuery indicates an empty search term
	ErrInvalidQuery = errors.New("search query is required")

	// ErrBackendNotAvailable indicates the backend binary is not installed
	ErrBackendNotAvailable = platform.ErrCommandNotFound

	// ErrQueryFailed indicates the backend ran but its listing failed
	ErrQueryFailed = backend.ErrQueryFailed
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
