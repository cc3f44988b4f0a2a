// pkg/core/package.go
package core

// Source identifies the package manager a record came from
type Source string

const (
	SourceApt     Source = "apt"
	SourceSnap    Source = "snap"
	SourceFlatpak Source = "flatpak"
)

// Sources lists every backend in registration order
var Sources = []Source{SourceApt, SourceSnap, SourceFlatpak}

// SizeUnknown is reported when a backend cannot tell the installed size
const SizeUnknown = "Unknown"

// Package is one installed package as reported by a backend
type Package struct {
	Name    string // Package identifier as reported by the backend
	Version string // Backend version string, opaque
	Size    string // Installed size token or SizeUnknown
	Source  Source // Which backend reported this package
}

// Fields returns the record as table columns
func (p Package) Fields() []string {
	return []string{p.Name, p.Version, p.Size, string(p.Source)}
}

// IsValid reports whether s is a known backend
func (s Source) IsValid() bool {
	for _, valid := range Sources {
		if s == valid {
			return true
		}
	}
	return false
}

// String returns the backend identifier
func (s Source) String() string {
	return string(s)
}
