// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
)

// Platform represents the detected system platform
type Platform struct {
	OS        string   // linux, darwin, windows
	Arch      string   // amd64, arm64, 386, arm
	Available []string // binaries found on PATH
	Missing   []string // binaries that could not be found
}

// Detect reports which of the given binaries are installed
func Detect(r Runner, binaries ...string) *Platform {
	p := &Platform{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Available: []string{},
		Missing:   []string{},
	}

	for _, bin := range binaries {
		if contains(p.Available, bin) || contains(p.Missing, bin) {
			continue
		}
		if CommandExists(r, bin) {
			p.Available = append(p.Available, bin)
		} else {
			p.Missing = append(p.Missing, bin)
		}
	}

	return p
}

// Has reports whether bin was found during detection
func (p *Platform) Has(bin string) bool {
	return contains(p.Available, bin)
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (available: %v, missing: %v)",
		p.OS, p.Arch, p.Available, p.Missing)
}
