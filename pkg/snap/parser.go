// pkg/snap/parser.go
package snap

import (
	"regexp"
	"strings"

	"github.com/igormcsouza/omni-pkg/pkg/core"
)

// sizeToken matches the size column snap prints, e.g. 12MB, 1.2GB, 830kB
var sizeToken = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?[kKMGTP]?i?B$`)

// ParseList parses `snap list` output. The first line is always the header:
//
//	Name  Version  Rev    Tracking       Publisher  Notes
//	core  16-2.61  16928  latest/stable  canonical  core
func ParseList(out []byte, query string, mode core.MatchMode) *Listing {
	listing := &Listing{}

	scanner := core.NewLineScanner(out)
	header := true
	for scanner.Scan() {
		line := scanner.Text()
		if header {
			header = false
			continue
		}

		if !mode.PreFilter(line, query) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < minListFields {
			listing.Skipped = append(listing.Skipped, line)
			continue
		}
		if !mode.Accept(fields[0], query) {
			continue
		}

		listing.Entries = append(listing.Entries, Entry{
			Name:    fields[0],
			Version: fields[1],
		})
	}

	return listing
}

// ParseInstalledSize extracts the size from `snap info` output, e.g.
//
//	installed:          4.1.2            (1234) 12MB classic
//
// The last size-shaped token on the line wins; when none looks like a size
// the line's last token is returned as is. ok is false without such a line.
func ParseInstalledSize(out []byte) (size string, ok bool) {
	scanner := core.NewLineScanner(out)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, installedLabel) {
			continue
		}

		fields := strings.Fields(strings.TrimPrefix(line, installedLabel))
		if len(fields) == 0 {
			return "", false
		}
		for i := len(fields) - 1; i >= 0; i-- {
			if sizeToken.MatchString(fields[i]) {
				return fields[i], true
			}
		}
		return fields[len(fields)-1], true
	}
	return "", false
}
