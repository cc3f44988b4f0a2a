// pkg/apt/parser.go
package apt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/igormcsouza/omni-pkg/pkg/core"
)

// ParseList parses `apt list --installed` output, e.g.
//
//	htop/stable,now 3.0.5-7 amd64 [installed]
func ParseList(out []byte, query string, mode core.MatchMode) *Listing {
	listing := &Listing{}

	scanner := core.NewLineScanner(out)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, listingBanner) || !mode.PreFilter(line, query) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < minListFields {
			listing.Skipped = append(listing.Skipped, line)
			continue
		}

		name, _, _ := strings.Cut(fields[0], "/")
		if name == "" {
			listing.Skipped = append(listing.Skipped, line)
			continue
		}
		if !mode.Accept(name, query) {
			continue
		}

		listing.Entries = append(listing.Entries, Entry{
			Name:    name,
			Version: fields[1],
		})
	}

	return listing
}

// ParseInstalledSize converts dpkg's Installed-Size (KiB) to a whole "<N>MB" token
func ParseInstalledSize(out []byte) (string, error) {
	raw := strings.TrimSpace(string(out))
	kb, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "", fmt.Errorf("parsing installed size %q: %w", raw, err)
	}
	if kb < 0 {
		return "", fmt.Errorf("negative installed size %d", kb)
	}
	return fmt.Sprintf("%dMB", kb/1024), nil
}
