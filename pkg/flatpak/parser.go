// pkg/flatpak/parser.go
package flatpak

import (
	"strings"

	"github.com/igormcsouza/omni-pkg/pkg/core"
)

// ParseList parses `flatpak list --app` output. When stdout is not a
// terminal flatpak prints no header:
//
//	Firefox	org.mozilla.firefox	122.0	stable	system
func ParseList(out []byte, query string, mode core.MatchMode) *Listing {
	listing := &Listing{}

	scanner := core.NewLineScanner(out)
	for scanner.Scan() {
		line := scanner.Text()
		if !mode.PreFilter(line, query) {
			continue
		}

		fields := columns(line)
		if len(fields) < minListFields {
			listing.Skipped = append(listing.Skipped, line)
			continue
		}
		if !mode.Accept(fields[1], query) {
			continue
		}

		listing.Entries = append(listing.Entries, Entry{
			Name:    fields[1],
			Version: fields[2],
		})
	}

	return listing
}

// columns splits a listing line into its fields. flatpak separates columns
// with tabs, and the Name column may itself contain spaces; lines without a
// tab fall back to whitespace splitting.
func columns(line string) []string {
	if !strings.Contains(line, "\t") {
		return strings.Fields(line)
	}
	var fields []string
	for _, col := range strings.Split(line, "\t") {
		if col = strings.TrimSpace(col); col != "" {
			fields = append(fields, col)
		}
	}
	return fields
}

// ParseInstalledSize extracts the text after "Installed size:" from
// `flatpak info` output. Leading indentation of the line is ignored.
func ParseInstalledSize(out []byte) (string, bool) {
	scanner := core.NewLineScanner(out)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		value, found := strings.CutPrefix(line, installedSizeLabel)
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return "", false
		}
		return value, true
	}
	return "", false
}
