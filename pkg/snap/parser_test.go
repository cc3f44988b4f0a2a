package snap

import (
	"strings"
	"testing"

	"github.com/igormcsouza/omni-pkg/pkg/core"
)

const snapListOutput = `Name      Version   Rev    Tracking       Publisher   Notes
core20    20240111  2182   latest/stable  canonical✓  base
firefox   122.0-2   3728   latest/stable  mozilla✓    -
firefoxx
`

func TestParseList(t *testing.T) {
	listing := ParseList([]byte(snapListOutput), "firefox", core.MatchLine)

	if len(listing.Entries) != 1 {
		t.Fatalf("got %d entries, want 1: %+v", len(listing.Entries), listing.Entries)
	}
	if got := listing.Entries[0]; got.Name != "firefox" || got.Version != "122.0-2" {
		t.Errorf("entry = %+v", got)
	}
	if len(listing.Skipped) != 1 || listing.Skipped[0] != "firefoxx" {
		t.Errorf("Skipped = %v, want [firefoxx]", listing.Skipped)
	}
}

func TestParseListAlwaysSkipsHeader(t *testing.T) {
	listing := ParseList([]byte(snapListOutput), "Version", core.MatchLine)
	if len(listing.Entries) != 0 {
		t.Errorf("header must not produce entries: %+v", listing.Entries)
	}

	// The first line is dropped even when it is a package row.
	listing = ParseList([]byte("vim 9.0 1 latest/stable x -\n"), "vim", core.MatchLine)
	if len(listing.Entries) != 0 {
		t.Errorf("first line must be treated as header: %+v", listing.Entries)
	}
}

func TestParseListNameMode(t *testing.T) {
	out := []byte("Name Version\ncore20 20240111 2182 latest/stable firefox-builds -\nfirefox 122.0 1 latest/stable mozilla -\n")
	listing := ParseList(out, "firefox", core.MatchName)
	if len(listing.Entries) != 1 || listing.Entries[0].Name != "firefox" {
		t.Errorf("name mode entries = %+v", listing.Entries)
	}
}

func TestParseInstalledSize(t *testing.T) {
	tests := []struct {
		name   string
		out    string
		want   string
		wantOK bool
	}{
		{"size before version", "name: vlc\ninstalled:   12MB 4.1.2\n", "12MB", true},
		{"snapd layout", "summary: x\ninstalled:          4.1.2            (1234) 12MB classic\n", "12MB", true},
		{"size last", "installed: 1.0 (5) 1.2GB\n", "1.2GB", true},
		{"no size token", "installed: 1.0 (5) classic\n", "classic", true},
		{"kilobytes", "installed: 1.0 (5) 830kB\n", "830kB", true},
		{"indented label ignored", "  installed: 1.0 (5) 12MB\n", "", false},
		{"missing line", "name: vlc\nsummary: media player\n", "", false},
		{"empty value", "installed:\n", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseInstalledSize([]byte(tt.out))
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseInstalledSize() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseListLongLine(t *testing.T) {
	out := "Name Version Rev Tracking Publisher Notes\n" +
		"vim 9.0 1 latest/stable " + strings.Repeat("x", 70000) + " -\n" +
		"vim-tiny 9.0 2 latest/stable x -\n"

	listing := ParseList([]byte(out), "vim", core.MatchLine)
	if len(listing.Entries) != 2 || listing.Entries[1].Name != "vim-tiny" {
		t.Errorf("entries after a long line were lost: %+v", listing.Entries)
	}
}

func TestParseInstalledSizeAfterLongLine(t *testing.T) {
	out := "description: " + strings.Repeat("x", 70000) + "\ninstalled: 1.0 (5) 12MB\n"

	got, ok := ParseInstalledSize([]byte(out))
	if !ok || got != "12MB" {
		t.Errorf("ParseInstalledSize() = (%q, %v), want (%q, true)", got, ok, "12MB")
	}
}
