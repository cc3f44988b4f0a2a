package platform_test

import (
	"testing"

	"github.com/igormcsouza/omni-pkg/pkg/platform"
	"github.com/igormcsouza/omni-pkg/pkg/platform/platformtest"
)

func TestDetect(t *testing.T) {
	r := platformtest.New().Install("apt").Install("flatpak")

	p := platform.Detect(r, "apt", "snap", "flatpak", "apt")

	if len(p.Available) != 2 || p.Available[0] != "apt" || p.Available[1] != "flatpak" {
		t.Errorf("Available = %v, want [apt flatpak]", p.Available)
	}
	if len(p.Missing) != 1 || p.Missing[0] != "snap" {
		t.Errorf("Missing = %v, want [snap]", p.Missing)
	}
	if !p.Has("apt") || p.Has("snap") {
		t.Errorf("Has() mismatch for %v", p)
	}
	if p.OS == "" || p.Arch == "" {
		t.Error("OS and Arch should be populated")
	}
}

func TestDetectNothingInstalled(t *testing.T) {
	p := platform.Detect(platformtest.New(), "apt", "snap")

	if len(p.Available) != 0 {
		t.Errorf("Available = %v, want empty", p.Available)
	}
	if platform.CommandExists(platformtest.New(), "apt") {
		t.Error("CommandExists should be false for an empty runner")
	}
}
