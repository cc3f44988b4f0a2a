package flatpak

import (
	"context"
	"errors"
	"testing"

	"github.com/igormcsouza/omni-pkg/pkg/core"
	"github.com/igormcsouza/omni-pkg/pkg/platform"
	"github.com/igormcsouza/omni-pkg/pkg/platform/platformtest"
)

func TestSearch(t *testing.T) {
	runner := platformtest.New().
		Output("flatpak list --app", "GIMP\torg.gimp.GIMP\t2.10.36\tstable\tsystem\n").
		Output("flatpak info org.gimp.GIMP", "Installed size: 45.3 MB\n")

	got, err := NewPackageManager(&Config{Runner: runner}).Search(context.Background(), "gimp")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	want := core.Package{Name: "org.gimp.GIMP", Version: "2.10.36", Size: "45.3 MB", Source: core.SourceFlatpak}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("Search() = %+v, want [%+v]", got, want)
	}
}

func TestSearchInfoMissingLabel(t *testing.T) {
	runner := platformtest.New().
		Output("flatpak list --app", "GIMP\torg.gimp.GIMP\t2.10.36\tstable\tsystem\n").
		Output("flatpak info org.gimp.GIMP", "ID: org.gimp.GIMP\n")

	got, err := NewPackageManager(&Config{Runner: runner}).Search(context.Background(), "GIMP")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 || got[0].Size != core.SizeUnknown {
		t.Errorf("Search() = %+v, want Unknown size", got)
	}
}

func TestSearchFlatpakMissing(t *testing.T) {
	_, err := NewPackageManager(&Config{Runner: platformtest.New()}).Search(context.Background(), "gimp")
	if !errors.Is(err, platform.ErrCommandNotFound) {
		t.Errorf("Search() error = %v, want ErrCommandNotFound", err)
	}
}

func TestSearchListsWithoutQueryArgument(t *testing.T) {
	runner := platformtest.New().Output("flatpak list --app", "")

	got, err := NewPackageManager(&Config{Runner: runner}).Search(context.Background(), "gimp")
	if err != nil || len(got) != 0 {
		t.Fatalf("Search() = %+v, %v", got, err)
	}
	if len(runner.Calls) != 1 || runner.Calls[0] != "flatpak list --app" {
		t.Errorf("Calls = %v", runner.Calls)
	}
}
