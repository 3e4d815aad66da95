package config

import (
	"flag"
	"testing"

	"github.com/urfave/cli"
)

func newTestContext(t *testing.T, args []string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String(InputFlag, "", "")
	set.String(OutputFlag, "", "")
	set.Bool(NoGenreFlag, false, "")
	set.Bool(DebugFlag, false, "")
	if err := set.Parse(args); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}

	return cli.NewContext(nil, set, nil)
}

func TestNew(t *testing.T) {
	c := newTestContext(t, []string{
		"-" + InputFlag, "books",
		"-" + OutputFlag, "out",
		"-" + DebugFlag,
	})

	cfg := New(c)

	if cfg.InputPath != "books" {
		t.Errorf("InputPath = %q; want %q", cfg.InputPath, "books")
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q; want %q", cfg.OutputDir, "out")
	}
	if !cfg.ShowGenre {
		t.Error("ShowGenre = false; want true")
	}
	if !cfg.DebugMode {
		t.Error("DebugMode = false; want true")
	}
}

func TestNew_NoGenre(t *testing.T) {
	c := newTestContext(t, []string{
		"-" + InputFlag, "books",
		"-" + NoGenreFlag,
	})

	cfg := New(c)

	// no-genreフラグはShowGenreを反転させる
	if cfg.ShowGenre {
		t.Error("ShowGenre = true; want false")
	}
}

func TestRegisterFlags(t *testing.T) {
	flags := RegisterCommonFlags(nil)
	flags = RegisterShowRenameFlags(flags)
	flags = RegisterUnpackFlags(flags)

	names := make(map[string]bool)
	for _, f := range flags {
		names[f.GetName()] = true
	}

	for _, want := range []string{
		InputFlag + ", i",
		DebugFlag + ", d",
		NoGenreFlag,
		OutputFlag + ", o",
	} {
		if !names[want] {
			t.Errorf("flag %q is not registered", want)
		}
	}
}
