package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	c, err := Load(viper.New(), "")
	if err != nil {
		t.Fatal(err)
	}
	if c.Output != "text" || c.Match.Method != "boyer-moore" || c.Assemble.MinOverlap != 3 {
		t.Fatalf("defaults = %+v", c)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "conf.yaml")
	yaml := "output: json\nmatch:\n  method: automaton\n  mismatches: 2\nassemble:\n  stale-index: true\n"
	if err := os.WriteFile(fn, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SEQMATCH_MATCH_MISMATCHES", "3")
	t.Setenv("SEQMATCH_HIT_CAP", "7")

	c, err := Load(viper.New(), fn)
	if err != nil {
		t.Fatal(err)
	}
	if c.Output != "json" || c.Match.Method != "automaton" || !c.Assemble.StaleIndex {
		t.Errorf("file values not applied: %+v", c)
	}
	if c.Match.Mismatches != 3 || c.HitCap != 7 {
		t.Errorf("env overrides not applied: %+v", c)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadImplicitFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "seqmatch.yaml"), []byte("quiet: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	c, err := Load(viper.New(), "")
	if err != nil {
		t.Fatal(err)
	}
	if !c.Quiet {
		t.Fatalf("seqmatch.yaml not read: %+v", c)
	}
}
