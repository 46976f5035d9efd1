// internal/cli/options_test.go
package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// mustParse runs the command tree on args and returns the Options handed to run.
func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := parse(t, args...)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func parse(t *testing.T, args ...string) (Options, error) {
	t.Helper()
	var got Options
	root := NewRootCommand(viper.New(), func(_ *cobra.Command, o Options) error {
		got = o
		return nil
	})
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.Execute()
	return got, err
}

func TestExactInlineOK(t *testing.T) {
	o := mustParse(t, "exact", "--pattern", "ACGT", "--seq", "TTACGT", "--revcomp")
	if o.Command != CmdExact || o.Pattern != "ACGT" || o.Seq != "TTACGT" || !o.Match.RevComp {
		t.Errorf("bad exact parse %+v", o)
	}
	if o.Output != "text" {
		t.Errorf("default output = %q", o.Output)
	}
}

func TestApproxFlagsOK(t *testing.T) {
	o := mustParse(t, "approx", "-p", "ACGTAC", "-t", "ref.fa", "-n", "2",
		"--method", "subseq-index", "--k", "3", "--stride", "2", "-o", "jsonl")
	if o.Match.Mismatches != 2 || o.Match.Method != "subseq-index" || o.Match.K != 3 || o.Match.Stride != 2 {
		t.Errorf("bad approx parse %+v", o.Match)
	}
	if o.TextFile != "ref.fa" || o.Output != "jsonl" {
		t.Errorf("bad approx parse %+v", o)
	}
}

func TestAssembleDefaults(t *testing.T) {
	o := mustParse(t, "assemble", "--reads", "r.fq")
	if o.Assemble.MinOverlap != 3 || o.Assemble.StaleIndex {
		t.Errorf("assemble defaults %+v", o.Assemble)
	}
	o = mustParse(t, "assemble", "--reads", "r.fq", "-k", "5", "--stale-index")
	if o.Assemble.MinOverlap != 5 || !o.Assemble.StaleIndex {
		t.Errorf("assemble flags %+v", o.Assemble)
	}
}

func TestEnvOverridesDefault(t *testing.T) {
	t.Setenv("SEQMATCH_MATCH_METHOD", "automaton")
	o := mustParse(t, "approx", "-p", "ACGT", "-s", "ACGT", "-n", "1")
	if o.Match.Method != "automaton" {
		t.Errorf("env not applied: %q", o.Match.Method)
	}
	// explicit flag beats env
	o = mustParse(t, "approx", "-p", "ACGT", "-s", "ACGT", "-n", "1", "-m", "naive")
	if o.Match.Method != MethodNaive {
		t.Errorf("flag did not win: %q", o.Match.Method)
	}
}

func TestConfigFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(fn, []byte("output: json\nassemble:\n  min-overlap: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	o := mustParse(t, "--config", fn, "assemble", "--reads", "r.fa")
	if o.Output != "json" || o.Assemble.MinOverlap != 9 {
		t.Errorf("config file not applied: %+v", o)
	}
}

func TestUsageErrors(t *testing.T) {
	cases := map[string][]string{
		"no pattern":        {"exact", "--seq", "ACGT"},
		"no text":           {"exact", "--pattern", "ACGT"},
		"text and seq":      {"exact", "-p", "A", "-t", "x.fa", "-s", "ACGT"},
		"negative n":        {"approx", "-p", "A", "-s", "A", "-n", "-1"},
		"negative k":        {"approx", "-p", "A", "-s", "A", "--k", "-2"},
		"bad output":        {"revcomp", "-s", "ACGT", "-o", "xml"},
		"negative hit cap":  {"revcomp", "-s", "ACGT", "--hit-cap", "-1"},
		"align conflict":    {"editdist", "--x", "A", "--y", "C", "--align", "--best-placement"},
		"empty bp pattern":  {"editdist", "--y", "C", "--best-placement"},
		"no reads":          {"assemble"},
		"zero overlap":      {"assemble", "-r", "r.fa", "-k", "0"},
		"no revcomp seq":    {"revcomp"},
		"unknown flag":      {"exact", "--nope"},
		"bad int":           {"approx", "-p", "A", "-s", "A", "-n", "two"},
		"positional":        {"revcomp", "-s", "ACGT", "extra"},
		"missing conf file": {"--config", "/nonexistent/seqmatch.yaml", "revcomp", "-s", "A"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parse(t, args...)
			if !errors.Is(err, ErrUsage) {
				t.Fatalf("want ErrUsage, got %v", err)
			}
		})
	}
}

func TestValidateUnknownCommand(t *testing.T) {
	o := Options{Command: "frobnicate"}
	o.Output = "text"
	if err := o.Validate(); !errors.Is(err, ErrUsage) {
		t.Fatalf("want ErrUsage, got %v", err)
	}
}
