// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"seqmatch/internal/config"
)

// Subcommand names.
const (
	CmdExact    = "exact"
	CmdApprox   = "approx"
	CmdEditDist = "editdist"
	CmdAssemble = "assemble"
	CmdRevComp  = "revcomp"
)

// MethodNaive selects the exhaustive scan instead of a pigeonhole method.
const MethodNaive = "naive"

// Output formats.
var Formats = []string{"text", "json", "jsonl"}

// ErrUsage marks errors caused by bad command-line input.
var ErrUsage = errors.New("usage")

// Options holds the arguments of one invocation after flags, config file and
// environment have been merged.
type Options struct {
	Command    string
	ConfigFile string

	// exact / approx
	Pattern  string
	TextFile string
	Seq      string // inline text for exact/approx, input for revcomp

	// editdist
	X, Y          string
	BestPlacement bool
	Align         bool

	// assemble
	ReadsFile string

	config.Config
}

func usagef(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, a...))
}

// Validate checks option combinations for o.Command.
func (o Options) Validate() error {
	if !contains(Formats, o.Output) {
		return usagef("invalid --output %q", o.Output)
	}
	if o.HitCap < 0 {
		return usagef("--hit-cap must be >= 0")
	}
	switch o.Command {
	case CmdExact, CmdApprox:
		if o.Pattern == "" {
			return usagef("--pattern is required")
		}
		switch {
		case o.TextFile != "" && o.Seq != "":
			return usagef("--text conflicts with --seq")
		case o.TextFile == "" && o.Seq == "":
			return usagef("provide --text or --seq")
		}
		if o.Command == CmdExact {
			return nil
		}
		if o.Match.Mismatches < 0 {
			return usagef("--mismatches must be >= 0")
		}
		if o.Match.K < 0 || o.Match.Stride < 0 {
			return usagef("--k and --stride must be >= 0")
		}
		if o.Match.Method == "" {
			return usagef("--method is required")
		}
	case CmdEditDist:
		if o.Align && o.BestPlacement {
			return usagef("--align conflicts with --best-placement")
		}
		if o.BestPlacement && o.X == "" {
			return usagef("--best-placement needs a non-empty --x pattern")
		}
	case CmdAssemble:
		if o.ReadsFile == "" {
			return usagef("--reads is required")
		}
		if o.Assemble.MinOverlap < 1 {
			return usagef("--min-overlap must be >= 1")
		}
	case CmdRevComp:
		if o.Seq == "" {
			return usagef("--seq is required")
		}
	default:
		return usagef("unknown command %q", o.Command)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
