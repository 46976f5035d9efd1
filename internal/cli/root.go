// internal/cli/root.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"seqmatch/internal/config"
)

// Version is reported by --version.
var Version = "0.1.0"

// RunFunc executes one validated invocation.
type RunFunc func(cmd *cobra.Command, opt Options) error

// flag name -> viper key, for every flag that may also come from the
// config file or environment.
var flagKeys = map[string]string{
	"output":             "output",
	"quiet":              "quiet",
	"pretty":             "pretty",
	"metrics":            "metrics",
	"hit-cap":            "hit-cap",
	"no-match-exit-code": "no-match-exit-code",
	"mismatches":         "match.mismatches",
	"method":             "match.method",
	"k":                  "match.k",
	"stride":             "match.stride",
	"revcomp":            "match.revcomp",
	"min-overlap":        "assemble.min-overlap",
	"stale-index":        "assemble.stale-index",
}

// NewRootCommand builds the seqmatch command tree. Settings resolve through v;
// run receives validated Options.
func NewRootCommand(v *viper.Viper, run RunFunc) *cobra.Command {
	var opt Options

	root := &cobra.Command{
		Use:   "seqmatch",
		Short: "Exact and approximate DNA matching, edit distance and greedy assembly",
		Long: `seqmatch finds DNA patterns in a text exactly (Boyer-Moore) or with up to n
mismatches (pigeonhole search), computes edit distances, and assembles reads
into a superstring with an indexed greedy heuristic.

Settings are read from flags, SEQMATCH_* environment variables and an optional
seqmatch.yaml, in that order of priority.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&opt.ConfigFile, "config", "", "config file (default ./seqmatch.yaml if present)")
	pf.StringP("output", "o", "text", "output format: text | json | jsonl")
	pf.BoolP("quiet", "q", false, "suppress warnings")
	pf.Bool("pretty", false, "ASCII alignment block under each hit or transcript (text output)")
	pf.Bool("metrics", false, "write Prometheus metrics to stderr on exit")
	pf.Int("hit-cap", 0, "max hits reported per strand (0 = unlimited)")
	pf.Bool("no-match-exit-code", false, "exit 1 when nothing matched")

	runE := func(name string) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			o, err := resolve(v, cmd, opt, name)
			if err != nil {
				return err
			}
			return run(cmd, o)
		}
	}

	exact := &cobra.Command{
		Use:     "exact",
		Short:   "Find exact occurrences of a pattern (Boyer-Moore)",
		Example: "  seqmatch exact --pattern ACGT --text genome.fa.gz",
		Args:    noArgs,
		RunE:    runE(CmdExact),
	}
	searchFlags(exact.Flags(), &opt)

	approx := &cobra.Command{
		Use:   "approx",
		Short: "Find occurrences with up to n mismatches",
		Long: `Find every alignment of a pattern with at most n mismatches (no indels).

The pattern is split into n+1 segments; at least one must match exactly
(pigeonhole principle). Segments are located with the chosen method and each
candidate alignment is verified. "naive" scans every alignment instead.`,
		Example: "  seqmatch approx -p GGCGCGGTGGCTCACGCCTGTAAT -t chr1.fa -n 2 --method subseq-index --stride 3",
		Aliases: []string{"approximate"},
		Args:    noArgs,
		RunE:    runE(CmdApprox),
	}
	searchFlags(approx.Flags(), &opt)
	approx.Flags().IntP("mismatches", "n", 0, "max mismatches per alignment")
	approx.Flags().StringP("method", "m", "boyer-moore", "boyer-moore | substring-index | subseq-index | automaton | naive")
	approx.Flags().Int("k", 0, "index key length (0 = derive from segment length)")
	approx.Flags().Int("stride", 0, "subseq-index stride (0 = interleaved phases)")

	editdist := &cobra.Command{
		Use:     "editdist",
		Short:   "Edit distance between two sequences",
		Example: "  seqmatch editdist --x GCGTATGC --y TATTGGCTATACGGTT --best-placement",
		Aliases: []string{"ed"},
		Args:    noArgs,
		RunE:    runE(CmdEditDist),
	}
	editdist.Flags().StringVar(&opt.X, "x", "", "first sequence (the pattern with --best-placement)")
	editdist.Flags().StringVar(&opt.Y, "y", "", "second sequence (the text with --best-placement)")
	editdist.Flags().BoolVar(&opt.BestPlacement, "best-placement", false, "min distance of x against any substring of y")
	editdist.Flags().BoolVar(&opt.Align, "align", false, "also print an edit transcript (M/R/I/D)")

	assemble := &cobra.Command{
		Use:     "assemble",
		Short:   "Greedy shortest-common-superstring assembly of reads",
		Example: "  seqmatch assemble --reads reads.fq --min-overlap 30",
		Args:    noArgs,
		RunE:    runE(CmdAssemble),
	}
	assemble.Flags().StringVarP(&opt.ReadsFile, "reads", "r", "", "FASTA/FASTQ reads (gzip ok, '-' for stdin)")
	assemble.Flags().IntP("min-overlap", "k", 3, "minimum overlap between merged reads")
	assemble.Flags().Bool("stale-index", false, "build the overlap index once instead of after every merge")

	revcomp := &cobra.Command{
		Use:   "revcomp",
		Short: "Reverse complement a sequence",
		Args:  noArgs,
		RunE:  runE(CmdRevComp),
	}
	revcomp.Flags().StringVarP(&opt.Seq, "seq", "s", "", "sequence")

	root.AddCommand(exact, approx, editdist, assemble, revcomp)
	return root
}

func searchFlags(fs *pflag.FlagSet, opt *Options) {
	fs.StringVarP(&opt.Pattern, "pattern", "p", "", "pattern to search for")
	fs.StringVarP(&opt.TextFile, "text", "t", "", "FASTA/FASTQ text (gzip ok, '-' for stdin)")
	fs.StringVarP(&opt.Seq, "seq", "s", "", "inline text")
	fs.Bool("revcomp", false, "also search the reverse complement")
}

// resolve binds the running command's flags to v, loads the merged config
// and validates the result.
func resolve(v *viper.Viper, cmd *cobra.Command, opt Options, name string) (Options, error) {
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return opt, err
	}
	cfg, err := config.Load(v, opt.ConfigFile)
	if err != nil {
		return opt, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	opt.Config = cfg
	opt.Command = name
	if err := opt.Validate(); err != nil {
		return opt, err
	}
	return opt, nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("%s takes no positional arguments, got %q", cmd.CommandPath(), args)
	}
	return nil
}
