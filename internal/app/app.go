// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/VictoriaMetrics/metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seqmatch/internal/cli"
	"seqmatch/internal/cmdutil"
	"seqmatch/internal/pretty"
	"seqmatch/internal/writers"
)

// ErrNoMatch is returned when --no-match-exit-code is set and a search found
// nothing. Output has already been written.
var ErrNoMatch = errors.New("no match")

// RunContext executes argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	var dumpMetrics bool
	root := cli.NewRootCommand(viper.New(), func(cmd *cobra.Command, o cli.Options) error {
		dumpMetrics = o.Metrics
		return execute(cmd.Context(), o, outw, stderr)
	})
	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
	}
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	if e := writers.IgnoreBrokenPipe(outw.Flush()); e != nil && err == nil {
		err = cmdutil.IOError(e)
	}
	if dumpMetrics {
		metrics.WritePrometheus(stderr, false)
	}

	code := exitCode(err)
	switch code {
	case cmdutil.ExitOK, cmdutil.ExitNoMatch, cmdutil.ExitCanceled:
	case cmdutil.ExitUsage:
		_, _ = fmt.Fprintln(stderr, err)
		_, _ = fmt.Fprintln(stderr, "Run 'seqmatch --help' for usage.")
	default:
		_, _ = fmt.Fprintln(stderr, err)
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return cmdutil.ExitOK
	case errors.Is(err, ErrNoMatch):
		return cmdutil.ExitNoMatch
	case errors.Is(err, context.Canceled):
		return cmdutil.ExitCanceled
	case errors.Is(err, cmdutil.ErrIO):
		return cmdutil.ExitIO
	}
	// usage, invalid parameters and invalid symbols
	return cmdutil.ExitUsage
}

func execute(ctx context.Context, o cli.Options, w io.Writer, stderr io.Writer) error {
	var (
		payload any
		err     error
	)
	switch o.Command {
	case cli.CmdExact, cli.CmdApprox:
		payload, err = runMatch(ctx, o, stderr)
	case cli.CmdEditDist:
		payload, err = runEditDist(o)
	case cli.CmdAssemble:
		payload, err = runAssemble(ctx, o, stderr)
	case cli.CmdRevComp:
		payload, err = runRevComp(o)
	default:
		return fmt.Errorf("%w: unknown command %q", cli.ErrUsage, o.Command)
	}
	if err != nil && !errors.Is(err, ErrNoMatch) {
		return err
	}
	wopt := writers.Options{Pretty: o.Pretty, PrettyOpt: pretty.DefaultOptions}
	if werr := writers.IgnoreBrokenPipe(writers.WriteResult(o.Output, w, payload, wopt)); werr != nil {
		return cmdutil.IOError(werr)
	}
	return err
}
