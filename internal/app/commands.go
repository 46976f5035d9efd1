// internal/app/commands.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"seqmatch-core/approx"
	"seqmatch-core/assembly"
	"seqmatch-core/dna"
	"seqmatch-core/editdist"
	"seqmatch-core/engine"
	"seqmatch-core/fasta"

	"seqmatch/internal/cli"
	"seqmatch/internal/cmdutil"
	"seqmatch/pkg/api"
)

func runMatch(ctx context.Context, o cli.Options, stderr io.Writer) (any, error) {
	text, textID, err := loadText(ctx, o, stderr)
	if err != nil {
		return nil, err
	}
	pattern := dna.Normalize([]byte(o.Pattern))

	cfg := engine.Config{HitCap: o.HitCap}
	maxMM := 0
	if o.Command == cli.CmdApprox {
		maxMM = o.Match.Mismatches
		if strings.EqualFold(o.Match.Method, cli.MethodNaive) {
			cfg.Naive = true
		} else {
			meth, err := approx.ParseMethod(o.Match.Method, o.Match.K, o.Match.Stride)
			if err != nil {
				return nil, err
			}
			cfg.Method = meth
		}
	}
	eng := engine.New(cfg)

	m, err := eng.Match(pattern, text, engine.Query{
		MaxMM:   maxMM,
		Exact:   o.Command == cli.CmdExact,
		RevComp: o.Match.RevComp,
	})
	if err != nil {
		return nil, err
	}
	hits := m.Hits

	method := "boyer-moore"
	if o.Command == cli.CmdApprox {
		method = eng.MethodName()
	}
	out := api.MatchV1{
		Pattern:     string(pattern),
		TextID:      textID,
		TextLength:  len(text),
		Method:      method,
		Mismatches:  maxMM,
		SegmentHits: m.SegmentHits,
		Hits:        make([]api.HitV1, 0, len(hits)),
	}
	rc := dna.MustReverseComplement(string(pattern))
	for _, h := range hits {
		p := string(pattern)
		if h.Strand == '-' {
			p = rc
		}
		win := string(text[h.Pos : h.Pos+len(p)])
		out.Hits = append(out.Hits, api.HitV1{
			Offset:     h.Pos,
			Strand:     string(h.Strand),
			Mismatches: hamming(p, win),
			Match:      win,
		})
	}

	if m.Truncated {
		cmdutil.Warnf(stderr, o.Quiet, "hit cap %d reached; output truncated", o.HitCap)
	}
	if len(out.Hits) == 0 && o.NoMatchExitCode {
		return out, ErrNoMatch
	}
	return out, nil
}

func hamming(a, b string) int {
	n := 0
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// loadText returns the search text and an id for it.
func loadText(ctx context.Context, o cli.Options, stderr io.Writer) ([]byte, string, error) {
	if o.Seq != "" {
		return dna.Normalize([]byte(o.Seq)), "seq", nil
	}
	warnTerminalStdin(o.TextFile, o.Quiet, stderr)
	text, err := fasta.ReadSequence(ctx, o.TextFile)
	if err != nil {
		return nil, "", ioErr(err)
	}
	id := o.TextFile
	if id != "-" {
		id = filepath.Base(id)
	}
	return text, id, nil
}

func runEditDist(o cli.Options) (any, error) {
	x := dna.Normalize([]byte(o.X))
	y := dna.Normalize([]byte(o.Y))
	eng := engine.New(engine.Config{})
	out := api.DistanceV1{X: string(x), Y: string(y), Mode: "global"}

	if o.BestPlacement {
		d, end, err := eng.BestPlacement(x, y)
		if err != nil {
			return nil, err
		}
		out.Mode, out.Distance, out.End = "best-placement", d, &end
		return out, nil
	}
	d, err := eng.EditDistance(x, y)
	if err != nil {
		return nil, err
	}
	out.Distance = d
	if o.Align {
		_, out.Transcript = editdist.Alignment(x, y)
	}
	return out, nil
}

func runAssemble(ctx context.Context, o cli.Options, stderr io.Writer) (any, error) {
	warnTerminalStdin(o.ReadsFile, o.Quiet, stderr)
	reads, quals, err := fasta.ReadReads(ctx, o.ReadsFile)
	if err != nil {
		return nil, ioErr(err)
	}
	if len(reads) == 0 {
		return nil, cmdutil.IOError(fmt.Errorf("%s: no reads", o.ReadsFile))
	}
	if len(quals) > 0 && quals[0] != nil {
		cmdutil.Infof(stderr, o.Quiet, "read %d reads from %s (quality scores ignored)", len(reads), o.ReadsFile)
	}

	policy := assembly.RebuildEachRound
	if o.Assemble.StaleIndex {
		policy = assembly.StaleIndex
	}
	seq, st, err := engine.New(engine.Config{Policy: policy}).Assemble(reads, o.Assemble.MinOverlap)
	if err != nil {
		return nil, err
	}
	if st.Remaining > 1 {
		cmdutil.Warnf(stderr, o.Quiet, "%d fragments share no overlap >= %d; concatenated", st.Remaining, o.Assemble.MinOverlap)
	}
	return api.AssemblyV1{
		Reads:        len(reads),
		MinOverlap:   o.Assemble.MinOverlap,
		IndexPolicy:  policy.String(),
		Rounds:       st.Rounds,
		OverlapCalls: st.OverlapCalls,
		Fragments:    st.Remaining,
		Length:       len(seq),
		Sequence:     string(seq),
	}, nil
}

func runRevComp(o cli.Options) (any, error) {
	s := dna.Normalize([]byte(o.Seq))
	rc, err := dna.ReverseComplement(s)
	if err != nil {
		return nil, err
	}
	return api.RevCompV1{Seq: string(s), RevComp: string(rc)}, nil
}

// ioErr classifies reader failures; cancellation passes through untouched.
func ioErr(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return cmdutil.IOError(err)
}

// stdinIsTerminal is swapped in tests.
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// warnTerminalStdin flags a read from "-" that would block on the keyboard.
func warnTerminalStdin(path string, quiet bool, stderr io.Writer) {
	if path == "-" && stdinIsTerminal() {
		cmdutil.Warnf(stderr, quiet, "reading sequences from the terminal; end input with Ctrl-D")
	}
}
