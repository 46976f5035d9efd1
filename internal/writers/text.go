// internal/writers/text.go
package writers

import (
	"fmt"
	"io"

	"seqmatch-core/dna"

	"seqmatch/internal/pretty"
	"seqmatch/pkg/api"
)

// HitsHeader is the header row of the text hit table.
const HitsHeader = "text_id\toffset\tstrand\tmismatches\tmatch"

// FASTA line width for assembled sequences.
const fastaWidth = 60

func init() {
	RegisterResult(FormatText, writeText)
}

func writeText(w io.Writer, payload any, opt Options) error {
	switch v := payload.(type) {
	case api.MatchV1:
		return writeHitsTSV(w, v, opt)
	case api.DistanceV1:
		return writeDistance(w, v, opt)
	case api.AssemblyV1:
		return writeAssemblyFASTA(w, v)
	case api.RevCompV1:
		_, err := fmt.Fprintln(w, v.RevComp)
		return err
	}
	return unsupported(FormatText, payload)
}

func writeHitsTSV(w io.Writer, m api.MatchV1, opt Options) error {
	if _, err := fmt.Fprintln(w, HitsHeader); err != nil {
		return err
	}
	for _, h := range m.Hits {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\n",
			m.TextID, h.Offset, h.Strand, h.Mismatches, h.Match); err != nil {
			return err
		}
		if !opt.Pretty {
			continue
		}
		probe := m.Pattern
		if h.Strand == "-" {
			probe = dna.MustReverseComplement(m.Pattern)
		}
		if _, err := io.WriteString(w, pretty.RenderHit(probe, h.Match, h.Offset, h.Strand, opt.PrettyOpt)); err != nil {
			return err
		}
	}
	return nil
}

func writeDistance(w io.Writer, d api.DistanceV1, opt Options) error {
	if _, err := fmt.Fprintf(w, "distance\t%d\n", d.Distance); err != nil {
		return err
	}
	if d.End != nil {
		if _, err := fmt.Fprintf(w, "end\t%d\n", *d.End); err != nil {
			return err
		}
	}
	if d.Transcript != "" {
		if _, err := fmt.Fprintf(w, "transcript\t%s\n", d.Transcript); err != nil {
			return err
		}
		if opt.Pretty {
			_, err := io.WriteString(w, pretty.RenderAlignment(d.X, d.Y, d.Transcript, opt.PrettyOpt))
			return err
		}
	}
	return nil
}

func writeAssemblyFASTA(w io.Writer, a api.AssemblyV1) error {
	if _, err := fmt.Fprintf(w, ">assembly reads=%d min_overlap=%d fragments=%d len=%d\n",
		a.Reads, a.MinOverlap, a.Fragments, a.Length); err != nil {
		return err
	}
	s := a.Sequence
	for len(s) > fastaWidth {
		if _, err := io.WriteString(w, s[:fastaWidth]+"\n"); err != nil {
			return err
		}
		s = s[fastaWidth:]
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}
