// core/approx/method.go
package approx

import (
	"fmt"
	"strings"

	"seqmatch-core/dna"
)

// Method selects how pattern pieces are located exactly in the text. The set
// of implementations is closed: only the types in this package satisfy it.
type Method interface {
	Name() string
	method()
}

// BoyerMoore scans the text once per segment with a Boyer-Moore matcher.
type BoyerMoore struct{}

// SubstringIndex builds one k-mer index over the text and looks up each
// segment's leading K-mer. K == 0 uses the segment length.
type SubstringIndex struct {
	K int
}

// SubseqIndex builds a strided subsequence index over the text.
//
// With Stride == 0 the pattern is split into n+1 interleaved phases
// p[i], p[i+n+1], ... and each phase is looked up with stride n+1; with
// Stride > 0 each contiguous segment is sampled with that stride. K == 0
// takes the largest key that fits.
type SubseqIndex struct {
	K      int
	Stride int
}

// Automaton finds all segments in a single pass with an Aho-Corasick automaton.
type Automaton struct{}

func (BoyerMoore) Name() string     { return "boyer-moore" }
func (SubstringIndex) Name() string { return "substring-index" }
func (SubseqIndex) Name() string    { return "subseq-index" }
func (Automaton) Name() string      { return "automaton" }

func (BoyerMoore) method()     {}
func (SubstringIndex) method() {}
func (SubseqIndex) method()    {}
func (Automaton) method()      {}

// Methods lists the accepted method names.
var Methods = []string{"boyer-moore", "substring-index", "subseq-index", "automaton"}

// ParseMethod maps a CLI name to a Method. k and stride feed the index-based
// methods and are ignored otherwise.
func ParseMethod(name string, k, stride int) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "boyer-moore", "boyermoore", "bm":
		return BoyerMoore{}, nil
	case "substring-index", "substringindex", "index":
		return SubstringIndex{K: k}, nil
	case "subseq-index", "subseqindex", "subseq":
		return SubseqIndex{K: k, Stride: stride}, nil
	case "automaton", "aho-corasick", "ac":
		return Automaton{}, nil
	}
	return nil, fmt.Errorf("%w %q (want one of %s)", dna.ErrUnsupportedMethod, name, strings.Join(Methods, ", "))
}
