// core/index/exact.go
package index

import (
	"bytes"
	"sort"

	"seqmatch-core/dna"
)

// Exact maps every length-k substring of a text to the offsets where it occurs.
type Exact struct {
	k    int
	text []byte
	offs []int // sorted by text[off:off+k], ties by ascending offset
}

// NewExact indexes every k-mer text[i:i+k], 0 <= i <= len(text)-k.
func NewExact(text []byte, k int) (*Exact, error) {
	if k <= 0 {
		return nil, dna.Paramf("k must be > 0, got %d", k)
	}
	n := len(text) - k + 1
	if n < 0 {
		n = 0
	}
	offs := make([]int, n)
	for i := range offs {
		offs[i] = i
	}
	sort.SliceStable(offs, func(a, b int) bool {
		return bytes.Compare(text[offs[a]:offs[a]+k], text[offs[b]:offs[b]+k]) < 0
	})
	return &Exact{k: k, text: text, offs: offs}, nil
}

// K returns the k-mer length the index was built with.
func (e *Exact) K() int { return e.k }

// Len returns the number of indexed k-mers.
func (e *Exact) Len() int { return len(e.offs) }

// Text returns the indexed text.
func (e *Exact) Text() []byte { return e.text }

func (e *Exact) key(i int) []byte {
	off := e.offs[i]
	return e.text[off : off+e.k]
}

// Lookup returns every offset whose k-mer equals piece, ascending. The
// offsets are candidates only; verifying a longer pattern is up to the caller.
func (e *Exact) Lookup(piece []byte) ([]int, error) {
	if len(piece) != e.k {
		return nil, dna.Paramf("lookup key length %d != k %d", len(piece), e.k)
	}
	lo := sort.Search(len(e.offs), func(i int) bool {
		return bytes.Compare(e.key(i), piece) >= 0
	})
	var hits []int
	for i := lo; i < len(e.offs) && bytes.Equal(e.key(i), piece); i++ {
		hits = append(hits, e.offs[i])
	}
	return hits, nil
}

// Query finds exact occurrences of pattern: it looks up the pattern's first
// k-mer and keeps the hits where the remainder matches as well.
func (e *Exact) Query(pattern []byte) ([]int, error) {
	if len(pattern) < e.k {
		return nil, dna.Paramf("pattern length %d < k %d", len(pattern), e.k)
	}
	cands, err := e.Lookup(pattern[:e.k])
	if err != nil {
		return nil, err
	}
	out := cands[:0]
	for _, off := range cands {
		end := off + len(pattern)
		if end > len(e.text) {
			continue
		}
		if bytes.Equal(pattern[e.k:], e.text[off+e.k:end]) {
			out = append(out, off)
		}
	}
	return out, nil
}
