// core/index/subseq.go
package index

import (
	"bytes"
	"sort"

	"seqmatch-core/dna"
)

// Subseq indexes subsequences of k symbols spaced ival apart, e.g.
// NewSubseq("ATAT", 2, 2) holds ("AA", 0) and ("TT", 1).
type Subseq struct {
	k, ival, span int
	text          []byte
	keys          []byte // len(offs)*k sampled symbols, entry i at keys[i*k:]
	order         []int  // entry indices sorted by key
}

// NewSubseq extracts text[i], text[i+ival], ... (k symbols) for every start
// offset i whose span 1+ival*(k-1) fits in text.
func NewSubseq(text []byte, k, ival int) (*Subseq, error) {
	if k <= 0 {
		return nil, dna.Paramf("k must be > 0, got %d", k)
	}
	if ival <= 0 {
		return nil, dna.Paramf("interval must be > 0, got %d", ival)
	}
	s := &Subseq{k: k, ival: ival, span: 1 + ival*(k-1), text: text}
	n := len(text) - s.span + 1
	if n < 0 {
		n = 0
	}
	s.keys = make([]byte, 0, n*k)
	s.order = make([]int, n)
	for i := 0; i < n; i++ {
		s.keys = s.sample(s.keys, text[i:])
		s.order[i] = i
	}
	sort.SliceStable(s.order, func(a, b int) bool {
		return bytes.Compare(s.entry(s.order[a]), s.entry(s.order[b])) < 0
	})
	return s, nil
}

// sample appends the strided key taken from the head of p.
func (s *Subseq) sample(dst, p []byte) []byte {
	for j := 0; j < s.span; j += s.ival {
		dst = append(dst, p[j])
	}
	return dst
}

func (s *Subseq) entry(i int) []byte { return s.keys[i*s.k : (i+1)*s.k] }

// K returns the number of symbols per key.
func (s *Subseq) K() int { return s.k }

// Interval returns the spacing between sampled symbols.
func (s *Subseq) Interval() int { return s.ival }

// Span returns the number of text positions one key covers.
func (s *Subseq) Span() int { return s.span }

// Len returns the number of indexed subsequences.
func (s *Subseq) Len() int { return len(s.order) }

// Lookup samples the head of piece the same way the text was sampled and
// returns the matching start offsets, ascending. piece must cover one span.
func (s *Subseq) Lookup(piece []byte) ([]int, error) {
	if len(piece) < s.span {
		return nil, dna.Paramf("lookup piece length %d < span %d", len(piece), s.span)
	}
	key := s.sample(make([]byte, 0, s.k), piece)
	lo := sort.Search(len(s.order), func(i int) bool {
		return bytes.Compare(s.entry(s.order[i]), key) >= 0
	})
	var hits []int
	for i := lo; i < len(s.order) && bytes.Equal(s.entry(s.order[i]), key); i++ {
		hits = append(hits, s.order[i])
	}
	return hits, nil
}

// Query returns the offsets where the whole pattern occurs exactly.
func (s *Subseq) Query(pattern []byte) ([]int, error) {
	cands, err := s.Lookup(pattern)
	if err != nil {
		return nil, err
	}
	out := cands[:0]
	for _, off := range cands {
		end := off + len(pattern)
		if end <= len(s.text) && bytes.Equal(pattern, s.text[off:end]) {
			out = append(out, off)
		}
	}
	return out, nil
}
