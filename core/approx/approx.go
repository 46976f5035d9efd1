// core/approx/approx.go
package approx

import (
	"fmt"
	"sort"

	"github.com/VictoriaMetrics/metrics"

	"seqmatch-core/boyermoore"
	"seqmatch-core/dna"
	"seqmatch-core/index"
)

var (
	segmentHitsTotal = metrics.NewCounter(`seqmatch_approx_segment_hits_total`)
	verifiedTotal    = metrics.NewCounter(`seqmatch_approx_verified_alignments_total`)
)

// Result is the outcome of one approximate search.
type Result struct {
	Offsets     []int // alignment starts with <= n mismatches, ascending
	SegmentHits int   // raw exact piece hits inspected (diagnostic)
}

// piece is a part of the pattern that must match exactly somewhere.
// [exactLo, exactHi) is the pattern range a hit guarantees, so verification
// may skip it.
type piece struct {
	sym              []byte
	start            int // pattern position of sym[0]
	exactLo, exactHi int
}

// Match reports every alignment of pattern in text with at most n mismatches.
func Match(pattern, text []byte, n int, m Method) (Result, error) {
	if err := checkArgs(pattern, text, n); err != nil {
		return Result{}, err
	}
	if m == nil {
		return Result{}, fmt.Errorf("%w: nil method", dna.ErrUnsupportedMethod)
	}

	var (
		hits [][2]int // (text offset of piece, piece index)
		ps   []piece
		err  error
	)
	switch mm := m.(type) {
	case BoyerMoore:
		ps = segments(pattern, n)
		hits, err = findBoyerMoore(ps, text)
	case SubstringIndex:
		ps = segments(pattern, n)
		hits, err = findSubstringIndex(ps, text, mm.K)
	case SubseqIndex:
		ps, hits, err = findSubseqIndex(pattern, text, n, mm)
	case Automaton:
		ps = segments(pattern, n)
		hits = findAutomaton(ps, text)
	default:
		return Result{}, fmt.Errorf("%w: %T", dna.ErrUnsupportedMethod, m)
	}
	if err != nil {
		return Result{}, err
	}
	metrics.GetOrCreateCounter(fmt.Sprintf(`seqmatch_approx_calls_total{method=%q}`, m.Name())).Inc()

	res := Result{SegmentHits: len(hits)}
	segmentHitsTotal.Add(len(hits))

	checked := make(map[int]bool)
	for _, h := range hits {
		pc := ps[h[1]]
		start := h[0] - pc.start
		if start < 0 || start+len(pattern) > len(text) {
			continue
		}
		if _, done := checked[start]; done {
			continue
		}
		checked[start] = verifyAt(text, start, pattern, n, pc.exactLo, pc.exactHi)
	}
	res.Offsets = make([]int, 0, len(checked))
	for off, ok := range checked {
		if ok {
			res.Offsets = append(res.Offsets, off)
		}
	}
	sort.Ints(res.Offsets)
	verifiedTotal.Add(len(res.Offsets))
	return res, nil
}

func checkArgs(pattern, text []byte, n int) error {
	switch {
	case n < 0:
		return dna.Paramf("max mismatches must be >= 0, got %d", n)
	case len(pattern) == 0:
		return dna.Paramf("empty pattern")
	case len(text) == 0:
		return dna.Paramf("empty text")
	case n+1 > len(pattern):
		return dna.Paramf("pattern of length %d cannot be split into %d pieces", len(pattern), n+1)
	}
	if err := dna.Validate(pattern); err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	if err := dna.Validate(text); err != nil {
		return fmt.Errorf("text: %w", err)
	}
	return nil
}

// segments splits pattern into n+1 contiguous pieces of len/(n+1) symbols;
// the last one absorbs the remainder.
func segments(pattern []byte, n int) []piece {
	segLen := len(pattern) / (n + 1)
	ps := make([]piece, n+1)
	for i := range ps {
		start, end := i*segLen, (i+1)*segLen
		if i == n {
			end = len(pattern)
		}
		ps[i] = piece{sym: pattern[start:end], start: start, exactLo: start, exactHi: end}
	}
	return ps
}

func findBoyerMoore(ps []piece, text []byte) ([][2]int, error) {
	var hits [][2]int
	for i, pc := range ps {
		bm, err := boyermoore.New(pc.sym)
		if err != nil {
			return nil, err
		}
		for _, off := range bm.Search(text) {
			hits = append(hits, [2]int{off, i})
		}
	}
	return hits, nil
}

func findSubstringIndex(ps []piece, text []byte, k int) ([][2]int, error) {
	shortest := len(ps[0].sym)
	if k == 0 {
		k = shortest
	}
	if k > shortest {
		return nil, dna.Paramf("index k %d exceeds segment length %d", k, shortest)
	}
	idx, err := index.NewExact(text, k)
	if err != nil {
		return nil, err
	}
	var hits [][2]int
	for i := range ps {
		// only the leading k-mer is guaranteed exact by a hit
		ps[i].exactHi = ps[i].start + k
		offs, err := idx.Lookup(ps[i].sym[:k])
		if err != nil {
			return nil, err
		}
		for _, off := range offs {
			hits = append(hits, [2]int{off, i})
		}
	}
	return hits, nil
}

func findSubseqIndex(pattern, text []byte, n int, m SubseqIndex) ([]piece, [][2]int, error) {
	var ps []piece
	stride, k := m.Stride, m.K
	if stride == 0 {
		// interleaved phases p[i::n+1]; phase n is the shortest
		stride = n + 1
		maxK := (len(pattern)-1-n)/stride + 1
		if k == 0 {
			k = maxK
		}
		if k > maxK {
			return nil, nil, dna.Paramf("subseq k %d exceeds %d symbols per phase", k, maxK)
		}
		for i := 0; i <= n; i++ {
			ps = append(ps, piece{sym: pattern[i:], start: i})
		}
	} else {
		ps = segments(pattern, n)
		shortest := len(ps[0].sym)
		maxK := (shortest-1)/stride + 1
		if k == 0 {
			k = maxK
		}
		if k > maxK {
			return nil, nil, dna.Paramf("subseq k %d with stride %d does not fit segment length %d", k, stride, shortest)
		}
		for i := range ps {
			ps[i].exactLo, ps[i].exactHi = 0, 0
		}
	}
	idx, err := index.NewSubseq(text, k, stride)
	if err != nil {
		return nil, nil, err
	}
	var hits [][2]int
	for i, pc := range ps {
		offs, err := idx.Lookup(pc.sym)
		if err != nil {
			return nil, nil, err
		}
		for _, off := range offs {
			hits = append(hits, [2]int{off, i})
		}
	}
	return ps, hits, nil
}

func findAutomaton(ps []piece, text []byte) [][2]int {
	pats := make([][]byte, len(ps))
	for i, pc := range ps {
		pats[i] = pc.sym
	}
	nodes := buildAC(pats)
	acHits := scanAC(text, nodes, pats)
	hits := make([][2]int, len(acHits))
	for i, h := range acHits {
		hits[i] = [2]int{h.Pos, h.PatIdx}
	}
	return hits
}

// verifyAt counts mismatches of pattern against text[start:], skipping the
// range [skipLo, skipHi) already known to match, and gives up past maxMM.
func verifyAt(text []byte, start int, pattern []byte, maxMM, skipLo, skipHi int) bool {
	mm := 0
	for j := 0; j < len(pattern); j++ {
		if j == skipLo && skipHi > skipLo {
			j = skipHi - 1
			continue
		}
		if text[start+j] != pattern[j] {
			mm++
			if mm > maxMM {
				return false
			}
		}
	}
	return true
}
