// core/engine/engine.go
package engine

import (
	"sort"

	"seqmatch-core/approx"
	"seqmatch-core/assembly"
	"seqmatch-core/boyermoore"
	"seqmatch-core/dna"
	"seqmatch-core/editdist"
)

// Config holds matching and assembly parameters.
type Config struct {
	Method approx.Method        // nil = Boyer-Moore
	Policy assembly.IndexPolicy // suffix-index policy for AssembleGreedy
	HitCap int                  // max hits kept per strand (0 = unlimited)
	Naive  bool                 // approximate matching by exhaustive scan; Method ignored
}

// Engine runs queries with a fixed config. It holds no per-query state and
// may be shared.
type Engine struct {
	cfg Config
}

// New creates a new Engine.
func New(c Config) *Engine {
	if c.Method == nil {
		c.Method = approx.BoyerMoore{}
	}
	return &Engine{cfg: c}
}

// SetHitCap updates the hit cap after creation.
func (e *Engine) SetHitCap(n int) { e.cfg.HitCap = n }

// MethodName names the approximate-matching path in use.
func (e *Engine) MethodName() string {
	if e.cfg.Naive {
		return "naive"
	}
	return e.cfg.Method.Name()
}

// Hit is one alignment of a pattern on the forward ('+') or reverse ('-')
// strand. Pos is always a forward-strand offset.
type Hit struct {
	Pos    int
	Strand byte
}

// ExactMatch returns every offset where pattern occurs in text, ascending.
func (e *Engine) ExactMatch(pattern, text []byte) ([]int, error) {
	offs, _, err := e.exact(pattern, text)
	return offs, err
}

func (e *Engine) exact(pattern, text []byte) ([]int, bool, error) {
	if err := dna.Validate(text); err != nil {
		return nil, false, err
	}
	bm, err := boyermoore.New(pattern)
	if err != nil {
		return nil, false, err
	}
	offs, cut := capHits(bm.Search(text), e.cfg.HitCap)
	return offs, cut, nil
}

// ApproximateMatch returns alignments with at most maxMM mismatches.
func (e *Engine) ApproximateMatch(pattern, text []byte, maxMM int) (approx.Result, error) {
	res, _, err := e.approximate(pattern, text, maxMM)
	return res, err
}

func (e *Engine) approximate(pattern, text []byte, maxMM int) (approx.Result, bool, error) {
	if e.cfg.Naive {
		// one past the cap tells a full list from a truncated one
		limit := e.cfg.HitCap
		if limit > 0 {
			limit++
		}
		offs, err := approx.Scan(pattern, text, maxMM, limit)
		if err != nil {
			return approx.Result{}, false, err
		}
		offs, cut := capHits(offs, e.cfg.HitCap)
		return approx.Result{Offsets: offs}, cut, nil
	}
	res, err := approx.Match(pattern, text, maxMM, e.cfg.Method)
	if err != nil {
		return approx.Result{}, false, err
	}
	var cut bool
	res.Offsets, cut = capHits(res.Offsets, e.cfg.HitCap)
	return res, cut, nil
}

// Query selects the search path for Match.
type Query struct {
	MaxMM   int  // mismatch budget for approximate matching
	Exact   bool // Boyer-Moore exact search; MaxMM ignored
	RevComp bool // also search the reverse complement of the pattern
}

// Matches is the outcome of Match.
type Matches struct {
	Hits        []Hit
	SegmentHits int
	Truncated   bool // some strand had more than HitCap hits
}

// Match searches text for pattern and, with q.RevComp, for its reverse
// complement. Hits are sorted by Pos; the hit cap applies per strand.
func (e *Engine) Match(pattern, text []byte, q Query) (Matches, error) {
	find := func(p []byte) ([]int, int, bool, error) {
		if q.Exact {
			offs, cut, err := e.exact(p, text)
			return offs, len(offs), cut, err
		}
		res, cut, err := e.approximate(p, text, q.MaxMM)
		return res.Offsets, res.SegmentHits, cut, err
	}
	fwd, segHits, cut, err := find(pattern)
	if err != nil {
		return Matches{}, err
	}
	m := Matches{Hits: make([]Hit, 0, len(fwd)), SegmentHits: segHits, Truncated: cut}
	for _, p := range fwd {
		m.Hits = append(m.Hits, Hit{Pos: p, Strand: '+'})
	}
	if !q.RevComp {
		return m, nil
	}
	rc, err := dna.ReverseComplement(pattern)
	if err != nil {
		return Matches{}, err
	}
	// palindromic patterns would report every site twice
	if string(rc) != string(pattern) {
		rev, rHits, rCut, err := find(rc)
		if err != nil {
			return Matches{}, err
		}
		for _, p := range rev {
			m.Hits = append(m.Hits, Hit{Pos: p, Strand: '-'})
		}
		m.SegmentHits += rHits
		m.Truncated = m.Truncated || rCut
	}
	sort.SliceStable(m.Hits, func(i, j int) bool { return m.Hits[i].Pos < m.Hits[j].Pos })
	return m, nil
}

// MatchStrands searches pattern and its reverse complement, so hits on the
// reverse strand of text are reported too. maxMM == 0 uses the exact path.
func (e *Engine) MatchStrands(pattern, text []byte, maxMM int) ([]Hit, int, error) {
	m, err := e.Match(pattern, text, Query{MaxMM: maxMM, Exact: maxMM == 0, RevComp: true})
	return m.Hits, m.SegmentHits, err
}

// EditDistance is the Levenshtein distance between x and y.
func (e *Engine) EditDistance(x, y []byte) (int, error) {
	if err := dna.ValidateAll(dna.Arg{Name: "x", Seq: x}, dna.Arg{Name: "y", Seq: y}); err != nil {
		return 0, err
	}
	return editdist.Distance(x, y), nil
}

// BestPlacement is the minimum edit distance of pattern against any
// substring of text, with the exclusive end offset of the leftmost best
// placement.
func (e *Engine) BestPlacement(pattern, text []byte) (dist, end int, err error) {
	if len(pattern) == 0 {
		return 0, 0, dna.Paramf("empty pattern")
	}
	if err := dna.ValidateAll(dna.Arg{Name: "pattern", Seq: pattern}, dna.Arg{Name: "text", Seq: text}); err != nil {
		return 0, 0, err
	}
	dist, end = editdist.BestPlacementEnd(pattern, text)
	return dist, end, nil
}

// Assemble runs the indexed greedy assembler with the configured policy.
func (e *Engine) Assemble(reads [][]byte, minOverlap int) ([]byte, assembly.Stats, error) {
	if len(reads) == 0 {
		return nil, assembly.Stats{}, dna.Paramf("no reads")
	}
	return assembly.GreedySCSIndexed(reads, minOverlap, assembly.Options{Policy: e.cfg.Policy})
}

func capHits(offs []int, hc int) ([]int, bool) {
	if hc > 0 && len(offs) > hc {
		return offs[:hc], true
	}
	return offs, false
}
