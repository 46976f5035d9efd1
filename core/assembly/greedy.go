// core/assembly/greedy.go
package assembly

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"

	"seqmatch-core/dna"
)

var (
	mergesTotal       = metrics.NewCounter(`seqmatch_assembly_merges_total`)
	overlapCallsTotal = metrics.NewCounter(`seqmatch_assembly_overlap_calls_total`)
)

// IndexPolicy decides what happens to the k-mer index as reads are merged.
type IndexPolicy int

const (
	// RebuildEachRound rebuilds the index from the pool after every merge,
	// so merged reads are visible as overlap candidates.
	RebuildEachRound IndexPolicy = iota

	// StaleIndex builds the index once, before the first merge. Merged reads
	// never show up as candidates, and candidates already merged away are
	// skipped. This reproduces the classic heuristic and can yield a longer
	// superstring.
	StaleIndex
)

func (p IndexPolicy) String() string {
	switch p {
	case RebuildEachRound:
		return "rebuild"
	case StaleIndex:
		return "stale"
	}
	return fmt.Sprintf("IndexPolicy(%d)", int(p))
}

// Options tunes GreedySCSIndexed.
type Options struct {
	Policy IndexPolicy
}

// Stats describes one greedy assembly run.
type Stats struct {
	Rounds       int // merges performed
	OverlapCalls int // Overlap evaluations
	Remaining    int // reads left unmerged at the end
}

// GreedySCS merges the pair with the longest overlap (>= k) until no pair
// overlaps, comparing every ordered pair each round, then concatenates what
// is left in pool order.
func GreedySCS(reads [][]byte, k int) ([]byte, Stats, error) {
	pool, err := newPool(reads, k)
	if err != nil {
		return nil, Stats{}, err
	}
	var st Stats
	nextID := len(pool)
	for {
		ai, bi, olen := -1, -1, 0
		for i := range pool {
			for j := range pool {
				if i == j {
					continue
				}
				st.OverlapCalls++
				if o := Overlap(pool[i].seq, pool[j].seq, k); o > olen {
					ai, bi, olen = i, j, o
				}
			}
		}
		if olen == 0 {
			break
		}
		pool = merge(pool, pool[ai], pool[bi], olen, nextID)
		nextID++
		st.Rounds++
	}
	out := finish(pool, &st)
	return out, st, nil
}

// GreedySCSIndexed is GreedySCS restricted to candidate pairs (a, b) where b
// contains a's k-length suffix, found through a SuffixIndex.
func GreedySCSIndexed(reads [][]byte, k int, opt Options) ([]byte, Stats, error) {
	pool, err := newPool(reads, k)
	if err != nil {
		return nil, Stats{}, err
	}
	if opt.Policy != RebuildEachRound && opt.Policy != StaleIndex {
		return nil, Stats{}, dna.Paramf("unknown index policy %v", opt.Policy)
	}
	var st Stats
	idx := newSuffixIndex(pool, k)
	nextID := len(pool)
	for {
		live := make(map[int]int, len(pool)) // id -> pool position
		for i, r := range pool {
			live[r.id] = i
		}
		ai, bi, olen := -1, -1, 0
		for i, a := range pool {
			if len(a.seq) < k {
				continue
			}
			for _, id := range idx.Candidates(a.seq[len(a.seq)-k:]) {
				j, ok := live[id]
				if !ok || j == i {
					continue
				}
				st.OverlapCalls++
				if o := Overlap(a.seq, pool[j].seq, k); o > olen {
					ai, bi, olen = i, j, o
				}
			}
		}
		if olen == 0 {
			break
		}
		pool = merge(pool, pool[ai], pool[bi], olen, nextID)
		nextID++
		st.Rounds++
		if opt.Policy == RebuildEachRound {
			idx = idx.Rebuild(pool)
		}
	}
	out := finish(pool, &st)
	return out, st, nil
}

func newPool(reads [][]byte, k int) ([]read, error) {
	if k <= 0 {
		return nil, dna.Paramf("min overlap must be > 0, got %d", k)
	}
	pool := make([]read, len(reads))
	for i, r := range reads {
		if err := dna.Validate(r); err != nil {
			return nil, readErr(i, err)
		}
		pool[i] = read{id: i, seq: r}
	}
	return pool, nil
}

// merge drops a and b from pool and appends a+b[olen:] under a new id.
func merge(pool []read, a, b read, olen, id int) []read {
	out := make([]read, 0, len(pool)-1)
	for _, r := range pool {
		if r.id != a.id && r.id != b.id {
			out = append(out, r)
		}
	}
	seq := make([]byte, 0, len(a.seq)+len(b.seq)-olen)
	seq = append(append(seq, a.seq...), b.seq[olen:]...)
	mergesTotal.Inc()
	return append(out, read{id: id, seq: seq})
}

func finish(pool []read, st *Stats) []byte {
	st.Remaining = len(pool)
	overlapCallsTotal.Add(st.OverlapCalls)
	var out []byte
	for _, r := range pool {
		out = append(out, r.seq...)
	}
	return out
}

func readErr(i int, err error) error {
	return fmt.Errorf("read %d: %w", i, err)
}
