// core/assembly/index.go
package assembly

import "github.com/cespare/xxhash/v2"

// read is a member of the assembly pool. ids are never reused, so an id
// held by a stale index can be checked against the current pool.
type read struct {
	id  int
	seq []byte
}

// SuffixIndex maps every k-mer occurring in a read to the ids of the reads
// containing it, in pool order. It is immutable once built; Rebuild makes a
// new one. Keys are xxhash digests, so a lookup may return reads that merely
// share a digest; overlap computation filters those out.
type SuffixIndex struct {
	k int
	m map[uint64][]int
}

func newSuffixIndex(pool []read, k int) *SuffixIndex {
	x := &SuffixIndex{k: k, m: make(map[uint64][]int, len(pool)*4)}
	for _, r := range pool {
		for i := 0; i+k <= len(r.seq); i++ {
			h := xxhash.Sum64(r.seq[i : i+k])
			ids := x.m[h]
			if n := len(ids); n > 0 && ids[n-1] == r.id {
				continue
			}
			x.m[h] = append(ids, r.id)
		}
	}
	return x
}

// Rebuild returns a fresh index over pool with the same k.
func (x *SuffixIndex) Rebuild(pool []read) *SuffixIndex { return newSuffixIndex(pool, x.k) }

// Candidates returns the ids of reads containing kmer.
func (x *SuffixIndex) Candidates(kmer []byte) []int { return x.m[xxhash.Sum64(kmer)] }

// Len is the number of distinct keys.
func (x *SuffixIndex) Len() int { return len(x.m) }
