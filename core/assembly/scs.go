// core/assembly/scs.go
package assembly

import (
	"bytes"
	"sort"

	"seqmatch-core/dna"
)

// MaxSCSReads bounds the brute-force search, which is factorial in the
// number of reads.
const MaxSCSReads = 10

// SCS returns a shortest common superstring by trying every ordering of the
// reads. When several orderings tie, the first in lexicographic index order
// wins.
func SCS(reads [][]byte) ([]byte, error) {
	all, err := scs(reads, false)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

// AllSCS returns every distinct shortest common superstring, sorted.
func AllSCS(reads [][]byte) ([][]byte, error) {
	all, err := scs(reads, true)
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool { return bytes.Compare(all[i], all[j]) < 0 })
	return all, nil
}

func scs(reads [][]byte, collect bool) ([][]byte, error) {
	if len(reads) > MaxSCSReads {
		return nil, dna.Paramf("brute-force SCS limited to %d reads, got %d", MaxSCSReads, len(reads))
	}
	for i, r := range reads {
		if err := dna.Validate(r); err != nil {
			return nil, readErr(i, err)
		}
	}
	if len(reads) == 0 {
		return nil, nil
	}

	var (
		best  [][]byte
		seen  = map[string]bool{}
		perm  = make([]int, 0, len(reads))
		used  = make([]bool, len(reads))
		visit func()
	)
	visit = func() {
		if len(perm) == len(reads) {
			sup := append([]byte(nil), reads[perm[0]]...)
			for i := 0; i+1 < len(perm); i++ {
				o := Overlap(reads[perm[i]], reads[perm[i+1]], 1)
				sup = append(sup, reads[perm[i+1]][o:]...)
			}
			switch {
			case len(best) == 0 || len(sup) < len(best[0]):
				best = [][]byte{sup}
				seen = map[string]bool{string(sup): true}
			case collect && len(sup) == len(best[0]) && !seen[string(sup)]:
				best = append(best, sup)
				seen[string(sup)] = true
			}
			return
		}
		for i := range reads {
			if used[i] {
				continue
			}
			used[i] = true
			perm = append(perm, i)
			visit()
			perm = perm[:len(perm)-1]
			used[i] = false
		}
	}
	visit()
	return best, nil
}
