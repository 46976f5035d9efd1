// core/assembly/assembly_test.go
package assembly

import (
	"bytes"
	"errors"
	"testing"

	"seqmatch-core/dna"
)

func toBytes(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		a, b string
		min  int
		want int
	}{
		{"ATGCAAT", "CAATCCC", 2, 4},
		{"ATGCAAT", "CAATCCC", 5, 0},
		{"TTACGT", "CGTACCGT", 3, 3},
		{"TTACGT", "GTACCGT", 3, 0},
		{"ACGT", "ACGT", 1, 4},
		{"A", "ACGT", 2, 0},
	}
	for _, tc := range tests {
		if got := Overlap([]byte(tc.a), []byte(tc.b), tc.min); got != tc.want {
			t.Errorf("Overlap(%s,%s,%d) = %d, want %d", tc.a, tc.b, tc.min, got, tc.want)
		}
	}
}

func containsAll(t *testing.T, sup []byte, reads [][]byte) {
	t.Helper()
	for _, r := range reads {
		if !bytes.Contains(sup, r) {
			t.Errorf("superstring %s lacks read %s", sup, r)
		}
	}
}

func TestSCS(t *testing.T) {
	reads := toBytes("ACGGTACGAGC", "GAGCTTCGGA", "GACACGG")
	got, err := SCS(reads)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "GACACGGTACGAGCTTCGGA" {
		t.Fatalf("SCS = %s", got)
	}
}

func TestAllSCS(t *testing.T) {
	reads := toBytes("CAT", "CTT", "TGC", "TGG", "GAT", "ATT")
	all, err := AllSCS(reads)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) == 0 {
		t.Fatal("no superstrings")
	}
	for i, s := range all {
		if len(s) != 12 {
			t.Errorf("superstring %s has length %d, want 12", s, len(s))
		}
		if i > 0 && bytes.Compare(all[i-1], s) >= 0 {
			t.Errorf("results not sorted and distinct at %d", i)
		}
		containsAll(t, s, reads)
	}
}

func TestSCSTooManyReads(t *testing.T) {
	reads := make([][]byte, MaxSCSReads+1)
	for i := range reads {
		reads[i] = []byte("ACGT")
	}
	if _, err := SCS(reads); !errors.Is(err, dna.ErrInvalidParameters) {
		t.Fatalf("want ErrInvalidParameters, got %v", err)
	}
}

func TestGreedyLectureExample(t *testing.T) {
	reads := toBytes("CAT", "CTT", "TGC", "TGG", "GAT", "ATT")

	plain, _, err := GreedySCS(reads, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(plain) != 16 {
		t.Errorf("GreedySCS length %d (%s), want 16", len(plain), plain)
	}
	containsAll(t, plain, reads)

	for _, pol := range []IndexPolicy{RebuildEachRound, StaleIndex} {
		got, st, err := GreedySCSIndexed(reads, 2, Options{Policy: pol})
		if err != nil {
			t.Fatalf("%v: %v", pol, err)
		}
		if len(got) != 16 {
			t.Errorf("%v: length %d (%s), want 16", pol, len(got), got)
		}
		containsAll(t, got, reads)
		if st.Rounds == 0 {
			t.Errorf("%v: no merges recorded", pol)
		}
	}
}

// After CTAG+AGA and GAAA merge into AGAAA, only a rebuilt index can offer
// AGAAA as the partner of CACTAG.
func TestStaleIndexChangesResult(t *testing.T) {
	reads := toBytes("CACT", "AGA", "GAAA", "CTAG")

	fresh, fst, err := GreedySCSIndexed(reads, 2, Options{Policy: RebuildEachRound})
	if err != nil {
		t.Fatal(err)
	}
	stale, sst, err := GreedySCSIndexed(reads, 2, Options{Policy: StaleIndex})
	if err != nil {
		t.Fatal(err)
	}
	if string(fresh) != "CACTAGAAA" || fst.Rounds != 3 || fst.Remaining != 1 {
		t.Errorf("rebuild: %s %+v, want CACTAGAAA after 3 rounds", fresh, fst)
	}
	if string(stale) != "CACTAGAGAAA" || sst.Rounds != 2 || sst.Remaining != 2 {
		t.Errorf("stale: %s %+v, want CACTAGAGAAA after 2 rounds", stale, sst)
	}
	containsAll(t, fresh, reads)
	containsAll(t, stale, reads)

	plain, _, _ := GreedySCS(reads, 2)
	if !bytes.Equal(plain, fresh) {
		t.Errorf("rebuilt index %s disagrees with exhaustive greedy %s", fresh, plain)
	}
}

func TestIndexedFewerOverlapCalls(t *testing.T) {
	reads := toBytes("ACGGTACGAGC", "GAGCTTCGGA", "GACACGG", "TTTTTTTT", "CCCCCCCC")
	_, plain, _ := GreedySCS(reads, 3)
	_, idx, _ := GreedySCSIndexed(reads, 3, Options{})
	if idx.OverlapCalls >= plain.OverlapCalls {
		t.Fatalf("indexed made %d overlap calls, exhaustive %d", idx.OverlapCalls, plain.OverlapCalls)
	}
}

func TestGreedyErrors(t *testing.T) {
	if _, _, err := GreedySCS(toBytes("ACGT"), 0); !errors.Is(err, dna.ErrInvalidParameters) {
		t.Errorf("k=0: %v", err)
	}
	if _, _, err := GreedySCSIndexed(toBytes("ACGT", "AXGT"), 2, Options{}); !errors.Is(err, dna.ErrInvalidSymbol) {
		t.Errorf("bad read: %v", err)
	}
	if _, _, err := GreedySCSIndexed(toBytes("ACGT"), 2, Options{Policy: IndexPolicy(9)}); !errors.Is(err, dna.ErrInvalidParameters) {
		t.Errorf("bad policy: %v", err)
	}
}

func TestGreedyNoOverlap(t *testing.T) {
	got, st, err := GreedySCSIndexed(toBytes("AAAA", "CCCC"), 2, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "AAAACCCC" || st.Rounds != 0 || st.Remaining != 2 {
		t.Fatalf("got %s %+v", got, st)
	}
}

func TestSuffixIndexCandidates(t *testing.T) {
	pool := []read{{0, []byte("ACGTT")}, {1, []byte("GTTA")}, {2, []byte("CCCC")}}
	x := newSuffixIndex(pool, 3)
	if got := x.Candidates([]byte("GTT")); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("Candidates(GTT) = %v, want [0 1]", got)
	}
	if got := x.Candidates([]byte("CCC")); len(got) != 1 || got[0] != 2 {
		t.Fatalf("Candidates(CCC) = %v, want [2]", got)
	}
	r := x.Rebuild(pool[:1])
	if got := r.Candidates([]byte("GTT")); len(got) != 1 {
		t.Fatalf("rebuilt Candidates(GTT) = %v, want [0]", got)
	}
}
