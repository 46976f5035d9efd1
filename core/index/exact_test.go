// core/index/exact_test.go
package index

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seqmatch-core/dna"
)

func TestExactLookup(t *testing.T) {
	text := []byte("ACGTACGTACGT")
	idx, err := NewExact(text, 3)
	if err != nil {
		t.Fatalf("NewExact: %v", err)
	}
	if idx.Len() != 10 {
		t.Fatalf("Len = %d, want 10", idx.Len())
	}

	tests := []struct {
		piece string
		want  []int
	}{
		{"ACG", []int{0, 4, 8}},
		{"CGT", []int{1, 5, 9}},
		{"GTA", []int{2, 6}},
		{"AAA", nil},
	}
	for _, tc := range tests {
		got, err := idx.Lookup([]byte(tc.piece))
		if err != nil {
			t.Fatalf("Lookup(%s): %v", tc.piece, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Lookup(%s) mismatch (-want +got):\n%s", tc.piece, diff)
		}
	}
}

func TestExactLookupWrongLength(t *testing.T) {
	idx, _ := NewExact([]byte("ACGT"), 2)
	if _, err := idx.Lookup([]byte("ACG")); !errors.Is(err, dna.ErrInvalidParameters) {
		t.Fatalf("want ErrInvalidParameters, got %v", err)
	}
}

func TestExactBadK(t *testing.T) {
	for _, k := range []int{0, -3} {
		if _, err := NewExact([]byte("ACGT"), k); !errors.Is(err, dna.ErrInvalidParameters) {
			t.Errorf("k=%d: want ErrInvalidParameters, got %v", k, err)
		}
	}
}

func TestExactShortText(t *testing.T) {
	idx, err := NewExact([]byte("AC"), 5)
	if err != nil {
		t.Fatalf("NewExact: %v", err)
	}
	if idx.Len() != 0 {
		t.Fatalf("Len = %d, want 0", idx.Len())
	}
	hits, err := idx.Lookup([]byte("ACGTA"))
	if err != nil || len(hits) != 0 {
		t.Fatalf("Lookup on empty index = %v, %v", hits, err)
	}
}

func TestExactQueryVerifiesRemainder(t *testing.T) {
	text := []byte("GCTACGATCTAGAATCTA")
	idx, _ := NewExact(text, 2)
	got, err := idx.Query([]byte("TCTA"))
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if diff := cmp.Diff([]int{7, 14}, got); diff != "" {
		t.Fatalf("Query(TCTA) mismatch (-want +got):\n%s", diff)
	}
	for _, o := range got {
		if !bytes.Equal(text[o:o+4], []byte("TCTA")) {
			t.Errorf("offset %d does not hold the pattern", o)
		}
	}
}

func TestExactQueryAtTextEnd(t *testing.T) {
	idx, _ := NewExact([]byte("AAACG"), 2)
	got, _ := idx.Query([]byte("CGT"))
	if len(got) != 0 {
		t.Fatalf("Query past the text end returned %v", got)
	}
}
