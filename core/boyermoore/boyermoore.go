// core/boyermoore/boyermoore.go
package boyermoore

import "seqmatch-core/dna"

// Matcher holds the skip tables for one pattern. It is immutable after New
// and may be reused against any number of texts.
type Matcher struct {
	p       []byte
	badChar []int
	bigL    []int
	smallLp []int
}

// Stats counts the work done by one scan.
type Stats struct {
	Alignments  int // alignments tried
	Comparisons int // character comparisons
}

// New preprocesses pattern into bad-character and good-suffix tables.
func New(pattern []byte) (*Matcher, error) {
	if len(pattern) == 0 {
		return nil, dna.Paramf("empty pattern")
	}
	if err := dna.Validate(pattern); err != nil {
		return nil, err
	}
	n := nArray(pattern)
	return &Matcher{
		p:       pattern,
		badChar: denseBadChar(pattern),
		bigL:    bigL(bigLPrime(len(pattern), n)),
		smallLp: smallLPrime(n),
	}, nil
}

// Pattern returns the preprocessed pattern.
func (m *Matcher) Pattern() []byte { return m.p }

// BadCharacter is the shift implied by a mismatch at pattern position j
// against text symbol c: it lines c up with its rightmost occurrence in
// p[:j], or moves the pattern past j when c does not occur there.
func (m *Matcher) BadCharacter(j int, c byte) int {
	return j - (m.badChar[j*nCols+int(col[c])] - 1)
}

// GoodSuffix is the shift implied by a mismatch at pattern position j once
// p[j+1:] has matched.
func (m *Matcher) GoodSuffix(j int) int {
	n := len(m.bigL)
	if j == n-1 {
		return 0
	}
	j++
	if m.bigL[j] > 0 {
		return n - m.bigL[j]
	}
	return n - m.smallLp[j]
}

// Search returns every offset where the pattern occurs in text, ascending.
// Overlapping occurrences are all reported.
func (m *Matcher) Search(text []byte) []int {
	out, _ := m.SearchCounted(text)
	return out
}

// SearchCounted is Search plus alignment and comparison counts.
func (m *Matcher) SearchCounted(text []byte) ([]int, Stats) {
	var (
		out []int
		st  Stats
		pl  = len(m.p)
	)
	for i := 0; i <= len(text)-pl; {
		st.Alignments++
		shift := 1
		matched := true
		for j := pl - 1; j >= 0; j-- {
			st.Comparisons++
			if c := text[i+j]; m.p[j] != c {
				shift = max(shift, m.BadCharacter(j, c), m.GoodSuffix(j))
				matched = false
				break
			}
		}
		if matched {
			out = append(out, i)
		}
		i += shift
	}
	return out, st
}
