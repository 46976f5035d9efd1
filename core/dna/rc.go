// core/dna/rc.go
package dna

import "fmt"

// Seq is a DNA sequence over {A,C,G,T,N}.
type Seq = []byte

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['N'] = 'N'
}

// IsBase reports whether b belongs to the alphabet {A,C,G,T,N}.
func IsBase(b byte) bool { return complement[b] != 0 }

// Validate returns a *SymbolError for the first symbol outside the alphabet.
func Validate(s []byte) error {
	for i, b := range s {
		if complement[b] == 0 {
			return &SymbolError{Pos: i, Symbol: b}
		}
	}
	return nil
}

// Arg is a named sequence argument for ValidateAll.
type Arg struct {
	Name string
	Seq  []byte
}

// ValidateAll validates args in order and names the first failing one.
func ValidateAll(args ...Arg) error {
	for _, a := range args {
		if err := Validate(a.Seq); err != nil {
			return fmt.Errorf("%s: %w", a.Name, err)
		}
	}
	return nil
}

// Normalize upper-cases a/c/g/t/n in place and returns s. Other bytes are
// left alone so that Validate still reports them.
func Normalize(s []byte) []byte {
	for i, b := range s {
		if b >= 'a' && b <= 'z' {
			s[i] = b - ('a' - 'A')
		}
	}
	return s
}

// ReverseComplement returns the reverse complement of s.
func ReverseComplement(s []byte) (Seq, error) {
	n := len(s)
	if n == 0 {
		return nil, nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := s[n-1-i]
		c := complement[b]
		if c == 0 {
			return nil, &SymbolError{Pos: n - 1 - i, Symbol: b}
		}
		out[i] = c
	}
	return out, nil
}

// MustReverseComplement is ReverseComplement for literals known to be valid.
func MustReverseComplement(s string) string {
	rc, err := ReverseComplement([]byte(s))
	if err != nil {
		panic(err)
	}
	return string(rc)
}
