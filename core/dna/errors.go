// core/dna/errors.go
package dna

import (
	"errors"
	"fmt"
)

// Error kinds shared by every matcher in seqmatch-core. Callers match them
// with errors.Is; packages wrap them with context via fmt.Errorf("%w").
var (
	ErrInvalidSymbol     = errors.New("invalid symbol")
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrUnsupportedMethod = errors.New("unsupported method")
)

// SymbolError reports the first out-of-alphabet symbol in a sequence.
type SymbolError struct {
	Pos    int
	Symbol byte
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d", e.Symbol, e.Pos)
}

func (e *SymbolError) Unwrap() error { return ErrInvalidSymbol }

// Paramf returns an ErrInvalidParameters wrapped with a formatted reason.
func Paramf(format string, a ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameters}, a...)...)
}
