// internal/cmdutil/exit.go
package cmdutil

import (
	"errors"
	"fmt"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitNoMatch  = 1
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// ErrIO marks read and write failures.
var ErrIO = errors.New("i/o error")

// IOError wraps err so it classifies as ErrIO. nil stays nil.
func IOError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrIO, err)
}
