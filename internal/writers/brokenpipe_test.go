package writers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"testing"
)

func errClosedPipe() error { return fmt.Errorf("write: %w", io.ErrClosedPipe) }

func TestIsBrokenPipe(t *testing.T) {
	for _, err := range []error{errClosedPipe(), syscall.EPIPE, &os.PathError{Op: "write", Path: "/dev/stdout", Err: os.ErrClosed}} {
		if !IsBrokenPipe(err) {
			t.Errorf("%v not recognized", err)
		}
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("disk full")) {
		t.Fatal("false positive")
	}
	if IgnoreBrokenPipe(syscall.EPIPE) != nil {
		t.Fatal("EPIPE not ignored")
	}
	if err := errors.New("disk full"); IgnoreBrokenPipe(err) != err {
		t.Fatal("other errors must pass through")
	}
}
