package cmdutil

import (
	"bytes"
	"errors"
	"os"
	"testing"
)

func TestWarnfInfof(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, false, "hit cap %d reached", 5)
	Infof(&b, false, "read %d reads", 3)
	Warnf(&b, true, "hidden")
	Infof(&b, true, "hidden")
	if b.String() != "WARN: hit cap 5 reached\nINFO: read 3 reads\n" {
		t.Fatalf("got %q", b.String())
	}
}

func TestIOError(t *testing.T) {
	if IOError(nil) != nil {
		t.Fatal("nil should stay nil")
	}
	err := IOError(os.ErrNotExist)
	if !errors.Is(err, ErrIO) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("lost chain: %v", err)
	}
}
