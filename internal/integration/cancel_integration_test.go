package integration

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seqmatch/internal/app"
)

func TestCanceledRead_Exit130(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "big.fa")
	seq := strings.Repeat("ACGTACGTAC\n", 1000)
	if err := os.WriteFile(fn, []byte(">chr1\n"+seq), 0644); err != nil {
		t.Fatalf("write fasta: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, []string{"exact", "-p", "ACGTACGT", "-t", fn}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
