// core/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
)

// StreamPathCtx opens path ("-" for stdin, gzip detected) and streams its
// records to emit.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit)
}

// ReadSequence returns the concatenated sequence of every record in path.
// Multi-record files are joined without separators.
func ReadSequence(ctx context.Context, path string) ([]byte, error) {
	var out []byte
	n := 0
	err := StreamPathCtx(ctx, path, func(r Record) error {
		out = append(out, r.Seq...)
		n++
		return nil
	})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s: no records", ErrFormat, path)
	}
	return out, nil
}

// ReadReads returns every record's sequence and quality scores. Qualities
// are nil for FASTA input.
func ReadReads(ctx context.Context, path string) (seqs, quals [][]byte, err error) {
	err = StreamPathCtx(ctx, path, func(r Record) error {
		seqs = append(seqs, r.Seq)
		quals = append(quals, r.Qual)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return seqs, quals, nil
}
