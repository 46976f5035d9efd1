// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"seqmatch-core/dna"
)

// ErrFormat reports malformed FASTA or FASTQ input.
var ErrFormat = errors.New("malformed sequence file")

// Record is one parsed FASTA or FASTQ entry. Seq is upper-cased; Qual holds
// Phred scores (FASTQ only, nil for FASTA).
type Record struct {
	ID   string
	Seq  []byte
	Qual []byte
}

const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)

// StreamCtx parses r and calls emit for every record. The format is taken
// from the first non-empty line: '>' is FASTA, '@' is FASTQ (Phred+33).
// Cancellation is checked between lines.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var first []byte
	for sc.Scan() {
		if line := bytes.TrimSpace(sc.Bytes()); len(line) > 0 {
			first = append([]byte(nil), line...)
			break
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	switch {
	case first == nil:
		return nil
	case first[0] == '>':
		return streamFASTA(ctx, sc, first, emit)
	case first[0] == '@':
		return streamFASTQ(ctx, sc, first, emit)
	default:
		return fmt.Errorf("%w: line 1 starts with %q", ErrFormat, first[0])
	}
}

func streamFASTA(ctx context.Context, sc *bufio.Scanner, hdr []byte, emit func(Record) error) error {
	id := parseHeaderID(hdr[1:])
	seq := make([]byte, 0, 1<<16)
	flush := func() error {
		return emit(Record{ID: id, Seq: dna.Normalize(append([]byte(nil), seq...))})
	}
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			seq = seq[:0]
			id = parseHeaderID(line[1:])
			continue
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// streamFASTQ reads four-line records: @id, sequence, +, qualities.
func streamFASTQ(ctx context.Context, sc *bufio.Scanner, hdr []byte, emit func(Record) error) error {
	lineNo := 1
	next := func() ([]byte, bool) {
		if !sc.Scan() {
			return nil, false
		}
		lineNo++
		// sc.Bytes is overwritten by the next Scan; records span four lines.
		return append([]byte(nil), bytes.TrimSpace(sc.Bytes())...), true
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if len(hdr) == 0 || hdr[0] != '@' {
			return fmt.Errorf("%w: line %d: expected '@' header", ErrFormat, lineNo)
		}
		id := parseHeaderID(hdr[1:])
		seq, ok1 := next()
		plus, ok2 := next()
		qual, ok3 := next()
		if !ok1 || !ok2 || !ok3 {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("fastq scan: %w", err)
			}
			return fmt.Errorf("%w: truncated record %q", ErrFormat, id)
		}
		if len(plus) == 0 || plus[0] != '+' {
			return fmt.Errorf("%w: line %d: expected '+' separator", ErrFormat, lineNo-1)
		}
		q, err := PhredToScores(qual)
		if err != nil {
			return fmt.Errorf("record %q: %w", id, err)
		}
		if len(q) != len(seq) {
			return fmt.Errorf("%w: record %q: %d bases but %d qualities", ErrFormat, id, len(seq), len(q))
		}
		if err := emit(Record{ID: id, Seq: dna.Normalize(seq), Qual: q}); err != nil {
			return err
		}
		// skip blank lines between records
		for {
			l, ok := next()
			if !ok {
				if err := sc.Err(); err != nil {
					return fmt.Errorf("fastq scan: %w", err)
				}
				return nil
			}
			if len(l) > 0 {
				hdr = l
				break
			}
		}
	}
}

// PhredToScores converts a Phred+33 quality string to scores.
func PhredToScores(qual []byte) ([]byte, error) {
	out := make([]byte, len(qual))
	for i, c := range qual {
		if c < 33 || c > 126 {
			return nil, fmt.Errorf("%w: quality %q at %d", ErrFormat, c, i)
		}
		out[i] = c - 33
	}
	return out, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
