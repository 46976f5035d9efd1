// core/fasta/open.go
package fasta

import (
	"bufio"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Stdin is read when the path is "-". Tests swap it.
var Stdin io.Reader = os.Stdin

// source is an opened input; Close releases the decompressor and the file.
type source struct {
	io.Reader
	closers []io.Closer
}

func (s *source) Close() error {
	var err error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if cerr := s.closers[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path ("-" is stdin) and transparently gunzips input that
// starts with the gzip magic 1F 8B, whatever its name.
func openReader(path string) (io.ReadCloser, error) {
	src := &source{}
	var r io.Reader = Stdin
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src.closers = append(src.closers, fh)
		r = fh
	}
	br := bufio.NewReaderSize(r, 64<<10)
	if sig, _ := br.Peek(2); len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = src.Close()
			return nil, err
		}
		src.closers = append(src.closers, gr)
		src.Reader = gr
		return src, nil
	}
	src.Reader = br
	return src, nil
}
