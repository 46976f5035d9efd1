// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"seqmatch/internal/pretty"
)

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Options tune the text writer; other formats ignore them.
type Options struct {
	Pretty    bool // ASCII alignment block under each hit / transcript
	PrettyOpt pretty.Options
}

// WriterFunc serializes one pkg/api value.
type WriterFunc func(w io.Writer, payload any, opt Options) error

// ResultWriters maps a format to its handler. Handlers are registered in
// init() blocks.
var ResultWriters = map[string]WriterFunc{}

// RegisterResult adds or replaces (last wins) the handler for format.
func RegisterResult(format string, fn WriterFunc) { ResultWriters[format] = fn }

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(ResultWriters))
	for f := range ResultWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// WriteResult serializes payload in format.
func WriteResult(format string, w io.Writer, payload any, opt Options) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, payload, opt)
}

func unsupported(format string, payload any) error {
	return fmt.Errorf("%s writer: unsupported payload %T", format, payload)
}
