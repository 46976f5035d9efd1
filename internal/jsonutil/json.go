// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// NewEncoder returns an encoder that leaves <, > and & unescaped, so FASTA
// headers survive verbatim. indent selects two-space pretty printing.
func NewEncoder(w io.Writer, indent bool) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error { return NewEncoder(w, true).Encode(v) }

// EncodeLine writes v as one compact JSON line.
func EncodeLine(w io.Writer, v any) error { return NewEncoder(w, false).Encode(v) }
