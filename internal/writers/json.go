// internal/writers/json.go
package writers

import (
	"io"

	"seqmatch/internal/jsonlutil"
	"seqmatch/internal/jsonutil"
	"seqmatch/pkg/api"
)

func init() {
	RegisterResult(FormatJSON, func(w io.Writer, payload any, _ Options) error {
		return jsonutil.EncodePretty(w, payload)
	})
	RegisterResult(FormatJSONL, writeJSONL)
}

// writeJSONL streams a match as one line per hit; other results are one line.
func writeJSONL(w io.Writer, payload any, _ Options) error {
	m, ok := payload.(api.MatchV1)
	if !ok {
		return jsonutil.EncodeLine(w, payload)
	}
	in, done := StartHitJSONLWriter(w, m, 0)
	for _, h := range m.Hits {
		in <- h
	}
	close(in)
	return <-done
}

// StartHitJSONLWriter streams hits of m as JSON lines (HitLineV1).
func StartHitJSONLWriter(out io.Writer, m api.MatchV1, bufSize int) (chan<- api.HitV1, <-chan error) {
	return jsonlutil.Start[api.HitV1](out, bufSize,
		func(h api.HitV1) any {
			return api.HitLineV1{
				Pattern: m.Pattern, TextID: m.TextID, Method: m.Method,
				Offset: h.Offset, Strand: h.Strand, Mismatches: h.Mismatches, Match: h.Match,
			}
		},
		IgnoreBrokenPipe,
	)
}
