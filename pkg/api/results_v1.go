// pkg/api/results_v1.go
package api

// Stable JSON/JSONL schemas. Keep fields, names, and types stable.
// Add new fields only with ",omitempty".

// HitV1 is one pattern occurrence.
type HitV1 struct {
	Offset     int    `json:"offset"`
	Strand     string `json:"strand"` // "+" | "-"
	Mismatches int    `json:"mismatches"`
	Match      string `json:"match,omitempty"` // text window at Offset
}

// MatchV1 is the result of an exact or approximate search.
type MatchV1 struct {
	Pattern     string  `json:"pattern"`
	TextID      string  `json:"text_id"`
	TextLength  int     `json:"text_length"`
	Method      string  `json:"method"`
	Mismatches  int     `json:"max_mismatches"`
	SegmentHits int     `json:"segment_hits,omitempty"`
	Hits        []HitV1 `json:"hits"`
}

// HitLineV1 is the JSONL row for one hit; search fields are repeated on
// every line.
type HitLineV1 struct {
	Pattern    string `json:"pattern"`
	TextID     string `json:"text_id"`
	Method     string `json:"method"`
	Offset     int    `json:"offset"`
	Strand     string `json:"strand"`
	Mismatches int    `json:"mismatches"`
	Match      string `json:"match,omitempty"`
}

// DistanceV1 is an edit-distance result.
type DistanceV1 struct {
	X          string `json:"x"`
	Y          string `json:"y"`
	Mode       string `json:"mode"` // "global" | "best-placement"
	Distance   int    `json:"distance"`
	End        *int   `json:"end,omitempty"`        // best-placement only
	Transcript string `json:"transcript,omitempty"` // M/R/I/D, global only
}

// AssemblyV1 is a greedy assembly result.
type AssemblyV1 struct {
	Reads        int    `json:"reads"`
	MinOverlap   int    `json:"min_overlap"`
	IndexPolicy  string `json:"index_policy"`
	Rounds       int    `json:"rounds"`
	OverlapCalls int    `json:"overlap_calls"`
	Fragments    int    `json:"fragments"`
	Length       int    `json:"length"`
	Sequence     string `json:"sequence"`
}

// RevCompV1 is a reverse-complement result.
type RevCompV1 struct {
	Seq     string `json:"seq"`
	RevComp string `json:"revcomp"`
}
