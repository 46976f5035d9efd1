// core/engine/api.go
package engine

import "seqmatch-core/approx"

// Package-level entry points with default settings.

// ExactMatch returns every offset where pattern occurs in text.
func ExactMatch(pattern, text []byte) ([]int, error) {
	return New(Config{}).ExactMatch(pattern, text)
}

// ApproximateMatch returns alignment starts with at most maxMismatches
// mismatches, found with method.
func ApproximateMatch(pattern, text []byte, maxMismatches int, method approx.Method) ([]int, error) {
	res, err := approx.Match(pattern, text, maxMismatches, method)
	if err != nil {
		return nil, err
	}
	return res.Offsets, nil
}

// EditDistance is the Levenshtein distance between x and y.
func EditDistance(x, y []byte) (int, error) {
	return New(Config{}).EditDistance(x, y)
}

// BestPlacementEditDistance is the minimum edit distance between pattern and
// any substring of text.
func BestPlacementEditDistance(pattern, text []byte) (int, error) {
	d, _, err := New(Config{}).BestPlacement(pattern, text)
	return d, err
}

// AssembleGreedy assembles reads with the indexed greedy heuristic, rebuilding
// the overlap index after every merge.
func AssembleGreedy(reads [][]byte, minOverlap int) ([]byte, error) {
	out, _, err := New(Config{}).Assemble(reads, minOverlap)
	return out, err
}
