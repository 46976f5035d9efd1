// Package approx finds alignments of a pattern in a text with at most n
// mismatches (Hamming distance, no indels) using the pigeonhole principle:
// split the pattern into n+1 disjoint pieces, find exact occurrences of any
// piece, and verify the implied alignments.
//
// Each call builds its own indices; nothing is shared between calls apart
// from the process-wide diagnostic counters.
package approx
