// Package engine is the entry point to seqmatch-core: exact and approximate
// matching, edit distance and greedy assembly behind one Config. It never
// imports the CLI or output packages; keep it domain-only.
package engine
