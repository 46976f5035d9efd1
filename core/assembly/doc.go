// Package assembly approximates the shortest common superstring of a set of
// reads by repeatedly merging the pair with the longest suffix/prefix overlap.
//
// The indexed variant keeps an immutable k-mer index over the current read
// pool. Whether that index is rebuilt after each merge is an explicit choice,
// see IndexPolicy.
package assembly
