// Package index holds immutable k-mer indices over a single text.
//
// Both index kinds keep entries sorted by key and answer lookups with a
// binary search. Offsets returned by an index refer to the text it was built
// from and are meaningless against any other text.
package index
