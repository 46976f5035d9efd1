// core/assembly/overlap.go
package assembly

import "bytes"

// Overlap returns the length of the longest suffix of a that is a prefix of
// b, provided it is at least minLen; otherwise 0.
func Overlap(a, b []byte, minLen int) int {
	if minLen < 1 {
		minLen = 1
	}
	if len(a) < minLen || len(b) < minLen {
		return 0
	}
	seed := b[:minLen]
	for start := 0; ; start++ {
		i := bytes.Index(a[start:], seed)
		if i < 0 {
			return 0
		}
		start += i
		if bytes.HasPrefix(b, a[start:]) {
			return len(a) - start
		}
	}
}
