// core/editdist/editdist.go
package editdist

// Distance is the Levenshtein distance between x and y. It keeps two rows
// over the shorter input.
func Distance(x, y []byte) int {
	if len(x) < len(y) {
		x, y = y, x
	}
	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(x); i++ {
		cur[0] = i
		for j := 1; j <= len(y); j++ {
			diag := prev[j-1]
			if x[i-1] != y[j-1] {
				diag++
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, diag)
		}
		prev, cur = cur, prev
	}
	return prev[len(y)]
}

// BestPlacement is the smallest edit distance between pattern and any
// substring of text.
func BestPlacement(pattern, text []byte) int {
	d, _ := BestPlacementEnd(pattern, text)
	return d
}

// BestPlacementEnd is BestPlacement plus the exclusive end offset in text of
// the leftmost best-scoring placement.
//
// The first row is all zeros (a placement may start anywhere in text) and is
// set once, before the row loop; the first column is i.
func BestPlacementEnd(pattern, text []byte) (dist, end int) {
	prev := make([]int, len(text)+1) // row 0: all zero
	cur := make([]int, len(text)+1)
	for i := 1; i <= len(pattern); i++ {
		cur[0] = i
		for j := 1; j <= len(text); j++ {
			diag := prev[j-1]
			if pattern[i-1] != text[j-1] {
				diag++
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, diag)
		}
		prev, cur = cur, prev
	}
	dist, end = prev[0], 0
	for j := 1; j <= len(text); j++ {
		if prev[j] < dist {
			dist, end = prev[j], j
		}
	}
	return dist, end
}
