// core/approx/scan.go
package approx

// Scan is the reference matcher: it tries every alignment and counts
// mismatches directly. Quadratic, but free of any indexing assumptions.
// capHits == 0 means unlimited.
func Scan(pattern, text []byte, maxMM, capHits int) ([]int, error) {
	if err := checkArgs(pattern, text, maxMM); err != nil {
		return nil, err
	}
	pl := len(pattern)
	out := make([]int, 0, 8)
window:
	for pos := 0; pos <= len(text)-pl; pos++ {
		mm := 0
		for j := 0; j < pl; j++ {
			if text[pos+j] != pattern[j] {
				mm++
				if mm > maxMM {
					continue window
				}
			}
		}
		out = append(out, pos)
		if capHits > 0 && len(out) >= capHits {
			break
		}
	}
	return out, nil
}
