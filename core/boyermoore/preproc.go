// core/boyermoore/preproc.go
package boyermoore

// symbol columns of the bad-character table; column 5 is "any other byte"
const nCols = 6

var col [256]uint8

func init() {
	for i := range col {
		col[i] = 5
	}
	col['A'], col['C'], col['G'], col['T'], col['N'] = 0, 1, 2, 3, 4
}

// zArray: z[i] is the length of the longest substring starting at i that is
// also a prefix of s. z[0] is left 0.
func zArray(s []byte) []int {
	n := len(s)
	z := make([]int, n)
	if n < 2 {
		return z
	}
	l, r := 0, 0
	for i := 1; i < n; i++ {
		if i < r {
			z[i] = min(r-i, z[i-l])
		}
		for i+z[i] < n && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
	}
	return z
}

// nArray: n[j] is the length of the longest suffix of s[:j+1] that is also a
// suffix of s.
func nArray(s []byte) []int {
	m := len(s)
	rev := make([]byte, m)
	for i := range s {
		rev[m-1-i] = s[i]
	}
	z := zArray(rev)
	n := make([]int, m)
	for i := range z {
		n[m-1-i] = z[i]
	}
	return n
}

// bigLPrime: lp[i] is the largest index j < m-1 such that s[i:] matches a
// suffix of s[:j+1], stored as j+1 (0 when none).
func bigLPrime(m int, n []int) []int {
	lp := make([]int, m)
	for j := 0; j < m-1; j++ {
		if i := m - n[j]; i < m {
			lp[i] = j + 1
		}
	}
	return lp
}

// bigL: like bigLPrime but the matched copy need not be preceded by a
// different character.
func bigL(lp []int) []int {
	m := len(lp)
	l := make([]int, m)
	if m < 2 {
		return l
	}
	l[1] = lp[1]
	for i := 2; i < m; i++ {
		l[i] = max(l[i-1], lp[i])
	}
	return l
}

// smallLPrime: sl[i] is the length of the longest prefix of s that is also a
// suffix of s[i:].
func smallLPrime(n []int) []int {
	m := len(n)
	sl := make([]int, m)
	for i := range n {
		if n[i] == i+1 {
			sl[m-i-1] = i + 1
		}
	}
	for i := m - 2; i >= 0; i-- {
		if sl[i] == 0 {
			sl[i] = sl[i+1]
		}
	}
	return sl
}

// denseBadChar: tab[i*nCols+c] is 1 + the rightmost position < i holding
// symbol column c, or 0.
func denseBadChar(p []byte) []int {
	tab := make([]int, len(p)*nCols)
	var next [nCols]int
	for i, b := range p {
		copy(tab[i*nCols:(i+1)*nCols], next[:])
		next[col[b]] = i + 1
	}
	return tab
}
