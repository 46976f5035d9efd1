// core/editdist/align.go
package editdist

// Edit operations in a transcript.
const (
	OpMatch   = 'M'
	OpReplace = 'R'
	OpInsert  = 'I' // symbol present in y only
	OpDelete  = 'D' // symbol present in x only
)

// Alignment fills the full matrix and traces one optimal path back, returning
// the distance and a transcript turning x into y. Ties prefer match/replace,
// then deletion, then insertion.
func Alignment(x, y []byte) (int, string) {
	rows, cols := len(x)+1, len(y)+1
	d := make([]int, rows*cols)
	at := func(i, j int) *int { return &d[i*cols+j] }
	for i := 0; i < rows; i++ {
		*at(i, 0) = i
	}
	for j := 0; j < cols; j++ {
		*at(0, j) = j
	}
	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			diag := *at(i-1, j-1)
			if x[i-1] != y[j-1] {
				diag++
			}
			*at(i, j) = min(*at(i, j-1)+1, *at(i-1, j)+1, diag)
		}
	}

	ops := make([]byte, 0, rows+cols)
	i, j := len(x), len(y)
	for i > 0 || j > 0 {
		v := *at(i, j)
		switch {
		case i > 0 && j > 0 && x[i-1] == y[j-1] && v == *at(i-1, j-1):
			ops = append(ops, OpMatch)
			i, j = i-1, j-1
		case i > 0 && j > 0 && v == *at(i-1, j-1)+1:
			ops = append(ops, OpReplace)
			i, j = i-1, j-1
		case i > 0 && v == *at(i-1, j)+1:
			ops = append(ops, OpDelete)
			i--
		default:
			ops = append(ops, OpInsert)
			j--
		}
	}
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	return *at(len(x), len(y)), string(ops)
}
