// core/approx/ac.go
package approx

/*
Aho–Corasick over the alphabet {A,C,G,T,N}.

- buildAC(pats) builds a trie whose goto function is completed with failure
  transitions, so scanning never follows fail links.
- scanAC(text, nodes, pats) emits (start, patIdx) for every occurrence.
*/

type acNode struct {
	next [5]int32
	fail int32
	out  []int // pattern indices ending here
}

func baseIdx(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	case 'N':
		return 4
	default:
		return -1
	}
}

func newACNode() acNode {
	var n acNode
	for i := range n.next {
		n.next[i] = -1
	}
	return n
}

func buildAC(pats [][]byte) []acNode {
	nodes := []acNode{newACNode()}
	for pi, p := range pats {
		state := int32(0)
		for _, b := range p {
			ix := baseIdx(b)
			if nodes[state].next[ix] == -1 {
				nodes[state].next[ix] = int32(len(nodes))
				nodes = append(nodes, newACNode())
			}
			state = nodes[state].next[ix]
		}
		nodes[state].out = append(nodes[state].out, pi)
	}

	// failure links (BFS)
	queue := make([]int32, 0, len(nodes))
	for ch := range nodes[0].next {
		if nx := nodes[0].next[ch]; nx != -1 {
			nodes[nx].fail = 0
			queue = append(queue, nx)
		} else {
			nodes[0].next[ch] = 0
		}
	}
	for qh := 0; qh < len(queue); qh++ {
		r := queue[qh]
		for ch := range nodes[r].next {
			s := nodes[r].next[ch]
			if s != -1 {
				queue = append(queue, s)
				f := nodes[nodes[r].fail].next[ch]
				nodes[s].fail = f
				nodes[s].out = append(nodes[s].out, nodes[f].out...)
			} else {
				nodes[r].next[ch] = nodes[nodes[r].fail].next[ch]
			}
		}
	}
	return nodes
}

type acHit struct {
	PatIdx int
	Pos    int // start of the occurrence in text
}

func scanAC(text []byte, nodes []acNode, pats [][]byte) []acHit {
	var hits []acHit
	state := int32(0)
	for i, b := range text {
		ix := baseIdx(b)
		if ix < 0 {
			state = 0
			continue
		}
		state = nodes[state].next[ix]
		for _, pi := range nodes[state].out {
			hits = append(hits, acHit{PatIdx: pi, Pos: i - len(pats[pi]) + 1})
		}
	}
	return hits
}
