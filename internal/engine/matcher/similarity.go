package matcher

// Ratio computes a normalized similarity score in [0,1] between two strings
// using the longest-matching-blocks method: the longest common substring is
// found, the regions to its left and right are searched recursively, and the
// score is 2*M/(len(a)+len(b)) where M is the total matched length.
// Identical strings score 1.0, disjoint strings 0.0.
func Ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	m := matchingTotal([]byte(a), []byte(b))
	return 2.0 * float64(m) / float64(len(a)+len(b))
}

// matchingTotal sums the sizes of all matching blocks between a and b.
func matchingTotal(a, b []byte) int {
	type span struct{ alo, ahi, blo, bhi int }

	total := 0
	queue := []span{{0, len(a), 0, len(b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, k := longestMatch(a, b, s.alo, s.ahi, s.blo, s.bhi)
		if k == 0 {
			continue
		}
		total += k
		queue = append(queue,
			span{s.alo, i, s.blo, j},
			span{i + k, s.ahi, j + k, s.bhi},
		)
	}
	return total
}

// longestMatch finds the longest block of matching bytes in
// a[alo:ahi] x b[blo:bhi]. Returns the start in a, start in b, and length.
// Ties resolve to the earliest block in a, then in b.
func longestMatch(a, b []byte, alo, ahi, blo, bhi int) (int, int, int) {
	b2j := make(map[byte][]int)
	for j := blo; j < bhi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	besti, bestj, bestsize := alo, blo, 0
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}
