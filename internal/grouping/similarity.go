// file: internal/grouping/similarity.go
// version: 1.0.0
// guid: 7c8d9e0f-1a2b-3c4d-5e6f-7a8b9c0d1e2f

package grouping

// Similarity returns a sequence-matcher ratio in [0,1] between the
// normalized forms of a and b: twice the total length of the longest
// matching blocks divided by the combined length. Symmetric in practice for
// the short strings compared here, and 1.0 for equal inputs. Used only for
// ranking and thresholding, never for equality.
func Similarity(a, b string) float64 {
	return ratio(NormalizeStem(a), NormalizeStem(b))
}

func ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	m := &blockMatcher{a: ra, b: rb, b2j: make(map[rune][]int, len(rb))}
	for j, r := range rb {
		m.b2j[r] = append(m.b2j[r], j)
	}
	matched := m.matchTotal(0, len(ra), 0, len(rb))
	return 2.0 * float64(matched) / float64(total)
}

type blockMatcher struct {
	a, b []rune
	b2j  map[rune][]int
}

// matchTotal sums the lengths of the matching blocks found by recursively
// splitting around the longest match, the way difflib's SequenceMatcher
// computes its ratio.
func (m *blockMatcher) matchTotal(alo, ahi, blo, bhi int) int {
	i, j, k := m.longestMatch(alo, ahi, blo, bhi)
	if k == 0 {
		return 0
	}
	return k + m.matchTotal(alo, i, blo, j) + m.matchTotal(i+k, ahi, j+k, bhi)
}

// longestMatch finds the longest block of runes common to a[alo:ahi] and
// b[blo:bhi], preferring the earliest position in a, then in b, on ties.
func (m *blockMatcher) longestMatch(alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
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
