// 2 Oct 2026

package align

// table is an (nr x nc) matrix sitting on one backing slice, so
// allocating it is one make for the data and one for the row headers.
func table[L Scalar](nr, nc int) [][]L {
	full := make([]L, nr*nc)
	t := make([][]L, nr)
	for i := range t {
		t[i] = full[:nc:nc]
		full = full[nc:]
	}
	return t
}

// Exact aligns s1 and s2 with the full (len(s1)+1) x (len(s2)+1) table.
// All of s1 is used. The score is the best value in the last row, so a
// tail of s2 can be left unaligned. If several columns give the best
// score, the leftmost one wins.
func Exact[T comparable, L Scalar](m *Model[T, L], s1, s2 []T) (Result[T, L], error) {
	if err := m.Validate(); err != nil {
		return Result[T, L]{}, err
	}
	a, b, err := m.resolve(s1, s2)
	if err != nil {
		return Result[T, L]{}, err
	}
	var stats Stats
	aligned, scr := exact(m.Matrix, m.Gap, s1, a, b, true, &stats)
	return Result[T, L]{Aligned: aligned, Score: scr, Stats: stats}, nil
}

// exact fills the table and walks back.
// s1 is only used to pick the symbols to emit, a and b are the matrix
// indices of the two sequences.
// With semi set, the end point is the leftmost maximum of the last row.
// Otherwise it is the bottom right corner.
func exact[T comparable, L Scalar](mat [][]L, gap L, s1 []T, a, b []int, semi bool, stats *Stats) ([]T, L) {
	nr, nc := len(a)+1, len(b)+1
	t := table[L](nr, nc)
	for i := 1; i < nr; i++ {
		t[i][0] = t[i-1][0] + gap
	}
	for j := 1; j < nc; j++ {
		t[0][j] = t[0][j-1] + gap
	}
	for i := 1; i < nr; i++ {
		row := mat[a[i-1]]
		prev, cur := t[i-1], t[i]
		for j := 1; j < nc; j++ {
			cur[j] = max3(prev[j-1]+row[b[j-1]], prev[j]+gap, cur[j-1]+gap)
		}
	}
	stats.ExactCalls++
	stats.Cells += int64(len(a)) * int64(len(b))

	last := t[nr-1]
	jmax := nc - 1
	if semi {
		jmax = 0
		for j := 1; j < nc; j++ { // strictly bigger, so ties stay left
			if last[j] > last[jmax] {
				jmax = j
			}
		}
	}
	scr := last[jmax]

	var out []T
	for i, j := nr-1, jmax; i > 0 && j > 0; {
		switch v := t[i][j]; {
		case v == t[i-1][j]+gap: // up, s1 symbol against a gap
			i--
		case v == t[i][j-1]+gap: // left, s2 symbol against a gap
			j--
		default:
			i--
			j--
			out = append(out, s1[i])
		}
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out, scr
}
