package align

// LastColumn returns the final vector of the alignment table of s1
// against s2, without keeping the table. Element j is the score of all of
// s1 against the first j symbols of s2, so the result has len(s2)+1
// entries. Memory is one vector of that length.
func LastColumn[T comparable, L Scalar](m *Model[T, L], s1, s2 []T) ([]L, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	a, b, err := m.resolve(s1, s2)
	if err != nil {
		return nil, err
	}
	return scan(m.Matrix, m.Gap, a, b, false, &Stats{}), nil
}

// scan is the rolling-vector version of the recurrence in exact.
// dp[j] holds the previous row until it is overwritten and diag
// keeps the old dp[j] that the next column needs as its diagonal.
// With backward set, both a and b are read from the end, which is the
// same as scanning reversed copies, and dp[j] is then the score against
// the last j symbols of b.
func scan[L Scalar](mat [][]L, gap L, a, b []int, backward bool, stats *Stats) []L {
	n := len(b)
	dp := make([]L, n+1)
	for j := 1; j <= n; j++ {
		dp[j] = dp[j-1] + gap
	}
	for i := range a {
		ai := a[i]
		if backward {
			ai = a[len(a)-1-i]
		}
		row := mat[ai]
		diag := dp[0]
		dp[0] += gap
		for j := 0; j < n; j++ {
			bj := b[j]
			if backward {
				bj = b[n-1-j]
			}
			v := max3(diag+row[bj], dp[j]+gap, dp[j+1]+gap)
			diag = dp[j+1]
			dp[j+1] = v
		}
	}
	stats.Scans++
	stats.Cells += int64(len(a)) * int64(n)
	return dp
}
