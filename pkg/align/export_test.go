package align

// Internals that the tests in align_test need to look at.

func SplitColumn[L Scalar](left, right []L) (int, error) { return splitColumn(left, right) }

// GlobalExact is the quadratic solver anchored at both corners, which is
// what the recursion uses for its base cases.
func GlobalExact[T comparable, L Scalar](m *Model[T, L], s1, s2 []T) ([]T, L, error) {
	a, b, err := m.resolve(s1, s2)
	if err != nil {
		return nil, 0, err
	}
	out, scr := exact(m.Matrix, m.Gap, s1, a, b, false, &Stats{})
	return out, scr, nil
}

// BackwardColumn is the reversed backward scan, as used at each split.
func BackwardColumn[T comparable, L Scalar](m *Model[T, L], s1, s2 []T) ([]L, error) {
	a, b, err := m.resolve(s1, s2)
	if err != nil {
		return nil, err
	}
	col := scan(m.Matrix, m.Gap, a, b, true, &Stats{})
	for l, r := 0, len(col)-1; l < r; l, r = l+1, r-1 {
		col[l], col[r] = col[r], col[l]
	}
	return col, nil
}
