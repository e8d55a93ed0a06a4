package align

// Scalar is any number type a score can be kept in. Integer matrices are
// exact. With float32 or float64 the sums stay exact as long as the
// scores are whole numbers of moderate size, which is what traceback
// needs since it compares sums for equality.
type Scalar interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Model is everything needed to score an alignment. Matrix[i][j] is the
// score for the symbol with index i against the one with index j.
// Index maps each symbol to its row/column. Gap is added once for every
// symbol set against a gap, on either sequence. Normally it is negative.
// A Model is only read, never written, by this package.
type Model[T comparable, L Scalar] struct {
	Matrix [][]L
	Index  map[T]int
	Gap    L
}

// Validate checks that the matrix is square and that the map has one
// entry for each row, each pointing inside the matrix.
func (m *Model[T, L]) Validate() error {
	d := len(m.Matrix)
	for i, row := range m.Matrix {
		if len(row) != d {
			return newErr(InvalidMatrixShape, "%d rows, but row %d has %d columns", d, i, len(row))
		}
	}
	if len(m.Index) != d {
		return newErr(MapSizeMismatch, "map has %d symbols, matrix has dimension %d", len(m.Index), d)
	}
	for sym, ndx := range m.Index {
		if ndx < 0 || ndx >= d {
			return newErr(MapSizeMismatch, "symbol %v maps to %d, outside [0,%d)", sym, ndx, d)
		}
	}
	return nil
}

// Score returns the substitution score of a against b.
func (m *Model[T, L]) Score(a, b T) (L, error) {
	i, ok := m.Index[a]
	if !ok {
		return 0, newErr(UnknownSymbol, "%v", a)
	}
	j, ok := m.Index[b]
	if !ok {
		return 0, newErr(UnknownSymbol, "%v", b)
	}
	return m.Matrix[i][j], nil
}

// indices turns a sequence into matrix indices, so the inner loops
// never go through the map.
func (m *Model[T, L]) indices(s []T) ([]int, error) {
	ndx := make([]int, len(s))
	for i, c := range s {
		j, ok := m.Index[c]
		if !ok {
			return nil, newErr(UnknownSymbol, "%v at position %d", c, i)
		}
		ndx[i] = j
	}
	return ndx, nil
}

// resolve does indices for both sequences.
func (m *Model[T, L]) resolve(s1, s2 []T) (a, b []int, err error) {
	if a, err = m.indices(s1); err != nil {
		return nil, nil, err
	}
	if b, err = m.indices(s2); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func max3[L Scalar](x, y, z L) L {
	if y > x {
		x = y
	}
	if z > x {
		x = z
	}
	return x
}
