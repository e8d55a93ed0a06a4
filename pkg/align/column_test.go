package align_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/hirschberg/pkg/align"
	"github.com/andrew-torda/hirschberg/pkg/randseq"
)

func TestLastColumnSmall(t *testing.T) {
	m := twoSym(-2)
	col, err := align.LastColumn(m, []byte("ab"), []byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []int{-4, -1}, col)

	col, err = align.LastColumn(m, nil, []byte("abb"))
	require.NoError(t, err)
	assert.Equal(t, []int{0, -2, -4, -6}, col)

	col, err = align.LastColumn(m, []byte("abb"), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{-6}, col)

	_, err = align.LastColumn(m, []byte("abc"), nil)
	assert.ErrorIs(t, err, align.ErrUnknownSymbol)
}

// Element j of the forward column is the global score of s1 against
// s2[:j]. Element k of the backward column is the score against s2[k:].
func TestColumnsAgainstTable(t *testing.T) {
	rnd := rand.New(rand.NewSource(17))
	alfbt := []byte("ab")
	for _, gap := range []int{-2, -1, 0} {
		m := twoSym(gap)
		for trial := 0; trial < 40; trial++ {
			s1 := randseq.New(alfbt, rnd.Intn(9), rnd)
			s2 := randseq.New(alfbt, rnd.Intn(9), rnd)
			fwd, err := align.LastColumn(m, s1, s2)
			require.NoError(t, err)
			bwd, err := align.BackwardColumn(m, s1, s2)
			require.NoError(t, err)
			require.Len(t, fwd, len(s2)+1)
			require.Len(t, bwd, len(s2)+1)
			for j := 0; j <= len(s2); j++ {
				_, want, err := align.GlobalExact(m, s1, s2[:j])
				require.NoError(t, err)
				assert.Equal(t, want, fwd[j], "fwd %q %q j=%d", s1, s2, j)
				_, want, err = align.GlobalExact(m, s1, s2[j:])
				require.NoError(t, err)
				assert.Equal(t, want, bwd[j], "bwd %q %q k=%d", s1, s2, j)
			}
		}
	}
}

// Adding the two columns at the best split gives the global score.
func TestSplitSum(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	m := twoSym(-2)
	for trial := 0; trial < 50; trial++ {
		s1 := randseq.New([]byte("ab"), 2+rnd.Intn(10), rnd)
		s2 := randseq.New([]byte("ab"), rnd.Intn(10), rnd)
		mid := len(s1) / 2
		left, err := align.LastColumn(m, s1[:mid], s2)
		require.NoError(t, err)
		right, err := align.BackwardColumn(m, s1[mid:], s2)
		require.NoError(t, err)
		k, err := align.SplitColumn(left, right)
		require.NoError(t, err)
		require.True(t, k >= 0 && k <= len(s2))
		_, want, err := align.GlobalExact(m, s1, s2)
		require.NoError(t, err)
		assert.Equal(t, want, left[k]+right[k], "%q %q", s1, s2)
	}
}

func TestSplitColumn(t *testing.T) {
	tests := []struct {
		left, right []int
		want        int
	}{
		{[]int{0}, []int{0}, 0},
		{[]int{1, 5, 5}, []int{0, 0, 0}, 1}, // tie, earliest wins
		{[]int{9, 1, 1}, []int{0, 0, 0}, 0}, // column 0 is allowed
		{[]int{-4, -2, 0}, []int{-9, -5, 3}, 2},
	}
	for _, tc := range tests {
		got, err := align.SplitColumn(tc.left, tc.right)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
	_, err := align.SplitColumn([]int{1, 2}, []int{1})
	assert.ErrorIs(t, err, align.ErrCombine)
	_, err = align.SplitColumn([]int{}, []int{})
	assert.ErrorIs(t, err, align.ErrCombine)
}
