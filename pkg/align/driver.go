// 3 Oct 2026

package align

import (
	"io"
	"log/slog"
	"slices"
)

// Result is one optimal alignment. Aligned holds the symbols of s1 that
// are matched to a symbol of s2, in their original order.
type Result[T comparable, L Scalar] struct {
	Aligned []T
	Score   L
	Stats   Stats
}

// Stats counts the work done for one Result.
type Stats struct {
	Scans      int   // calls to the linear space column scan
	ExactCalls int   // calls to the quadratic solver
	MaxDepth   int   // deepest level of recursion
	Cells      int64 // dynamic programming cells filled
}

// Option changes how an Aligner works, but never the score it gets.
type Option func(*options)

type options struct {
	log  *slog.Logger
	base int
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithLogger makes the Aligner log each split at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithBaseCase sets the length at or below which a sub-problem goes to
// the quadratic solver. Values below 1 are treated as 1.
func WithBaseCase(n int) Option {
	return func(o *options) {
		o.base = max(n, 1)
	}
}

// Aligner holds a validated Model and can be used for any number of
// sequence pairs. It has no state that changes, so it is safe to share.
type Aligner[T comparable, L Scalar] struct {
	model *Model[T, L]
	opts  options
}

// NewAligner checks the model once.
func NewAligner[T comparable, L Scalar](m *Model[T, L], opts ...Option) (*Aligner[T, L], error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	al := &Aligner[T, L]{model: m, opts: options{log: discard, base: 1}}
	for _, o := range opts {
		o(&al.opts)
	}
	return al, nil
}

// Align checks the model and aligns s1 against s2.
// It is NewAligner followed by (*Aligner).Align.
func Align[T comparable, L Scalar](m *Model[T, L], s1, s2 []T, opts ...Option) (Result[T, L], error) {
	al, err := NewAligner(m, opts...)
	if err != nil {
		return Result[T, L]{}, err
	}
	return al.Align(s1, s2)
}

// Align gets the same score as Exact, but never keeps more than a
// couple of score vectors of length len(s2)+1, plus the small tables of
// the base cases.
func (al *Aligner[T, L]) Align(s1, s2 []T) (Result[T, L], error) {
	var res Result[T, L]
	a, b, err := al.model.resolve(s1, s2)
	if err != nil {
		return res, err
	}
	mat, gap := al.model.Matrix, al.model.Gap
	if len(a) <= 1 || len(b) <= 1 {
		res.Aligned, res.Score = exact(mat, gap, s1, a, b, true, &res.Stats)
		return res, nil
	}

	// Where in s2 does the best alignment stop ? The last row of the
	// full table is the last column of one forward scan.
	last := scan(mat, gap, a, b, false, &res.Stats)
	end := 0
	for j := 1; j < len(last); j++ {
		if last[j] > last[end] {
			end = j
		}
	}
	al.opts.log.Debug("end point", "len1", len(a), "len2", len(b), "end", end, "score", last[end])

	r := recursion[T, L]{mat: mat, gap: gap, base: al.opts.base, log: al.opts.log, stats: &res.Stats}
	res.Aligned, res.Score, err = r.run(s1, a, b[:end], 0)
	if err != nil {
		return Result[T, L]{}, err
	}
	return res, nil
}

// recursion carries what every level needs. stats is the only thing
// written, and it belongs to one call of Align.
type recursion[T comparable, L Scalar] struct {
	mat   [][]L
	gap   L
	base  int
	log   *slog.Logger
	stats *Stats
}

// run aligns all of a against all of b.
func (r *recursion[T, L]) run(s1 []T, a, b []int, depth int) ([]T, L, error) {
	r.stats.MaxDepth = max(r.stats.MaxDepth, depth)
	if len(a) <= r.base || len(b) <= r.base {
		out, scr := exact(r.mat, r.gap, s1, a, b, false, r.stats)
		return out, scr, nil
	}

	mid := len(a) / 2
	colLeft := scan(r.mat, r.gap, a[:mid], b, false, r.stats)
	colRight := scan(r.mat, r.gap, a[mid:], b, true, r.stats)
	slices.Reverse(colRight)
	k, err := splitColumn(colLeft, colRight)
	if err != nil {
		return nil, 0, err
	}
	r.log.Debug("split", "depth", depth, "len1", len(a), "len2", len(b), "mid", mid, "k", k)

	outL, scrL, err := r.run(s1[:mid], a[:mid], b[:k], depth+1)
	if err != nil {
		return nil, 0, err
	}
	outR, scrR, err := r.run(s1[mid:], a[mid:], b[k:], depth+1)
	if err != nil {
		return nil, 0, err
	}
	out := make([]T, 0, len(outL)+len(outR))
	out = append(append(out, outL...), outR...)
	return out, scrL + scrR, nil
}

// splitColumn returns the k maximising left[k]+right[k], where left is
// the forward column of the top half and right the reversed backward
// column of the bottom half. On ties the smallest k wins.
// The top half then gets b[:k] and the bottom half b[k:].
func splitColumn[L Scalar](left, right []L) (int, error) {
	if len(left) != len(right) || len(left) == 0 {
		return 0, newErr(CombineError, "score columns of length %d and %d", len(left), len(right))
	}
	k, best := 0, left[0]+right[0]
	for i := 1; i < len(left); i++ {
		if s := left[i] + right[i]; s > best {
			k, best = i, s
		}
	}
	return k, nil
}
