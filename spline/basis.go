package spline

import (
	"fmt"
	"iter"
	"sort"

	"github.com/npillmayer/bspline"
	"github.com/npillmayer/bspline/knots"
)

// Basis is a B-spline basis of n basis functions of degree p over a knot
// vector of length n+p+1. A basis is immutable and may be copied freely.
type Basis[T bspline.Real] struct {
	knots knots.Vec[T] // knot vector for the allocation of the basis functions
	n     int          // number of basis functions
	p     int          // degree of basis functions
}

// NewBasis creates a basis of n functions of degree p on a knot vector.
func NewBasis[T bspline.Real](xi knots.Vec[T], n, p int) (Basis[T], error) {
	if p < 0 || n < p+1 {
		return Basis[T]{}, fmt.Errorf("%w: n = %d, p = %d", bspline.ErrDegree, n, p)
	}
	if xi.Len() != n+p+1 {
		return Basis[T]{}, fmt.Errorf("%w: have %d knots, need n+p+1 = %d",
			bspline.ErrKnotCount, xi.Len(), n+p+1)
	}
	if xi.At(p) == xi.At(n) {
		return Basis[T]{}, fmt.Errorf("%w: [%g,%g]", bspline.ErrEmptyDomain, xi.At(p), xi.At(n))
	}
	return Basis[T]{knots: xi, n: n, p: p}, nil
}

// OpenBasis creates a basis of n functions of degree p on the open knot
// vector knots.Open(n, p).
func OpenBasis[T bspline.Real](n, p int) (Basis[T], error) {
	xi, err := knots.Open[T](n, p)
	if err != nil {
		return Basis[T]{}, err
	}
	return NewBasis(xi, n, p)
}

// N is the number of basis functions.
func (b Basis[T]) N() int {
	return b.n
}

// P is the degree of the basis functions.
func (b Basis[T]) P() int {
	return b.p
}

// Knots returns the knot vector of the basis.
func (b Basis[T]) Knots() knots.Vec[T] {
	return b.knots
}

// Domain returns the parameter interval [ξₚ, ξₙ] on which the basis
// functions form a partition of unity. For open knot vectors this is
// [knots.First(), knots.Last()].
func (b Basis[T]) Domain() (T, T) {
	return b.knots.At(b.p), b.knots.At(b.n)
}

func (b Basis[T]) checkDomain(t T) error {
	lo, hi := b.Domain()
	if !(t >= lo && t <= hi) { // rejects NaN as well
		return fmt.Errorf("%w: t = %g not in [%g,%g]", bspline.ErrDomain, t, lo, hi)
	}
	return nil
}

// FindSpan finds the index i of the knot span with knots[i] ≤ t < knots[i+1].
// For t at the upper end of the domain, FindSpan returns n-1, i.e. the last
// non-empty span, so that the final parameter value is evaluable.
func (b Basis[T]) FindSpan(t T) (int, error) {
	if err := b.checkDomain(t); err != nil {
		return -1, err
	}
	if t == b.knots.At(b.n) {
		return b.n - 1, nil
	}
	// first knot > t, searching ξₚ₊₁ … ξₙ
	lo := b.p + 1
	i := sort.Search(b.n-lo, func(k int) bool {
		return b.knots.At(lo+k) > t
	})
	return lo + i - 1, nil
}

// Eval evaluates the p+1 non-vanishing basis functions at t. Entry j of the
// result belongs to basis function span-p+j, where span = FindSpan(t). All
// other basis functions vanish at t.
func (b Basis[T]) Eval(t T) ([]T, error) {
	_, values, err := b.EvalSpan(t)
	return values, err
}

// EvalSpan is Eval, additionally returning the knot span of t.
//
// Evaluation uses the triangular Cox–de Boor recurrence, which divides by
// sums of two non-negative knot distances only.
func (b Basis[T]) EvalSpan(t T) (int, []T, error) {
	span, err := b.FindSpan(t)
	if err != nil {
		return span, nil, err
	}
	p := b.p
	work := make([]T, 2*(p+1))
	left, right := work[:p+1], work[p+1:]
	B := make([]T, p+1)
	B[0] = 1
	for i := 1; i <= p; i++ {
		left[i] = t - b.knots.At(span-i+1)
		right[i] = b.knots.At(span+i) - t
		var saved T
		for j := 0; j < i; j++ {
			tmp := B[j] / (right[j+1] + left[i-j])
			B[j] = saved + right[j+1]*tmp
			saved = left[i-j] * tmp
		}
		B[i] = saved
	}
	return span, B, nil
}

// EvalAll evaluates all n basis functions at t. Functions not supported at t
// are 0.
func (b Basis[T]) EvalAll(t T) ([]T, error) {
	span, values, err := b.EvalSpan(t)
	if err != nil {
		return nil, err
	}
	all := make([]T, b.n)
	copy(all[span-b.p:], values)
	return all, nil
}

// Support returns the interval [ξₖ, ξₖ₊ₚ₊₁] outside of which basis function k
// vanishes. It panics if k is not in 0…n-1.
func (b Basis[T]) Support(k int) (T, T) {
	if k < 0 || k >= b.n {
		panic(fmt.Sprintf("basis function index %d out of range [0,%d)", k, b.n))
	}
	return b.knots.At(k), b.knots.At(k + b.p + 1)
}

// Continuity iterates over the interior breaks of the knot domain, paired
// with the order of continuity of the basis functions there: p-m for a knot of
// multiplicity m. A value of -1 denotes a discontinuity.
func (b Basis[T]) Continuity() iter.Seq2[T, int] {
	lo, hi := b.Domain()
	return func(yield func(T, int) bool) {
		for x, m := range b.knots.Breaks() {
			if x <= lo || x >= hi {
				continue
			}
			if !yield(x, b.p-m) {
				return
			}
		}
	}
}

// Debug Stringer for a basis.
func (b Basis[T]) String() string {
	return fmt.Sprintf("B-spline basis(n=%d, p=%d, knots=%s)", b.n, b.p, b.knots)
}
