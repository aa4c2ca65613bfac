// Package knots implements knot vectors for B-spline bases.
//
// A knot vector is an immutable, non-decreasing sequence of parameter values
// ξ₀ ≤ ξ₁ ≤ … ≤ ξₘ. It is either constructed from an already sorted
// sequence, or generated as an open (clamped) vector for n basis functions of
// degree p. Knot values are validated on construction: NaN, ±Inf and
// decreasing neighbours are rejected.
package knots

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/bspline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bspline'
func tracer() tracing.Trace {
	return tracing.Select("bspline")
}

// Vec is an immutable knot vector. The zero value is an empty vector, which
// is of no use to a spline basis.
type Vec[T bspline.Real] struct {
	xi []T
}

// FromSorted creates a knot vector from a non-decreasing sequence of values.
// The values are copied; they are not re-sorted.
func FromSorted[T bspline.Real](values []T) (Vec[T], error) {
	if len(values) == 0 {
		return Vec[T]{}, bspline.ErrEmptyKnots
	}
	for i, x := range values {
		if !bspline.IsFinite(x) {
			return Vec[T]{}, fmt.Errorf("%w at index %d", bspline.ErrInvalidKnot, i)
		}
		if i > 0 && x < values[i-1] {
			tracer().Debugf("knot %d = %g is smaller than predecessor %g", i, x, values[i-1])
			return Vec[T]{}, fmt.Errorf("%w at index %d", bspline.ErrUnsorted, i)
		}
	}
	xi := make([]T, len(values))
	copy(xi, values)
	return Vec[T]{xi: xi}, nil
}

// Open creates an open (clamped) knot vector of length n+p+1 for n basis
// functions of degree p. The first p+1 knots are 0, the last p+1 knots are 1,
// and the n-p-1 interior knots are spaced uniformly in between:
//
//	Open(4, 2) = [0, 0, 0, 0.5, 1, 1, 1]
func Open[T bspline.Real](n, p int) (Vec[T], error) {
	if p < 0 || n < p+1 {
		return Vec[T]{}, fmt.Errorf("%w: n = %d, p = %d", bspline.ErrDegree, n, p)
	}
	xi := make([]T, n+p+1)
	segments := n - p
	for i := 1; i < segments; i++ {
		xi[p+i] = T(i) / T(segments)
	}
	for i := n; i < len(xi); i++ {
		xi[i] = 1
	}
	return Vec[T]{xi: xi}, nil
}

// Len is the number of knots, m+1.
func (v Vec[T]) Len() int {
	return len(v.xi)
}

// First is the lower bound ξ₀ of the knot domain.
func (v Vec[T]) First() T {
	return v.xi[0]
}

// Last is the upper bound ξₘ of the knot domain.
func (v Vec[T]) Last() T {
	return v.xi[len(v.xi)-1]
}

// At returns knot ξᵢ. It panics if i is out of range.
func (v Vec[T]) At(i int) T {
	return v.xi[i]
}

// Values returns a copy of the knot values.
func (v Vec[T]) Values() []T {
	xi := make([]T, len(v.xi))
	copy(xi, v.xi)
	return xi
}

// Breaks iterates over the distinct knot values in ascending order, paired
// with their multiplicity. The sequence may be restarted.
//
//	[0, 0, 0.5, 1, 1]  →  (0, 2), (0.5, 1), (1, 2)
func (v Vec[T]) Breaks() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for i := 0; i < len(v.xi); {
			j := i + 1
			for j < len(v.xi) && v.xi[j] == v.xi[i] {
				j++
			}
			if !yield(v.xi[i], j-i) {
				return
			}
			i = j
		}
	}
}

// Multiplicity returns how often x occurs in the knot vector.
func (v Vec[T]) Multiplicity(x T) int {
	for z, m := range v.Breaks() {
		if z == x {
			return m
		}
		if z > x {
			break
		}
	}
	return 0
}

// Pretty Stringer for knot vectors.
func (v Vec[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.xi {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteByte(']')
	return b.String()
}
