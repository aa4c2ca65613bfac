package spline

import (
	"fmt"
	"iter"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/bspline"
)

// ArcLengthTable maps approximate arc length of a curve to curve parameters.
// It is built from a polyline through uniformly sampled curve points and
// allows sampling a curve with (approximately) equidistant points.
//
// Lengths are stored in a TreeMap (sorted map), keyed by cumulative chord
// length, with the curve parameter as value.
type ArcLengthTable[T bspline.Real] struct {
	curve  Curve[T]
	table  *treemap.Map // float64 length → float64 parameter
	length float64
}

// NewArcLengthTable samples a curve at samples uniformly spaced parameters
// (at least 2) and tabulates cumulative chord lengths. Chords of length 0
// (where the curve stalls) are not tabulated, so an arc length maps to the
// first parameter at which the curve reaches it.
func NewArcLengthTable[T bspline.Real](curve Curve[T], samples int) (*ArcLengthTable[T], error) {
	samples = max(samples, 2)
	lo, hi := curve.Domain()
	table := treemap.NewWith(utils.Float64Comparator)
	var prev bspline.Point[T]
	var length float64
	for t := range UniformParams(lo, hi, samples) {
		pt, err := curve.Eval(t)
		if err != nil {
			return nil, err
		}
		if prev == nil {
			table.Put(length, float64(t))
		} else if chord := float64(pt.Sub(prev).Norm()); !bspline.Is0(chord) {
			length += chord
			table.Put(length, float64(t))
		}
		prev = pt
	}
	if bspline.Is0(length) {
		return nil, fmt.Errorf("%w: curve has length 0", bspline.ErrDegenerate)
	}
	tracer().Debugf("arc length table with %d entries, length = %.4g", table.Size(), length)
	return &ArcLengthTable[T]{curve: curve, table: table, length: length}, nil
}

// Length is the approximate arc length of the curve.
func (alt *ArcLengthTable[T]) Length() T {
	return T(alt.length)
}

// ParamAt returns the curve parameter at arc length s, interpolating linearly
// between table entries. s is clamped to [0, Length()].
func (alt *ArcLengthTable[T]) ParamAt(s T) T {
	x := min(max(float64(s), 0), alt.length)
	k0, v0 := alt.table.Floor(x)
	k1, v1 := alt.table.Ceiling(x)
	if k0 == nil {
		return T(v1.(float64))
	}
	if k1 == nil {
		return T(v0.(float64))
	}
	s0, s1 := k0.(float64), k1.(float64)
	t0, t1 := v0.(float64), v1.(float64)
	if s1 == s0 {
		return T(t0)
	}
	return T(t0 + (t1-t0)*(x-s0)/(s1-s0))
}

// Mesh iterates over count curve points, spaced uniformly by arc length.
// The first and last points are the curve's end points.
func (alt *ArcLengthTable[T]) Mesh(count int) iter.Seq[bspline.Point[T]] {
	return func(yield func(bspline.Point[T]) bool) {
		for s := range UniformParams(0, alt.Length(), count) {
			pt, err := alt.curve.Eval(alt.ParamAt(s))
			if err != nil {
				tracer().Errorf("arc length mesh: %v", err)
				return
			}
			if !yield(pt) {
				return
			}
		}
	}
}
