/*
Package bspline implements non-uniform B-spline basis functions and the
curves built from them.

The root package holds the numeric building blocks shared by all
sub-packages: the real-number type constraint, ε-predicates, points of
arbitrary (but fixed) dimension and affine transformations. Knot vectors
live in package knots, bases and curves in package spline.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bspline

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bspline'
func tracer() tracing.Trace {
	return tracing.Select("bspline")
}

// === Numeric Data Type =====================================================

// Real is the constraint for the numeric field of knots, parameters and
// coordinates. Comparisons assume that no NaN values are present.
type Real interface {
	~float32 | ~float64
}

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0[T Real](n T) bool {
	return math.Abs(float64(n)) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1[T Real](n T) bool {
	return math.Abs(1-float64(n)) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap[T Real](n T) T {
	if Is0(n) {
		n = 0
	}
	return n
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite[T Real](n T) bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// === Point Data Type =======================================================

// Point is a point (or vector) of fixed dimension. Points handed to a curve
// are copied, a curve never shares them with its clients.
type Point[T Real] []T

// Pt is a quick notation for constructing a point from coordinates.
//
//	bspline.Pt(-0.5, 0.7)
func Pt[T Real](coords ...T) Point[T] {
	p := make(Point[T], len(coords))
	copy(p, coords)
	return p
}

// Origin returns the point (0,…,0) of dimension dim.
func Origin[T Real](dim int) Point[T] {
	return make(Point[T], dim)
}

// Dim is the number of coordinates of p.
func (p Point[T]) Dim() int {
	return len(p)
}

// X is the first coordinate of p.
func (p Point[T]) X() T {
	return p[0]
}

// Y is the second coordinate of p.
func (p Point[T]) Y() T {
	return p[1]
}

// Clone returns a copy of p.
func (p Point[T]) Clone() Point[T] {
	return Pt[T](p...)
}

// Pretty Stringer for points.
func (p Point[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%g", c)
	}
	b.WriteByte(')')
	return b.String()
}

// Add returns p + q as a new point. Panics if dimensions differ.
func (p Point[T]) Add(q Point[T]) Point[T] {
	if len(p) != len(q) {
		panic(fmt.Sprintf("dimension mismatch: %d vs %d", len(p), len(q)))
	}
	r := make(Point[T], len(p))
	for i := range p {
		r[i] = p[i] + q[i]
	}
	return r
}

// Sub returns p - q as a new point. Panics if dimensions differ.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return p.Add(q.Scaled(-1))
}

// Scaled returns a new point scaled by factor a.
func (p Point[T]) Scaled(a T) Point[T] {
	r := make(Point[T], len(p))
	for i := range p {
		r[i] = p[i] * a
	}
	return r
}

// AddScaled adds a⋅q to p in place. p must be owned by the caller.
func (p Point[T]) AddScaled(a T, q Point[T]) {
	for i := range p {
		p[i] += a * q[i]
	}
}

// Norm is the Euclidean length of p.
func (p Point[T]) Norm() T {
	var sum float64
	for _, c := range p {
		sum += float64(c) * float64(c)
	}
	return T(math.Sqrt(sum))
}

// Zap rounds every coordinate to Epsilon.
func (p Point[T]) Zap() Point[T] {
	r := make(Point[T], len(p))
	for i, c := range p {
		r[i] = Zap(c)
	}
	return r
}

// Equal compares two points coordinate-wise, up to Epsilon.
func (p Point[T]) Equal(q Point[T]) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !Is0(p[i] - q[i]) {
			return false
		}
	}
	return true
}

// IsFinite is a predicate: are all coordinates finite?
func (p Point[T]) IsFinite() bool {
	for _, c := range p {
		if !IsFinite(c) {
			return false
		}
	}
	return true
}

// === Affine Transformations ================================================

// AT is an affine transform of the plane, a matrix type used for
// transforming points.
type AT[T Real] []T // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT[T Real]() AT[T] {
	return make(AT[T], 9)
}

func (m AT[T]) set(row, col int, value T) {
	m[row*3+col] = value
}

func (m AT[T]) row(row int) []T {
	return m[row*3 : (row+1)*3]
}

func (m AT[T]) col(col int) []T {
	return []T{m[col], m[3+col], m[6+col]}
}

// Identity transform. Will transform a point onto itself.
func Identity[T Real]() AT[T] {
	m := newAT[T]()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation[T Real](dx, dy T) AT[T] {
	m := Identity[T]()
	m.set(0, 2, dx)
	m.set(1, 2, dy)
	return m
}

// Scaling transform. Scale a point by (sx,sy) relative to the origin.
func Scaling[T Real](sx, sy T) AT[T] {
	m := Identity[T]()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation[T Real](theta float64) AT[T] {
	m := newAT[T]()
	sin := T(math.Sin(theta))
	cos := T(math.Cos(theta))
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// Debug Stringer for an affine transform.
func (m AT[T]) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// v1 × v2, v.n = [a,b,c]
func dotProd[T Real](vec1, vec2 []T) T {
	return vec1[0]*vec2[0] + vec1[1]*vec2[1] + vec1[2]*vec2[2]
}

// Combine 2 affine transformation to a new one: first m, then n.
// Returns a new transformation without changing the argument(s).
func (m AT[T]) Combine(n AT[T]) AT[T] {
	o := newAT[T]()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Transform a point. The first two coordinates are transformed, further
// coordinates are passed through unchanged. The argument is unchanged and a
// new point is returned. Points of dimension < 2 are returned as a copy.
func (m AT[T]) Transform(p Point[T]) Point[T] {
	r := p.Clone()
	if len(p) < 2 {
		tracer().Errorf("cannot transform point %s of dimension %d", p, len(p))
		return r
	}
	v := []T{p[0], p[1], 1.0}
	r[0] = dotProd(m.row(0), v)
	r[1] = dotProd(m.row(1), v)
	return r
}
