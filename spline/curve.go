package spline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/bspline"
	"github.com/npillmayer/bspline/polygon"
)

// Curve is a B-spline curve: a basis of n functions together with n control
// points of equal dimension. Curves are immutable.
type Curve[T bspline.Real] struct {
	points []bspline.Point[T] // control point i belongs to basis function i
	basis  Basis[T]
}

// NewCurve creates a curve from control points and a basis. The number of
// control points must equal basis.N(), and all control points must be of the
// same dimension ≥ 1. Control points are copied.
func NewCurve[T bspline.Real](points []bspline.Point[T], basis Basis[T]) (Curve[T], error) {
	if len(points) != basis.N() || len(points) == 0 {
		return Curve[T]{}, fmt.Errorf("%w: %d control points for %d basis functions",
			bspline.ErrCardinality, len(points), basis.N())
	}
	dim := points[0].Dim()
	if dim == 0 {
		return Curve[T]{}, fmt.Errorf("%w: control points must not be empty", bspline.ErrDimension)
	}
	cp := make([]bspline.Point[T], len(points))
	for i, pt := range points {
		if pt.Dim() != dim {
			return Curve[T]{}, fmt.Errorf("%w: control point %d has dimension %d, expected %d",
				bspline.ErrDimension, i, pt.Dim(), dim)
		}
		cp[i] = pt.Clone()
	}
	tracer().Debugf("new curve with %d control points of dimension %d, %s", len(cp), dim, basis)
	return Curve[T]{points: cp, basis: basis}, nil
}

// Basis returns the basis of the curve.
func (c Curve[T]) Basis() Basis[T] {
	return c.basis
}

// N is the number of control points.
func (c Curve[T]) N() int {
	return len(c.points)
}

// Dim is the dimension of the control points (and of the curve).
func (c Curve[T]) Dim() int {
	if len(c.points) == 0 {
		return 0
	}
	return c.points[0].Dim()
}

// ControlPoints returns a copy of the control points.
func (c Curve[T]) ControlPoints() []bspline.Point[T] {
	cp := make([]bspline.Point[T], len(c.points))
	for i, pt := range c.points {
		cp[i] = pt.Clone()
	}
	return cp
}

// Domain returns the parameter interval of the curve.
func (c Curve[T]) Domain() (T, T) {
	return c.basis.Domain()
}

// Eval evaluates the curve at parameter t, i.e. the sum of the p+1 active
// control points, weighted by their basis function values at t.
// Returns an error wrapping bspline.ErrDomain for t outside of the domain.
func (c Curve[T]) Eval(t T) (bspline.Point[T], error) {
	span, values, err := c.basis.EvalSpan(t)
	if err != nil {
		return nil, err
	}
	first := span - c.basis.P()
	pt := bspline.Origin[T](c.Dim())
	for j, v := range values {
		pt.AddScaled(v, c.points[first+j])
	}
	return pt, nil
}

// Transformed returns the image of the curve under an affine transformation.
// B-spline curves are affine invariant, so transforming the control points
// transforms every point of the curve.
func (c Curve[T]) Transformed(m bspline.AT[T]) Curve[T] {
	cp := make([]bspline.Point[T], len(c.points))
	for i, pt := range c.points {
		cp[i] = m.Transform(pt)
	}
	return Curve[T]{points: cp, basis: c.basis}
}

// ControlPolygon returns the open polygon through all control points.
// The curve has to be planar.
func (c Curve[T]) ControlPolygon() (*polygon.Polygon, error) {
	return polygon.FromPoints(c.points)
}

// LocalHull returns the convex hull of the p+1 control points which are
// active at parameter t. The curve point at t lies within this hull. If the
// active control points are collinear, the hull degenerates to a segment.
// The curve has to be planar.
func (c Curve[T]) LocalHull(t T) (*polygon.Polygon, error) {
	span, err := c.basis.FindSpan(t)
	if err != nil {
		return nil, err
	}
	return polygon.ConvexHull(c.points[span-c.basis.P() : span+1])
}

// Debug Stringer for a curve.
func (c Curve[T]) String() string {
	var b strings.Builder
	b.WriteString("B-spline curve[")
	for i, pt := range c.points {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(pt.String())
	}
	fmt.Fprintf(&b, "] on %s", c.basis)
	return b.String()
}
