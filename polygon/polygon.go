/*
Package polygon implements planar polygons, e.g. the control polygon of a
B-spline curve or the convex hull of the control points active at a given
parameter. Polygons are built with a builder pattern:

	pg := NullPolygon().Knot(bspline.Pt(0.0, 0.0)).Knot(bspline.Pt(1.0, 3.0)).
		Knot(bspline.Pt(3.0, 0.0)).Cycle()

Geometric queries are delegated to polyclip-go.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"sort"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/bspline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bspline'
func tracer() tracing.Trace {
	return tracing.Select("bspline")
}

// Polygon is a sequence of planar points, either open or closed (cyclic).
type Polygon struct {
	contour polyclip.Contour // point i
	cycle   bool             // is this polygon closed ?
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls.
func NullPolygon() *Polygon {
	return &Polygon{contour: polyclip.Contour{}}
}

// FromPoints creates an open polygon from a sequence of 2D points.
func FromPoints[T bspline.Real](pts []bspline.Point[T]) (*Polygon, error) {
	pg := NullPolygon()
	for i, pt := range pts {
		if pt.Dim() != 2 {
			return nil, fmt.Errorf("%w: point %d has dimension %d, polygons are 2D",
				bspline.ErrDimension, i, pt.Dim())
		}
		pg.contour.Add(polyclip.Point{X: float64(pt[0]), Y: float64(pt[1])})
	}
	return pg, nil
}

// ConvexHull creates the closed convex hull of a set of 2D points, in
// counter-clockwise order (Andrew's monotone chain). Duplicate and collinear
// points are dropped, so the hull of collinear points is a closed segment
// of 2 points and the hull of coinciding points has a single point.
func ConvexHull[T bspline.Real](pts []bspline.Point[T]) (*Polygon, error) {
	open, err := FromPoints(pts)
	if err != nil {
		return nil, err
	}
	ps := open.contour
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].X != ps[j].X {
			return ps[i].X < ps[j].X
		}
		return ps[i].Y < ps[j].Y
	})
	hull := make(polyclip.Contour, 0, 2*len(ps))
	for _, pt := range ps { // lower hull
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	lower := len(hull) + 1
	for i := len(ps) - 2; i >= 0; i-- { // upper hull
		pt := ps[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	if len(hull) > 1 { // last point equals the first one
		hull = hull[:len(hull)-1]
	}
	if len(hull) == 2 && hull[0] == hull[1] {
		hull = hull[:1]
	}
	tracer().Debugf("convex hull of %d points has %d corners", len(ps), len(hull))
	return &Polygon{contour: hull, cycle: true}, nil
}

// (b-a) × (c-a), positive for a counter-clockwise turn a → b → c
func cross(a, b, c polyclip.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Box creates a closed rectangle from two diagonally opposite corners.
func Box(a, b bspline.Point[float64]) *Polygon {
	return NullPolygon().Knot(a).Knot(bspline.Pt(b.X(), a.Y())).
		Knot(b).Knot(bspline.Pt(a.X(), b.Y())).Cycle()
}

// Knot appends a point to a polygon. Part of builder functionality.
// Panics if pt is not 2-dimensional.
func (pg *Polygon) Knot(pt bspline.Point[float64]) *Polygon {
	if pt.Dim() != 2 {
		panic(fmt.Sprintf("cannot add %d-dimensional point to polygon", pt.Dim()))
	}
	pg.contour.Add(polyclip.Point{X: pt.X(), Y: pt.Y()})
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End ends an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// N is the number of points.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Point returns point i of the polygon.
func (pg *Polygon) Point(i int) bspline.Point[float64] {
	return bspline.Pt(pg.contour[i].X, pg.contour[i].Y)
}

// Contour returns a copy of the points as a polyclip contour.
func (pg *Polygon) Contour() polyclip.Contour {
	c := make(polyclip.Contour, len(pg.contour))
	copy(c, pg.contour)
	return c
}

// BoundingBox returns the axis-parallel bounding box of the polygon.
func (pg *Polygon) BoundingBox() polyclip.Rectangle {
	return pg.contour.BoundingBox()
}

// Contains is a predicate: does a closed polygon contain point pt? Points
// within bspline.Epsilon of the boundary are contained, which makes degenerate
// polygons (a segment or a single point) contain their boundary points. Open
// polygons do not contain any point.
func (pg *Polygon) Contains(pt bspline.Point[float64]) bool {
	if !pg.cycle || pt.Dim() != 2 || len(pg.contour) == 0 {
		tracer().Debugf("containment test for open or empty polygon or non-2D point %s", pt)
		return false
	}
	q := polyclip.Point{X: pt.X(), Y: pt.Y()}
	for i, a := range pg.contour {
		b := pg.contour[(i+1)%len(pg.contour)]
		if segmentDistance(a, b, q) <= bspline.Epsilon {
			return true
		}
	}
	if len(pg.contour) < 3 {
		return false
	}
	return pg.contour.Contains(q)
}

// distance of q from segment ab
func segmentDistance(a, b, q polyclip.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	d2 := dx*dx + dy*dy
	var s float64
	if d2 > 0 {
		s = min(max(((q.X-a.X)*dx+(q.Y-a.Y)*dy)/d2, 0), 1)
	}
	return math.Hypot(q.X-(a.X+s*dx), q.Y-(a.Y+s*dy))
}

// AsString returns a polygon as a (debugging) string, e.g.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, pt := range pg.contour {
		if i > 0 {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "(%.4g,%.4g)", pt.X, pt.Y)
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
