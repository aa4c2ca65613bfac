package spline

import (
	"math"
	"testing"

	"github.com/npillmayer/bspline"
	"github.com/npillmayer/bspline/polygon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wavePoints() []bspline.Point[float64] {
	return []bspline.Point[float64]{
		bspline.Pt(-1.0, 0.0),
		bspline.Pt(-0.5, 0.7),
		bspline.Pt(0.0, 0.0),
		bspline.Pt(0.5, -0.7),
		bspline.Pt(1.0, 0.0),
	}
}

func waveCurve(t *testing.T) Curve[float64] {
	t.Helper()
	curve, err := NewCurve(wavePoints(), mustOpenBasis(t, 5, 2))
	require.NoError(t, err)
	return curve
}

func TestSplineCurves(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	curve := waveCurve(t)
	t.Logf("%s", curve)
	assert.Equal(t, 5, curve.N())
	assert.Equal(t, 2, curve.Dim())
	start, err := curve.Eval(0.0)
	require.NoError(t, err)
	assert.True(t, start.Equal(bspline.Pt(-1.0, 0.0)), "start = %v", start)
	end, err := curve.Eval(1.0)
	require.NoError(t, err)
	assert.True(t, end.Equal(bspline.Pt(1.0, 0.0)), "end = %v", end)
	mid, err := curve.Eval(0.5)
	require.NoError(t, err)
	assert.True(t, mid.Equal(bspline.Pt(0.0, 0.0)), "mid = %v", mid) // point symmetric
}

func TestCurveIsWeightedSum(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []bspline.Point[float64]{
		bspline.Pt(0.0, 0.0, 0.0),
		bspline.Pt(1.0, 2.0, 0.0),
		bspline.Pt(3.0, 2.0, 1.0),
		bspline.Pt(4.0, 0.0, 2.0),
	}
	curve, err := NewCurve(pts, mustOpenBasis(t, 4, 2))
	require.NoError(t, err)
	got, err := curve.Eval(0.6)
	require.NoError(t, err)
	// N₁, N₂, N₃ at 0.6 are 0.32, 0.64, 0.04
	want := pts[1].Scaled(0.32).Add(pts[2].Scaled(0.64)).Add(pts[3].Scaled(0.04))
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
}

func TestEndpointInterpolation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, b := range testBases(t) {
		pts := make([]bspline.Point[float64], b.N())
		for i := range pts {
			x := float64(i)
			pts[i] = bspline.Pt(x, math.Sin(x), x*x)
		}
		curve, err := NewCurve(pts, b)
		require.NoError(t, err)
		lo, hi := b.Knots().First(), b.Knots().Last()
		start, err := curve.Eval(lo)
		require.NoError(t, err)
		end, err := curve.Eval(hi)
		require.NoError(t, err)
		assert.True(t, start.Equal(pts[0]), "%s: start = %v", b, start)
		assert.True(t, end.Equal(pts[len(pts)-1]), "%s: end = %v", b, end)
	}
}

func TestCardinalityValidation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	basis := mustOpenBasis(t, 5, 2)
	all := wavePoints()
	for _, count := range []int{0, 1, 4, 6} {
		pts := make([]bspline.Point[float64], 0, count)
		for i := 0; i < count; i++ {
			pts = append(pts, all[i%len(all)])
		}
		curve, err := NewCurve(pts, basis)
		assert.ErrorIs(t, err, bspline.ErrCardinality, "%d control points", count)
		assert.Equal(t, 0, curve.N())
	}
	_, err := NewCurve(wavePoints(), Basis[float64]{})
	assert.ErrorIs(t, err, bspline.ErrCardinality)
	_, err = NewCurve(nil, Basis[float64]{})
	assert.ErrorIs(t, err, bspline.ErrCardinality)
}

func TestDimensionValidation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := wavePoints()
	pts[3] = bspline.Pt(0.5, -0.7, 1.0)
	_, err := NewCurve(pts, mustOpenBasis(t, 5, 2))
	assert.ErrorIs(t, err, bspline.ErrDimension)
	empty := make([]bspline.Point[float64], 5)
	_, err = NewCurve(empty, mustOpenBasis(t, 5, 2))
	assert.ErrorIs(t, err, bspline.ErrDimension)
}

func TestCurveOwnsControlPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := wavePoints()
	curve, err := NewCurve(pts, mustOpenBasis(t, 5, 2))
	require.NoError(t, err)
	pts[0][0] = 42
	cp := curve.ControlPoints()
	cp[4][0] = 42
	start, _ := curve.Eval(0)
	end, _ := curve.Eval(1)
	assert.True(t, start.Equal(bspline.Pt(-1.0, 0.0)))
	assert.True(t, end.Equal(bspline.Pt(1.0, 0.0)))
}

func TestCurveDomainRejection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	curve := waveCurve(t)
	for _, x := range []float64{-1e-9, 1 + 1e-9, math.NaN()} {
		pt, err := curve.Eval(x)
		assert.ErrorIs(t, err, bspline.ErrDomain)
		assert.Nil(t, pt)
	}
}

func TestAffineInvariance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	curve := waveCurve(t)
	m := bspline.Rotation[float64](0.3).Combine(bspline.Scaling(2.0, 0.5)).Combine(bspline.Translation(1.0, -2.0))
	image := curve.Transformed(m)
	for _, x := range sampleParams(23) {
		pt, err := curve.Eval(x)
		require.NoError(t, err)
		ipt, err := image.Eval(x)
		require.NoError(t, err)
		assert.True(t, m.Transform(pt).Equal(ipt), "at %g: %v vs %v", x, m.Transform(pt), ipt)
	}
}

func TestControlPolygon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	curve := waveCurve(t)
	pg, err := curve.ControlPolygon()
	require.NoError(t, err)
	tracer().Infof("control polygon = %s", polygon.AsString(pg))
	assert.Equal(t, 5, pg.N())
	assert.False(t, pg.IsCycle())
	bb := pg.BoundingBox()
	for pt := range curve.Mesh(200) {
		assert.True(t, pt.X() >= bb.Min.X-tol && pt.X() <= bb.Max.X+tol, "%v outside bounding box", pt)
		assert.True(t, pt.Y() >= bb.Min.Y-tol && pt.Y() <= bb.Max.Y+tol, "%v outside bounding box", pt)
	}
}

func TestLocalHullContainsCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	curve := waveCurve(t) // knots [0, 0, 0, 1/3, 2/3, 1, 1, 1]
	for _, x := range sampleParams(49) {
		hull, err := curve.LocalHull(x)
		require.NoError(t, err)
		assert.True(t, hull.IsCycle())
		assert.LessOrEqual(t, hull.N(), 3)
		pt, err := curve.Eval(x)
		require.NoError(t, err)
		assert.True(t, hull.Contains(pt), "at %g: %v not in %s", x, pt, polygon.AsString(hull))
	}
	// control points 1…3 are collinear
	hull, err := curve.LocalHull(0.5)
	require.NoError(t, err)
	assert.Equal(t, 2, hull.N())
	_, err = curve.LocalHull(2)
	assert.ErrorIs(t, err, bspline.ErrDomain)
}

func TestLocalHullOfCrossedControlPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// in index order the control points form a self-intersecting polygon
	pts := []bspline.Point[float64]{
		bspline.Pt(0.0, 0.0), bspline.Pt(2.0, 2.0), bspline.Pt(2.0, 0.0), bspline.Pt(0.0, 2.0),
	}
	curve, err := NewCurve(pts, mustOpenBasis(t, 4, 3))
	require.NoError(t, err)
	pt, err := curve.Eval(0.1)
	require.NoError(t, err)
	assert.True(t, pt.Equal(bspline.Pt(0.54, 0.488)), "pt = %v", pt)
	for _, x := range sampleParams(31) {
		hull, err := curve.LocalHull(x)
		require.NoError(t, err)
		assert.Equal(t, 4, hull.N())
		pt, err := curve.Eval(x)
		require.NoError(t, err)
		assert.True(t, hull.Contains(pt), "at %g: %v not in %s", x, pt, polygon.AsString(hull))
	}
}

func TestLocalHullOfCollinearControlPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []bspline.Point[float64]{
		bspline.Pt(0.0, 0.0), bspline.Pt(1.0, 1.0), bspline.Pt(2.0, 2.0), bspline.Pt(3.0, 3.0),
	}
	curve, err := NewCurve(pts, mustOpenBasis(t, 4, 2))
	require.NoError(t, err)
	for _, x := range sampleParams(21) {
		hull, err := curve.LocalHull(x)
		require.NoError(t, err)
		assert.Equal(t, 2, hull.N())
		pt, err := curve.Eval(x)
		require.NoError(t, err)
		assert.True(t, hull.Contains(pt), "at %g: %v not in %s", x, pt, polygon.AsString(hull))
	}
}

func TestPolygonNeedsPlanarCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []bspline.Point[float64]{
		bspline.Pt(0.0, 0.0, 0.0), bspline.Pt(1.0, 0.0, 1.0), bspline.Pt(1.0, 1.0, 2.0),
	}
	curve, err := NewCurve(pts, mustOpenBasis(t, 3, 2))
	require.NoError(t, err)
	_, err = curve.ControlPolygon()
	assert.ErrorIs(t, err, bspline.ErrDimension)
	_, err = curve.LocalHull(0.5)
	assert.ErrorIs(t, err, bspline.ErrDimension)
}
