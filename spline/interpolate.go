package spline

import (
	"fmt"

	"github.com/npillmayer/bspline"
	"github.com/npillmayer/bspline/knots"
	"gonum.org/v1/gonum/mat"
)

// Interpolate finds a B-spline curve of degree p passing through a sequence
// of data points. It returns the curve together with the parameters at which
// the curve passes through the data points.
//
// Parameters are chosen by chord length, the knot vector is clamped with
// interior knots averaged over p consecutive parameters (Piegl & Tiller,
// The NURBS Book, eq. 9.8). This guarantees a non-singular, banded
// collocation matrix for distinct data points. The control points are found
// by LU-decomposing the collocation matrix once and solving it for each
// coordinate.
func Interpolate[T bspline.Real](points []bspline.Point[T], p int) (Curve[T], []T, error) {
	n := len(points)
	if p < 1 || n < p+1 {
		return Curve[T]{}, nil, fmt.Errorf("%w: %d points for degree %d", bspline.ErrDegree, n, p)
	}
	dim := points[0].Dim()
	for i, pt := range points {
		if pt.Dim() != dim || dim == 0 {
			return Curve[T]{}, nil, fmt.Errorf("%w: data point %d has dimension %d",
				bspline.ErrDimension, i, pt.Dim())
		}
	}
	params, err := chordLengthParams(points)
	if err != nil {
		return Curve[T]{}, nil, err
	}
	xi, err := knots.FromSorted(averagedKnots(params, p))
	if err != nil {
		return Curve[T]{}, nil, err
	}
	basis, err := NewBasis(xi, n, p)
	if err != nil {
		return Curve[T]{}, nil, err
	}
	// collocation matrix A[k][j] = N_j(u_k)
	A := mat.NewDense(n, n, nil)
	for k, u := range params {
		row, err := basis.EvalAll(u)
		if err != nil {
			return Curve[T]{}, nil, err
		}
		for j, v := range row {
			A.Set(k, j, float64(v))
		}
	}
	var lu mat.LU
	lu.Factorize(A)
	ctrl := make([]bspline.Point[T], n)
	for j := range ctrl {
		ctrl[j] = bspline.Origin[T](dim)
	}
	rhs := mat.NewVecDense(n, nil)
	var x mat.VecDense
	for d := 0; d < dim; d++ {
		for k, pt := range points {
			rhs.SetVec(k, float64(pt[d]))
		}
		if err := lu.SolveVecTo(&x, false, rhs); err != nil {
			tracer().Errorf("interpolation: solving for coordinate %d: %v", d, err)
			return Curve[T]{}, nil, fmt.Errorf("%w: %v", bspline.ErrSingular, err)
		}
		for j := range ctrl {
			ctrl[j][d] = T(x.AtVec(j))
		}
	}
	curve, err := NewCurve(ctrl, basis)
	if err != nil {
		return Curve[T]{}, nil, err
	}
	tracer().Infof("interpolated %d points with %s", n, curve)
	return curve, params, nil
}

// chordLengthParams assigns parameters in [0,1] to data points, proportional
// to the accumulated distance between consecutive points.
func chordLengthParams[T bspline.Real](points []bspline.Point[T]) ([]T, error) {
	dist := make([]float64, len(points))
	var total float64
	for k := 1; k < len(points); k++ {
		dist[k] = float64(points[k].Sub(points[k-1]).Norm())
		total += dist[k]
	}
	if bspline.Is0(total) {
		return nil, fmt.Errorf("%w: all data points coincide", bspline.ErrDegenerate)
	}
	params := make([]T, len(points))
	var acc float64
	for k := 1; k < len(points)-1; k++ {
		acc += dist[k]
		params[k] = T(acc / total)
	}
	params[len(params)-1] = 1
	return params, nil
}

// averagedKnots creates a clamped knot vector of length n+p+1 from n
// parameters. Interior knot j+p is the mean of parameters j … j+p-1.
func averagedKnots[T bspline.Real](params []T, p int) []T {
	n := len(params)
	xi := make([]T, n+p+1)
	for j := 1; j < n-p; j++ {
		var sum T
		for i := j; i < j+p; i++ {
			sum += params[i]
		}
		xi[j+p] = sum / T(p)
	}
	for i := n; i < len(xi); i++ {
		xi[i] = 1
	}
	return xi
}
