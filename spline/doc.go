/*
Package spline implements B-spline bases and B-spline curves.

A Basis of n functions of degree p lives on a knot vector of length n+p+1.
For a parameter t it finds the knot span containing t and evaluates the p+1
basis functions which do not vanish there, using the numerically stable
Cox–de Boor recurrence:

	basis, _ := spline.OpenBasis[float64](4, 2)  // knots [0, 0, 0, 0.5, 1, 1, 1]
	span, _ := basis.FindSpan(0.6)               // 3
	values, _ := basis.Eval(0.6)                 // N₁, N₂, N₃ at 0.6

A Curve pairs a basis with one control point per basis function:

	curve, err := spline.NewCurve(points, basis)
	pt, err := curve.Eval(0.5)
	for pt := range curve.Mesh(100) {
		…
	}

Bases and curves are immutable values and may be evaluated concurrently.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'bspline'
func tracer() tracing.Trace {
	return tracing.Select("bspline")
}
