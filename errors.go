package bspline

import "errors"

var (
	// ErrDomain indicates a parameter outside the domain of a knot vector.
	ErrDomain = errors.New("parameter outside of knot domain")
	// ErrCardinality indicates a control point count different from the basis size.
	ErrCardinality = errors.New("control point count does not match basis size")
	// ErrEmptyKnots indicates an empty knot sequence.
	ErrEmptyKnots = errors.New("knot sequence is empty")
	// ErrInvalidKnot indicates a knot value which is NaN or infinite.
	ErrInvalidKnot = errors.New("knot sequence has invalid value")
	// ErrUnsorted indicates a knot sequence which is not non-decreasing.
	ErrUnsorted = errors.New("knot sequence is not non-decreasing")
	// ErrDegree indicates an invalid combination of basis size n and degree p.
	ErrDegree = errors.New("invalid basis size or degree")
	// ErrKnotCount indicates a knot vector whose length is not n+p+1.
	ErrKnotCount = errors.New("knot count does not match basis size and degree")
	// ErrEmptyDomain indicates a knot vector with ξₚ = ξₙ, which supports no span.
	ErrEmptyDomain = errors.New("knot domain is empty")
	// ErrDimension indicates control points of unsupported or mixed dimension.
	ErrDimension = errors.New("invalid point dimension")
	// ErrDegenerate indicates input points which collapse to a single location.
	ErrDegenerate = errors.New("degenerate point sequence")
	// ErrSingular indicates a collocation system which could not be solved.
	ErrSingular = errors.New("singular interpolation system")
)
