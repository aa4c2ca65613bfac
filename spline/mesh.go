package spline

import (
	"context"
	"fmt"
	"iter"

	"github.com/npillmayer/bspline"
	"golang.org/x/sync/errgroup"
)

// UniformParams iterates over count parameter values spaced uniformly in
// [lo,hi]. The first value is lo, the last one is exactly hi. For count = 1
// the only value is lo, for count ≤ 0 the sequence is empty.
func UniformParams[T bspline.Real](lo, hi T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(uniformParam(lo, hi, i, count)) {
				return
			}
		}
	}
}

func uniformParam[T bspline.Real](lo, hi T, i, count int) T {
	if i == count-1 && count > 1 {
		return hi
	}
	if count <= 1 {
		return lo
	}
	t := lo + (hi-lo)*T(i)/T(count-1)
	return min(t, hi)
}

// Mesh iterates over count curve points, evaluated at parameters spaced
// uniformly over the domain of the curve (see UniformParams). Meshes are
// deterministic: two meshes with equal count yield identical points.
func (c Curve[T]) Mesh(count int) iter.Seq[bspline.Point[T]] {
	lo, hi := c.Domain()
	return func(yield func(bspline.Point[T]) bool) {
		for t := range UniformParams(lo, hi, count) {
			pt, err := c.Eval(t)
			if err != nil { // cannot happen for parameters within the domain
				tracer().Errorf("mesh: %v", err)
				return
			}
			if !yield(pt) {
				return
			}
		}
	}
}

// MeshAt iterates over curve points evaluated at externally supplied
// parameters. A parameter outside of the domain yields an error wrapping
// bspline.ErrDomain (and a nil point); iteration continues with the next
// parameter.
func (c Curve[T]) MeshAt(params iter.Seq[T]) iter.Seq2[bspline.Point[T], error] {
	return func(yield func(bspline.Point[T], error) bool) {
		for t := range params {
			if !yield(c.Eval(t)) {
				return
			}
		}
	}
}

// ParallelMesh computes the same points as Mesh(count), evaluating them with
// up to workers goroutines. The result is ordered by parameter.
// A workers value ≤ 0 means no limit.
func (c Curve[T]) ParallelMesh(ctx context.Context, count, workers int) ([]bspline.Point[T], error) {
	if count <= 0 {
		return nil, nil
	}
	lo, hi := c.Domain()
	mesh := make([]bspline.Point[T], count)
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < count; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pt, err := c.Eval(uniformParam(lo, hi, i, count))
			if err != nil {
				return fmt.Errorf("mesh point %d: %w", i, err)
			}
			mesh[i] = pt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		tracer().Errorf("parallel mesh: %v", err)
		return nil, err
	}
	return mesh, nil
}
