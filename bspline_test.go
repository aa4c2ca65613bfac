package bspline

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if !Is1(float32(1.00000001)) {
		t.Errorf("Expected float32 1.00000001 to be one, is not")
	}
	assert.Equal(t, 0.0, Zap(-0.00000001))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.True(t, IsFinite(float32(3.5)))
}

func TestPointBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Pt(3.0, 2.0)
	q := Pt(-3.0, -2.0)
	r := p.Add(q)
	if !r.Equal(Origin[float64](2)) {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.Equal(t, "(3,2)", p.String())
	assert.Equal(t, 2, p.Dim())
	assert.InDelta(t, 5.0, Pt(3.0, 4.0).Norm(), 1e-12)
	assert.True(t, p.Sub(p).Equal(Origin[float64](2)))
	assert.False(t, p.Equal(Pt(3.0, 2.0, 0.0)))
}

func TestPointAddScaled(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	acc := Origin[float64](3)
	acc.AddScaled(0.5, Pt(2.0, 4.0, 6.0))
	acc.AddScaled(2, Pt(1.0, 0.0, -1.0))
	assert.True(t, acc.Equal(Pt(3.0, 2.0, 1.0)), "acc = %v", acc)
}

func TestCloneIsIndependent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Pt(1.0, 1.0)
	c := p.Clone()
	c[0] = 7
	assert.Equal(t, 1.0, p.X())
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o := Origin[float64](2)
	if !Translation(-1.0, -1.0).Transform(Pt(1.0, 1.0)).Equal(o) {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	m := Rotation[float64](math.Pi).Combine(Translation(1.0, 0.0))
	if !m.Transform(Pt(1.0, 0.0)).Zap().Equal(o) {
		t.Errorf("Expected result to be origin, is %v", m.Transform(Pt(1.0, 0.0)))
	}
}

func TestTransformPassesExtraCoordinates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Pt(1.0, 2.0, 3.0)
	r := Scaling(2.0, 3.0).Transform(p)
	assert.True(t, r.Equal(Pt(2.0, 6.0, 3.0)), "r = %v", r)
	assert.True(t, p.Equal(Pt(1.0, 2.0, 3.0)), "argument must stay unchanged")
	assert.True(t, Identity[float64]().Transform(Pt(4.0)).Equal(Pt(4.0)))
}
