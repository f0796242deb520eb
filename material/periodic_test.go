package material

import (
	"math"
	"testing"

	"github.com/notargets/DGMesh/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func newLaminate(t *testing.T, axis []float64, period, ratio, phase float64) (*Periodic, *Isotropic, *Isotropic) {
	t.Helper()
	stiff, err := NewIsotropic(3, 1, 200, 0.3)
	require.NoError(t, err)
	soft, err := NewIsotropic(3, 2, 10, 0.45)
	require.NoError(t, err)
	p, err := NewPeriodic(stiff, soft, axis, period, ratio, phase)
	require.NoError(t, err)
	return p, stiff, soft
}

func TestPeriodic_Selection(t *testing.T) {
	p, stiff, soft := newLaminate(t, []float64{1, 0, 0}, 2, 0.5, 0)

	tests := []struct {
		x        float64
		expected Material
	}{
		{0.25, stiff},
		{1.25, soft},
		{0, stiff}, // period boundary
		{2, stiff}, // period boundary
		{1, stiff}, // switch point
		{1.0001, soft},
		{-0.5, soft},   // r = 0.75
		{-1.75, stiff}, // r = 0.125
		{7.9, soft},
	}
	for _, tt := range tests {
		coord := []float64{tt.x, 3, -4}
		assert.Same(t, tt.expected, p.Select(coord), "x=%g", tt.x)
	}
	assert.InDelta(t, 0.125, p.Position([]float64{0.25, 0, 0}), 1.e-15)
	assert.InDelta(t, 0.625, p.Position([]float64{1.25, 0, 0}), 1.e-15)
}

func TestPeriodic_Delegates(t *testing.T) {
	p, stiff, soft := newLaminate(t, []float64{1, 0, 0}, 2, 0.5, 0)
	in, out := []float64{0.25, 0, 0}, []float64{1.25, 0, 0}

	tensorsInDelta(t, stiff, p, in, 0)
	tensorsInDelta(t, soft, p, out, 0)

	strain := mat.NewDense(3, 3, []float64{1.e-3, 0, 0, 0, 0, 0, 0, 0, 0})
	got, err := p.StrainToStress(strain, out)
	require.NoError(t, err)
	want, err := soft.StrainToStress(strain, out)
	require.NoError(t, err)
	assert.True(t, mat.Equal(want, got))

	assert.Equal(t, 1.0, p.DensityAt(in))
	assert.Equal(t, 2.0, p.DensityAt(out))
	assert.Equal(t, 1.0, p.Density(), "origin sits on a period boundary")
	assert.Equal(t, 3, p.Dim())

	_, err = p.Tensor(0, 0, 3, 0, in)
	assert.ErrorIs(t, err, utils.ErrIndexOutOfRange)
}

func TestPeriodic_AxisAndPhase(t *testing.T) {
	// Axis length does not matter
	p, stiff, soft := newLaminate(t, []float64{4, 0, 0}, 2, 0.5, 0)
	assert.Same(t, stiff, p.Select([]float64{0.25, 0, 0}))
	assert.InDeltaSlicef(t, []float64{1, 0, 0}, p.Axis(), 1.e-15, "")

	// Phase shifts the pattern forward
	p, stiff, soft = newLaminate(t, []float64{1, 0, 0}, 2, 0.5, 1)
	assert.Same(t, soft, p.Select([]float64{0.25, 0, 0}))
	assert.Same(t, stiff, p.Select([]float64{1.25, 0, 0}))

	// Diagonal axis projects the coordinate
	p, stiff, soft = newLaminate(t, []float64{1, 1, 0}, 2, 0.5, 0)
	assert.InDelta(t, math.Sqrt2/4, p.Position([]float64{0.5, 0.5, 0}), 1.e-12)
	assert.Same(t, stiff, p.Select([]float64{0.5, 0.5, 0}))
	assert.Same(t, soft, p.Select([]float64{1, 1, 0}))
}

func TestPeriodic_RatioExtremes(t *testing.T) {
	p, _, soft := newLaminate(t, []float64{0, 0, 1}, 1, 0, 0)
	for _, z := range []float64{0, 0.3, 1, 2.5} {
		assert.Same(t, soft, p.Select([]float64{0, 0, z}))
	}
	p, stiff, _ := newLaminate(t, []float64{0, 0, 1}, 1, 1, 0)
	for _, z := range []float64{0, 0.3, 0.999, 2.5} {
		assert.Same(t, stiff, p.Select([]float64{0, 0, z}))
	}
}

func TestPeriodic_SharedAndNested(t *testing.T) {
	a, err := NewIsotropic(3, 1, 200, 0.3)
	require.NoError(t, err)
	b, err := NewIsotropic(3, 2, 10, 0.3)
	require.NoError(t, err)

	x, err := NewPeriodic(a, b, []float64{1, 0, 0}, 1, 0.5, 0)
	require.NoError(t, err)
	y, err := NewPeriodic(b, a, []float64{0, 1, 0}, 1, 0.5, 0)
	require.NoError(t, err)
	// A laminate of laminates, reusing the same children
	z, err := NewPeriodic(x, y, []float64{0, 0, 1}, 2, 0.5, 0)
	require.NoError(t, err)

	assert.Equal(t, 1.0, z.DensityAt([]float64{0.25, 0.75, 0.5}))
	assert.Equal(t, 1.0, z.DensityAt([]float64{0.75, 0.75, 1.5}))
	assert.Equal(t, 2.0, z.DensityAt([]float64{0.75, 0.25, 0.5}))
}

func TestPeriodic_Invalid(t *testing.T) {
	a, err := NewIsotropic(3, 1, 200, 0.3)
	require.NoError(t, err)
	b, err := NewIsotropic(3, 2, 10, 0.3)
	require.NoError(t, err)
	planar, err := NewIsotropic(2, 2, 10, 0.3)
	require.NoError(t, err)
	axis := []float64{1, 0, 0}

	tests := []struct {
		name       string
		mat1, mat2 Material
		axis       []float64
		period     float64
		ratio      float64
		phase      float64
	}{
		{"nil child", a, nil, axis, 1, 0.5, 0},
		{"dimension mismatch", a, planar, axis, 1, 0.5, 0},
		{"axis length", a, b, []float64{1, 0}, 1, 0.5, 0},
		{"zero axis", a, b, []float64{0, 0, 0}, 1, 0.5, 0},
		{"zero period", a, b, axis, 0, 0.5, 0},
		{"negative period", a, b, axis, -2, 0.5, 0},
		{"ratio above one", a, b, axis, 1, 1.5, 0},
		{"negative ratio", a, b, axis, 1, -0.1, 0},
		{"nan phase", a, b, axis, 1, 0.5, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPeriodic(tt.mat1, tt.mat2, tt.axis, tt.period, tt.ratio, tt.phase)
			assert.ErrorIs(t, err, utils.ErrInvalidParameter)
			assert.Nil(t, p)
		})
	}
}
