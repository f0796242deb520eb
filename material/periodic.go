package material

import (
	"fmt"
	"math"

	"github.com/notargets/DGMesh/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Periodic is a laminate switching between two materials in a square wave
// along an axis. Children are shared, never copied; one material may appear
// in any number of composites.
type Periodic struct {
	mat1, mat2 Material
	axis       []float64 // unit length
	period     float64
	ratio      float64
	phase      float64
}

// NewPeriodic selects mat1 on the first ratio fraction of every period
// along axis and mat2 on the rest. With s = coord·â + phase and
// r = s/period - floor(s/period), mat1 wins when ratio > 0 and r <= ratio,
// so both the period boundary (r = 0) and the switch point (r = ratio)
// belong to mat1.
func NewPeriodic(mat1, mat2 Material, axis []float64, period, ratio, phase float64) (*Periodic, error) {
	if mat1 == nil || mat2 == nil {
		return nil, fmt.Errorf("periodic material needs two children: %w", utils.ErrInvalidParameter)
	}
	dim := mat1.Dim()
	if mat2.Dim() != dim {
		return nil, fmt.Errorf("children are %dD and %dD: %w", dim, mat2.Dim(), utils.ErrInvalidParameter)
	}
	if len(axis) != dim {
		return nil, fmt.Errorf("axis has %d components, material is %dD: %w", len(axis), dim, utils.ErrInvalidParameter)
	}
	norm := floats.Norm(axis, 2)
	if !(norm > 0) || math.IsInf(norm, 0) {
		return nil, fmt.Errorf("axis %v has no direction: %w", axis, utils.ErrInvalidParameter)
	}
	if !(period > 0) || math.IsInf(period, 0) {
		return nil, fmt.Errorf("period %g must be positive: %w", period, utils.ErrInvalidParameter)
	}
	if !(ratio >= 0 && ratio <= 1) {
		return nil, fmt.Errorf("ratio %g outside [0,1]: %w", ratio, utils.ErrInvalidParameter)
	}
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		return nil, fmt.Errorf("phase %g: %w", phase, utils.ErrInvalidParameter)
	}

	unit := make([]float64, dim)
	floats.ScaleTo(unit, 1/norm, axis)
	return &Periodic{
		mat1:   mat1,
		mat2:   mat2,
		axis:   unit,
		period: period,
		ratio:  ratio,
		phase:  phase,
	}, nil
}

// Position returns the normalized position of coord within its period, in
// [0,1). Components beyond the material dimension are ignored and missing
// ones count as zero.
func (p *Periodic) Position(coord []float64) float64 {
	n := min(len(coord), len(p.axis))
	s := floats.Dot(coord[:n], p.axis[:n]) + p.phase
	q := s / p.period
	r := q - math.Floor(q)
	if r >= 1 {
		r = 0
	}
	return r
}

// Select returns the child material in effect at coord
func (p *Periodic) Select(coord []float64) Material {
	if p.ratio > 0 && p.Position(coord) <= p.ratio {
		return p.mat1
	}
	return p.mat2
}

func (p *Periodic) Dim() int { return p.mat1.Dim() }

func (p *Periodic) Tensor(i, j, k, l int, coord []float64) (float64, error) {
	return p.Select(coord).Tensor(i, j, k, l, coord)
}

func (p *Periodic) StrainToStress(strain mat.Matrix, coord []float64) (*mat.Dense, error) {
	return p.Select(coord).StrainToStress(strain, coord)
}

func (p *Periodic) DensityAt(coord []float64) float64 {
	return p.Select(coord).DensityAt(coord)
}

// Density is the density at the origin
func (p *Periodic) Density() float64 {
	return p.DensityAt(make([]float64, p.Dim()))
}

func (p *Periodic) Axis() []float64 { return append([]float64(nil), p.axis...) }
func (p *Periodic) Period() float64 { return p.period }
func (p *Periodic) Ratio() float64  { return p.ratio }
func (p *Periodic) Phase() float64  { return p.phase }
