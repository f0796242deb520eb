package material

import (
	"fmt"
	"math"

	"github.com/notargets/DGMesh/utils"
	"gonum.org/v1/gonum/mat"
)

// Material is a fourth-order elasticity tensor C over dimension Dim(),
// optionally varying in space. All queries are pure; implementations are
// immutable after construction and safe for concurrent use.
type Material interface {
	Dim() int

	// Tensor returns C[i][j][k][l] at coord. Indices outside [0, Dim())
	// fail with utils.ErrIndexOutOfRange.
	Tensor(i, j, k, l int, coord []float64) (float64, error)

	// StrainToStress computes stress[i][j] = Σ_kl C[i][j][k][l] strain[k][l]
	// at coord. The strain is not assumed symmetric.
	StrainToStress(strain mat.Matrix, coord []float64) (*mat.Dense, error)

	// DensityAt returns the mass density at coord
	DensityAt(coord []float64) float64

	// Density returns the reference density: the uniform value for
	// homogeneous materials, the value at the origin otherwise
	Density() float64
}

// tensor is the dense D^4 storage shared by the homogeneous variants.
// Component (i,j,k,l) lives at ((i*D+j)*D+k)*D+l.
type tensor struct {
	dim     int
	density float64
	c       []float64
}

func newTensor(dim int, density float64) tensor {
	return tensor{
		dim:     dim,
		density: density,
		c:       make([]float64, dim*dim*dim*dim),
	}
}

func (t *tensor) index(i, j, k, l int) int {
	return ((i*t.dim+j)*t.dim+k)*t.dim + l
}

func (t *tensor) at(i, j, k, l int) float64 { return t.c[t.index(i, j, k, l)] }

func (t *tensor) set(i, j, k, l int, v float64) { t.c[t.index(i, j, k, l)] = v }

func (t *tensor) Dim() int { return t.dim }

// Tensor ignores coord; the material is homogeneous
func (t *tensor) Tensor(i, j, k, l int, coord []float64) (float64, error) {
	if err := checkIndices(t.dim, i, j, k, l); err != nil {
		return 0, err
	}
	return t.at(i, j, k, l), nil
}

func (t *tensor) StrainToStress(strain mat.Matrix, coord []float64) (*mat.Dense, error) {
	if err := checkStrain(t.dim, strain); err != nil {
		return nil, err
	}
	D := t.dim
	stress := mat.NewDense(D, D, nil)
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			var s float64
			for k := 0; k < D; k++ {
				for l := 0; l < D; l++ {
					s += t.at(i, j, k, l) * strain.At(k, l)
				}
			}
			stress.Set(i, j, s)
		}
	}
	return stress, nil
}

func (t *tensor) DensityAt(coord []float64) float64 { return t.density }

func (t *tensor) Density() float64 { return t.density }

// Flatten returns the D²×D² matrix with entry (i*D+j, k*D+l) = C[i][j][k][l]
func (t *tensor) Flatten() *mat.Dense {
	D := t.dim
	m := mat.NewDense(D*D, D*D, nil)
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for k := 0; k < D; k++ {
				for l := 0; l < D; l++ {
					m.Set(i*D+j, k*D+l, t.at(i, j, k, l))
				}
			}
		}
	}
	return m
}

func checkIndices(dim int, idx ...int) error {
	for _, n := range idx {
		if n < 0 || n >= dim {
			return fmt.Errorf("tensor index %v outside [0,%d): %w", idx, dim, utils.ErrIndexOutOfRange)
		}
	}
	return nil
}

func checkStrain(dim int, strain mat.Matrix) error {
	if strain == nil {
		return fmt.Errorf("nil strain: %w", utils.ErrInvalidParameter)
	}
	if r, c := strain.Dims(); r != dim || c != dim {
		return fmt.Errorf("strain is %dx%d, material is %dD: %w", r, c, dim, utils.ErrInvalidParameter)
	}
	return nil
}

func checkDim(dim int) error {
	if dim != 2 && dim != 3 {
		return fmt.Errorf("dimension %d, expected 2 or 3: %w", dim, utils.ErrInvalidParameter)
	}
	return nil
}

func checkDensity(density float64) error {
	if density < 0 || math.IsNaN(density) || math.IsInf(density, 0) {
		return fmt.Errorf("density %g: %w", density, utils.ErrInvalidParameter)
	}
	return nil
}
