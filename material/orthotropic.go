package material

import (
	"fmt"

	"github.com/notargets/DGMesh/utils"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// shearPairs lists the axis pairs in Voigt shear order
var shearPairs = map[int][][2]int{
	2: {{0, 1}},
	3: {{1, 2}, {2, 0}, {0, 1}},
}

// Orthotropic is an axis-aligned orthotropic material
type Orthotropic struct {
	*Symmetric
	Young   []float64 // E per axis
	Poisson []float64 // as given to NewOrthotropic
	Shear   []float64 // G per axis pair, Voigt shear order
}

// NewOrthotropic builds the stiffness by inverting the Voigt compliance.
//
//	2D (plane stress): young [Ex Ey], poisson [νxy νyx], shear [Gxy];
//	                   νxy/Ex must equal νyx/Ey
//	3D:                young [Ex Ey Ez], poisson [νyz νzx νxy], shear [Gyz Gzx Gxy];
//	                   the minor ratios follow from νji = νij Ej/Ei
//
// νij is the contraction along j under uniaxial stress along i. The
// compliance must be positive definite.
func NewOrthotropic(density float64, young, poisson, shear []float64) (*Orthotropic, error) {
	if err := checkDensity(density); err != nil {
		return nil, err
	}
	dim := len(young)
	if err := checkDim(dim); err != nil {
		return nil, err
	}
	pairs := shearPairs[dim]
	if len(poisson) != dim || len(shear) != len(pairs) {
		return nil, fmt.Errorf("%dD orthotropic needs %d young, %d poisson, %d shear; got %d, %d, %d: %w",
			dim, dim, dim, len(pairs), len(young), len(poisson), len(shear), utils.ErrInvalidParameter)
	}
	for _, v := range append(append([]float64(nil), young...), shear...) {
		if !(v > 0) {
			return nil, fmt.Errorf("moduli must be positive, got %g: %w", v, utils.ErrInvalidParameter)
		}
	}

	n := VoigtSize(dim)
	compliance := mat.NewSymDense(n, nil)
	for a := 0; a < dim; a++ {
		compliance.SetSym(a, a, 1/young[a])
	}
	if dim == 2 {
		sxy, syx := poisson[0]/young[0], poisson[1]/young[1]
		if !scalar.EqualWithinAbsOrRel(sxy, syx, 1e-15, 1e-9) {
			return nil, fmt.Errorf("poisson ratios %g/%g and %g/%g are not reciprocal: %w",
				poisson[0], young[0], poisson[1], young[1], utils.ErrInvalidParameter)
		}
		compliance.SetSym(0, 1, -sxy)
	} else {
		for p, pr := range pairs {
			compliance.SetSym(pr[0], pr[1], -poisson[p]/young[pr[0]])
		}
	}
	for p := range pairs {
		compliance.SetSym(dim+p, dim+p, 1/shear[p])
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(compliance); !ok {
		return nil, fmt.Errorf("compliance is not positive definite: %w", utils.ErrInvalidParameter)
	}
	stiffness := mat.NewSymDense(n, nil)
	if err := chol.InverseTo(stiffness); err != nil {
		return nil, fmt.Errorf("inverting compliance: %v: %w", err, utils.ErrInvalidParameter)
	}

	return &Orthotropic{
		Symmetric: newSymmetric(dim, density, stiffness),
		Young:     append([]float64(nil), young...),
		Poisson:   append([]float64(nil), poisson...),
		Shear:     append([]float64(nil), shear...),
	}, nil
}
