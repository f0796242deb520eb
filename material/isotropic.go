package material

import (
	"fmt"

	"github.com/notargets/DGMesh/utils"
)

// Isotropic is a homogeneous isotropic linear elastic material
type Isotropic struct {
	tensor
	Young   float64 // Young's modulus E
	Poisson float64 // Poisson's ratio ν
	Lambda  float64 // Lamé's first parameter λ
	Mu      float64 // shear modulus μ
}

// NewIsotropic computes C = λ δij δkl + μ (δik δjl + δil δjk) with
// λ = Eν/((1+ν)(1-2ν)) and μ = E/(2(1+ν)). In 2D this is plane strain.
func NewIsotropic(dim int, density, young, poisson float64) (*Isotropic, error) {
	if err := checkDim(dim); err != nil {
		return nil, err
	}
	if err := checkDensity(density); err != nil {
		return nil, err
	}
	if !(young > 0) {
		return nil, fmt.Errorf("young's modulus %g must be positive: %w", young, utils.ErrInvalidParameter)
	}
	if !(poisson > -1 && poisson < 0.5) {
		return nil, fmt.Errorf("poisson ratio %g outside (-1, 0.5): %w", poisson, utils.ErrInvalidParameter)
	}

	o := &Isotropic{
		tensor:  newTensor(dim, density),
		Young:   young,
		Poisson: poisson,
		Lambda:  young * poisson / ((1 + poisson) * (1 - 2*poisson)),
		Mu:      young / (2 * (1 + poisson)),
	}
	delta := func(a, b int) float64 {
		if a == b {
			return 1
		}
		return 0
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			for k := 0; k < dim; k++ {
				for l := 0; l < dim; l++ {
					o.set(i, j, k, l, o.Lambda*delta(i, j)*delta(k, l)+
						o.Mu*(delta(i, k)*delta(j, l)+delta(i, l)*delta(j, k)))
				}
			}
		}
	}
	return o, nil
}
