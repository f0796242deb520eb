package material

import (
	"fmt"

	"github.com/notargets/DGMesh/utils"
	"gonum.org/v1/gonum/mat"
)

// General is a fully specified homogeneous elasticity tensor
type General struct {
	tensor
}

// New builds a General material from the D²×D² flattening of C, where
// C[i][j][k][l] = T.At(i*D+j, k*D+l). No symmetry is imposed.
func New(density float64, T mat.Matrix) (*General, error) {
	if err := checkDensity(density); err != nil {
		return nil, err
	}
	if T == nil {
		return nil, fmt.Errorf("nil material tensor: %w", utils.ErrInvalidParameter)
	}
	var dim int
	switch r, c := T.Dims(); {
	case r == 4 && c == 4:
		dim = 2
	case r == 9 && c == 9:
		dim = 3
	default:
		return nil, fmt.Errorf("material tensor is %dx%d, expected 4x4 or 9x9: %w",
			r, c, utils.ErrInvalidParameter)
	}

	g := &General{tensor: newTensor(dim, density)}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			for k := 0; k < dim; k++ {
				for l := 0; l < dim; l++ {
					g.set(i, j, k, l, T.At(i*dim+j, k*dim+l))
				}
			}
		}
	}
	return g, nil
}
