package material

import (
	"fmt"

	"github.com/notargets/DGMesh/utils"
	"gonum.org/v1/gonum/mat"
)

var (
	_ Material = (*General)(nil)
	_ Material = (*Isotropic)(nil)
	_ Material = (*Symmetric)(nil)
	_ Material = (*Orthotropic)(nil)
	_ Material = (*Periodic)(nil)
)

// VoigtIndex maps a symmetric index pair to its Voigt position.
//
//	2D: 00->0  11->1  01,10->2
//	3D: 00->0  11->1  22->2  12,21->3  02,20->4  01,10->5
func VoigtIndex(dim, i, j int) int {
	if i == j {
		return i
	}
	if dim == 2 {
		return 2
	}
	return 6 - i - j
}

// VoigtSize is the side of the reduced matrix: 3 in 2D, 6 in 3D
func VoigtSize(dim int) int { return dim * (dim + 1) / 2 }

// Symmetric is a homogeneous material given by a symmetric Voigt matrix,
// expanded with the minor (i↔j, k↔l) and major (ij↔kl) symmetries
type Symmetric struct {
	tensor
	voigt *mat.SymDense
}

// NewSymmetric builds C[i][j][k][l] = M(VoigtIndex(i,j), VoigtIndex(k,l)).
// M is 3x3 in 2D or 6x6 in 3D and must be symmetric. Entries are stored as
// given, so Tensor reproduces them exactly; shear entries act on tensor
// strain components, i.e. M multiplies engineering shear strain.
func NewSymmetric(density float64, M mat.Matrix) (*Symmetric, error) {
	if err := checkDensity(density); err != nil {
		return nil, err
	}
	if M == nil {
		return nil, fmt.Errorf("nil material matrix: %w", utils.ErrInvalidParameter)
	}
	r, c := M.Dims()
	var dim int
	switch {
	case r == 3 && c == 3:
		dim = 2
	case r == 6 && c == 6:
		dim = 3
	default:
		return nil, fmt.Errorf("material matrix is %dx%d, expected 3x3 or 6x6: %w",
			r, c, utils.ErrInvalidParameter)
	}
	if !mat.EqualApprox(M, M.T(), 1e-12) {
		return nil, fmt.Errorf("material matrix is not symmetric: %w", utils.ErrInvalidParameter)
	}

	sym := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			sym.SetSym(i, j, M.At(i, j))
		}
	}
	return newSymmetric(dim, density, sym), nil
}

func newSymmetric(dim int, density float64, voigt *mat.SymDense) *Symmetric {
	s := &Symmetric{
		tensor: newTensor(dim, density),
		voigt:  voigt,
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			for k := 0; k < dim; k++ {
				for l := 0; l < dim; l++ {
					s.set(i, j, k, l, voigt.At(VoigtIndex(dim, i, j), VoigtIndex(dim, k, l)))
				}
			}
		}
	}
	return s
}

// Voigt returns a copy of the reduced stiffness matrix
func (s *Symmetric) Voigt() *mat.SymDense {
	n := s.voigt.SymmetricDim()
	cp := mat.NewSymDense(n, nil)
	cp.CopySym(s.voigt)
	return cp
}
