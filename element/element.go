package element

import (
	"fmt"

	"github.com/notargets/DGMesh/utils"
)

type Dimensionality uint8

const (
	D1 Dimensionality = iota + 1
	D2
	D3
)

type ElementGeometry uint8

const (
	Tet ElementGeometry = iota
	Hex
	Prism
	Pyramid
	Tri
	Rectangle
	Line
)

// MaxFaceVertices is the largest number of vertices on any supported face
const MaxFaceVertices = 4

func (g ElementGeometry) String() string {
	names := []string{"Tet", "Hex", "Prism", "Pyramid", "Tri", "Rectangle", "Line"}
	if int(g) < len(names) {
		return names[g]
	}
	return "Invalid"
}

// NumVertices returns the number of corner vertices of the element
func (g ElementGeometry) NumVertices() int {
	switch g {
	case Tet:
		return 4
	case Hex:
		return 8
	case Prism:
		return 6
	case Pyramid:
		return 5
	case Tri:
		return 3
	case Rectangle:
		return 4
	case Line:
		return 2
	default:
		return 0
	}
}

// Dimensions returns the topological dimension of the element
func (g ElementGeometry) Dimensions() Dimensionality {
	switch g {
	case Tet, Hex, Prism, Pyramid:
		return D3
	case Tri, Rectangle:
		return D2
	default:
		return D1
	}
}

// Local face tables, 0-based local vertex indices. Faces of 3D elements are
// listed counter-clockwise seen from outside for a positively oriented
// element; faces of 2D elements are their edges.
var (
	tetFaces = [][]int{
		{0, 2, 1},
		{0, 1, 3},
		{0, 3, 2},
		{1, 2, 3},
	}
	hexFaces = [][]int{
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4},
		{1, 2, 6, 5},
		{2, 3, 7, 6},
		{3, 0, 4, 7},
	}
	prismFaces = [][]int{
		{0, 2, 1},
		{3, 4, 5},
		{0, 1, 4, 3},
		{1, 2, 5, 4},
		{2, 0, 3, 5},
	}
	pyramidFaces = [][]int{
		{0, 3, 2, 1},
		{0, 1, 4},
		{1, 2, 4},
		{2, 3, 4},
		{3, 0, 4},
	}
	triFaces = [][]int{
		{0, 1},
		{1, 2},
		{2, 0},
	}
	rectangleFaces = [][]int{
		{0, 1},
		{1, 2},
		{2, 3},
		{3, 0},
	}
)

// GeometryFromVertexCount resolves the element type of a homogeneous mesh
// from its spatial dimension and vertex count per element
func GeometryFromVertexCount(dim Dimensionality, nv int) (ElementGeometry, error) {
	switch dim {
	case D3:
		switch nv {
		case 4:
			return Tet, nil
		case 5:
			return Pyramid, nil
		case 6:
			return Prism, nil
		case 8:
			return Hex, nil
		}
	case D2:
		switch nv {
		case 3:
			return Tri, nil
		case 4:
			return Rectangle, nil
		}
	}
	return 0, fmt.Errorf("%d vertices per element in %dD: %w",
		nv, dim, utils.ErrUnsupportedElementType)
}

// LocalFaces returns the ordered local face definitions of the element.
// The result is a fresh copy.
func (g ElementGeometry) LocalFaces() ([][]int, error) {
	var table [][]int
	switch g {
	case Tet:
		table = tetFaces
	case Hex:
		table = hexFaces
	case Prism:
		table = prismFaces
	case Pyramid:
		table = pyramidFaces
	case Tri:
		table = triFaces
	case Rectangle:
		table = rectangleFaces
	default:
		return nil, fmt.Errorf("no faces defined for %s: %w",
			g, utils.ErrUnsupportedElementType)
	}
	faces := make([][]int, len(table))
	for f, verts := range table {
		faces[f] = append([]int(nil), verts...)
	}
	return faces, nil
}

// LocalFaces returns the local faces of a volumetric element with nv vertices
func LocalFaces(nv int) ([][]int, error) {
	g, err := GeometryFromVertexCount(D3, nv)
	if err != nil {
		return nil, err
	}
	return g.LocalFaces()
}
