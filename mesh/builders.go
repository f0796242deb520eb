package mesh

import (
	"fmt"

	"github.com/notargets/DGMesh/utils"
	"gonum.org/v1/gonum/spatial/r3"
)

// Kuhn split of a hexahedron into 6 tetrahedra around the 0-6 diagonal.
// Neighbouring hexes split this way share conforming triangles.
var hexToTets = [6][4]int{
	{0, 1, 2, 6},
	{0, 2, 3, 6},
	{0, 3, 7, 6},
	{0, 7, 4, 6},
	{0, 4, 5, 6},
	{0, 5, 1, 6},
}

// NewMeshFromTets builds a tetrahedral mesh from r3 nodes, the output format
// of sdf based volume meshers
func NewMeshFromTets(nodes []r3.Vec, tets [][4]int) (*Mesh, error) {
	vertices := make([][]float64, len(nodes))
	for i, n := range nodes {
		vertices[i] = []float64{n.X, n.Y, n.Z}
	}
	voxels := make([][]int, len(tets))
	for k, tet := range tets {
		voxels[k] = tet[:]
	}
	return NewMesh(vertices, voxels)
}

// UnitCubeHex returns [-1,1]^3 meshed as a single hexahedron
func UnitCubeHex() *Mesh {
	m, err := StructuredHex(1, 1, 1)
	if err != nil {
		panic(err)
	}
	return m
}

// UnitCubeTets returns [-1,1]^3 meshed as 6 tetrahedra sharing the main
// diagonal
func UnitCubeTets() *Mesh {
	m, err := StructuredTets(1, 1, 1)
	if err != nil {
		panic(err)
	}
	return m
}

// StructuredHex meshes [-1,1]^3 with nx*ny*nz hexahedra. Vertex (i,j,k) has
// index i + (nx+1)*(j + (ny+1)*k).
func StructuredHex(nx, ny, nz int) (*Mesh, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("invalid dimensions: nx=%d, ny=%d, nz=%d: %w",
			nx, ny, nz, utils.ErrInvalidParameter)
	}
	return NewMesh(gridVertices(nx, ny, nz), gridHexes(nx, ny, nz))
}

// StructuredTets meshes [-1,1]^3 with 6*nx*ny*nz tetrahedra, each grid cell
// split the same way so the result is conforming
func StructuredTets(nx, ny, nz int) (*Mesh, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("invalid dimensions: nx=%d, ny=%d, nz=%d: %w",
			nx, ny, nz, utils.ErrInvalidParameter)
	}
	hexes := gridHexes(nx, ny, nz)
	tets := make([][]int, 0, 6*len(hexes))
	for _, hex := range hexes {
		for _, split := range hexToTets {
			tets = append(tets, []int{hex[split[0]], hex[split[1]], hex[split[2]], hex[split[3]]})
		}
	}
	return NewMesh(gridVertices(nx, ny, nz), tets)
}

func gridVertices(nx, ny, nz int) [][]float64 {
	vertices := make([][]float64, 0, (nx+1)*(ny+1)*(nz+1))
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				vertices = append(vertices, []float64{
					-1 + 2*float64(i)/float64(nx),
					-1 + 2*float64(j)/float64(ny),
					-1 + 2*float64(k)/float64(nz),
				})
			}
		}
	}
	return vertices
}

func gridHexes(nx, ny, nz int) [][]int {
	id := func(i, j, k int) int { return i + (nx+1)*(j+(ny+1)*k) }
	hexes := make([][]int, 0, nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				hexes = append(hexes, []int{
					id(i, j, k), id(i+1, j, k), id(i+1, j+1, k), id(i, j+1, k),
					id(i, j, k+1), id(i+1, j, k+1), id(i+1, j+1, k+1), id(i, j+1, k+1),
				})
			}
		}
	}
	return hexes
}
