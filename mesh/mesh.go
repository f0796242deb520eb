package mesh

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/DGMesh/element"
	"github.com/notargets/DGMesh/utils"
)

// VolumetricMesh is the read-only view of a mesh consumed by boundary
// extraction. All voxels share the same vertex count.
type VolumetricMesh interface {
	Dim() int            // Coordinate dimension of every vertex
	NumVertices() int    // Number of vertices
	NumVoxels() int      // Number of volume elements
	VertexPerVoxel() int // Vertex count of every element
	Vertex(i int) []float64
	Voxel(i int) []int
}

// Mesh is an immutable in-memory VolumetricMesh
type Mesh struct {
	vertices       [][]float64 // [NumVertices][dim]
	etov           [][]int     // Element to vertex connectivity [NumVoxels][nvpe]
	dim            int
	vertexPerVoxel int
}

var _ VolumetricMesh = (*Mesh)(nil)

// NewMesh validates and copies the vertex and voxel arrays. A mesh without
// voxels is valid here; analyses that need elements reject it themselves.
func NewMesh(vertices [][]float64, voxels [][]int) (*Mesh, error) {
	m := &Mesh{
		vertices: make([][]float64, len(vertices)),
		etov:     make([][]int, len(voxels)),
	}

	if len(vertices) > 0 {
		m.dim = len(vertices[0])
		if m.dim == 0 {
			return nil, fmt.Errorf("vertex 0 has no coordinates: %w", utils.ErrInvalidParameter)
		}
	}
	for i, v := range vertices {
		if len(v) != m.dim {
			return nil, fmt.Errorf("vertex %d has %d coordinates, expected %d: %w",
				i, len(v), m.dim, utils.ErrInvalidParameter)
		}
		m.vertices[i] = append([]float64(nil), v...)
	}

	if len(voxels) > 0 {
		m.vertexPerVoxel = len(voxels[0])
		if m.vertexPerVoxel == 0 {
			return nil, fmt.Errorf("voxel 0 has no vertices: %w", utils.ErrInvalidParameter)
		}
	}
	for k, voxel := range voxels {
		if len(voxel) != m.vertexPerVoxel {
			return nil, fmt.Errorf("voxel %d has %d vertices, mesh is homogeneous with %d: %w",
				k, len(voxel), m.vertexPerVoxel, utils.ErrInvalidParameter)
		}
		for _, vi := range voxel {
			if vi < 0 || vi >= len(vertices) {
				return nil, fmt.Errorf("voxel %d references vertex %d of %d: %w",
					k, vi, len(vertices), utils.ErrInvalidParameter)
			}
		}
		m.etov[k] = append([]int(nil), voxel...)
	}

	return m, nil
}

func (m *Mesh) Dim() int            { return m.dim }
func (m *Mesh) NumVertices() int    { return len(m.vertices) }
func (m *Mesh) NumVoxels() int      { return len(m.etov) }
func (m *Mesh) VertexPerVoxel() int { return m.vertexPerVoxel }

// Vertex returns a copy of the coordinates of vertex i
func (m *Mesh) Vertex(i int) []float64 {
	return append([]float64(nil), m.vertices[i]...)
}

// Voxel returns a copy of the vertex indices of voxel i
func (m *Mesh) Voxel(i int) []int {
	return append([]int(nil), m.etov[i]...)
}

// Geometry resolves the element type shared by all voxels
func (m *Mesh) Geometry() (element.ElementGeometry, error) {
	return element.GeometryFromVertexCount(element.Dimensionality(m.dim), m.vertexPerVoxel)
}

// BoundingBox returns the per-axis minimum and maximum coordinates
func (m *Mesh) BoundingBox() (lo, hi []float64) {
	lo = make([]float64, m.dim)
	hi = make([]float64, m.dim)
	for d := 0; d < m.dim; d++ {
		lo[d], hi[d] = math.Inf(1), math.Inf(-1)
	}
	for _, v := range m.vertices {
		for d, x := range v {
			lo[d] = math.Min(lo[d], x)
			hi[d] = math.Max(hi[d], x)
		}
	}
	return
}

// String returns a summary of the mesh
func (m *Mesh) String() string {
	var sb strings.Builder

	sb.WriteString("=== Mesh Summary ===\n")
	sb.WriteString(fmt.Sprintf("  Dimension: %d\n", m.dim))
	sb.WriteString(fmt.Sprintf("  Vertices: %d\n", m.NumVertices()))
	sb.WriteString(fmt.Sprintf("  Voxels: %d\n", m.NumVoxels()))
	if g, err := m.Geometry(); err == nil {
		sb.WriteString(fmt.Sprintf("  Element: %s (%d vertices)\n", g, m.vertexPerVoxel))
	} else {
		sb.WriteString(fmt.Sprintf("  Element: unknown (%d vertices)\n", m.vertexPerVoxel))
	}
	if m.NumVertices() > 0 {
		lo, hi := m.BoundingBox()
		for d := range lo {
			sb.WriteString(fmt.Sprintf("  Axis %d range: [%.4f, %.4f]\n", d, lo[d], hi[d]))
		}
	}

	return sb.String()
}
