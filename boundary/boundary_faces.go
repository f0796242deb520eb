package boundary

import (
	"fmt"
	"strings"

	"github.com/notargets/DGMesh/element"
	"github.com/notargets/DGMesh/mesh"
	"github.com/notargets/DGMesh/utils"
)

// BoundaryFaces holds the faces of a volumetric mesh that belong to exactly
// one voxel. It is computed once at construction and never updated.
//
// Faces mentioned by more than two voxels (non-manifold geometry) are
// neither boundary nor interior; they are left out of the boundary and are
// reported by NonManifoldFaces.
type BoundaryFaces struct {
	geometry   element.ElementGeometry
	numVoxels  int
	localFaces [][]int // Local face definitions of the element type

	table      *FaceTable
	boundaries []Face
	nodes      []int
	interior   int
}

// NewBoundaryFaces extracts the boundary of m. The mesh is only read.
func NewBoundaryFaces(m mesh.VolumetricMesh) (*BoundaryFaces, error) {
	K := m.NumVoxels()
	if K == 0 {
		return nil, fmt.Errorf("mesh has no voxels: %w", utils.ErrDegenerateInput)
	}

	geom, err := element.GeometryFromVertexCount(element.Dimensionality(m.Dim()), m.VertexPerVoxel())
	if err != nil {
		return nil, err
	}
	localFaces, err := geom.LocalFaces()
	if err != nil {
		return nil, err
	}

	bf := &BoundaryFaces{
		geometry:   geom,
		numVoxels:  K,
		localFaces: localFaces,
		table:      newFaceTable(K * len(localFaces)),
	}

	if err = bf.buildFaceTable(m); err != nil {
		return nil, err
	}
	bf.collectBoundaries()

	return bf, nil
}

// buildFaceTable maps every local face of every voxel through the voxel's
// vertex list and counts it under its canonical key
func (bf *BoundaryFaces) buildFaceTable(m mesh.VolumetricMesh) error {
	nv, nvpe := m.NumVertices(), m.VertexPerVoxel()
	for k := 0; k < bf.numVoxels; k++ {
		voxel := m.Voxel(k)
		if len(voxel) != nvpe {
			return fmt.Errorf("voxel %d has %d vertices, mesh declares %d: %w",
				k, len(voxel), nvpe, utils.ErrInvalidParameter)
		}
		for _, vi := range voxel {
			if vi < 0 || vi >= nv {
				return fmt.Errorf("voxel %d references vertex %d of %d: %w",
					k, vi, nv, utils.ErrInvalidParameter)
			}
		}
		for f, local := range bf.localFaces {
			verts := make([]int, len(local))
			for i, lv := range local {
				verts[i] = voxel[lv]
			}
			if err := bf.table.add(Face{Vertices: verts, Voxel: k, LocalFace: f}); err != nil {
				return fmt.Errorf("voxel %d face %d: %w", k, f, err)
			}
		}
	}
	return nil
}

func (bf *BoundaryFaces) collectBoundaries() {
	seen := make(map[int]struct{})
	for _, rec := range bf.table.records {
		switch rec.Count {
		case 1:
			bf.boundaries = append(bf.boundaries, rec.First)
			for _, v := range rec.First.Vertices {
				if _, ok := seen[v]; !ok {
					seen[v] = struct{}{}
					bf.nodes = append(bf.nodes, v)
				}
			}
		case 2:
			bf.interior++
		}
	}
}

// Geometry returns the element type shared by all voxels
func (bf *BoundaryFaces) Geometry() element.ElementGeometry { return bf.geometry }

// NumVoxels returns the number of voxels scanned
func (bf *BoundaryFaces) NumVoxels() int { return bf.numVoxels }

// NumLocalFaces returns the number of faces per voxel
func (bf *BoundaryFaces) NumLocalFaces() int { return len(bf.localFaces) }

// LocalFaces returns a copy of the local face definitions of the element type
func (bf *BoundaryFaces) LocalFaces() [][]int {
	faces := make([][]int, len(bf.localFaces))
	for f, verts := range bf.localFaces {
		faces[f] = append([]int(nil), verts...)
	}
	return faces
}

// NumBoundaries returns the number of boundary faces
func (bf *BoundaryFaces) NumBoundaries() int { return len(bf.boundaries) }

// NumInteriorFaces returns the number of faces shared by exactly two voxels
func (bf *BoundaryFaces) NumInteriorFaces() int { return bf.interior }

// Boundary returns the vertex indices of boundary face i in the order the
// owning voxel lists them
func (bf *BoundaryFaces) Boundary(i int) ([]int, error) {
	if err := bf.checkIndex(i); err != nil {
		return nil, err
	}
	return append([]int(nil), bf.boundaries[i].Vertices...), nil
}

// BoundaryElement returns the voxel that owns boundary face i
func (bf *BoundaryFaces) BoundaryElement(i int) (int, error) {
	if err := bf.checkIndex(i); err != nil {
		return -1, err
	}
	return bf.boundaries[i].Voxel, nil
}

// BoundaryLocalFace returns the local face index of boundary face i within
// its owning voxel
func (bf *BoundaryFaces) BoundaryLocalFace(i int) (int, error) {
	if err := bf.checkIndex(i); err != nil {
		return -1, err
	}
	return bf.boundaries[i].LocalFace, nil
}

// BoundaryNodes returns each vertex that lies on a boundary face once, in
// discovery order and in the mesh's own numbering. The result is not sorted.
func (bf *BoundaryFaces) BoundaryNodes() []int {
	return append([]int(nil), bf.nodes...)
}

// NonManifoldFaces returns the faces mentioned by more than two voxels, as
// first produced
func (bf *BoundaryFaces) NonManifoldFaces() []Face {
	var faces []Face
	for _, rec := range bf.table.records {
		if rec.Count > 2 {
			faces = append(faces, rec.First)
		}
	}
	return faces
}

// Table exposes the face table the boundary was computed from
func (bf *BoundaryFaces) Table() *FaceTable { return bf.table }

func (bf *BoundaryFaces) checkIndex(i int) error {
	if i < 0 || i >= len(bf.boundaries) {
		return fmt.Errorf("boundary face %d of %d: %w", i, len(bf.boundaries), utils.ErrIndexOutOfRange)
	}
	return nil
}

// String returns a summary of the extraction
func (bf *BoundaryFaces) String() string {
	var sb strings.Builder

	sb.WriteString("=== Boundary Faces Summary ===\n")
	sb.WriteString(fmt.Sprintf("  Element: %s (%d faces each)\n", bf.geometry, len(bf.localFaces)))
	sb.WriteString(fmt.Sprintf("  Voxels: %d\n", bf.numVoxels))
	sb.WriteString(fmt.Sprintf("  Face mentions: %d\n", bf.table.Mentions()))
	sb.WriteString(fmt.Sprintf("  Distinct faces: %d\n", bf.table.Len()))
	sb.WriteString(fmt.Sprintf("  Boundary faces: %d\n", bf.NumBoundaries()))
	sb.WriteString(fmt.Sprintf("  Interior faces: %d\n", bf.interior))
	sb.WriteString(fmt.Sprintf("  Boundary nodes: %d\n", len(bf.nodes)))
	if nm := len(bf.NonManifoldFaces()); nm > 0 {
		sb.WriteString(fmt.Sprintf("  Non-manifold faces: %d\n", nm))
	}

	return sb.String()
}
