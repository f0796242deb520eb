package boundary

import (
	"fmt"

	"github.com/notargets/DGMesh/utils"
)

// Connectivity holds element-to-element face adjacency derived from a face
// table
type Connectivity struct {
	// Mesh dimensions
	K      int // Total voxels
	Nfaces int // Faces per voxel

	// EToE[k][f] is the voxel across face f of voxel k, -1 when the face is
	// on the boundary or non-manifold. EToF[k][f] is that voxel's local face.
	EToE [][]int
	EToF [][]int

	NumBoundary    int
	NumInterior    int
	NonManifold    int // Distinct faces mentioned by more than two voxels
	nonManifoldUse int // Voxel faces referencing those
	mentions       int
}

// NewConnectivity builds the adjacency for the mesh bf was extracted from
func NewConnectivity(bf *BoundaryFaces) (*Connectivity, error) {
	if bf == nil || bf.numVoxels <= 0 || len(bf.localFaces) == 0 {
		return nil, fmt.Errorf("connectivity needs a non-empty boundary extraction: %w", utils.ErrInvalidParameter)
	}

	c := &Connectivity{
		K:        bf.numVoxels,
		Nfaces:   len(bf.localFaces),
		EToE:     make([][]int, bf.numVoxels),
		EToF:     make([][]int, bf.numVoxels),
		mentions: bf.table.Mentions(),
	}
	for k := 0; k < c.K; k++ {
		c.EToE[k] = make([]int, c.Nfaces)
		c.EToF[k] = make([]int, c.Nfaces)
		for f := 0; f < c.Nfaces; f++ {
			c.EToE[k][f] = -1
			c.EToF[k][f] = -1
		}
	}

	for _, rec := range bf.table.records {
		switch {
		case rec.Count == 1:
			c.NumBoundary++
		case rec.Count == 2:
			c.NumInterior++
			a, b := rec.Owners[0], rec.Owners[1]
			c.EToE[a.Voxel][a.LocalFace] = b.Voxel
			c.EToF[a.Voxel][a.LocalFace] = b.LocalFace
			c.EToE[b.Voxel][b.LocalFace] = a.Voxel
			c.EToF[b.Voxel][b.LocalFace] = a.LocalFace
		default:
			c.NonManifold++
			c.nonManifoldUse += rec.Count
		}
	}

	return c, nil
}

// Neighbor returns the voxel and local face across face f of voxel k, or
// (-1, -1) on the boundary
func (c *Connectivity) Neighbor(k, f int) (voxel, face int) {
	if k < 0 || k >= c.K || f < 0 || f >= c.Nfaces {
		return -1, -1
	}
	return c.EToE[k][f], c.EToF[k][f]
}

// Verify checks reciprocity and conservation of face mentions
func (c *Connectivity) Verify() error {
	// Verify 1: Reciprocity - if k,f sees n,g then n,g sees k,f
	for k := 0; k < c.K; k++ {
		for f := 0; f < c.Nfaces; f++ {
			n, g := c.EToE[k][f], c.EToF[k][f]
			if n < 0 {
				continue
			}
			if n >= c.K || g < 0 || g >= c.Nfaces {
				return fmt.Errorf("voxel %d face %d points to invalid voxel %d face %d", k, f, n, g)
			}
			if c.EToE[n][g] != k || c.EToF[n][g] != f {
				return fmt.Errorf("voxel %d face %d -> voxel %d face %d is not reciprocal", k, f, n, g)
			}
		}
	}

	// Verify 2: Conservation - every scanned face is boundary, one side of an
	// interior face, or part of a non-manifold face
	expected := c.NumBoundary + 2*c.NumInterior + c.nonManifoldUse
	if c.mentions != expected || c.mentions != c.K*c.Nfaces {
		return fmt.Errorf("conservation error: mentions %d, boundary %d + 2*interior %d + non-manifold %d, K*Nfaces %d",
			c.mentions, c.NumBoundary, c.NumInterior, c.nonManifoldUse, c.K*c.Nfaces)
	}

	return nil
}
