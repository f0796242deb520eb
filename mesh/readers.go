package mesh

import (
	"fmt"

	"github.com/notargets/DGMesh/utils"
	gocfdmesh "github.com/notargets/gocfd/DG3D/mesh"
	"github.com/notargets/gocfd/DG3D/mesh/readers"
	gocfdutils "github.com/notargets/gocfd/utils"
)

// ReadMeshFile loads a Gambit, Gmsh or SU2 mesh file and keeps its volume
// elements
func ReadMeshFile(meshfile string) (*Mesh, error) {
	msh, err := readers.ReadMeshFile(meshfile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", meshfile, err)
	}
	return NewMeshFromGocfd(msh)
}

// NewMeshFromGocfd converts a gocfd mesh. Only elements of the highest
// dimension present are kept, higher order elements are reduced to their
// corner nodes, and all kept elements must share one type.
func NewMeshFromGocfd(msh *gocfdmesh.Mesh) (*Mesh, error) {
	dim := msh.GetMeshDimension()
	if dim < 2 {
		return nil, fmt.Errorf("mesh has no 2D or 3D elements: %w", utils.ErrUnsupportedElementType)
	}

	var (
		elemType gocfdutils.ElementType
		found    bool
		voxels   [][]int
	)
	for i, et := range msh.ElementTypes {
		if et.GetDimension() != dim {
			continue
		}
		if !found {
			elemType, found = et, true
		} else if et != elemType {
			return nil, fmt.Errorf("mixed element types %s and %s: %w",
				elemType, et, utils.ErrUnsupportedElementType)
		}
		corners := et.GetCornerNodes()
		voxel := make([]int, len(corners))
		for c, local := range corners {
			voxel[c] = msh.EtoV[i][local]
		}
		voxels = append(voxels, voxel)
	}

	// gocfd always stores 3 coordinates; planar meshes drop z
	vertices := make([][]float64, len(msh.Vertices))
	for i, v := range msh.Vertices {
		if len(v) < dim {
			return nil, fmt.Errorf("vertex %d has %d coordinates in a %dD mesh: %w",
				i, len(v), dim, utils.ErrInvalidParameter)
		}
		vertices[i] = v[:dim]
	}

	return NewMesh(vertices, voxels)
}
