package boundary

import (
	"testing"

	"github.com/notargets/DGMesh/mesh"
	"github.com/notargets/DGMesh/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectivity_TwoTets(t *testing.T) {
	verts := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}}
	m, err := mesh.NewMesh(verts, [][]int{{0, 1, 2, 3}, {1, 2, 3, 4}})
	require.NoError(t, err)
	bf, err := NewBoundaryFaces(m)
	require.NoError(t, err)
	c, err := NewConnectivity(bf)
	require.NoError(t, err)
	require.NoError(t, c.Verify())

	// Face {1,2,3} is local face 3 of voxel 0 and local face 0 of voxel 1
	n, f := c.Neighbor(0, 3)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, f)
	n, f = c.Neighbor(1, 0)
	assert.Equal(t, 0, n)
	assert.Equal(t, 3, f)

	n, f = c.Neighbor(0, 0)
	assert.Equal(t, -1, n)
	assert.Equal(t, -1, f)
	n, _ = c.Neighbor(5, 0)
	assert.Equal(t, -1, n)

	assert.Equal(t, 6, c.NumBoundary)
	assert.Equal(t, 1, c.NumInterior)
}

func TestConnectivity_StructuredMeshes(t *testing.T) {
	hex, err := mesh.StructuredHex(3, 2, 2)
	require.NoError(t, err)
	tets, err := mesh.StructuredTets(2, 2, 3)
	require.NoError(t, err)

	for _, m := range []*mesh.Mesh{hex, tets} {
		bf, err := NewBoundaryFaces(m)
		require.NoError(t, err)
		c, err := NewConnectivity(bf)
		require.NoError(t, err)
		require.NoError(t, c.Verify())

		// Boundary faces from the extractor are exactly the faces without
		// a neighbour
		open := 0
		for k := 0; k < c.K; k++ {
			for f := 0; f < c.Nfaces; f++ {
				if n, _ := c.Neighbor(k, f); n < 0 {
					open++
				}
			}
		}
		assert.Equal(t, bf.NumBoundaries(), open)
		for i := 0; i < bf.NumBoundaries(); i++ {
			k, err := bf.BoundaryElement(i)
			require.NoError(t, err)
			f, err := bf.BoundaryLocalFace(i)
			require.NoError(t, err)
			n, _ := c.Neighbor(k, f)
			assert.Equal(t, -1, n)
		}
	}
}

func TestConnectivity_NonManifoldConserved(t *testing.T) {
	verts := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 0, -1}, {1, 1, 1}}
	m, err := mesh.NewMesh(verts, [][]int{{0, 1, 2, 3}, {0, 1, 2, 4}, {0, 1, 2, 5}})
	require.NoError(t, err)
	bf, err := NewBoundaryFaces(m)
	require.NoError(t, err)
	c, err := NewConnectivity(bf)
	require.NoError(t, err)
	require.NoError(t, c.Verify())
	assert.Equal(t, 1, c.NonManifold)
	for k := 0; k < 3; k++ {
		n, _ := c.Neighbor(k, 0)
		assert.Equal(t, -1, n)
	}
}

func TestConnectivity_VerifyDetectsCorruption(t *testing.T) {
	bf, err := NewBoundaryFaces(mesh.UnitCubeTets())
	require.NoError(t, err)
	c, err := NewConnectivity(bf)
	require.NoError(t, err)
	require.NoError(t, c.Verify())

	for k := 0; k < c.K; k++ {
		for f := 0; f < c.Nfaces; f++ {
			if c.EToE[k][f] >= 0 {
				c.EToF[k][f] = (c.EToF[k][f] + 1) % c.Nfaces
				assert.Error(t, c.Verify())
				return
			}
		}
	}
	t.Fatal("unit cube tets have no interior face")
}

func TestNewConnectivity_Nil(t *testing.T) {
	_, err := NewConnectivity(nil)
	assert.ErrorIs(t, err, utils.ErrInvalidParameter)
}
