package material

import (
	"testing"

	"github.com/notargets/DGMesh/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams_Periodic(t *testing.T) {
	data := []byte(`{
		"kind": "periodic",
		"axis": [0, 0, 1], "period": 2, "ratio": 0.5, "phase": 0,
		"mat1": {"kind": "isotropic", "dim": 3, "density": 7.85e-3, "young": 200000, "poisson": 0.32},
		"mat2": {"kind": "orthotropic", "density": 4.7e-4,
		         "youngAxes": [13100, 900, 600], "poissonAxes": [0.4, 0.02, 0.3], "shear": [80, 700, 850]}
	}`)
	m, err := ParseParams(data)
	require.NoError(t, err)

	p, ok := m.(*Periodic)
	require.True(t, ok)
	_, ok = p.Select([]float64{0, 0, 0.5}).(*Isotropic)
	assert.True(t, ok)
	_, ok = p.Select([]float64{0, 0, 1.5}).(*Orthotropic)
	assert.True(t, ok)
	assert.Equal(t, 7.85e-3, m.Density())
}

func TestFromParams_Kinds(t *testing.T) {
	sym, err := FromParams(Params{
		Kind:    "symmetric",
		Density: 1,
		Matrix:  [][]float64{{10, 2, 0}, {2, 10, 0}, {0, 0, 4}},
	})
	require.NoError(t, err)
	v, err := sym.Tensor(0, 1, 1, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	gen, err := FromParams(Params{
		Kind:    "general",
		Density: 1,
		Matrix:  [][]float64{{1, 0, 0, 0}, {0, 2, 0, 0}, {0, 0, 3, 0}, {0, 0, 0, 4}},
	})
	require.NoError(t, err)
	v, err = gen.Tensor(1, 1, 1, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestFromParams_Errors(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"unknown kind", Params{Kind: "hyperelastic"}},
		{"bad poisson", Params{Kind: "isotropic", Dim: 3, Density: 1, Young: 1, Poisson: 0.5}},
		{"ragged matrix", Params{Kind: "symmetric", Matrix: [][]float64{{1, 2, 3}, {1, 2}}}},
		{"empty matrix", Params{Kind: "general"}},
		{"missing child", Params{Kind: "periodic", Mat1: &Params{Kind: "isotropic", Dim: 3, Young: 1}}},
		{"bad child", Params{Kind: "periodic", Mat1: &Params{Kind: "nope"}, Mat2: &Params{Kind: "nope"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromParams(tt.p)
			assert.ErrorIs(t, err, utils.ErrInvalidParameter)
			assert.Nil(t, m)
		})
	}

	_, err := ParseParams([]byte(`{"kind": `))
	assert.ErrorIs(t, err, utils.ErrInvalidParameter)
}
