package material

import (
	"encoding/json"
	"fmt"

	"github.com/notargets/DGMesh/utils"
	"gonum.org/v1/gonum/mat"
)

// Params is the JSON definition of a material. Kind selects the factory;
// only the fields that factory reads need to be present.
//
//	{"kind": "isotropic", "dim": 3, "density": 7.85e-3, "young": 200000, "poisson": 0.32}
//	{"kind": "periodic", "mat1": {...}, "mat2": {...}, "axis": [1,0,0],
//	 "period": 2, "ratio": 0.5, "phase": 0}
type Params struct {
	Kind    string  `json:"kind"` // general, isotropic, symmetric, orthotropic, periodic
	Dim     int     `json:"dim,omitempty"`
	Density float64 `json:"density,omitempty"`

	// isotropic
	Young   float64 `json:"young,omitempty"`
	Poisson float64 `json:"poisson,omitempty"`

	// orthotropic
	YoungAxes   []float64 `json:"youngAxes,omitempty"`
	PoissonAxes []float64 `json:"poissonAxes,omitempty"`
	Shear       []float64 `json:"shear,omitempty"`

	// general (D²×D²) and symmetric (Voigt), row major
	Matrix [][]float64 `json:"matrix,omitempty"`

	// periodic
	Mat1   *Params   `json:"mat1,omitempty"`
	Mat2   *Params   `json:"mat2,omitempty"`
	Axis   []float64 `json:"axis,omitempty"`
	Period float64   `json:"period,omitempty"`
	Ratio  float64   `json:"ratio,omitempty"`
	Phase  float64   `json:"phase,omitempty"`
}

// ParseParams decodes a JSON material definition and builds it
func ParseParams(data []byte) (Material, error) {
	var p Params
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding material: %v: %w", err, utils.ErrInvalidParameter)
	}
	return FromParams(p)
}

// FromParams builds the material described by p
func FromParams(p Params) (Material, error) {
	var (
		m   Material
		err error
	)
	switch p.Kind {
	case "general":
		var T *mat.Dense
		if T, err = denseFromRows(p.Matrix); err != nil {
			return nil, err
		}
		var g *General
		g, err = New(p.Density, T)
		m = g
	case "isotropic":
		var iso *Isotropic
		iso, err = NewIsotropic(p.Dim, p.Density, p.Young, p.Poisson)
		m = iso
	case "symmetric":
		var M *mat.Dense
		if M, err = denseFromRows(p.Matrix); err != nil {
			return nil, err
		}
		var sym *Symmetric
		sym, err = NewSymmetric(p.Density, M)
		m = sym
	case "orthotropic":
		var ortho *Orthotropic
		ortho, err = NewOrthotropic(p.Density, p.YoungAxes, p.PoissonAxes, p.Shear)
		m = ortho
	case "periodic":
		if p.Mat1 == nil || p.Mat2 == nil {
			return nil, fmt.Errorf("periodic material needs mat1 and mat2: %w", utils.ErrInvalidParameter)
		}
		var mat1, mat2 Material
		if mat1, err = FromParams(*p.Mat1); err != nil {
			return nil, fmt.Errorf("mat1: %w", err)
		}
		if mat2, err = FromParams(*p.Mat2); err != nil {
			return nil, fmt.Errorf("mat2: %w", err)
		}
		var per *Periodic
		per, err = NewPeriodic(mat1, mat2, p.Axis, p.Period, p.Ratio, p.Phase)
		m = per
	default:
		return nil, fmt.Errorf("material kind %q is unavailable: %w", p.Kind, utils.ErrInvalidParameter)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func denseFromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty matrix: %w", utils.ErrInvalidParameter)
	}
	r, c := len(rows), len(rows[0])
	m := mat.NewDense(r, c, nil)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("matrix row %d has %d entries, expected %d: %w",
				i, len(row), c, utils.ErrInvalidParameter)
		}
		m.SetRow(i, row)
	}
	return m, nil
}
