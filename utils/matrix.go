package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Matrix wraps gonum's Dense, matching the Vector/sparse DOK/CSR wrappers
// in this package so domain code never imports gonum/mat directly.
type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			panic(fmt.Errorf("utils: NewMatrix dims %dx%d do not match len(data)=%d", nr, nc, len(dataO[0])))
		}
		return Matrix{mat.NewDense(nr, nc, dataO[0])}
	}
	return Matrix{mat.NewDense(nr, nc, make([]float64, nr*nc))}
}

func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) Set(i, j int, val float64) { m.M.Set(i, j, val) }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }
func (m Matrix) Data() []float64           { return m.M.RawMatrix().Data }

func (m Matrix) SetCol(j int, data []float64) Matrix {
	m.M.SetCol(j, data)
	return m
}

func (m Matrix) SetRow(i int, data []float64) Matrix {
	m.M.SetRow(i, data)
	return m
}

func (m Matrix) Col(j int) (data []float64) {
	nr, _ := m.Dims()
	data = make([]float64, nr)
	for i := 0; i < nr; i++ {
		data[i] = m.At(i, j)
	}
	return
}

func (m Matrix) SumRows() (v Vector) {
	nr, nc := m.Dims()
	v = NewVector(nr)
	for i := 0; i < nr; i++ {
		var s float64
		for j := 0; j < nc; j++ {
			s += m.At(i, j)
		}
		v.V.SetVec(i, s)
	}
	return
}

func (m Matrix) SumCols() (v Vector) {
	nr, nc := m.Dims()
	v = NewVector(nc)
	for j := 0; j < nc; j++ {
		var s float64
		for i := 0; i < nr; i++ {
			s += m.At(i, j)
		}
		v.V.SetVec(j, s)
	}
	return
}
