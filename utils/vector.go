package utils

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Vector wraps gonum's VecDense the way the rest of this module wraps its
// dense and sparse matrix types, so callers never reach past this package
// into gonum directly.
type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	if len(dataO) != 0 {
		return Vector{mat.NewVecDense(n, dataO[0])}
	}
	return Vector{mat.NewVecDense(n, make([]float64, n))}
}

func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Data() []float64          { return v.V.RawVector().Data }

func (v Vector) Sum() (s float64) {
	for _, val := range v.Data() {
		s += val
	}
	return
}
