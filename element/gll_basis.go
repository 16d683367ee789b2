// Package element evaluates the spectral-element basis a GLL source face
// carries: the bilinear tensor-product Lagrange interpolant anchored at
// its GLL nodes, and an optional monotone (non-negative) variant used
// when the remap is required not to introduce new extrema.
package element

import (
	"github.com/toddringler/tempestremap/quadrature"
	"github.com/toddringler/tempestremap/utils"
)

// SampleGLLFiniteElement evaluates the (p, q)-th tensor-product basis
// function of order nP at parametric point (alpha, beta) in [0, 1]^2 and
// returns the full nP x nP coefficient matrix. The standard variant is
// the Lagrange interpolant anchored at the GLL nodes: it reproduces a
// Kronecker delta at the nodes themselves, and C always sums to 1
// (partition of unity) since each 1D factor is an exact Lagrange basis.
//
// When monotone is set, the 1D factors are replaced by a subcell convex
// blend (piecewise-linear interpolation between the two GLL nodes
// bracketing the query point) instead of the full-order Lagrange
// polynomial. That variant is non-negative by construction, still
// reproduces linear fields exactly and still equals the Kronecker delta at
// the GLL nodes; between nodes it is only piecewise linear, not of full
// polynomial order.
func SampleGLLFiniteElement(monotone bool, nP int, alpha, beta float64) (C utils.Matrix) {
	g, _ := quadrature.GaussLobatto(nP)

	var cAlpha, cBeta []float64
	if monotone {
		cAlpha = monotoneWeights1D(g, nP, alpha)
		cBeta = monotoneWeights1D(g, nP, beta)
	} else {
		cAlpha = lagrangeWeights1D(g, nP, alpha)
		cBeta = lagrangeWeights1D(g, nP, beta)
	}

	C = utils.NewMatrix(nP, nP)
	for p := 0; p < nP; p++ {
		for q := 0; q < nP; q++ {
			C.Set(p, q, cAlpha[p]*cBeta[q])
		}
	}
	return
}

// lagrangeWeights1D evaluates every order-(nP-1) Lagrange basis function
// anchored at nodes g at the point x.
func lagrangeWeights1D(g utils.Vector, nP int, x float64) (w []float64) {
	w = make([]float64, nP)
	for p := 0; p < nP; p++ {
		gp := g.AtVec(p)
		val := 1.0
		for k := 0; k < nP; k++ {
			if k == p {
				continue
			}
			gk := g.AtVec(k)
			val *= (x - gk) / (gp - gk)
		}
		w[p] = val
	}
	return
}

// monotoneWeights1D returns a non-negative partition of unity that
// reproduces linear functions of x exactly: it is zero everywhere except
// at the two GLL nodes bracketing x, where it linearly interpolates
// between them. At (or past) the boundary nodes it collapses to a single
// unit weight.
func monotoneWeights1D(g utils.Vector, nP int, x float64) (w []float64) {
	w = make([]float64, nP)
	if x <= g.AtVec(0) {
		w[0] = 1
		return
	}
	if x >= g.AtVec(nP-1) {
		w[nP-1] = 1
		return
	}
	for k := 0; k < nP-1; k++ {
		g0, g1 := g.AtVec(k), g.AtVec(k+1)
		if x >= g0 && x <= g1 {
			t := (x - g0) / (g1 - g0)
			w[k] = 1 - t
			w[k+1] = t
			return
		}
	}
	return
}
