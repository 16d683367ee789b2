// Package quadrature supplies the two node/weight rules the remap core
// needs: Gauss-Lobatto-Legendre points on the GLL element's parametric
// square, and a symmetric rule for integrating over the overlap mesh's
// geodesic sub-triangles. Both are pure functions of an order; neither
// touches mesh geometry.
package quadrature

import (
	"math"

	"github.com/toddringler/tempestremap/utils"
	"gonum.org/v1/gonum/mat"
)

// GaussLobatto returns the nP Gauss-Lobatto-Legendre nodes and weights on
// [0, 1]. Node 0 sits at 0, node nP-1 sits at 1, and the weights are
// positive and sum to 1. Nodes are computed on the reference [-1, 1]
// interval via the Golub-Welsch eigenvalue method (interior points are
// roots of the Jacobi polynomial P^{1,1}_{nP-2}) and then affine-mapped.
func GaussLobatto(nP int) (g, w utils.Vector) {
	if nP < 2 {
		panic("quadrature: GaussLobatto requires at least 2 points")
	}
	x := make([]float64, nP)
	var wgt utils.Vector
	if nP == 2 {
		x[0], x[1] = -1, 1
		wgt = utils.NewVector(2, []float64{1, 1})
	} else {
		xint, wint := jacobiGQ(1, 1, nP-3)
		x[0], x[nP-1] = -1, 1
		dataXint := xint.Data()
		for i := 1; i < nP-1; i++ {
			x[i] = dataXint[i-1]
		}
		wgt = gllWeightsFromInteriorGQ(x, wint, nP)
	}
	X := utils.NewVector(nP, x)
	g = utils.NewVector(nP)
	w = utils.NewVector(nP)
	for i := 0; i < nP; i++ {
		g.Data()[i] = 0.5 * (X.AtVec(i) + 1.0)
	}
	sum := wgt.Sum()
	for i := 0; i < nP; i++ {
		w.Data()[i] = wgt.AtVec(i) / sum
	}
	return
}

// gllWeightsFromInteriorGQ recovers GLL weights from the generalized
// Vandermonde at the full GLL node set, the standard formula
// w_i = 2 / (N(N+1) P_N(x_i)^2) with N = nP - 1.
func gllWeightsFromInteriorGQ(x []float64, _ utils.Vector, nP int) (w utils.Vector) {
	N := nP - 1
	r := utils.NewVector(nP, append([]float64(nil), x...))
	p := legendreP(r, N)
	w = utils.NewVector(nP)
	for i := 0; i < nP; i++ {
		w.Data()[i] = 2.0 / (float64(N) * float64(N+1) * p[i] * p[i])
	}
	return
}

// legendreP evaluates the order-N Legendre polynomial (Jacobi P^{0,0}_N,
// normalized to match JacobiP's recursion) at each point of r.
func legendreP(r utils.Vector, N int) []float64 {
	return jacobiP(r, 0, 0, N)
}

// jacobiGQ returns the N+1 Gauss-Jacobi quadrature nodes/weights for
// weight function (1-x)^alpha (1+x)^beta on [-1, 1], via the Golub-Welsch
// eigenvalue method: the nodes are the eigenvalues of the Jacobi
// recursion's symmetric tridiagonal matrix, and the weights come from the
// first component of each eigenvector.
func jacobiGQ(alpha, beta float64, N int) (X, W utils.Vector) {
	if N == 0 {
		x := []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w := []float64{2.}
		return utils.NewVector(1, x), utils.NewVector(1, w)
	}

	h1 := make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	d0 := make([]float64, N+1)
	fac := -0.5 * (alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	d1 := make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	n := N + 1
	JJ := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		JJ.SetSym(i, i, d0[i])
	}
	for i := 0; i < N; i++ {
		JJ.SetSym(i, i+1, d1[i])
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("quadrature: eigenvalue decomposition of Jacobi matrix failed")
	}
	x := eig.Values(nil)
	X = utils.NewVector(n, x)

	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	firstRow := make([]float64, n)
	for j := 0; j < n; j++ {
		firstRow[j] = vecs.At(0, j)
	}
	w := make([]float64, n)
	g0 := gamma0(alpha, beta)
	for i := range w {
		w[i] = firstRow[i] * firstRow[i] * g0
	}
	W = utils.NewVector(n, w)
	return
}

// jacobiP evaluates the degree-N, (alpha, beta)-normalized Jacobi
// polynomial at every point of r via the standard three-term recursion.
func jacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	nc := r.Len()
	rg := 1. / math.Sqrt(gamma0(alpha, beta))
	if N == 0 {
		p = make([]float64, nc)
		for i := range p {
			p[i] = rg
		}
		return
	}
	pl := make([][]float64, N+1)
	pl[0] = make([]float64, nc)
	for i := range pl[0] {
		pl[0][i] = rg
	}

	ab := alpha + beta
	rg1 := 1. / math.Sqrt(gamma1(alpha, beta))
	pl[1] = make([]float64, nc)
	for i := 0; i < nc; i++ {
		pl[1][i] = rg1 * ((ab+2.0)*r.AtVec(i)/2.0 + (alpha-beta)/2.0)
	}
	if N == 1 {
		return pl[1]
	}

	a1 := alpha + 1.
	b1 := beta + 1.
	ab1 := ab + 1.
	aold := 2.0 * math.Sqrt(a1*b1/(ab+3.0)) / (ab + 2.0)
	for i := 0; i < N-1; i++ {
		ip1 := float64(i + 1)
		ip2 := ip1 + 1
		h1 := 2.0*ip1 + ab
		anew := 2.0 / (h1 + 2.0) * math.Sqrt(ip2*(ip1+ab1)*(ip1+a1)*(ip1+b1)/(h1+1.0)/(h1+3.0))
		bnew := -(alpha*alpha - beta*beta) / h1 / (h1 + 2.0)
		pl[i+2] = make([]float64, nc)
		for j := 0; j < nc; j++ {
			pl[i+2][j] = (-aold*pl[i][j] + (r.AtVec(j)-bnew)*pl[i+1][j]) / anew
		}
		aold = anew
	}
	return pl[N]
}

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

func gamma1(alpha, beta float64) float64 {
	ab := alpha + beta
	a1 := alpha + 1.
	b1 := beta + 1.
	return a1 * b1 * gamma0(alpha, beta) / (ab + 3.0)
}
