package remap

import (
	"github.com/toddringler/tempestremap/utils"
	"gonum.org/v1/gonum/mat"
)

// ForceConsistencyConservation finds the weight block W' closest to W in
// Frobenius norm that satisfies consistency (every row sums to 1) and
// conservation (every area-weighted column sum matches the source GLL
// Jacobian aS[k]), then, if monotone is set and any entry of the result
// is negative, blends it toward the low-order (piecewise-constant)
// reference until non-negative.
//
// The two constraint families together are over-determined by one
// equation (the global area balance), so the last conservation equation
// is dropped; the remaining n_r + n_c - 1 constraints are enforced via
// the KKT system's Schur complement, which is SPD and is solved by
// Cholesky rather than forming the saddle-point system directly.
func ForceConsistencyConservation(W utils.Matrix, aS, aT []float64, monotone bool) (utils.Matrix, error) {
	nr, nc := W.Dims()
	nCond := nr + nc - 1

	y := mat.NewVecDense(nCond, nil)
	for i := 0; i < nr; i++ {
		var rowSum float64
		for k := 0; k < nc; k++ {
			rowSum += W.At(i, k)
		}
		y.SetVec(i, rowSum-1.0)
	}
	for k := 0; k < nc-1; k++ {
		var colSum float64
		for i := 0; i < nr; i++ {
			colSum += aT[i] * W.At(i, k)
		}
		y.SetVec(nr+k, colSum-aS[k])
	}

	var p float64
	for i := 0; i < nr; i++ {
		p += aT[i] * aT[i]
	}

	CCt := mat.NewSymDense(nCond, nil)
	for i := 0; i < nr; i++ {
		CCt.SetSym(i, i, float64(nc))
	}
	for k := 0; k < nc-1; k++ {
		CCt.SetSym(nr+k, nr+k, p)
	}
	for i := 0; i < nr; i++ {
		for k := 0; k < nc-1; k++ {
			CCt.SetSym(i, nr+k, aT[i])
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(CCt); !ok {
		return W, &Error{Kind: KindIndefiniteSchur, Info: 1}
	}
	lambda := mat.NewVecDense(nCond, nil)
	if err := chol.SolveVecTo(lambda, y); err != nil {
		return W, &Error{Kind: KindIndefiniteSchur, Info: 1}
	}

	Wp := utils.NewMatrix(nr, nc)
	for i := 0; i < nr; i++ {
		for k := 0; k < nc; k++ {
			v := W.At(i, k) - lambda.AtVec(i)
			if k < nc-1 {
				v -= aT[i] * lambda.AtVec(nr+k)
			}
			Wp.Set(i, k, v)
		}
	}

	if monotone {
		Wp = enforceMonotone(Wp, aS)
	}
	return Wp, nil
}
