package remap

import "github.com/toddringler/tempestremap/utils"

// enforceMonotone blends W toward the piecewise-constant reference map
// W^lo[j][k] = aS[k]/J_total by just enough to clear every negative
// entry. The reference satisfies consistency and conservation on its
// own, so any convex combination of W and W^lo does too; only
// monotonicity was at risk, and the blend factor is chosen as the
// smallest A that zeroes out the worst violation.
func enforceMonotone(W utils.Matrix, aS []float64) utils.Matrix {
	nr, nc := W.Dims()

	var jTotal float64
	for k := 0; k < nc; k++ {
		jTotal += aS[k]
	}
	if jTotal <= 0 {
		return W
	}

	var blend float64
	for j := 0; j < nr; j++ {
		for k := 0; k < nc; k++ {
			v := W.At(j, k)
			if v >= 0 {
				continue
			}
			lo := aS[k] / jTotal
			denom := lo - v
			if denom <= 0 {
				continue
			}
			a := -v / denom
			if a > blend {
				blend = a
			}
		}
	}
	if blend <= 0 {
		return W
	}
	if blend > 1 {
		blend = 1
	}

	out := utils.NewMatrix(nr, nc)
	for j := 0; j < nr; j++ {
		for k := 0; k < nc; k++ {
			lo := aS[k] / jTotal
			out.Set(j, k, (1-blend)*W.At(j, k)+blend*lo)
		}
	}
	return out
}
