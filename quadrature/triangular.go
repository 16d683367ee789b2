package quadrature

// BarycentricPoint is one node of a symmetric triangular quadrature rule,
// expressed in barycentric coordinates (lambda0, lambda1, lambda2) that
// sum to 1.
type BarycentricPoint struct {
	L0, L1, L2 float64
	W          float64
}

// SymmetricTriangleOrder4 returns the classical 4-point symmetric rule on
// the reference triangle (Hillion 1977 / Strang-Fix), exact for
// polynomials up to total degree 3. The exact node placement of an
// order-4 triangular rule is not fixed by the remap algorithm itself; any
// symmetric rule that integrates cubics exactly is interchangeable here.
// Weights are expressed as a fraction of the triangle's area (they sum to
// 1) so a caller scales by the triangle's actual spherical area.
func SymmetricTriangleOrder4() []BarycentricPoint {
	const (
		a = 0.6
		b = 0.2
	)
	return []BarycentricPoint{
		{L0: 1.0 / 3.0, L1: 1.0 / 3.0, L2: 1.0 / 3.0, W: -27.0 / 48.0},
		{L0: a, L1: b, L2: b, W: 25.0 / 48.0},
		{L0: b, L1: a, L2: b, W: 25.0 / 48.0},
		{L0: b, L1: b, L2: a, W: 25.0 / 48.0},
	}
}
