package mesh

import "math"

// Add, Scale, Dot, Cross and Normalize are the small set of spherical-vector
// primitives the remap core needs: forming quadrature points from
// barycentric blends, renormalizing them back onto the sphere, and
// measuring the area of the geodesic triangles the overlap mesh is cut
// into.

func Add(a, b Node) Node { return Node{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

func Scale(a Node, s float64) Node { return Node{a.X * s, a.Y * s, a.Z * s} }

func Dot(a, b Node) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Node) Node {
	return Node{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func Norm(a Node) float64 { return math.Sqrt(Dot(a, a)) }

// Normalize rescales a to unit length. Used after blending quadrature
// points by barycentric weight, which leaves the result off the sphere.
func Normalize(a Node) Node {
	n := Norm(a)
	return Node{a.X / n, a.Y / n, a.Z / n}
}

// SphericalTriangleArea returns the area of the geodesic triangle with
// corners n0, n1, n2 on the unit sphere, via the Van Oosterom & Strackee
// solid-angle formula. It is robust for the small, near-degenerate
// triangles that fan-triangulated overlap cells can produce, where the
// naive spherical-excess-from-angles formula loses precision.
func SphericalTriangleArea(n0, n1, n2 Node) float64 {
	numerator := Dot(n0, Cross(n1, n2))
	denominator := 1.0 + Dot(n0, n1) + Dot(n1, n2) + Dot(n2, n0)
	return 2.0 * math.Atan2(numerator, denominator)
}

// FaceArea sums the spherical-triangle areas of a fan triangulation of
// face, anchored at its first vertex. This is the same decomposition
// OverlapIteration performs for quadrature and is exposed here because
// test fixtures need to synthesize consistent face areas without an
// external mesh-generation collaborator.
func FaceArea(face Face, nodes []Node) float64 {
	var area float64
	n0 := nodes[face[0]]
	for k := 0; k < len(face)-2; k++ {
		n1 := nodes[face[k+1]]
		n2 := nodes[face[k+2]]
		area += SphericalTriangleArea(n0, n1, n2)
	}
	return area
}
