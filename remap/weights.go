package remap

import (
	"github.com/toddringler/tempestremap/element"
	"github.com/toddringler/tempestremap/invmap"
	"github.com/toddringler/tempestremap/mesh"
	"github.com/toddringler/tempestremap/overlap"
	"github.com/toddringler/tempestremap/quadrature"
	"github.com/toddringler/tempestremap/utils"
)

// assembleRawWeights computes the raw (pre-reconciliation) weight block
// for one source element: W[j][k] is the contribution of basis
// coefficient k = p*nP+q to overlap face j, normalized so that a constant
// source field maps to a mean value of 1 on every overlap face. It walks
// every overlap face in group, fan-triangulates it, and accumulates a
// symmetric order-4 quadrature over each sub-triangle after inverting the
// source element's parametric map at the (renormalized) quadrature
// point.
func assembleRawWeights(
	nP int,
	group overlap.Group,
	meshOverlap mesh.OverlapMesh,
	meshInput mesh.Mesh,
	faceFirst mesh.Face,
	monotone bool,
) (W utils.Matrix, err error) {
	nc := nP * nP
	W = utils.NewMatrix(group.Count, nc)
	triQuad := quadrature.SymmetricTriangleOrder4()

	for j := 0; j < group.Count; j++ {
		idx := group.Start + j
		face := meshOverlap.Faces[idx]
		areaO := meshOverlap.FaceArea[idx]

		for _, tri := range overlap.FanTriangles(face) {
			n0 := meshOverlap.Nodes[tri[0]]
			n1 := meshOverlap.Nodes[tri[1]]
			n2 := meshOverlap.Nodes[tri[2]]
			areaTri := mesh.SphericalTriangleArea(n0, n1, n2)

			for _, qp := range triQuad {
				raw := mesh.Add(mesh.Add(mesh.Scale(n0, qp.L0), mesh.Scale(n1, qp.L1)), mesh.Scale(n2, qp.L2))
				Q := mesh.Normalize(raw)

				alpha, beta, ierr := invmap.ApplyInverseMap(faceFirst, meshInput.Nodes, Q)
				if ierr != nil {
					return W, &Error{Kind: KindMalformedOverlap, SourceFace: group.SourceFace, Alpha: alpha, Beta: beta}
				}

				C := element.SampleGLLFiniteElement(monotone, nP, alpha, beta)
				scale := qp.W * areaTri / areaO
				for p := 0; p < nP; p++ {
					for q := 0; q < nP; q++ {
						k := p*nP + q
						W.Set(j, k, W.At(j, k)+scale*C.At(p, q))
					}
				}
			}
		}
	}
	return W, nil
}
