// Package invmap recovers the parametric coordinates of a point on the
// sphere within a curvilinear quadrilateral element — the inverse of the
// bilinear spherical map used to place GLL nodes on that element.
package invmap

import (
	"fmt"
	"math"

	"github.com/toddringler/tempestremap/mesh"
	"github.com/toddringler/tempestremap/utils"
)

const (
	maxIterations  = 50
	convergenceTol = 1.e-14
	// boundarySlack reuses the node-coordinate tolerance the rest of this
	// tree compares parametric/GLL coordinates against.
	boundarySlack = utils.NODETOL
)

// OutOfRangeError reports that the inverse map converged to parametric
// coordinates outside the unit square by more than the accepted boundary
// slack, which indicates a malformed overlap mesh: the quadrature point
// is not actually contained in the element it was attributed to.
type OutOfRangeError struct {
	Alpha, Beta float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("inverse map out of range (%1.5e, %1.5e)", e.Alpha, e.Beta)
}

// ApplyInverseMap returns the parametric coordinates (alpha, beta) in
// [0, 1]^2 such that the forward bilinear spherical map of face's four
// corners, evaluated at (alpha, beta) and renormalized to the sphere,
// equals x. It solves the (overdetermined, 3 equations in 2 unknowns)
// system by Gauss-Newton iteration starting from the element center, then
// clamps and range-checks the result.
func ApplyInverseMap(face mesh.Face, nodes []mesh.Node, x mesh.Node) (alpha, beta float64, err error) {
	if face.NumEdges() != 4 {
		return 0, 0, fmt.Errorf("invmap: ApplyInverseMap requires a quadrilateral face, got %d edges", face.NumEdges())
	}
	n0 := nodes[face[0]]
	n1 := nodes[face[1]]
	n2 := nodes[face[2]]
	n3 := nodes[face[3]]

	alpha, beta = 0.5, 0.5
	for iter := 0; iter < maxIterations; iter++ {
		raw := forward(n0, n1, n2, n3, alpha, beta)
		rawNorm := mesh.Norm(raw)
		p := mesh.Scale(raw, 1.0/rawNorm)

		dRawDa := dRawDAlpha(n0, n1, n2, n3, beta)
		dRawDb := dRawDBeta(n0, n1, n2, n3, alpha)

		dPDa := normalizeDerivative(raw, rawNorm, dRawDa)
		dPDb := normalizeDerivative(raw, rawNorm, dRawDb)

		res := mesh.Node{X: p.X - x.X, Y: p.Y - x.Y, Z: p.Z - x.Z}
		if mesh.Norm(res) < convergenceTol {
			break
		}

		// Gauss-Newton normal equations for the 3x2 least-squares system
		// J*delta = -res, J = [dPDa dPDb].
		a11 := mesh.Dot(dPDa, dPDa)
		a12 := mesh.Dot(dPDa, dPDb)
		a22 := mesh.Dot(dPDb, dPDb)
		b1 := -mesh.Dot(dPDa, res)
		b2 := -mesh.Dot(dPDb, res)

		det := a11*a22 - a12*a12
		if math.Abs(det) < 1.e-300 {
			break
		}
		dAlpha := (b1*a22 - b2*a12) / det
		dBeta := (a11*b2 - a12*b1) / det

		alpha += dAlpha
		beta += dBeta
	}

	if utils.Compare(utils.Less, alpha, -boundarySlack) || utils.Compare(utils.Greater, alpha, 1+boundarySlack) ||
		utils.Compare(utils.Less, beta, -boundarySlack) || utils.Compare(utils.Greater, beta, 1+boundarySlack) {
		return alpha, beta, &OutOfRangeError{Alpha: alpha, Beta: beta}
	}
	alpha = clamp01(alpha)
	beta = clamp01(beta)
	return alpha, beta, nil
}

func forward(n0, n1, n2, n3 mesh.Node, alpha, beta float64) mesh.Node {
	w0 := (1 - alpha) * (1 - beta)
	w1 := alpha * (1 - beta)
	w2 := alpha * beta
	w3 := (1 - alpha) * beta
	return mesh.Node{
		X: w0*n0.X + w1*n1.X + w2*n2.X + w3*n3.X,
		Y: w0*n0.Y + w1*n1.Y + w2*n2.Y + w3*n3.Y,
		Z: w0*n0.Z + w1*n1.Z + w2*n2.Z + w3*n3.Z,
	}
}

func dRawDAlpha(n0, n1, n2, n3 mesh.Node, beta float64) mesh.Node {
	return mesh.Node{
		X: -(1-beta)*n0.X + (1-beta)*n1.X + beta*n2.X - beta*n3.X,
		Y: -(1-beta)*n0.Y + (1-beta)*n1.Y + beta*n2.Y - beta*n3.Y,
		Z: -(1-beta)*n0.Z + (1-beta)*n1.Z + beta*n2.Z - beta*n3.Z,
	}
}

func dRawDBeta(n0, n1, n2, n3 mesh.Node, alpha float64) mesh.Node {
	return mesh.Node{
		X: -(1-alpha)*n0.X - alpha*n1.X + alpha*n2.X + (1-alpha)*n3.X,
		Y: -(1-alpha)*n0.Y - alpha*n1.Y + alpha*n2.Y + (1-alpha)*n3.Y,
		Z: -(1-alpha)*n0.Z - alpha*n1.Z + alpha*n2.Z + (1-alpha)*n3.Z,
	}
}

// normalizeDerivative gives d/dt[raw(t)/|raw(t)|] given raw, its norm, and
// draw/dt, via the standard quotient-rule projection: the component of
// draw/dt parallel to raw is removed before scaling by 1/|raw|.
func normalizeDerivative(raw mesh.Node, rawNorm float64, dRaw mesh.Node) mesh.Node {
	proj := mesh.Dot(raw, dRaw) / (rawNorm * rawNorm)
	tangential := mesh.Node{
		X: dRaw.X - proj*raw.X,
		Y: dRaw.Y - proj*raw.Y,
		Z: dRaw.Z - proj*raw.Z,
	}
	return mesh.Scale(tangential, 1.0/rawNorm)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
