package remap

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toddringler/tempestremap/diagnostics"
	"github.com/toddringler/tempestremap/mesh"
	"github.com/toddringler/tempestremap/quadrature"
)

// smallQuad is a near-flat 10x10 degree patch near the equator/prime
// meridian, small enough that its own area is close to flat-square but
// still a genuine curvilinear spherical quadrilateral.
func smallQuad() (mesh.Face, []mesh.Node) {
	deg := math.Pi / 180
	mkNode := func(lonDeg, latDeg float64) mesh.Node {
		lon, lat := lonDeg*deg, latDeg*deg
		return mesh.Node{
			X: math.Cos(lat) * math.Cos(lon),
			Y: math.Cos(lat) * math.Sin(lon),
			Z: math.Sin(lat),
		}
	}
	nodes := []mesh.Node{
		mkNode(0, 0),
		mkNode(10, 0),
		mkNode(10, 10),
		mkNode(0, 10),
	}
	return mesh.Face{0, 1, 2, 3}, nodes
}

// singleElementInputs builds a degenerate but self-consistent case: one
// source quad, one target face identical to it, one overlap face that is
// the whole source element. GLL weights are the tensor-product GLL
// quadrature fractions of the element's real spherical area, so they are
// self-consistent with the single overlap row regardless of how well the
// flat-patch approximation tracks the true differential Jacobian.
func singleElementInputs(nP int) (meshInput, meshOutput mesh.Mesh, meshOverlap mesh.OverlapMesh, gll mesh.GLLMetadata) {
	face, nodes := smallQuad()
	area := mesh.FaceArea(face, nodes)

	meshInput = mesh.NewMesh(nodes, []mesh.Face{face}, []float64{area})
	meshOutput = mesh.NewMesh(nodes, []mesh.Face{face}, []float64{area})
	meshOverlap = mesh.NewOverlapMesh(nodes, []mesh.Face{face}, []float64{area}, []int{0}, []int{0})

	_, gWeights := quadrature.GaussLobatto(nP)
	j := make([][][]float64, nP)
	ids := make([][][]int, nP)
	nextID := 1
	for p := 0; p < nP; p++ {
		j[p] = make([][]float64, nP)
		ids[p] = make([][]int, nP)
		for q := 0; q < nP; q++ {
			j[p][q] = []float64{gWeights.AtVec(p) * gWeights.AtVec(q) * area}
			ids[p][q] = []int{nextID}
			nextID++
		}
	}
	gll = mesh.NewGLLMetadata(nP, ids, j)
	return
}

func TestLinearRemapSESingleFullyCoveredElement(t *testing.T) {
	for _, nP := range []int{2, 3, 4} {
		meshInput, meshOutput, meshOverlap, gll := singleElementInputs(nP)
		om, err := LinearRemapSE(meshInput, meshOutput, meshOverlap, gll, nP*nP, false, diagnostics.NopLogger{})
		assert.NoError(t, err, "nP=%d", nP)

		triples := om.Triples()
		var rowSum float64
		for _, tr := range triples {
			assert.Equal(t, 0, tr.Row)
			rowSum += tr.Value
		}
		assert.True(t, near(rowSum, 1, 1e-9), "nP=%d row sum must be 1, got %v", nP, rowSum)

		seen := make(map[int]float64)
		for _, tr := range triples {
			seen[tr.Col] = tr.Value
		}
		assert.Len(t, seen, nP*nP, "nP=%d expected one contribution per GLL node", nP)
	}
}

func TestLinearRemapSERejectsNonQuadrilateralSourceFace(t *testing.T) {
	face, nodes := smallQuad()
	triFace := mesh.Face{0, 1, 2}
	area := mesh.FaceArea(face, nodes)

	meshInput := mesh.NewMesh(nodes, []mesh.Face{triFace}, []float64{area})
	meshOutput := mesh.NewMesh(nodes, []mesh.Face{triFace}, []float64{area})
	meshOverlap := mesh.NewOverlapMesh(nodes, []mesh.Face{triFace}, []float64{area}, []int{0}, []int{0})
	gll := mesh.NewGLLMetadata(2, [][][]int{{{1}, {2}}, {{3}, {4}}}, [][][]float64{{{1}, {1}}, {{1}, {1}}})

	_, err := LinearRemapSE(meshInput, meshOutput, meshOverlap, gll, 4, false, diagnostics.NopLogger{})
	assert.Error(t, err)
	rerr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, KindWrongElementShape, rerr.Kind)
}

func TestLinearRemapSEPartialCoverEmitsNoticeAndSkipsReconcile(t *testing.T) {
	face, nodes := smallQuad()
	area := mesh.FaceArea(face, nodes)

	meshInput := mesh.NewMesh(nodes, []mesh.Face{face}, []float64{area})
	meshOutput := mesh.NewMesh(nodes, []mesh.Face{face}, []float64{area})
	// Overlap covers only half the element's area, simulating a gap in
	// the target mesh.
	meshOverlap := mesh.NewOverlapMesh(nodes, []mesh.Face{face}, []float64{area / 2}, []int{0}, []int{0})
	gll := mesh.NewGLLMetadata(2, [][][]int{{{1}, {2}}, {{3}, {4}}},
		[][][]float64{{{area / 4}, {area / 4}}, {{area / 4}, {area / 4}}})

	rec := &recordingLogger{}
	om, err := LinearRemapSE(meshInput, meshOutput, meshOverlap, gll, 4, false, rec)
	assert.NoError(t, err)
	if !assert.NotNil(t, om) {
		return
	}

	if assert.Len(t, rec.notices, 1) {
		assert.Contains(t, rec.notices[0], "partial element")
	}

	// Left unreconciled, the raw row sums to area/(area/2) = 2 and the
	// scatter scales it by area(O)/area(T) = 1/2, so the operator row totals
	// 1. A reconciled block would be forced to row sum 1 and scatter to 1/2.
	var rowSum float64
	for _, tr := range om.Triples() {
		rowSum += tr.Value
	}
	assert.True(t, near(rowSum, 1, 1e-9), "unreconciled row should total 1, got %v", rowSum)
}

// recordingLogger keeps every diagnostic it receives so tests can check
// which non-fatal conditions were reported.
type recordingLogger struct {
	notices, warnings []string
}

func (l *recordingLogger) Noticef(format string, args ...interface{}) {
	l.notices = append(l.notices, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warnf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}
