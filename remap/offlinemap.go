package remap

import (
	"fmt"
	"math"

	"github.com/toddringler/tempestremap/diagnostics"
	"github.com/toddringler/tempestremap/mesh"
	"github.com/toddringler/tempestremap/overlap"
	"github.com/toddringler/tempestremap/utils"
)

// partialCoverTol bounds how far an element's overlap area may drift
// from its own area (or the global totals) before the cover is no
// longer treated as exact, per the fixed tolerance in the error table.
const partialCoverTol = 1.e-10

// OfflineMap is the sparse Spectral-Element-to-Finite-Volume operator:
// rows index target faces, columns index global GLL node ids. It
// accumulates additively, so repeated (row, col) contributions across
// source elements are summed rather than overwritten.
type OfflineMap struct {
	dok utils.DOK
}

func NewOfflineMap(numTargetFaces, numGlobalNodes int) *OfflineMap {
	return &OfflineMap{dok: utils.NewDOK(numTargetFaces, numGlobalNodes)}
}

// Triples returns the operator as (row, col, value) triples in
// deterministic row-major order.
func (m *OfflineMap) Triples() []utils.Triple {
	return m.dok.ToCSR().Triples()
}

// LinearRemapSE builds the full Spectral-Element source to Finite-Volume
// target operator. It walks every source face, reconciles its raw weight
// block against consistency and conservation (skipping reconciliation,
// with a notice, on a partially covered element), folds in monotonicity
// when requested, and scatters the result into the returned operator.
// A diag of nil is treated as diagnostics.NopLogger{}.
func LinearRemapSE(
	meshInput, meshOutput mesh.Mesh,
	meshOverlap mesh.OverlapMesh,
	gll mesh.GLLMetadata,
	numGlobalNodes int,
	monotone bool,
	diag diagnostics.Logger,
) (*OfflineMap, error) {
	if diag == nil {
		diag = diagnostics.NopLogger{}
	}
	nP := gll.NP
	nc := nP * nP

	om := NewOfflineMap(len(meshOutput.Faces), numGlobalNodes)
	it := overlap.NewIterator(meshOverlap)

	var totalSourceArea, totalOverlapArea float64

	for e, face := range meshInput.Faces {
		if face.NumEdges() != 4 {
			return nil, &Error{Kind: KindWrongElementShape, SourceFace: e,
				msg: fmt.Sprintf("face has %d edges", face.NumEdges())}
		}

		group, ok := it.Next(e)
		if !ok {
			continue
		}

		W, err := assembleRawWeights(nP, group, meshOverlap, meshInput, face, monotone)
		if err != nil {
			return nil, err
		}

		aS := make([]float64, nc)
		for p := 0; p < nP; p++ {
			for q := 0; q < nP; q++ {
				aS[p*nP+q] = gll.J[p][q][e]
			}
		}
		aT := make([]float64, group.Count)
		var targetArea float64
		for j := 0; j < group.Count; j++ {
			aT[j] = meshOverlap.FaceArea[group.Start+j]
			targetArea += aT[j]
		}
		sourceArea := meshInput.FaceArea[e]
		totalSourceArea += sourceArea
		totalOverlapArea += targetArea

		if utils.Compare(utils.Greater, math.Abs(targetArea-sourceArea), partialCoverTol) {
			diag.Noticef("partial element: source face %d (overlap area %1.8e, element area %1.8e)", e, targetArea, sourceArea)
		} else {
			W, err = ForceConsistencyConservation(W, aS, aT, monotone)
			if err != nil {
				if rerr, ok := err.(*Error); ok {
					rerr.SourceFace = e
				}
				return nil, err
			}
		}

		Accumulate(om.dok, group, meshOverlap, meshOutput, gll, e, nP, W)
	}

	if utils.Compare(utils.Greater, math.Abs(totalOverlapArea-totalSourceArea), partialCoverTol) {
		diag.Warnf("global partial cover: overlap area %1.8e vs source area %1.8e", totalOverlapArea, totalSourceArea)
	}

	return om, nil
}
