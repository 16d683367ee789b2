package remap

import (
	"github.com/toddringler/tempestremap/mesh"
	"github.com/toddringler/tempestremap/overlap"
	"github.com/toddringler/tempestremap/utils"
)

// Accumulate scatters one source element's reconciled weight block W into
// the running global operator. Global GLL node ids arrive 1-based from
// the ingestion collaborator; localToGlobal shifts the whole per-element
// index once rather than at every (p, q) access.
func Accumulate(
	dok utils.DOK,
	group overlap.Group,
	meshOverlap mesh.OverlapMesh,
	meshOutput mesh.Mesh,
	gll mesh.GLLMetadata,
	sourceFace int,
	nP int,
	W utils.Matrix,
) {
	localToGlobal := utils.NewIndex(nP * nP)
	for p := 0; p < nP; p++ {
		for q := 0; q < nP; q++ {
			localToGlobal[p*nP+q] = gll.Nodes[p][q][sourceFace]
		}
	}
	localToGlobal = localToGlobal.Add(-1)

	for j := 0; j < group.Count; j++ {
		idx := group.Start + j
		t := meshOverlap.SecondFaceIx[idx]
		areaO := meshOverlap.FaceArea[idx]
		areaT := meshOutput.FaceArea[t]

		for k := 0; k < nP*nP; k++ {
			dok.AddAt(t, localToGlobal[k], W.At(j, k)*areaO/areaT)
		}
	}
}
