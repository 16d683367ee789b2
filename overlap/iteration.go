// Package overlap walks an overlap mesh grouped by the source face each
// of its faces was cut from, and fan-triangulates each overlap face for
// quadrature. It relies entirely on the producer's invariant that overlap
// faces are emitted contiguously by FirstFaceIx; it does not sort or
// otherwise repair the input.
package overlap

import "github.com/toddringler/tempestremap/mesh"

// Group is the contiguous run of overlap faces belonging to one source
// face, plus the total count of fan-triangulated sub-triangles across
// that run (needed up front to size per-element quadrature scratch).
type Group struct {
	SourceFace     int
	Start          int // first index into the overlap mesh's Faces/FaceArea/SecondFaceIx
	Count          int // number of overlap faces in the run
	TotalTriangles int
}

// Iterator walks a mesh.OverlapMesh's faces with a single forward cursor,
// the same access pattern LinearRemapSE uses: one call to Next per source
// face, in increasing source-face order.
type Iterator struct {
	overlap mesh.OverlapMesh
	cursor  int
}

func NewIterator(overlap mesh.OverlapMesh) *Iterator {
	return &Iterator{overlap: overlap}
}

// Next scans forward from the current cursor for the run of overlap
// faces whose FirstFaceIx equals sourceFace, advances the cursor past
// them, and reports whether any were found. Source faces with no
// overlap (nOverlap == 0) return ok == false and leave the cursor
// untouched, since by the grouping invariant no later run can belong to
// an earlier source face.
func (it *Iterator) Next(sourceFace int) (g Group, ok bool) {
	n := len(it.overlap.FirstFaceIx)
	start := it.cursor
	i := start
	var totalTri int
	for i < n && it.overlap.FirstFaceIx[i] == sourceFace {
		totalTri += it.overlap.Faces[i].NumEdges() - 2
		i++
	}
	count := i - start
	if count == 0 {
		return Group{}, false
	}
	it.cursor = i
	return Group{
		SourceFace:     sourceFace,
		Start:          start,
		Count:          count,
		TotalTriangles: totalTri,
	}, true
}

// FanTriangles enumerates the fan triangulation of face anchored at its
// first vertex: triangle k has corners face[0], face[k+1], face[k+2] for
// k = 0 .. len(face)-3.
func FanTriangles(face mesh.Face) [][3]int {
	nTri := face.NumEdges() - 2
	tris := make([][3]int, nTri)
	for k := 0; k < nTri; k++ {
		tris[k] = [3]int{face[0], face[k+1], face[k+2]}
	}
	return tris
}
