// Package mesh holds the data model shared by the remap core: unit-sphere
// nodes, faces built from them, and the three meshes (source, target,
// overlap) the offline map is built from. Mesh I/O and overlap generation
// are owned by external collaborators; this package carries the structures
// they hand to the core, plus the spherical-vector and triangle-area
// helpers in geometry.go.
package mesh

// Node is a unit-length point on the sphere.
type Node struct {
	X, Y, Z float64
}

// Face is an ordered, counter-clockwise list of node indices bounding a
// polygon on the sphere. A source face in the SE path must have exactly
// four entries.
type Face []int

func (f Face) NumEdges() int { return len(f) }

// Mesh is a plain collection of nodes, faces and their precomputed areas.
// Mesh owns no behavior beyond what the core needs to read; construction
// and face-area computation belong to the collaborator that produced it.
type Mesh struct {
	Nodes    []Node
	Faces    []Face
	FaceArea []float64
}

func NewMesh(nodes []Node, faces []Face, faceArea []float64) Mesh {
	return Mesh{Nodes: nodes, Faces: faces, FaceArea: faceArea}
}

// OverlapMesh is the geometric intersection of a source and target mesh:
// every face also carries the source ("first") and target ("second") face
// it was cut from. The producer is required to emit faces grouped
// contiguously by FirstFaceIx; OverlapIteration relies on that ordering
// and does not re-sort or validate it.
type OverlapMesh struct {
	Mesh
	FirstFaceIx  []int
	SecondFaceIx []int
}

func NewOverlapMesh(nodes []Node, faces []Face, faceArea []float64, firstFaceIx, secondFaceIx []int) OverlapMesh {
	return OverlapMesh{
		Mesh:         NewMesh(nodes, faces, faceArea),
		FirstFaceIx:  firstFaceIx,
		SecondFaceIx: secondFaceIx,
	}
}

// GLLMetadata carries, per source face, the global GLL node ids (1-based,
// as produced by the NetCDF/Exodus ingestion collaborator) and the GLL
// Jacobians at each (p, q) collocation point. Both are laid out [p][q][e].
type GLLMetadata struct {
	NP    int
	Nodes [][][]int     // gllNodes[p][q][e], 1-based global ids
	J     [][][]float64 // gllJ[p][q][e], positive GLL Jacobian
}

func NewGLLMetadata(nP int, nodes [][][]int, j [][][]float64) GLLMetadata {
	return GLLMetadata{NP: nP, Nodes: nodes, J: j}
}
