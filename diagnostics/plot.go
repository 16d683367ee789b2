package diagnostics

import (
	"image/color"

	"github.com/notargets/avs/chart2d"
	graphics2D "github.com/notargets/avs/geometry"
	"github.com/toddringler/tempestremap/mesh"
)

// PlotOverlap renders the overlap mesh's fan triangulation as a wireframe,
// purely as a visual sanity check during development; it is never on the
// path construction depends on.
func PlotOverlap(m mesh.OverlapMesh) (chart *chart2d.Chart2D) {
	points := make([]graphics2D.Point, len(m.Nodes))
	for i, n := range m.Nodes {
		points[i].X[0] = float32(n.X)
		points[i].X[1] = float32(n.Y)
	}

	var triangles []graphics2D.Triangle
	for _, face := range m.Faces {
		nTri := face.NumEdges() - 2
		for k := 0; k < nTri; k++ {
			var tri graphics2D.Triangle
			tri.Nodes[0] = int32(face[0])
			tri.Nodes[1] = int32(face[k+1])
			tri.Nodes[2] = int32(face[k+2])
			triangles = append(triangles, tri)
		}
	}

	trimesh := graphics2D.TriMesh{Geometry: points, Triangles: triangles}
	box := graphics2D.NewBoundingBox(trimesh.GetGeometry())
	box = box.Scale(1.1)
	chart = chart2d.NewChart2D(1024, 1024, box.XMin[0], box.XMax[0], box.XMin[1], box.XMax[1])
	go chart.Plot()

	white := color.RGBA{R: 255, G: 255, B: 255, A: 0}
	if err := chart.AddTriMesh("Overlap", trimesh, chart2d.NoGlyph, chart2d.Solid, white); err != nil {
		panic("unable to add overlap mesh series")
	}
	return
}
