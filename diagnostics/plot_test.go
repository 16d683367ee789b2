package diagnostics

import (
	"testing"

	"github.com/toddringler/tempestremap/mesh"
)

func TestPlotOverlap(t *testing.T) {
	nodes := []mesh.Node{
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: -1, Y: 0, Z: 0},
	}
	faces := []mesh.Face{{0, 1, 2, 3}}
	om := mesh.NewOverlapMesh(nodes, faces, []float64{1.0}, []int{0}, []int{0})

	if testing.Verbose() {
		PlotOverlap(om)
	}
}
