package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/toddringler/tempestremap/mesh"
)

// meshFile is the on-disk interchange format this command reads: plain
// JSON, not the NetCDF/Exodus files a full ingestion pipeline would
// produce. Generating one from a real mesh file is a separate
// collaborator's job; this loader exists only so the command has
// something concrete to read.
type meshFile struct {
	Nodes    []mesh.Node `json:"nodes"`
	Faces    [][]int     `json:"faces"`
	FaceArea []float64   `json:"faceArea"`
}

type overlapMeshFile struct {
	meshFile
	FirstFaceIx  []int `json:"firstFaceIx"`
	SecondFaceIx []int `json:"secondFaceIx"`
}

type gllMetadataFile struct {
	NP    int         `json:"np"`
	Nodes [][][]int   `json:"nodes"`
	J     [][][]float64 `json:"j"`
}

func readMeshFile(path string) (mesh.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mesh.Mesh{}, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	var mf meshFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return mesh.Mesh{}, fmt.Errorf("loader: parsing %s: %w", path, err)
	}
	return mesh.NewMesh(mf.Nodes, toFaces(mf.Faces), mf.FaceArea), nil
}

func readOverlapMeshFile(path string) (mesh.OverlapMesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mesh.OverlapMesh{}, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	var of overlapMeshFile
	if err := json.Unmarshal(data, &of); err != nil {
		return mesh.OverlapMesh{}, fmt.Errorf("loader: parsing %s: %w", path, err)
	}
	return mesh.NewOverlapMesh(of.Nodes, toFaces(of.Faces), of.FaceArea, of.FirstFaceIx, of.SecondFaceIx), nil
}

func readGLLMetadataFile(path string) (mesh.GLLMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mesh.GLLMetadata{}, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	var gf gllMetadataFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return mesh.GLLMetadata{}, fmt.Errorf("loader: parsing %s: %w", path, err)
	}
	return mesh.NewGLLMetadata(gf.NP, gf.Nodes, gf.J), nil
}

func toFaces(raw [][]int) []mesh.Face {
	faces := make([]mesh.Face, len(raw))
	for i, f := range raw {
		faces[i] = mesh.Face(f)
	}
	return faces
}
