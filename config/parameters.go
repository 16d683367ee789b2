// Package config defines the YAML-driven parameters for an offline remap
// run: the two mesh files, the overlap mesh, GLL metadata, the
// monotonicity switch that drives the core, and a polynomial order that
// Validate checks. The core takes nP from the GLL metadata file, not from
// PolynomialOrder.
package config

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// RemapParameters mirrors the flat YAML-struct-plus-Parse/Print idiom
// used for solver input elsewhere in this tree.
type RemapParameters struct {
	Title              string `yaml:"Title"`
	SourceMeshFile     string `yaml:"SourceMeshFile"`
	TargetMeshFile     string `yaml:"TargetMeshFile"`
	OverlapMeshFile    string `yaml:"OverlapMeshFile"`
	GLLMetadataFile    string `yaml:"GLLMetadataFile"`
	PolynomialOrder    int    `yaml:"PolynomialOrder"`
	Monotone           bool   `yaml:"Monotone"`
	OutputOperatorFile string `yaml:"OutputOperatorFile"`
}

func (rp *RemapParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, rp)
}

func (rp *RemapParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", rp.Title)
	fmt.Printf("[%s]\t\t= Source Mesh\n", rp.SourceMeshFile)
	fmt.Printf("[%s]\t\t= Target Mesh\n", rp.TargetMeshFile)
	fmt.Printf("[%s]\t\t= Overlap Mesh\n", rp.OverlapMeshFile)
	fmt.Printf("[%s]\t\t= GLL Metadata\n", rp.GLLMetadataFile)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", rp.PolynomialOrder)
	fmt.Printf("[%v]\t\t\t\t= Monotone\n", rp.Monotone)
	fmt.Printf("[%s]\t\t= Output Operator\n", rp.OutputOperatorFile)
}

// Validate reports the first missing required field, matching the
// fatal-on-missing-flag behavior the cobra commands use for required
// file inputs.
func (rp *RemapParameters) Validate() error {
	if rp.SourceMeshFile == "" {
		return fmt.Errorf("config: SourceMeshFile is required")
	}
	if rp.TargetMeshFile == "" {
		return fmt.Errorf("config: TargetMeshFile is required")
	}
	if rp.OverlapMeshFile == "" {
		return fmt.Errorf("config: OverlapMeshFile is required")
	}
	if rp.GLLMetadataFile == "" {
		return fmt.Errorf("config: GLLMetadataFile is required")
	}
	if rp.PolynomialOrder < 2 {
		return fmt.Errorf("config: PolynomialOrder must be >= 2, got %d", rp.PolynomialOrder)
	}
	return nil
}
