/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/toddringler/tempestremap/config"
	"github.com/toddringler/tempestremap/diagnostics"
	"github.com/toddringler/tempestremap/remap"
)

// RemapCmd represents the remap command
var RemapCmd = &cobra.Command{
	Use:   "remap",
	Short: "Build a sparse Spectral-Element to Finite-Volume remap operator",
	Long: `Reads a source mesh, target mesh, overlap mesh, and GLL metadata,
and writes the sparse operator that remaps a field on the source mesh onto
the target mesh while preserving consistency, conservation, and optionally
monotonicity.`,
	Run: func(cmd *cobra.Command, args []string) {
		icFile, err := cmd.Flags().GetString("inputConditionsFile")
		if err != nil {
			panic(err)
		}
		rp := processRemapInput(icFile)
		if err := RunRemap(rp); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(RemapCmd)
	RemapCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for remap parameters")
}

func processRemapInput(icFile string) (rp *config.RemapParameters) {
	if len(icFile) == 0 {
		fmt.Println("error: must supply a remap parameters file (-I, --inputConditionsFile)")
		exampleFile := `
########################################
Title: "Cubed sphere refinement test"
SourceMeshFile: source.json
TargetMeshFile: target.json
OverlapMeshFile: overlap.json
GLLMetadataFile: gll.json
PolynomialOrder: 4
Monotone: false
OutputOperatorFile: operator.json
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	data, err := ioutil.ReadFile(icFile)
	if err != nil {
		panic(err)
	}
	rp = &config.RemapParameters{}
	if err = rp.Parse(data); err != nil {
		panic(err)
	}
	if err = rp.Validate(); err != nil {
		panic(err)
	}
	return
}

// RunRemap loads the meshes named by rp, builds the offline map, and
// writes the resulting triples to rp.OutputOperatorFile.
func RunRemap(rp *config.RemapParameters) error {
	rp.Print()

	meshInput, err := readMeshFile(rp.SourceMeshFile)
	if err != nil {
		return err
	}
	meshOutput, err := readMeshFile(rp.TargetMeshFile)
	if err != nil {
		return err
	}
	meshOverlap, err := readOverlapMeshFile(rp.OverlapMeshFile)
	if err != nil {
		return err
	}
	gll, err := readGLLMetadataFile(rp.GLLMetadataFile)
	if err != nil {
		return err
	}

	numGlobalNodes := 0
	for _, row := range gll.Nodes {
		for _, col := range row {
			for _, id := range col {
				if id > numGlobalNodes {
					numGlobalNodes = id
				}
			}
		}
	}

	om, err := remap.LinearRemapSE(meshInput, meshOutput, meshOverlap, gll, numGlobalNodes, rp.Monotone, diagnostics.StdLogger{})
	if err != nil {
		return err
	}

	triples := om.Triples()
	out, err := json.Marshal(triples)
	if err != nil {
		return fmt.Errorf("remap: marshaling operator: %w", err)
	}
	if err := os.WriteFile(rp.OutputOperatorFile, out, 0644); err != nil {
		return fmt.Errorf("remap: writing %s: %w", rp.OutputOperatorFile, err)
	}
	fmt.Printf("wrote %d triples to %s\n", len(triples), rp.OutputOperatorFile)
	return nil
}
