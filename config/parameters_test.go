package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemapParametersParse(t *testing.T) {
	data := []byte(`
Title: "Test remap"
SourceMeshFile: source.json
TargetMeshFile: target.json
OverlapMeshFile: overlap.json
GLLMetadataFile: gll.json
PolynomialOrder: 4
Monotone: true
OutputOperatorFile: out.json
`)
	rp := &RemapParameters{}
	err := rp.Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, "Test remap", rp.Title)
	assert.Equal(t, 4, rp.PolynomialOrder)
	assert.True(t, rp.Monotone)
	assert.NoError(t, rp.Validate())
}

func TestRemapParametersValidateRejectsMissingFields(t *testing.T) {
	rp := &RemapParameters{}
	assert.Error(t, rp.Validate())

	rp = &RemapParameters{
		SourceMeshFile:  "a.json",
		TargetMeshFile:  "b.json",
		OverlapMeshFile: "c.json",
		GLLMetadataFile: "d.json",
		PolynomialOrder: 1,
	}
	assert.Error(t, rp.Validate(), "PolynomialOrder below 2 must be rejected")
}
