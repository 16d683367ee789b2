package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toddringler/tempestremap/utils"
)

func TestEnforceMonotoneNoOpWhenAlreadyNonNegative(t *testing.T) {
	W := utils.NewMatrix(1, 2, []float64{0.4, 0.6})
	aS := []float64{0.5, 0.5}
	out := enforceMonotone(W, aS)
	assert.Equal(t, 0.4, out.At(0, 0))
	assert.Equal(t, 0.6, out.At(0, 1))
}

func TestEnforceMonotoneBlendsTowardReferenceWhenNegative(t *testing.T) {
	W := utils.NewMatrix(1, 2, []float64{-0.2, 1.2})
	aS := []float64{0.5, 0.5}
	out := enforceMonotone(W, aS)
	assert.True(t, out.At(0, 0) >= -1e-12)
	assert.True(t, near(out.At(0, 0)+out.At(0, 1), 1, 1e-12))
}
