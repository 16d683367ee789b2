package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixSumRowsAndCols(t *testing.T) {
	m := NewMatrix(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	rows := m.SumRows()
	assert.Equal(t, 6.0, rows.AtVec(0))
	assert.Equal(t, 15.0, rows.AtVec(1))

	cols := m.SumCols()
	assert.Equal(t, 5.0, cols.AtVec(0))
	assert.Equal(t, 7.0, cols.AtVec(1))
	assert.Equal(t, 9.0, cols.AtVec(2))
}

func TestMatrixColExtraction(t *testing.T) {
	m := NewMatrix(2, 2, []float64{1, 2, 3, 4})
	assert.Equal(t, []float64{1, 3}, m.Col(0))
	assert.Equal(t, []float64{2, 4}, m.Col(1))
}

func TestNewMatrixPanicsOnDimMismatch(t *testing.T) {
	assert.Panics(t, func() {
		NewMatrix(2, 2, []float64{1, 2, 3})
	})
}
