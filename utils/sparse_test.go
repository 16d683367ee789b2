package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDOKAddAtAccumulates(t *testing.T) {
	d := NewDOK(3, 3)
	d.AddAt(1, 1, 2.0)
	d.AddAt(1, 1, 3.0)
	assert.Equal(t, 5.0, d.At(1, 1))
}

func TestCSRTriplesDeterministicRowMajorOrder(t *testing.T) {
	d := NewDOK(2, 3)
	d.AddAt(1, 2, 4.0)
	d.AddAt(0, 1, 1.0)
	d.AddAt(0, 0, 2.0)

	csr := d.ToCSR()
	triples := csr.Triples()
	assert.Len(t, triples, 3)
	for i := 1; i < len(triples); i++ {
		prev, cur := triples[i-1], triples[i]
		assert.True(t, cur.Row > prev.Row || (cur.Row == prev.Row && cur.Col > prev.Col))
	}
	assert.Equal(t, Triple{Row: 0, Col: 0, Value: 2.0}, triples[0])
	assert.Equal(t, Triple{Row: 0, Col: 1, Value: 1.0}, triples[1])
	assert.Equal(t, Triple{Row: 1, Col: 2, Value: 4.0}, triples[2])
}

func TestCSRNNZ(t *testing.T) {
	d := NewDOK(2, 2)
	d.AddAt(0, 0, 1.0)
	d.AddAt(1, 1, 1.0)
	assert.Equal(t, 2, d.ToCSR().NNZ())
}
