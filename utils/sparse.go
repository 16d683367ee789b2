package utils

import (
	"github.com/james-bowman/sparse"
)

// DOK is an additive-accumulation sparse matrix builder. Unlike the raw
// james-bowman/sparse DOK (which overwrites on Set), AddAt merges repeated
// (row, col) contributions by summation, matching the way a global remap
// operator is assembled one source element at a time.
type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) DOK {
	return DOK{sparse.NewDOK(nr, nc)}
}

func (m DOK) Dims() (r, c int) { return m.M.Dims() }
func (m DOK) At(i, j int) float64 {
	return m.M.At(i, j)
}

// AddAt accumulates val into the existing entry at (i, j).
func (m DOK) AddAt(i, j int, val float64) {
	m.M.Set(i, j, m.M.At(i, j)+val)
}

func (m DOK) ToCSR() CSR {
	return CSR{m.M.ToCSR()}
}

// CSR is a read-only compressed sparse row matrix, produced once assembly
// is finished. Its internal layout visits entries in ascending (row, col)
// order, which is what gives Triples its deterministic iteration order.
type CSR struct {
	M *sparse.CSR
}

func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) NNZ() int            { return m.M.NNZ() }

// Triple is one (row, col, value) entry of a sparse operator.
type Triple struct {
	Row, Col int
	Value    float64
}

// Triples walks the CSR structure in row-major order and returns every
// stored entry. Row pointers partition Ind/Data by row, and within each
// row CSR construction leaves column indices in ascending order, so two
// runs over identical inputs produce an identical sequence.
func (m CSR) Triples() (triples []Triple) {
	nr, _ := m.Dims()
	raw := m.M.RawMatrix()
	triples = make([]Triple, 0, m.NNZ())
	for i := 0; i < nr; i++ {
		for k := raw.Indptr[i]; k < raw.Indptr[i+1]; k++ {
			triples = append(triples, Triple{Row: i, Col: raw.Ind[k], Value: raw.Data[k]})
		}
	}
	return
}
