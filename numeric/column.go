package numeric

import "github.com/vectorframe/column/core"

// NewColumn builds the representation the sparsity heuristic recommends for
// data: Dense when DecideSparsity declines sparse storage, Sparse (with the
// estimated default value factored out) otherwise. This is the entry point
// callers should use when ingesting raw data of unknown shape; NewDense and
// NewSparse remain available for callers that already know their layout.
func NewColumn(typ core.Type, data []float64, opts ...SparsityOption) (Column, error) {
	decision := DecideSparsity(data, opts...)
	if !decision.Sparse {
		return NewDense(typ, data)
	}

	rows := make([]uint32, 0, len(data))
	values := make([]float64, 0, len(data))
	for i, v := range data {
		if !isDefault(v, decision.Default) {
			rows = append(rows, uint32(i))
			values = append(values, v)
		}
	}
	return NewSparse(typ, len(data), decision.Default, rows, values)
}
