package bulletproofs

// Term is one weighted column reference within a constraint row.
type Term struct {
	Index  int
	Weight Scalar
}

// WeightMatrix is a sparse matrix of constraint weights: one association
// list of (column index, weight) per row. Absent indices weigh zero. It
// tracks the highest column index referenced across all rows so statements
// can reject constraints on non-existent terms.
type WeightMatrix struct {
	g            Group
	rows         [][]Term
	highestIndex int
}

// NewWeightMatrix returns an empty matrix over the given group.
func NewWeightMatrix(g Group) *WeightMatrix {
	return &WeightMatrix{g: g, highestIndex: -1}
}

// PushRow appends one constraint row.
func (m *WeightMatrix) PushRow(terms ...Term) {
	for _, t := range terms {
		if t.Index < 0 {
			panic("bulletproofs: negative column index")
		}
		if t.Index > m.highestIndex {
			m.highestIndex = t.Index
		}
	}
	m.rows = append(m.rows, terms)
}

// Len returns the amount of rows (constraints).
func (m *WeightMatrix) Len() int { return len(m.rows) }

// Apply folds the rows with the per-row weights z into a single length-width
// vector: out[j] = sum_i z[i] * weight(row i, column j). z must have exactly
// one weight per row.
func (m *WeightMatrix) Apply(width int, z ScalarVector) ScalarVector {
	if z.Len() != len(m.rows) {
		panic("bulletproofs: row weight vector length mismatch")
	}
	out := NewScalarVector(m.g, width)
	tmp := m.g.Scalar()
	for i, row := range m.rows {
		for _, t := range row {
			out.v[t.Index].Add(out.v[t.Index], tmp.Mul(z.v[i], t.Weight))
		}
	}
	return out
}

// rowProduct returns the weighted sum of row i against the given vector.
func (m *WeightMatrix) rowProduct(i int, v ScalarVector) Scalar {
	acc := m.g.Scalar().Zero()
	tmp := m.g.Scalar()
	for _, t := range m.rows[i] {
		acc.Add(acc, tmp.Mul(t.Weight, v.v[t.Index]))
	}
	return acc
}

// rowValueProduct returns the weighted sum of row i against the committed
// values of the given scalar-commitment openings.
func (m *WeightMatrix) rowValueProduct(i int, v []*PedersenCommitment) Scalar {
	acc := m.g.Scalar().Zero()
	tmp := m.g.Scalar()
	for _, t := range m.rows[i] {
		acc.Add(acc, tmp.Mul(t.Weight, v[t.Index].Value))
	}
	return acc
}
