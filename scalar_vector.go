package bulletproofs

// ScalarVector is an ordered, index-significant sequence of field elements.
// It carries its group so that operations can allocate fresh elements.
// Operations between two vectors require equal lengths.
type ScalarVector struct {
	g Group
	v []Scalar
}

// NewScalarVector returns a vector of n zero scalars.
func NewScalarVector(g Group, n int) ScalarVector {
	v := make([]Scalar, n)
	for i := range v {
		v[i] = g.Scalar().Zero()
	}
	return ScalarVector{g: g, v: v}
}

// ScalarVectorFrom wraps the given scalars. The vector takes ownership of
// the slice.
func ScalarVectorFrom(g Group, elems ...Scalar) ScalarVector {
	return ScalarVector{g: g, v: elems}
}

// Powers returns [x^0, x^1, ..., x^(n-1)].
func Powers(g Group, x Scalar, n int) ScalarVector {
	if n == 0 {
		return ScalarVector{g: g}
	}
	v := make([]Scalar, n)
	v[0] = g.Scalar().One()
	for i := 1; i < n; i++ {
		v[i] = g.Scalar().Mul(v[i-1], x)
	}
	return ScalarVector{g: g, v: v}
}

func (s ScalarVector) Len() int { return len(s.v) }

// At returns the element at index i, without copying.
func (s ScalarVector) At(i int) Scalar { return s.v[i] }

func (s ScalarVector) Clone() ScalarVector {
	v := make([]Scalar, len(s.v))
	for i := range s.v {
		v[i] = s.v[i].Clone()
	}
	return ScalarVector{g: s.g, v: v}
}

func (s ScalarVector) assertSameLen(o ScalarVector) {
	if len(s.v) != len(o.v) {
		panic("bulletproofs: scalar vector length mismatch")
	}
}

func (s ScalarVector) Add(o ScalarVector) ScalarVector {
	s.assertSameLen(o)
	v := make([]Scalar, len(s.v))
	for i := range s.v {
		v[i] = s.g.Scalar().Add(s.v[i], o.v[i])
	}
	return ScalarVector{g: s.g, v: v}
}

func (s ScalarVector) Sub(o ScalarVector) ScalarVector {
	s.assertSameLen(o)
	v := make([]Scalar, len(s.v))
	for i := range s.v {
		v[i] = s.g.Scalar().Sub(s.v[i], o.v[i])
	}
	return ScalarVector{g: s.g, v: v}
}

// Mul is the Hadamard (elementwise) product.
func (s ScalarVector) Mul(o ScalarVector) ScalarVector {
	s.assertSameLen(o)
	v := make([]Scalar, len(s.v))
	for i := range s.v {
		v[i] = s.g.Scalar().Mul(s.v[i], o.v[i])
	}
	return ScalarVector{g: s.g, v: v}
}

// MulScalar multiplies every element by x.
func (s ScalarVector) MulScalar(x Scalar) ScalarVector {
	v := make([]Scalar, len(s.v))
	for i := range s.v {
		v[i] = s.g.Scalar().Mul(s.v[i], x)
	}
	return ScalarVector{g: s.g, v: v}
}

// InnerProduct returns the sum of the elementwise products. An empty vector
// yields zero.
func (s ScalarVector) InnerProduct(o ScalarVector) Scalar {
	s.assertSameLen(o)
	acc := s.g.Scalar().Zero()
	tmp := s.g.Scalar()
	for i := range s.v {
		acc.Add(acc, tmp.Mul(s.v[i], o.v[i]))
	}
	return acc
}

// Sum returns the sum of all elements.
func (s ScalarVector) Sum() Scalar {
	acc := s.g.Scalar().Zero()
	for i := range s.v {
		acc.Add(acc, s.v[i])
	}
	return acc
}

// padTo right-pads the vector with zeros to length n. The prefix shares the
// receiver's elements.
func (s ScalarVector) padTo(n int) ScalarVector {
	if len(s.v) >= n {
		return s
	}
	v := make([]Scalar, n)
	copy(v, s.v)
	for i := len(s.v); i < n; i++ {
		v[i] = s.g.Scalar().Zero()
	}
	return ScalarVector{g: s.g, v: v}
}

// split halves the vector. The length must be an even, positive number.
func (s ScalarVector) split() (ScalarVector, ScalarVector) {
	if len(s.v) < 2 || len(s.v)%2 != 0 {
		panic("bulletproofs: splitting an odd-length scalar vector")
	}
	half := len(s.v) / 2
	return ScalarVector{g: s.g, v: s.v[:half]}, ScalarVector{g: s.g, v: s.v[half:]}
}

// Zeroize wipes every element in place.
func (s ScalarVector) Zeroize() {
	for i := range s.v {
		s.v[i].Zero()
	}
}
