package bulletproofs

import (
	"github.com/j-berman/generalized-bulletproofs/transcript"
)

// PointVector is an ordered, index-significant sequence of group elements.
type PointVector struct {
	g Group
	v []Point
}

// PointVectorFrom wraps the given points. The vector takes ownership of the
// slice.
func PointVectorFrom(g Group, points ...Point) PointVector {
	return PointVector{g: g, v: points}
}

func (p PointVector) Len() int { return len(p.v) }

// At returns the element at index i, without copying.
func (p PointVector) At(i int) Point { return p.v[i] }

func (p PointVector) Clone() PointVector {
	v := make([]Point, len(p.v))
	for i := range p.v {
		v[i] = p.v[i].Clone()
	}
	return PointVector{g: p.g, v: v}
}

// MultiExp computes the multi-scalar multiplication of the vector against a
// same-length scalar vector.
func (p PointVector) MultiExp(s ScalarVector) Point {
	if len(p.v) != len(s.v) {
		panic("bulletproofs: point vector length mismatch")
	}
	acc := p.g.Point().Null()
	for i := range p.v {
		acc.Add(acc, p.g.Point().Mul(s.v[i], p.v[i]))
	}
	return acc
}

// Transcript appends every element to the transcript under the given label.
func (p PointVector) Transcript(t *transcript.Transcript, label string) {
	for i := range p.v {
		t.AppendMessage(label, pointBytes(p.v[i]))
	}
}

// split halves the vector. The length must be an even, positive number.
func (p PointVector) split() (PointVector, PointVector) {
	if len(p.v) < 2 || len(p.v)%2 != 0 {
		panic("bulletproofs: splitting an odd-length point vector")
	}
	half := len(p.v) / 2
	return PointVector{g: p.g, v: p.v[:half]}, PointVector{g: p.g, v: p.v[half:]}
}
