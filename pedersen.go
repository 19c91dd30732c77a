package bulletproofs

// PedersenCommitment is the opening (value, mask) of value*g + mask*h.
type PedersenCommitment struct {
	Value Scalar
	Mask  Scalar
}

// Commit computes the commitment this opening commits to.
func (p *PedersenCommitment) Commit(g Group, gPoint, hPoint Point) Point {
	return multiExp(g, []msmTerm{{p.Value, gPoint}, {p.Mask, hPoint}})
}

// Zeroize wipes the opening in place.
func (p *PedersenCommitment) Zeroize() {
	p.Value.Zero()
	p.Mask.Zero()
}

// PedersenVectorCommitment is the opening of a vector commitment
//
//	sum gValues[i]*gBold[i] + sum hValues[i]*hBold[i] + mask*h.
type PedersenVectorCommitment struct {
	GValues ScalarVector
	HValues ScalarVector
	Mask    Scalar
}

// Commit computes the commitment this opening commits to. The value vectors
// must not exceed the generator vectors.
func (p *PedersenVectorCommitment) Commit(g Group, gBold, hBold PointVector, hPoint Point) Point {
	acc := g.Point().Mul(p.Mask, hPoint)
	for i := range p.GValues.v {
		acc.Add(acc, g.Point().Mul(p.GValues.v[i], gBold.v[i]))
	}
	for i := range p.HValues.v {
		acc.Add(acc, g.Point().Mul(p.HValues.v[i], hBold.v[i]))
	}
	return acc
}

// Zeroize wipes the opening in place.
func (p *PedersenVectorCommitment) Zeroize() {
	p.GValues.Zeroize()
	p.HValues.Zeroize()
	p.Mask.Zero()
}
