package bulletproofs

// Implements the Inner Product Argument from the Bulletproofs paper
// https://eprint.iacr.org/2017/1066.pdf (Protocol 2, with the generator
// weighting of Generalized Bulletproofs).
//
// Goal is to prove, for generators g_bold, h_bold and g, a weighting c of
// h_bold, and a scaling challenge u, knowledge of a and b such that
//
//	P = <a, g_bold> + <b, c o h_bold> + <a, b> * u * g
//
// with a logarithmic amount of rounds.

import (
	"crypto/cipher"

	"github.com/j-berman/generalized-bulletproofs/transcript"
)

// IpWitness is the pair of vectors whose inner product is proven.
type IpWitness struct {
	a ScalarVector
	b ScalarVector
}

// NewIpWitness validates the two vectors are non-empty and of equal length.
func NewIpWitness(a, b ScalarVector) (*IpWitness, error) {
	if a.Len() == 0 || a.Len() != b.Len() {
		return nil, ErrDifferingLrLengths
	}
	return &IpWitness{a: a, b: b}, nil
}

// IpProof is the closing argument: one (L, R) pair per folding round and the
// two fully folded scalars.
type IpProof struct {
	l []Point
	r []Point
	a Scalar
	b Scalar
}

// IpStatement describes one inner-product relation. P is either an explicit
// point, or — when verifying inside an arithmetic circuit proof — a set of
// terms the caller already accumulated into the batch verifier under a
// per-proof weight.
type IpStatement struct {
	generators   *Generators
	hBoldWeights ScalarVector
	u            Scalar

	p              Point
	verifierWeight Scalar
	transcriptP    bool
}

// NewIpStatement builds a statement for an explicit P, bound into the
// transcript at prove/verify time.
func NewIpStatement(generators *Generators, hBoldWeights ScalarVector, u Scalar, p Point) (*IpStatement, error) {
	if hBoldWeights.Len() != generators.Len() {
		return nil, ErrIncorrectAmountOfGenerators
	}
	return &IpStatement{
		generators:   generators,
		hBoldWeights: hBoldWeights,
		u:            u,
		p:            p,
		transcriptP:  true,
	}, nil
}

// ipStatementProver is the prover-side statement for a P the caller derived
// from material already bound into the transcript.
func ipStatementProver(generators *Generators, hBoldWeights ScalarVector, u Scalar, p Point) (*IpStatement, error) {
	if hBoldWeights.Len() != generators.Len() {
		return nil, ErrIncorrectAmountOfGenerators
	}
	return &IpStatement{generators: generators, hBoldWeights: hBoldWeights, u: u, p: p}, nil
}

// ipStatementVerifier is the verifier-side statement for a P whose terms the
// caller accumulated into the batch verifier under verifierWeight.
func ipStatementVerifier(generators *Generators, hBoldWeights ScalarVector, u Scalar, verifierWeight Scalar) (*IpStatement, error) {
	if hBoldWeights.Len() != generators.Len() {
		return nil, ErrIncorrectAmountOfGenerators
	}
	return &IpStatement{
		generators:     generators,
		hBoldWeights:   hBoldWeights,
		u:              u,
		verifierWeight: verifierWeight,
	}, nil
}

// challengeScalar derives the next challenge from the transcript. A zero
// challenge has negligible probability for an honest transcript and means
// the hash primitive is broken; it is unrecoverable.
func challengeScalar(g Group, t *transcript.Transcript, label string) Scalar {
	x := hashToScalar(g, t.Challenge(label))
	if x.Equal(g.Scalar().Zero()) {
		panic("bulletproofs: zero Fiat-Shamir challenge")
	}
	return x
}

// foldPoints returns xl*l + xr*r, elementwise.
func foldPoints(g Group, l, r PointVector, xl, xr Scalar) PointVector {
	out := make([]Point, l.Len())
	for i := range out {
		out[i] = g.Point().Mul(xl, l.v[i])
		out[i].Add(out[i], g.Point().Mul(xr, r.v[i]))
	}
	return PointVector{g: g, v: out}
}

// Prove produces the logarithmic closing proof for this statement.
func (s *IpStatement) Prove(t *transcript.Transcript, witness *IpWitness) (*IpProof, error) {
	gens := s.generators
	group := gens.group
	if witness.a.Len() != gens.Len() {
		return nil, ErrIncorrectAmountOfGenerators
	}

	if s.transcriptP {
		t.AppendMessage("P", pointBytes(s.p))
	}

	a := witness.a.Clone()
	b := witness.b.Clone()
	gBold := gens.gBold.Clone()
	// Fold the weights into the right-hand generators up front, so the loop
	// below runs over h_bold' = weights o h_bold.
	hBold := make([]Point, gens.Len())
	for i := range hBold {
		hBold[i] = group.Point().Mul(s.hBoldWeights.v[i], gens.hBold.v[i])
	}
	hBoldVec := PointVector{g: group, v: hBold}

	var lPoints, rPoints []Point
	for a.Len() > 1 {
		aL, aR := a.split()
		bL, bR := b.split()
		gL, gR := gBold.split()
		hL, hR := hBoldVec.split()

		cL := aL.InnerProduct(bR)
		cR := aR.InnerProduct(bL)

		half := aL.Len()
		lTerms := make([]msmTerm, 0, (2*half)+1)
		rTerms := make([]msmTerm, 0, (2*half)+1)
		for i := 0; i < half; i++ {
			lTerms = append(lTerms, msmTerm{aL.v[i], gR.v[i]}, msmTerm{bR.v[i], hL.v[i]})
			rTerms = append(rTerms, msmTerm{aR.v[i], gL.v[i]}, msmTerm{bL.v[i], hR.v[i]})
		}
		lTerms = append(lTerms, msmTerm{group.Scalar().Mul(cL, s.u), gens.g})
		rTerms = append(rTerms, msmTerm{group.Scalar().Mul(cR, s.u), gens.g})

		l := multiExp(group, lTerms)
		r := multiExp(group, rTerms)
		lPoints = append(lPoints, l)
		rPoints = append(rPoints, r)

		t.AppendMessage("L", pointBytes(l))
		t.AppendMessage("R", pointBytes(r))
		x := challengeScalar(group, t, "x")
		xInv := group.Scalar().Inv(x)

		a = aL.MulScalar(x).Add(aR.MulScalar(xInv))
		b = bL.MulScalar(xInv).Add(bR.MulScalar(x))
		gBold = foldPoints(group, gL, gR, xInv, x)
		hBoldVec = foldPoints(group, hL, hR, x, xInv)
	}

	return &IpProof{l: lPoints, r: rPoints, a: a.v[0].Clone(), b: b.v[0].Clone()}, nil
}

// Verify accumulates this proof's checks into the batch verifier under a
// random weight. Nothing is decided here; the caller finalizes the batch.
func (s *IpStatement) Verify(rng cipher.Stream, verifier *BatchVerifier, t *transcript.Transcript, proof *IpProof) error {
	gens := s.generators
	group := gens.group
	n := gens.Len()

	rounds := len(proof.l)
	if len(proof.r) != rounds || (1<<rounds) != n {
		return ErrIncorrectAmountOfGenerators
	}

	if s.transcriptP {
		t.AppendMessage("P", pointBytes(s.p))
	}

	weight := s.verifierWeight
	if weight == nil {
		weight = group.Scalar().Pick(rng)
	}
	if s.p != nil {
		verifier.additional = append(verifier.additional, msmTerm{weight.Clone(), s.p})
	}

	// Rederive the round challenges; the final equation catches deviations.
	xs := make([]Scalar, rounds)
	xInvs := make([]Scalar, rounds)
	for j := 0; j < rounds; j++ {
		t.AppendMessage("L", pointBytes(proof.l[j]))
		t.AppendMessage("R", pointBytes(proof.r[j]))
		xs[j] = challengeScalar(group, t, "x")
		xInvs[j] = group.Scalar().Inv(xs[j])
	}

	// P + sum(x_j^2 L_j + x_j^-2 R_j) must equal
	// <a s, g_bold> + <b s^-1 o weights, h_bold> + a b u g.
	for j := 0; j < rounds; j++ {
		xSq := group.Scalar().Mul(xs[j], xs[j])
		xSq.Mul(xSq, weight)
		xInvSq := group.Scalar().Mul(xInvs[j], xInvs[j])
		xInvSq.Mul(xInvSq, weight)
		verifier.additional = append(verifier.additional,
			msmTerm{xSq, proof.l[j]},
			msmTerm{xInvSq, proof.r[j]},
		)
	}

	wa := group.Scalar().Mul(weight, proof.a)
	wb := group.Scalar().Mul(weight, proof.b)
	for i := 0; i < n; i++ {
		// Round j splits on bit (rounds-1-j): the right half folds by x, the
		// left by its inverse.
		si := group.Scalar().One()
		for j := 0; j < rounds; j++ {
			if (i>>(rounds-1-j))&1 == 1 {
				si.Mul(si, xs[j])
			} else {
				si.Mul(si, xInvs[j])
			}
		}
		gTerm := group.Scalar().Mul(wa, si)
		verifier.gBold[i].Sub(verifier.gBold[i], gTerm)

		hTerm := group.Scalar().Inv(si)
		hTerm.Mul(hTerm, wb)
		hTerm.Mul(hTerm, s.hBoldWeights.v[i])
		verifier.hBold[i].Sub(verifier.hBold[i], hTerm)
	}

	ab := group.Scalar().Mul(proof.a, proof.b)
	ab.Mul(ab, s.u)
	ab.Mul(ab, weight)
	verifier.g.Sub(verifier.g, ab)

	return nil
}
