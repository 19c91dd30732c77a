package bulletproofs

import (
	"github.com/j-berman/generalized-bulletproofs/transcript"
)

// ArithmeticCircuitStatement is Bulletproofs' arithmetic circuit statement
// from section 5.1 of the paper, modified per Generalized Bulletproofs:
//
//	aL * aR = aO
//	WL aL + WR aR + WO aO + sum_k(WCL[k] C[k].g + WCR[k] C[k].h) = WV v + c
//
// The weight matrices and constant vector are not transcripted; they are
// expected to be deterministic from the higher-level statement. If your
// constraints vary with anything besides the commitments, transcript that
// before calling Prove/Verify.
type ArithmeticCircuitStatement struct {
	generators *Generators

	wl  *WeightMatrix
	wr  *WeightMatrix
	wo  *WeightMatrix
	wv  *WeightMatrix
	wcl []*WeightMatrix
	wcr []*WeightMatrix

	constants ScalarVector

	// The commitments, vector and non-vector.
	vectorCommitments PointVector
	scalarCommitments PointVector
}

// NewArithmeticCircuitStatement validates and builds a statement. No partial
// statement is producible: the first violated invariant is returned as a
// typed error.
func NewArithmeticCircuitStatement(
	generators *Generators,
	wl, wr, wo *WeightMatrix,
	wcl, wcr []*WeightMatrix,
	wv *WeightMatrix,
	c ScalarVector,
	vectorCommitments PointVector,
	scalarCommitments PointVector,
) (*ArithmeticCircuitStatement, error) {
	// n is the amount of multiplications
	n := generators.Len()
	// m is the amount of Pedersen commitments
	m := scalarCommitments.Len()

	// q is the amount of constraints
	q := wl.Len()
	if wr.Len() != q || wo.Len() != q || wv.Len() != q || c.Len() != q {
		return nil, ErrInconsistentAmountOfConstraints
	}
	for _, w := range wcl {
		if w.Len() != q {
			return nil, ErrInconsistentAmountOfConstraints
		}
	}
	for _, w := range wcr {
		if w.Len() != q {
			return nil, ErrInconsistentAmountOfConstraints
		}
	}

	// A weight matrix whose highest index exceeds the wire count carries a
	// faulty constraint.
	if wl.highestIndex >= n || wr.highestIndex >= n || wo.highestIndex >= n {
		return nil, ErrConstrainedNonExistentTerm
	}

	if len(wcl) != vectorCommitments.Len() || len(wcr) != vectorCommitments.Len() {
		return nil, ErrConstrainedNonExistentCommitment
	}
	// The Pedersen vector commitments have as many terms as multiplications.
	for _, w := range wcl {
		if w.highestIndex > n {
			return nil, ErrConstrainedNonExistentTerm
		}
	}
	for _, w := range wcr {
		if w.highestIndex > n {
			return nil, ErrConstrainedNonExistentTerm
		}
	}

	if wv.highestIndex > m {
		return nil, ErrConstrainedNonExistentCommitment
	}

	return &ArithmeticCircuitStatement{
		generators:        generators,
		wl:                wl,
		wr:                wr,
		wo:                wo,
		wv:                wv,
		wcl:               wcl,
		wcr:               wcr,
		constants:         c,
		vectorCommitments: vectorCommitments,
		scalarCommitments: scalarCommitments,
	}, nil
}

// n returns the amount of multiplications.
func (s *ArithmeticCircuitStatement) n() int { return s.generators.Len() }

// q returns the amount of constraints.
func (s *ArithmeticCircuitStatement) q() int { return s.wl.Len() }

// cCount returns the amount of Pedersen vector commitments.
func (s *ArithmeticCircuitStatement) cCount() int { return s.vectorCommitments.Len() }

// m returns the amount of Pedersen commitments.
func (s *ArithmeticCircuitStatement) m() int { return s.scalarCommitments.Len() }

// ArithmeticCircuitWitness is the private assignment for a statement.
type ArithmeticCircuitWitness struct {
	aL ScalarVector
	aR ScalarVector
	aO ScalarVector

	c []*PedersenVectorCommitment
	v []*PedersenCommitment
}

// NewArithmeticCircuitWitness builds a witness. aO is computed, not
// supplied.
func NewArithmeticCircuitWitness(
	aL, aR ScalarVector,
	c []*PedersenVectorCommitment,
	v []*PedersenCommitment,
) (*ArithmeticCircuitWitness, error) {
	if aL.Len() != aR.Len() {
		return nil, ErrDifferingLrLengths
	}
	return &ArithmeticCircuitWitness{aL: aL, aR: aR, aO: aL.Mul(aR), c: c, v: v}, nil
}

// Zeroize wipes all secret material in place.
func (w *ArithmeticCircuitWitness) Zeroize() {
	w.aL.Zeroize()
	w.aR.Zeroize()
	w.aO.Zeroize()
	for _, c := range w.c {
		c.Zeroize()
	}
	for _, v := range w.v {
		v.Zeroize()
	}
}

// polyIndexes derives the fixed coefficient positions of the l(X)/r(X)
// polynomials from the vector-commitment count. Keeping them a pure function
// of that count keeps the prover and verifier derivations from drifting.
//
// ni is the reserved coefficient of t(X) the verifier reconstructs from
// public data; with no vector commitments the indexes collapse to the powers
// of X stated in the Bulletproofs paper.
func polyIndexes(vectorCommitments int) (ni, ilr, io, is, jlr, jo, js int) {
	ni = 2 * (vectorCommitments + 1)
	return ni, ni / 2, ni, ni + 1, ni / 2, 0, ni + 1
}

type yzChallenges struct {
	y    Scalar       // only the prover needs y itself
	yInv ScalarVector // powers of y^-1, [1 .. y^-(n-1)]
	z    ScalarVector // powers of z starting with z^1
}

// initialTranscript binds the statement's public data and the round-1
// commitments, and derives the y and z challenges.
func (s *ArithmeticCircuitStatement) initialTranscript(t *transcript.Transcript, ai, ao, sCommit Point) yzChallenges {
	group := s.generators.group

	t.DomainSeparate("arithmetic_circuit_proof")

	t.AppendMessage("generators", s.generators.digest)

	var buf [4]byte
	putU32(buf[:], uint32(s.n()))
	t.AppendMessage("n", buf[:])
	putU32(buf[:], uint32(s.q()))
	t.AppendMessage("q", buf[:])

	s.vectorCommitments.Transcript(t, "vector_commitment")
	s.scalarCommitments.Transcript(t, "commitment")

	t.AppendMessage("AI", pointBytes(ai))
	t.AppendMessage("AO", pointBytes(ao))
	t.AppendMessage("S", pointBytes(sCommit))

	y := challengeScalar(group, t, "y")
	yInv := Powers(group, group.Scalar().Inv(y), s.n())

	// Powers of z starting with z^1.
	z1 := challengeScalar(group, t, "z")
	q := s.q()
	zv := make([]Scalar, q)
	if q > 0 {
		zv[0] = z1
		for i := 1; i < q; i++ {
			zv[i] = group.Scalar().Mul(zv[i-1], z1)
		}
	}

	return yzChallenges{y: y, yInv: yInv, z: ScalarVectorFrom(group, zv...)}
}

// transcriptTs binds the T coefficient commitments and derives the powers of
// the x challenge, [x^0 .. x^(len(tBefore)+len(tAfter))].
func (s *ArithmeticCircuitStatement) transcriptTs(t *transcript.Transcript, tBefore, tAfter PointVector) ScalarVector {
	group := s.generators.group
	for i := 0; i < tBefore.Len(); i++ {
		t.AppendMessage("Ti", pointBytes(tBefore.At(i)))
	}
	for i := 0; i < tAfter.Len(); i++ {
		t.AppendMessage("Tni+1+i", pointBytes(tAfter.At(i)))
	}
	x := challengeScalar(group, t, "x")
	return Powers(group, x, tBefore.Len()+1+tAfter.Len())
}

// transcriptTauXUTCaret binds the proof's closing scalars and derives the
// challenge seeding the inner-product argument.
func (s *ArithmeticCircuitStatement) transcriptTauXUTCaret(t *transcript.Transcript, tauX, u, tCaret Scalar) Scalar {
	t.AppendMessage("tau_x", scalarBytes(tauX))
	t.AppendMessage("u", scalarBytes(u))
	t.AppendMessage("t_caret", scalarBytes(tCaret))
	return challengeScalar(s.generators.group, t, "ip_x")
}
