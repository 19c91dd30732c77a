package bulletproofs

import (
	"crypto/cipher"

	"github.com/j-berman/generalized-bulletproofs/logger"
	"github.com/j-berman/generalized-bulletproofs/transcript"
)

// ArithmeticCircuitProof is a proof for an arithmetic circuit statement.
// Proofs are immutable once produced and safe to serialize, transmit, and
// verify any number of times, including inside a shared batch accumulator.
type ArithmeticCircuitProof struct {
	ai Point
	ao Point
	s  Point

	// Commitments to the coefficients of t(X), split around the reserved
	// coefficient at index n' which the verifier reconstructs itself.
	tBeforeNi PointVector
	tAfterNi  PointVector

	tauX   Scalar
	u      Scalar
	tCaret Scalar

	ip *IpProof
}

// Prove consumes the witness and produces a proof. The witness's secret
// material is wiped before returning, on every path; any inconsistency
// between witness and statement aborts with ErrInconsistentWitness before
// cryptographic work begins.
func (s *ArithmeticCircuitStatement) Prove(
	rng cipher.Stream,
	t *transcript.Transcript,
	witness *ArithmeticCircuitWitness,
) (*ArithmeticCircuitProof, error) {
	group := s.generators.group
	n := s.n()
	cN := s.cCount()
	m := s.m()

	defer witness.Zeroize()
	var wipeVectors []ScalarVector
	var wipeScalars []Scalar
	defer func() {
		for _, v := range wipeVectors {
			v.Zeroize()
		}
		for _, x := range wipeScalars {
			x.Zero()
		}
	}()

	// Check the witness length and pad it to the generator count.
	if witness.aL.Len() > n {
		return nil, ErrIncorrectAmountOfGenerators
	}
	witness.aL = witness.aL.padTo(n)
	witness.aR = witness.aR.padTo(n)
	witness.aO = witness.aO.padTo(n)
	for _, com := range witness.c {
		// The Pedersen vector commitments internally have n terms.
		if com.GValues.Len() > n || com.HValues.Len() > n {
			return nil, ErrIncorrectAmountOfGenerators
		}
		com.GValues = com.GValues.padTo(n)
		com.HValues = com.HValues.padTo(n)
	}

	// Check the witness's consistency with the statement.
	if len(witness.c) != cN || len(witness.v) != m {
		return nil, ErrInconsistentWitness
	}
	for i, opening := range witness.v {
		if !s.scalarCommitments.At(i).Equal(opening.Commit(group, s.generators.g, s.generators.h)) {
			return nil, ErrInconsistentWitness
		}
	}
	for i, opening := range witness.c {
		if !s.vectorCommitments.At(i).Equal(opening.Commit(group, s.generators.gBold, s.generators.hBold, s.generators.h)) {
			return nil, ErrInconsistentWitness
		}
	}
	for i := 0; i < s.q(); i++ {
		lhs := s.wl.rowProduct(i, witness.aL)
		lhs.Add(lhs, s.wr.rowProduct(i, witness.aR))
		lhs.Add(lhs, s.wo.rowProduct(i, witness.aO))
		for k := range s.wcl {
			lhs.Add(lhs, s.wcl[k].rowProduct(i, witness.c[k].GValues))
		}
		for k := range s.wcr {
			lhs.Add(lhs, s.wcr[k].rowProduct(i, witness.c[k].HValues))
		}
		rhs := s.wv.rowValueProduct(i, witness.v)
		rhs.Add(rhs, s.constants.At(i))
		if !lhs.Equal(rhs) {
			return nil, ErrInconsistentWitness
		}
	}

	log := logger.Logger()
	log.Debug().
		Int("n", n).Int("q", s.q()).Int("c", cN).Int("m", m).
		Msg("proving arithmetic circuit")

	alpha := group.Scalar().Pick(rng)
	beta := group.Scalar().Pick(rng)
	rho := group.Scalar().Pick(rng)
	wipeScalars = append(wipeScalars, alpha, beta, rho)

	aiTerms := make([]msmTerm, 0, (2*n)+1)
	for i := 0; i < n; i++ {
		aiTerms = append(aiTerms,
			msmTerm{witness.aL.v[i], s.generators.gBold.v[i]},
			msmTerm{witness.aR.v[i], s.generators.hBold.v[i]},
		)
	}
	aiTerms = append(aiTerms, msmTerm{alpha, s.generators.h})
	ai := multiExp(group, aiTerms)

	aoTerms := make([]msmTerm, 0, n+1)
	for i := 0; i < n; i++ {
		aoTerms = append(aoTerms, msmTerm{witness.aO.v[i], s.generators.gBold.v[i]})
	}
	aoTerms = append(aoTerms, msmTerm{beta, s.generators.h})
	ao := multiExp(group, aoTerms)

	randomVector := func(l int) ScalarVector {
		v := make([]Scalar, l)
		for i := range v {
			v[i] = group.Scalar().Pick(rng)
		}
		return ScalarVector{g: group, v: v}
	}
	sL := randomVector(n)
	sR := randomVector(n)
	wipeVectors = append(wipeVectors, sL, sR)

	sTerms := make([]msmTerm, 0, (2*n)+1)
	for i := 0; i < n; i++ {
		sTerms = append(sTerms,
			msmTerm{sL.v[i], s.generators.gBold.v[i]},
			msmTerm{sR.v[i], s.generators.hBold.v[i]},
		)
	}
	sTerms = append(sTerms, msmTerm{rho, s.generators.h})
	sCommit := multiExp(group, sTerms)

	yz := s.initialTranscript(t, ai, ao, sCommit)
	yInv, z := yz.yInv, yz.z
	yPow := Powers(group, yz.y, n)

	// t is a 2(n'+1)-1 term polynomial, per Generalized Bulletproofs, where
	// n' = 2(c+1). With c = 0 it lines up with Bulletproofs' 6-term t.
	ni, ilr, io, is, jlr, jo, js := polyIndexes(cN)

	// Declare the l and r polynomials, assigning the traditional
	// coefficients to their positions.
	l := make([]ScalarVector, is+1)
	r := make([]ScalarVector, js+1)
	l[ilr] = s.wr.Apply(n, z).Mul(yInv).Add(witness.aL)
	l[io] = witness.aO.Clone()
	l[is] = sL
	r[jlr] = s.wl.Apply(n, z).Add(witness.aR.Mul(yPow))
	r[jo] = s.wo.Apply(n, z).Sub(yPow)
	r[js] = sR.Mul(yPow)

	// Pad the unassigned coefficients.
	for i := range l {
		if l[i].v == nil {
			l[i] = NewScalarVector(group, n)
		}
	}
	for i := range r {
		if r[i].v == nil {
			r[i] = NewScalarVector(group, n)
		}
	}

	// Fill in the vector commitments: unused coefficients of l increasing
	// from 0 (skipping ilr), unused coefficients of r decreasing from n'
	// (skipping jlr).
	for k, com := range witness.c {
		i := k + 1
		j := ni - i
		l[i] = com.GValues.Clone()
		l[j] = s.wcr[k].Apply(n, z).Mul(yInv)
		r[j] = s.wcl[k].Apply(n, z)
		r[i] = com.HValues.Mul(yPow).Add(r[i])
	}
	wipeVectors = append(wipeVectors, l...)
	wipeVectors = append(wipeVectors, r...)

	// Multiply l and r to obtain the coefficients of t.
	tPoly := NewScalarVector(group, 1+(2*(len(l)-1)))
	for i := range l {
		for j := range r {
			tPoly.v[i+j].Add(tPoly.v[i+j], l[i].InnerProduct(r[j]))
		}
	}
	wipeVectors = append(wipeVectors, tPoly)

	// Commit to every coefficient of t except the one at n', which is
	// exactly what the verifier reconstructs from public data.
	tauBefore := randomVector(ni)
	tauAfter := randomVector(tPoly.Len() - ni - 1)
	wipeVectors = append(wipeVectors, tauBefore, tauAfter)

	tBefore := make([]Point, ni)
	for i := range tBefore {
		tBefore[i] = multiExp(group, []msmTerm{{tPoly.v[i], s.generators.g}, {tauBefore.v[i], s.generators.h}})
	}
	tAfter := make([]Point, tauAfter.Len())
	for i := range tAfter {
		tAfter[i] = multiExp(group, []msmTerm{{tPoly.v[ni+1+i], s.generators.g}, {tauAfter.v[i], s.generators.h}})
	}
	tBeforeVec := PointVectorFrom(group, tBefore...)
	tAfterVec := PointVectorFrom(group, tAfter...)

	xPow := s.transcriptTs(t, tBeforeVec, tAfterVec)

	evalVectorPoly := func(poly []ScalarVector) ScalarVector {
		res := NewScalarVector(group, n)
		for i := range poly {
			res = res.Add(poly[i].MulScalar(xPow.v[i]))
		}
		return res
	}
	lx := evalVectorPoly(l)
	rx := evalVectorPoly(r)
	wipeVectors = append(wipeVectors, lx, rx)

	tCaret := lx.InnerProduct(rx)

	// tau_x is the x-weighted sum of the T masks, with the WV-weighted
	// scalar-commitment masks at the reserved position n'.
	masks := make([]Scalar, m)
	for i, opening := range witness.v {
		masks[i] = opening.Mask
	}
	tauX := group.Scalar().Zero()
	tauPoly := make([]Scalar, 0, tPoly.Len())
	tauPoly = append(tauPoly, tauBefore.v...)
	tauPoly = append(tauPoly, s.wv.Apply(m, z).InnerProduct(ScalarVectorFrom(group, masks...)))
	tauPoly = append(tauPoly, tauAfter.v...)
	for i, coeff := range tauPoly {
		tauX.Add(tauX, group.Scalar().Mul(coeff, xPow.v[i]))
	}

	// u aggregates the round-1 masks by their powers of x, plus each vector
	// commitment's mask at its reserved index.
	u := group.Scalar().Mul(alpha, xPow.v[ilr])
	u.Add(u, group.Scalar().Mul(beta, xPow.v[io]))
	u.Add(u, group.Scalar().Mul(rho, xPow.v[is]))
	for k, com := range witness.c {
		u.Add(u, group.Scalar().Mul(xPow.v[k+1], com.Mask))
	}

	// Close with the inner-product argument over
	// P = <lx, g_bold> + <y_inv o rx, h_bold> + ip_x * t_caret * g.
	// This inlines Protocol 1, as the IpStatement implements Protocol 2.
	ipx := s.transcriptTauXUTCaret(t, tauX, u, tCaret)
	pTerms := make([]msmTerm, 0, (2*n)+1)
	for i := 0; i < n; i++ {
		pTerms = append(pTerms,
			msmTerm{lx.v[i], s.generators.gBold.v[i]},
			msmTerm{group.Scalar().Mul(yInv.v[i], rx.v[i]), s.generators.hBold.v[i]},
		)
	}
	pTerms = append(pTerms, msmTerm{group.Scalar().Mul(ipx, tCaret), s.generators.g})

	ipStmt, err := ipStatementProver(s.generators, yInv, ipx, multiExp(group, pTerms))
	if err != nil {
		return nil, err
	}
	ipWitness, err := NewIpWitness(lx, rx)
	if err != nil {
		return nil, err
	}
	ipProof, err := ipStmt.Prove(t, ipWitness)
	if err != nil {
		return nil, err
	}

	return &ArithmeticCircuitProof{
		ai:        ai,
		ao:        ao,
		s:         sCommit,
		tBeforeNi: tBeforeVec,
		tAfterNi:  tAfterVec,
		tauX:      tauX,
		u:         u,
		tCaret:    tCaret,
		ip:        ipProof,
	}, nil
}
