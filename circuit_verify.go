package bulletproofs

import (
	"crypto/cipher"
	"fmt"

	"github.com/j-berman/generalized-bulletproofs/logger"
	"github.com/j-berman/generalized-bulletproofs/transcript"
)

// Verify checks a proof by accumulating its randomly weighted verification
// terms into the caller's BatchVerifier. Nothing is decided here: the caller
// finalizes the batch once with Generators.VerifyBatch after all proofs have
// been queued. A single invalid proof among the batch makes finalization
// fail except with negligible probability.
func (s *ArithmeticCircuitStatement) Verify(
	rng cipher.Stream,
	verifier *BatchVerifier,
	t *transcript.Transcript,
	proof *ArithmeticCircuitProof,
) error {
	group := s.generators.group
	n := s.n()
	cN := s.cCount()
	m := s.m()

	ni, ilr, io, is, jlr, _, _ := polyIndexes(cN)

	lrPolyLen := 1 + ni + 1
	tPolyLen := (2 * lrPolyLen) - 1

	if proof.tBeforeNi.Len() != ni {
		return ErrIncorrectTBeforeNiLength
	}
	if proof.tAfterNi.Len() != tPolyLen-ni-1 {
		return ErrIncorrectTAfterNiLength
	}
	if len(verifier.gBold) < n {
		return ErrIncorrectAmountOfGenerators
	}

	log := logger.Logger()
	log.Debug().
		Int("n", n).Int("q", s.q()).Int("c", cN).Int("m", m).
		Msg("accumulating arithmetic circuit proof")

	yz := s.initialTranscript(t, proof.ai, proof.ao, proof.s)
	yInv, z := yz.yInv, yz.z

	// delta is the cross term of the quadratic relation, reconstructible
	// from public data alone.
	delta := s.wr.Apply(n, z).Mul(yInv).InnerProduct(s.wl.Apply(n, z))

	xPow := s.transcriptTs(t, proof.tBeforeNi, proof.tAfterNi)

	// The polynomial identity:
	// t_caret g + tau_x h
	//   = x^n' (delta + z c) + x^n' WV(z) V + sum x^i T_i + sum x^(n'+1+i) T_(n'+1+i)
	{
		weight := group.Scalar().Pick(rng)

		// lhs of the equation, weighted to enable batch verification
		verifier.g.Add(verifier.g, group.Scalar().Mul(proof.tCaret, weight))
		verifier.h.Add(verifier.h, group.Scalar().Mul(proof.tauX, weight))

		// rhs of the equation, negated to cause a sum to zero
		rhs := group.Scalar().Add(delta, z.InnerProduct(s.constants))
		rhs.Mul(rhs, xPow.v[ni])
		rhs.Mul(rhs, weight)
		verifier.g.Sub(verifier.g, rhs)

		negWeight := group.Scalar().Neg(weight)
		vWeights := s.wv.Apply(m, z).MulScalar(xPow.v[ni])
		for i := 0; i < m; i++ {
			verifier.additional = append(verifier.additional,
				msmTerm{group.Scalar().Mul(negWeight, vWeights.v[i]), s.scalarCommitments.v[i]})
		}
		for i := 0; i < proof.tBeforeNi.Len(); i++ {
			verifier.additional = append(verifier.additional,
				msmTerm{group.Scalar().Mul(negWeight, xPow.v[i]), proof.tBeforeNi.v[i]})
		}
		for i := 0; i < proof.tAfterNi.Len(); i++ {
			verifier.additional = append(verifier.additional,
				msmTerm{group.Scalar().Mul(negWeight, xPow.v[ni+1+i]), proof.tAfterNi.v[i]})
		}
	}

	weight := group.Scalar().Pick(rng)

	// This block effectively calculates the inner-product P, within the
	// accumulator.
	{
		verifier.additional = append(verifier.additional,
			msmTerm{group.Scalar().Mul(weight, xPow.v[ilr]), proof.ai},
			msmTerm{group.Scalar().Mul(weight, xPow.v[io]), proof.ao})
		// h' ** y is equivalent to h, as h' is h ** y_inv.
		verifier.hSum[log2(n)].Sub(verifier.hSum[log2(n)], weight)
		verifier.additional = append(verifier.additional,
			msmTerm{group.Scalar().Mul(weight, xPow.v[is]), proof.s})

		// The z-weighted linear constraints, preserved in terms of g_bold
		// and h_bold for one multiexp. WO is weighted by x^jo, jo == 0.
		hBoldScalars := s.wl.Apply(n, z).MulScalar(xPow.v[jlr]).Add(s.wo.Apply(n, z))
		wrScalars := s.wr.Apply(n, z).Mul(yInv).MulScalar(xPow.v[jlr])
		for i := 0; i < n; i++ {
			verifier.gBold[i].Add(verifier.gBold[i], group.Scalar().Mul(weight, wrScalars.v[i]))
		}

		// The terms for C increment from 0; the terms for WCL/WCR decrement
		// from n'.
		for k := 0; k < cN; k++ {
			i := k + 1
			j := ni - i
			verifier.additional = append(verifier.additional,
				msmTerm{group.Scalar().Mul(weight, xPow.v[i]), s.vectorCommitments.v[k]})
			hBoldScalars = hBoldScalars.Add(s.wcl[k].Apply(n, z).MulScalar(xPow.v[j]))
			wcrScalars := s.wcr[k].Apply(n, z).Mul(yInv).MulScalar(xPow.v[j])
			for idx := 0; idx < n; idx++ {
				verifier.gBold[idx].Add(verifier.gBold[idx], group.Scalar().Mul(weight, wcrScalars.v[idx]))
			}
		}

		// All terms for h_bold so far have actually been for h_bold',
		// h_bold ** y_inv.
		hBoldScalars = hBoldScalars.Mul(yInv)
		for i := 0; i < n; i++ {
			verifier.hBold[i].Add(verifier.hBold[i], group.Scalar().Mul(weight, hBoldScalars.v[i]))
		}

		// Remove u * h from P.
		verifier.h.Sub(verifier.h, group.Scalar().Mul(weight, proof.u))
	}

	// Close with the inner-product argument, inlining Protocol 1: P is
	// amended with the ip_x-scaled t_caret term.
	ipx := s.transcriptTauXUTCaret(t, proof.tauX, proof.u, proof.tCaret)
	ipT := group.Scalar().Mul(weight, ipx)
	ipT.Mul(ipT, proof.tCaret)
	verifier.g.Add(verifier.g, ipT)

	ipStmt, err := ipStatementVerifier(s.generators, yInv, ipx, weight)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIp, err)
	}
	if err := ipStmt.Verify(rng, verifier, t, proof.ip); err != nil {
		return fmt.Errorf("%w: %w", ErrIp, err)
	}
	return nil
}
