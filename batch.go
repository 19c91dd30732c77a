package bulletproofs

import (
	"github.com/j-berman/generalized-bulletproofs/logger"
)

// BatchVerifier accumulates the checks of many proofs into running weighted
// sums, so a whole batch is decided by one multi-exponentiation against the
// group identity. Each verified proof contributes its terms scaled by an
// independent random weight, so a single invalid proof fails the batch
// except with negligible probability.
//
// A BatchVerifier is a plain value owned by one accumulating caller; it must
// not be shared across goroutines without external synchronization. For
// parallel verification, accumulate into per-goroutine verifiers and Merge
// them before one finalization.
type BatchVerifier struct {
	group Group

	g Scalar
	h Scalar

	gBold []Scalar
	hBold []Scalar

	// hSum[k] weighs the sum of the first 2^k hBold generators, so circuits
	// can subtract sum(hBold) without materializing a full scalar vector.
	hSum []Scalar

	additional []msmTerm
}

// BatchVerifier returns an empty accumulator sized for this generator set.
func (gens *Generators) BatchVerifier() *BatchVerifier {
	n := gens.Len()
	zeros := func(l int) []Scalar {
		v := make([]Scalar, l)
		for i := range v {
			v[i] = gens.group.Scalar().Zero()
		}
		return v
	}
	return &BatchVerifier{
		group: gens.group,
		g:     gens.group.Scalar().Zero(),
		h:     gens.group.Scalar().Zero(),
		gBold: zeros(n),
		hBold: zeros(n),
		hSum:  zeros(log2(n) + 1),
	}
}

// Merge folds another accumulator into this one by pointwise addition. Both
// must have been created from generator sets of the same size.
func (b *BatchVerifier) Merge(o *BatchVerifier) error {
	if len(b.gBold) != len(o.gBold) || len(b.hSum) != len(o.hSum) {
		return ErrIncorrectAmountOfGenerators
	}
	b.g.Add(b.g, o.g)
	b.h.Add(b.h, o.h)
	for i := range b.gBold {
		b.gBold[i].Add(b.gBold[i], o.gBold[i])
		b.hBold[i].Add(b.hBold[i], o.hBold[i])
	}
	for i := range b.hSum {
		b.hSum[i].Add(b.hSum[i], o.hSum[i])
	}
	b.additional = append(b.additional, o.additional...)
	return nil
}

// VerifyBatch finalizes the accumulator: it sums every weighted term in one
// multi-exponentiation and checks the result is the group identity. No
// secret material remains at this point, so variable-time arithmetic is
// acceptable here.
func (gens *Generators) VerifyBatch(b *BatchVerifier) bool {
	if len(b.gBold) != gens.Len() {
		return false
	}

	zero := gens.group.Scalar().Zero()
	terms := make([]msmTerm, 0, 2+(2*gens.Len())+len(b.hSum)+len(b.additional))
	terms = append(terms, msmTerm{b.g, gens.g}, msmTerm{b.h, gens.h})
	for i := range b.gBold {
		terms = append(terms, msmTerm{b.gBold[i], gens.gBold.At(i)})
		terms = append(terms, msmTerm{b.hBold[i], gens.hBold.At(i)})
	}

	// Expand the hSum side table: one term per distinct circuit size with a
	// non-zero weight, against the prefix sum of hBold.
	prefix := gens.group.Point().Null()
	covered := 0
	for k := range b.hSum {
		for covered < (1 << k) {
			prefix.Add(prefix, gens.hBold.At(covered))
			covered++
		}
		if !b.hSum[k].Equal(zero) {
			terms = append(terms, msmTerm{b.hSum[k], prefix.Clone()})
		}
	}

	terms = append(terms, b.additional...)

	log := logger.Logger()
	log.Debug().
		Int("terms", len(terms)).
		Msg("finalizing batch verification")

	return multiExp(gens.group, terms).Equal(gens.group.Point().Null())
}
