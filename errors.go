package bulletproofs

import "errors"

// Every error below reflects a structural mismatch between data, never a
// transient condition; there is no retry policy. A derived zero Fiat-Shamir
// challenge is not an error value: it is a cryptographic invariant violation
// of negligible probability for honest transcripts and panics instead.
var (
	// ErrDifferingLrLengths is returned when the two halves of a witness
	// (aL/aR, or the inner-product a/b) differ in length.
	ErrDifferingLrLengths = errors.New("bulletproofs: differing left/right witness lengths")
	// ErrInconsistentAmountOfConstraints is returned when the weight
	// matrices and constant vector of a statement disagree on the row count.
	ErrInconsistentAmountOfConstraints = errors.New("bulletproofs: inconsistent amount of constraints")
	// ErrConstrainedNonExistentTerm is returned when a weight matrix
	// references a circuit wire beyond the generator count.
	ErrConstrainedNonExistentTerm = errors.New("bulletproofs: constrained non-existent term")
	// ErrConstrainedNonExistentCommitment is returned when a statement
	// constrains more commitments than it declares.
	ErrConstrainedNonExistentCommitment = errors.New("bulletproofs: constrained non-existent commitment")
	// ErrIncorrectAmountOfGenerators is returned when generators cannot
	// cover the requested circuit size or are not a power of two.
	ErrIncorrectAmountOfGenerators = errors.New("bulletproofs: incorrect amount of generators")
	// ErrInconsistentWitness is returned when the private assignment does
	// not satisfy the public relation, before any proof material is made.
	ErrInconsistentWitness = errors.New("bulletproofs: witness inconsistent with statement")
	// ErrIncorrectTBeforeNiLength is returned when a proof carries the wrong
	// amount of T commitments below the reserved coefficient.
	ErrIncorrectTBeforeNiLength = errors.New("bulletproofs: incorrect T_before_ni length")
	// ErrIncorrectTAfterNiLength is returned when a proof carries the wrong
	// amount of T commitments above the reserved coefficient.
	ErrIncorrectTAfterNiLength = errors.New("bulletproofs: incorrect T_after_ni length")
	// ErrIp wraps a failure of the embedded inner-product sub-argument.
	ErrIp = errors.New("bulletproofs: inner product argument failed")
)
