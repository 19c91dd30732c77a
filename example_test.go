package bulletproofs

import (
	"fmt"

	"github.com/drand/kyber/group/edwards25519"
	"go.dedis.ch/kyber/v3/util/random"

	"github.com/j-berman/generalized-bulletproofs/transcript"
)

// Proves knowledge of x and y such that x^2 + y^2 = 13, without revealing
// either. The two squarings are multiplication gates (aL = aR = [x, y]); the
// linear constraints force each gate's inputs equal and the gate outputs to
// sum to the public constant.
func Example() {
	g := edwards25519.NewBlakeSHA256Ed25519()
	rng := random.New()

	gens, err := DeriveGenerators(g, "example", 2)
	if err != nil {
		panic(err)
	}

	one := g.Scalar().One()
	minusOne := g.Scalar().Neg(one)

	wl := NewWeightMatrix(g)
	wr := NewWeightMatrix(g)
	wo := NewWeightMatrix(g)
	wv := NewWeightMatrix(g)

	// aL[0] = aR[0], aL[1] = aR[1]
	wl.PushRow(Term{0, one.Clone()})
	wr.PushRow(Term{0, minusOne.Clone()})
	wo.PushRow()
	wv.PushRow()
	wl.PushRow(Term{1, one.Clone()})
	wr.PushRow(Term{1, minusOne.Clone()})
	wo.PushRow()
	wv.PushRow()

	// aO[0] + aO[1] = 13
	wl.PushRow()
	wr.PushRow()
	wo.PushRow(Term{0, one.Clone()}, Term{1, one.Clone()})
	wv.PushRow()

	constants := intVector(g, 0, 0, 13)

	statement, err := NewArithmeticCircuitStatement(
		gens, wl, wr, wo, nil, nil, wv, constants,
		PointVectorFrom(g), PointVectorFrom(g))
	if err != nil {
		panic(err)
	}

	// x = 2, y = 3
	witness, err := NewArithmeticCircuitWitness(intVector(g, 2, 3), intVector(g, 2, 3), nil, nil)
	if err != nil {
		panic(err)
	}

	proof, err := statement.Prove(rng, transcript.New("example"), witness)
	if err != nil {
		panic(err)
	}

	verifier := gens.BatchVerifier()
	if err := statement.Verify(rng, verifier, transcript.New("example"), proof); err != nil {
		panic(err)
	}
	fmt.Println("verified:", gens.VerifyBatch(verifier))
	// Output: verified: true
}
