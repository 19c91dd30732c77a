package bulletproofs

import (
	"testing"

	"github.com/drand/kyber/group/edwards25519"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"go.dedis.ch/kyber/v3/util/random"
)

var testGroup = edwards25519.NewBlakeSHA256Ed25519()

func intVector(g Group, ints ...int64) ScalarVector {
	v := make([]Scalar, len(ints))
	for i, x := range ints {
		v[i] = g.Scalar().SetInt64(x)
	}
	return ScalarVectorFrom(g, v...)
}

func requireVectorEqual(t *testing.T, expected, got ScalarVector) {
	t.Helper()
	require.Equal(t, expected.Len(), got.Len())
	for i := 0; i < expected.Len(); i++ {
		require.True(t, expected.At(i).Equal(got.At(i)), "index %d", i)
	}
}

func TestScalarVectorOps(t *testing.T) {
	g := testGroup
	a := intVector(g, 1, 2, 3)
	b := intVector(g, 4, 5, 6)

	requireVectorEqual(t, intVector(g, 5, 7, 9), a.Add(b))
	requireVectorEqual(t, intVector(g, 3, 3, 3), b.Sub(a))
	requireVectorEqual(t, intVector(g, 4, 10, 18), a.Mul(b))
	requireVectorEqual(t, intVector(g, 2, 4, 6), a.MulScalar(g.Scalar().SetInt64(2)))

	// 4 + 10 + 18
	require.True(t, g.Scalar().SetInt64(32).Equal(a.InnerProduct(b)))
	require.True(t, g.Scalar().SetInt64(6).Equal(a.Sum()))

	// Operands are never mutated.
	requireVectorEqual(t, intVector(g, 1, 2, 3), a)
	requireVectorEqual(t, intVector(g, 4, 5, 6), b)
}

func TestScalarVectorLengthMismatch(t *testing.T) {
	g := testGroup
	require.Panics(t, func() { intVector(g, 1).Add(intVector(g, 1, 2)) })
	require.Panics(t, func() { intVector(g, 1).InnerProduct(intVector(g, 1, 2)) })
}

func TestScalarVectorPadTo(t *testing.T) {
	g := testGroup
	padded := intVector(g, 1, 2).padTo(4)
	requireVectorEqual(t, intVector(g, 1, 2, 0, 0), padded)
}

func TestEmptyInnerProduct(t *testing.T) {
	g := testGroup
	empty := ScalarVectorFrom(g)
	require.True(t, empty.InnerProduct(empty).Equal(g.Scalar().Zero()))
}

func TestPowersRecurrence(t *testing.T) {
	g := testGroup
	rng := random.New()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	properties.Property("powers(x, n)[i+1] == powers(x, n)[i] * x", prop.ForAll(
		func(n int) bool {
			x := g.Scalar().Pick(rng)
			p := Powers(g, x, n)
			if !p.At(0).Equal(g.Scalar().One()) {
				return false
			}
			for i := 0; i+1 < n; i++ {
				if !p.At(i + 1).Equal(g.Scalar().Mul(p.At(i), x)) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 64),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestZeroize(t *testing.T) {
	g := testGroup
	v := intVector(g, 7, 8)
	v.Zeroize()
	requireVectorEqual(t, intVector(g, 0, 0), v)
}
