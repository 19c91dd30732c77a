package bulletproofs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveGeneratorsDeterministic(t *testing.T) {
	g := testGroup
	a, err := DeriveGenerators(g, "test", 8)
	require.NoError(t, err)
	b, err := DeriveGenerators(g, "test", 8)
	require.NoError(t, err)

	require.True(t, a.G().Equal(b.G()))
	require.True(t, a.H().Equal(b.H()))
	for i := 0; i < 8; i++ {
		require.True(t, a.GBold(i).Equal(b.GBold(i)))
		require.True(t, a.HBold(i).Equal(b.HBold(i)))
	}
	require.Equal(t, a.digest, b.digest)

	other, err := DeriveGenerators(g, "other", 8)
	require.NoError(t, err)
	require.False(t, a.G().Equal(other.G()))
	require.NotEqual(t, a.digest, other.digest)
}

func TestGeneratorsDistinct(t *testing.T) {
	gens, err := DeriveGenerators(testGroup, "test", 4)
	require.NoError(t, err)

	seen := map[string]bool{}
	add := func(p Point) {
		k := string(pointBytes(p))
		require.False(t, seen[k], "duplicate generator")
		seen[k] = true
	}
	add(gens.G())
	add(gens.H())
	for i := 0; i < 4; i++ {
		add(gens.GBold(i))
		add(gens.HBold(i))
	}
}

func TestGeneratorsPowerOfTwo(t *testing.T) {
	g := testGroup
	_, err := DeriveGenerators(g, "test", 3)
	require.ErrorIs(t, err, ErrIncorrectAmountOfGenerators)
}

func TestReduce(t *testing.T) {
	g := testGroup
	gens, err := DeriveGenerators(g, "test", 8)
	require.NoError(t, err)

	reduced, err := gens.Reduce(2)
	require.NoError(t, err)
	require.Equal(t, 2, reduced.Len())
	require.True(t, reduced.GBold(0).Equal(gens.GBold(0)))
	require.True(t, reduced.GBold(1).Equal(gens.GBold(1)))
	require.True(t, reduced.HBold(1).Equal(gens.HBold(1)))
	// A reduced set keeps the parent digest; n is transcripted separately.
	require.Equal(t, gens.digest, reduced.digest)

	_, err = gens.Reduce(3)
	require.ErrorIs(t, err, ErrIncorrectAmountOfGenerators)
	_, err = gens.Reduce(16)
	require.ErrorIs(t, err, ErrIncorrectAmountOfGenerators)
}

func TestPaddedPowOf2(t *testing.T) {
	require.Equal(t, 1, PaddedPowOf2(0))
	require.Equal(t, 1, PaddedPowOf2(1))
	require.Equal(t, 4, PaddedPowOf2(3))
	require.Equal(t, 8, PaddedPowOf2(8))
	require.Equal(t, 16, PaddedPowOf2(9))
}
