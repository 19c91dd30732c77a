package bulletproofs

import (
	"crypto/cipher"

	"golang.org/x/crypto/blake2b"
)

// Generators is the set of independent group elements proofs are written
// against: one blinding generator h, one scalar generator g, and two
// parallel vectors of per-slot generators. The vector length must be a power
// of two; a set can be reduced to any smaller power of two to right-size a
// circuit.
//
// The canonical encoding of the set is hashed once at construction and bound
// into every proof transcript, so no statement can silently swap generators.
type Generators struct {
	group Group

	g Point
	h Point

	gBold PointVector
	hBold PointVector

	digest []byte
}

// NewGenerators builds a generator set from caller-supplied points. The
// caller is responsible for the points being independent (no known discrete
// log relations).
func NewGenerators(group Group, g, h Point, gBold, hBold PointVector) (*Generators, error) {
	if gBold.Len() != hBold.Len() || !isPowOf2(gBold.Len()) {
		return nil, ErrIncorrectAmountOfGenerators
	}

	hash, err := blake2b.New256(nil)
	if err != nil {
		return nil, err
	}
	hash.Write([]byte("generators"))
	hash.Write(pointBytes(g))
	hash.Write(pointBytes(h))
	for i := 0; i < gBold.Len(); i++ {
		hash.Write(pointBytes(gBold.At(i)))
	}
	for i := 0; i < hBold.Len(); i++ {
		hash.Write(pointBytes(hBold.At(i)))
	}

	return &Generators{
		group:  group,
		g:      g,
		h:      h,
		gBold:  gBold,
		hBold:  hBold,
		digest: hash.Sum(nil),
	}, nil
}

// DeriveGenerators deterministically derives a generator set of size n from
// a seed string, via a hash oracle with per-position labels.
func DeriveGenerators(group Group, seed string, n int) (*Generators, error) {
	pick := func(label string, i int) Point {
		return group.Point().Pick(generatorOracle(group, seed, label, i))
	}

	gBold := make([]Point, n)
	hBold := make([]Point, n)
	for i := 0; i < n; i++ {
		gBold[i] = pick("g_bold", i)
		hBold[i] = pick("h_bold", i)
	}
	return NewGenerators(
		group,
		pick("g", 0),
		pick("h", 0),
		PointVectorFrom(group, gBold...),
		PointVectorFrom(group, hBold...),
	)
}

// generatorOracle returns a deterministic stream for deriving the generator
// at the given position.
func generatorOracle(group Group, seed, label string, i int) cipher.Stream {
	var pos [4]byte
	putU32(pos[:], uint32(i))
	return xofStream(
		[]byte("bulletproofs generators"),
		[]byte(group.String()),
		[]byte(seed),
		[]byte(label),
		pos[:],
	)
}

// Len returns the amount of per-slot generators, the maximum circuit size.
func (gens *Generators) Len() int { return gens.gBold.Len() }

// G returns the scalar-commitment generator.
func (gens *Generators) G() Point { return gens.g }

// H returns the blinding generator.
func (gens *Generators) H() Point { return gens.h }

// GBold returns the i-th left per-slot generator.
func (gens *Generators) GBold(i int) Point { return gens.gBold.At(i) }

// HBold returns the i-th right per-slot generator.
func (gens *Generators) HBold(i int) Point { return gens.hBold.At(i) }

// Reduce right-sizes the set to a circuit of size n (a power of two) by
// taking a prefix. The reduced set keeps the parent's transcript digest; the
// circuit size is transcripted separately by the statement.
func (gens *Generators) Reduce(n int) (*Generators, error) {
	if !isPowOf2(n) || n > gens.Len() {
		return nil, ErrIncorrectAmountOfGenerators
	}
	return &Generators{
		group:  gens.group,
		g:      gens.g,
		h:      gens.h,
		gBold:  PointVector{g: gens.group, v: gens.gBold.v[:n]},
		hBold:  PointVector{g: gens.group, v: gens.hBold.v[:n]},
		digest: gens.digest,
	}, nil
}
