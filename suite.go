// Package bulletproofs implements the Generalized Bulletproofs arithmetic
// circuit argument: a non-interactive zero-knowledge argument of knowledge
// for a set of multiplication gates (aL * aR = aO) and linear constraints
//
//	WL * aL + WR * aR + WO * aO + WCL * C.g + WCR * C.h = WV * V + c
//
// where V are Pedersen commitments and C are Pedersen vector commitments
// accepted as first-class circuit inputs.
//
// The library is generic over any prime-order kyber.Group. All Fiat-Shamir
// challenges are derived deterministically from the transcript; blinding
// randomness is supplied by the caller as a cipher.Stream.
package bulletproofs

import (
	"crypto/cipher"

	"github.com/drand/kyber"
	"github.com/drand/kyber/util/random"
	"golang.org/x/crypto/blake2b"
)

// Group has points on it and can create scalars from its scalar field.
type Group = kyber.Group

// Scalar of the field of the curve.
type Scalar = kyber.Scalar

// Point in the group (in our case it's an elliptic curve so it's a point).
type Point = kyber.Point

// xofStream returns a deterministic, inexhaustible cipher.Stream seeded by
// the given byte strings. Each seed is length-prefixed so distinct seed
// lists never alias.
func xofStream(seeds ...[]byte) cipher.Stream {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}
	for _, seed := range seeds {
		var l [4]byte
		putU32(l[:], uint32(len(seed)))
		_, _ = xof.Write(l[:])
		_, _ = xof.Write(seed)
	}
	return random.New(xof)
}

// hashToScalar maps arbitrary bytes to a uniformly distributed field element
// of the group.
func hashToScalar(g Group, seed []byte) Scalar {
	return g.Scalar().Pick(xofStream(seed))
}

func putU32(dst []byte, v uint32) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}

func scalarBytes(s Scalar) []byte {
	b, err := s.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return b
}

func pointBytes(p Point) []byte {
	b, err := p.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return b
}

// msmTerm is one (scalar, point) pair of a multi-exponentiation.
type msmTerm struct {
	scalar Scalar
	point  Point
}

// multiExp computes the weighted sum of the given terms.
func multiExp(g Group, terms []msmTerm) Point {
	acc := g.Point().Null()
	for _, t := range terms {
		acc.Add(acc, g.Point().Mul(t.scalar, t.point))
	}
	return acc
}

// PaddedPowOf2 returns the smallest power of two >= n. Callers use it to
// right-size generators before reducing them to a circuit.
func PaddedPowOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func isPowOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

func log2(n int) int {
	l := 0
	for (1 << l) != n {
		l++
	}
	return l
}
