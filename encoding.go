package bulletproofs

import (
	"bytes"
	"io"
)

// The proof wire layout is order-significant and fixed-width per field:
// compressed encodings of AI, AO, S; the T commitments below then above the
// reserved coefficient; tau_x, u, t_caret as canonical field elements; then
// the inner-product proof as its L points, R points, and closing scalars.
// n' and the round count are recomputed from the statement, so neither is
// serialized.

// MarshalBinary serializes the proof in the fixed wire layout.
func (p *ArithmeticCircuitProof) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	write := func(m interface {
		MarshalTo(io.Writer) (int, error)
	}) error {
		_, err := m.MarshalTo(&buf)
		return err
	}

	for _, pt := range []Point{p.ai, p.ao, p.s} {
		if err := write(pt); err != nil {
			return nil, err
		}
	}
	for i := 0; i < p.tBeforeNi.Len(); i++ {
		if err := write(p.tBeforeNi.At(i)); err != nil {
			return nil, err
		}
	}
	for i := 0; i < p.tAfterNi.Len(); i++ {
		if err := write(p.tAfterNi.At(i)); err != nil {
			return nil, err
		}
	}
	for _, sc := range []Scalar{p.tauX, p.u, p.tCaret} {
		if err := write(sc); err != nil {
			return nil, err
		}
	}
	for _, pt := range p.ip.l {
		if err := write(pt); err != nil {
			return nil, err
		}
	}
	for _, pt := range p.ip.r {
		if err := write(pt); err != nil {
			return nil, err
		}
	}
	if err := write(p.ip.a); err != nil {
		return nil, err
	}
	if err := write(p.ip.b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadProof deserializes a proof for this statement. The expected T lengths
// and inner-product round count are derived from the statement itself.
func (s *ArithmeticCircuitStatement) ReadProof(r io.Reader) (*ArithmeticCircuitProof, error) {
	group := s.generators.group

	readPoint := func() (Point, error) {
		p := group.Point()
		_, err := p.UnmarshalFrom(r)
		return p, err
	}
	readScalar := func() (Scalar, error) {
		sc := group.Scalar()
		_, err := sc.UnmarshalFrom(r)
		return sc, err
	}
	readPoints := func(l int) (PointVector, error) {
		v := make([]Point, l)
		for i := range v {
			var err error
			if v[i], err = readPoint(); err != nil {
				return PointVector{}, err
			}
		}
		return PointVectorFrom(group, v...), nil
	}

	ni, _, _, _, _, _, _ := polyIndexes(s.cCount())
	tPolyLen := (2 * (1 + ni + 1)) - 1
	rounds := log2(s.n())

	proof := new(ArithmeticCircuitProof)
	var err error
	if proof.ai, err = readPoint(); err != nil {
		return nil, err
	}
	if proof.ao, err = readPoint(); err != nil {
		return nil, err
	}
	if proof.s, err = readPoint(); err != nil {
		return nil, err
	}
	if proof.tBeforeNi, err = readPoints(ni); err != nil {
		return nil, err
	}
	if proof.tAfterNi, err = readPoints(tPolyLen - ni - 1); err != nil {
		return nil, err
	}
	if proof.tauX, err = readScalar(); err != nil {
		return nil, err
	}
	if proof.u, err = readScalar(); err != nil {
		return nil, err
	}
	if proof.tCaret, err = readScalar(); err != nil {
		return nil, err
	}

	ip := new(IpProof)
	ip.l = make([]Point, rounds)
	ip.r = make([]Point, rounds)
	for i := range ip.l {
		if ip.l[i], err = readPoint(); err != nil {
			return nil, err
		}
	}
	for i := range ip.r {
		if ip.r[i], err = readPoint(); err != nil {
			return nil, err
		}
	}
	if ip.a, err = readScalar(); err != nil {
		return nil, err
	}
	if ip.b, err = readScalar(); err != nil {
		return nil, err
	}
	proof.ip = ip

	return proof, nil
}
