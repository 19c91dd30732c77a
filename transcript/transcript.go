// Package transcript implements a deterministic, order-sensitive protocol
// transcript for Fiat-Shamir challenge derivation, as a BLAKE2b-512 hash
// chain. Every operation is framed with an operation tag and length-prefixed
// label/message bytes, so no two distinct transcripts share a state.
//
// Cloned transcripts reproduce identical subsequent challenges.
package transcript

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Size is the byte length of the transcript state and of every challenge.
const Size = blake2b.Size

const (
	tagDomain byte = iota + 1
	tagMessage
	tagChallenge
)

// Transcript is a running hash over every message of a protocol run.
type Transcript struct {
	state [Size]byte
}

// New returns a transcript seeded with the given domain separation string.
func New(domain string) *Transcript {
	t := new(Transcript)
	t.state = t.absorb(tagDomain, domain, nil)
	return t
}

// Clone returns an independent copy; both transcripts derive identical
// challenges from identical subsequent messages.
func (t *Transcript) Clone() *Transcript {
	c := *t
	return &c
}

// DomainSeparate contextualizes every subsequent message under the label.
func (t *Transcript) DomainSeparate(label string) {
	t.state = t.absorb(tagDomain, label, nil)
}

// AppendMessage binds a labeled message into the transcript.
func (t *Transcript) AppendMessage(label string, msg []byte) {
	t.state = t.absorb(tagMessage, label, msg)
}

// Challenge derives Size bytes from the transcript state and ratchets the
// state forward, so repeated challenges (even under one label) differ.
func (t *Transcript) Challenge(label string) []byte {
	out := t.absorb(tagChallenge, label, nil)
	t.state = t.absorb(tagChallenge, label, out[:])
	return out[:]
}

func (t *Transcript) absorb(tag byte, label string, msg []byte) [Size]byte {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic(err)
	}
	var l [4]byte
	h.Write(t.state[:])
	h.Write([]byte{tag})
	binary.LittleEndian.PutUint32(l[:], uint32(len(label)))
	h.Write(l[:])
	h.Write([]byte(label))
	binary.LittleEndian.PutUint32(l[:], uint32(len(msg)))
	h.Write(l[:])
	h.Write(msg)
	var out [Size]byte
	copy(out[:], h.Sum(nil))
	return out
}
