package transcript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministic(t *testing.T) {
	run := func() []byte {
		tr := New("test")
		tr.DomainSeparate("proto")
		tr.AppendMessage("msg", []byte{1, 2, 3})
		return tr.Challenge("c")
	}
	require.Equal(t, run(), run())
}

func TestOrderSensitive(t *testing.T) {
	a := New("test")
	a.AppendMessage("x", []byte{1})
	a.AppendMessage("y", []byte{2})

	b := New("test")
	b.AppendMessage("y", []byte{2})
	b.AppendMessage("x", []byte{1})

	require.NotEqual(t, a.Challenge("c"), b.Challenge("c"))
}

func TestLabelSensitive(t *testing.T) {
	a := New("test")
	a.AppendMessage("x", []byte{1})
	b := New("test")
	b.AppendMessage("y", []byte{1})
	require.NotEqual(t, a.Challenge("c"), b.Challenge("c"))

	c := New("test")
	d := New("other")
	require.NotEqual(t, c.Challenge("c"), d.Challenge("c"))
}

// Framing must distinguish where the label ends and the message begins.
func TestFramingUnambiguous(t *testing.T) {
	a := New("test")
	a.AppendMessage("ab", []byte("c"))
	b := New("test")
	b.AppendMessage("a", []byte("bc"))
	require.NotEqual(t, a.Challenge("c"), b.Challenge("c"))
}

func TestChallengeRatchets(t *testing.T) {
	tr := New("test")
	first := tr.Challenge("c")
	second := tr.Challenge("c")
	require.NotEqual(t, first, second)
	require.Len(t, first, Size)
}

func TestCloneReproduces(t *testing.T) {
	tr := New("test")
	tr.AppendMessage("x", []byte{1})

	clone := tr.Clone()
	clone.AppendMessage("y", []byte{2})
	tr.AppendMessage("y", []byte{2})

	require.Equal(t, tr.Challenge("c"), clone.Challenge("c"))
}
