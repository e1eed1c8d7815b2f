package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler_PressReturnsCanonicalBinding(t *testing.T) {
	a := NewAssembler()

	assert.Equal(t, Binding("shift"), a.Press(Normalize("Shift")))
	assert.Equal(t, Binding("ctrl+shift"), a.Press(Normalize("Control")))
	assert.Equal(t, Binding("ctrl+shift+a"), a.Press(Normalize("A")))
	assert.Equal(t, 3, a.Len())
}

func TestAssembler_PressIsIdempotent(t *testing.T) {
	once := NewAssembler()
	once.Press("ctrl")
	once.Press("x")

	repeated := NewAssembler()
	for range 5 {
		repeated.Press("ctrl")
	}
	repeated.Press("x")
	repeated.Press("x")

	assert.Equal(t, once.Canonicalize(), repeated.Canonicalize())
	assert.Equal(t, once.Len(), repeated.Len())
}

func TestAssembler_IgnoresReservedAndEmpty(t *testing.T) {
	a := NewAssembler()

	a.Press(TokenAlt)
	a.Press(TokenEnter)
	a.Press(TokenEscape)
	a.Press("")

	assert.Equal(t, Binding("alt"), a.Canonicalize())
	assert.ElementsMatch(t, []KeyToken{TokenAlt}, a.Tokens())
}

func TestAssembler_InsertionOrderDoesNotMatter(t *testing.T) {
	first := NewAssembler()
	for _, k := range []KeyToken{"k", "shift", "ctrl"} {
		first.Press(k)
	}

	second := NewAssembler()
	for _, k := range []KeyToken{"ctrl", "k", "shift"} {
		second.Press(k)
	}

	assert.Equal(t, Binding("ctrl+shift+k"), first.Canonicalize())
	assert.Equal(t, first.Canonicalize(), second.Canonicalize())
}

func TestAssembler_Clear(t *testing.T) {
	a := NewAssembler()
	a.Press("ctrl")
	a.Press("c")

	a.Clear()

	assert.Equal(t, 0, a.Len())
	assert.True(t, a.Canonicalize().IsEmpty())
}
