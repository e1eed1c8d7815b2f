package domain

// Assembler tracks the tokens held during a capture and renders them as a
// canonical Binding. The output depends only on the held set, never on the
// order in which keys went down.
type Assembler struct {
	held map[KeyToken]struct{}
}

// NewAssembler creates an Assembler with an empty held set
func NewAssembler() *Assembler {
	return &Assembler{held: make(map[KeyToken]struct{})}
}

// Press adds a token to the held set and returns the recomputed binding.
// Repeated presses of a held key (auto-repeat) leave the set unchanged.
// Empty and reserved tokens are ignored.
func (a *Assembler) Press(token KeyToken) Binding {
	if token != "" && !token.IsReserved() {
		a.held[token] = struct{}{}
	}
	return a.Canonicalize()
}

// Canonicalize renders the held set as a Binding
func (a *Assembler) Canonicalize() Binding {
	return Canonicalize(a.Tokens())
}

// Clear empties the held set
func (a *Assembler) Clear() {
	clear(a.held)
}

// Len returns the number of held tokens
func (a *Assembler) Len() int {
	return len(a.held)
}

// Tokens returns the held tokens in no particular order
func (a *Assembler) Tokens() []KeyToken {
	tokens := make([]KeyToken, 0, len(a.held))
	for t := range a.held {
		tokens = append(tokens, t)
	}
	return tokens
}
