package domain

import (
	"fmt"
	"sort"
	"strings"
)

// BindingSeparator joins tokens inside a binding string
const BindingSeparator = "+"

// Binding is a canonical shortcut: tokens joined by "+", modifiers first in
// win, ctrl, alt, shift order, then the remaining keys in lexicographic order.
// Two bindings are equal iff their strings are equal.
type Binding string

// String returns the binding text
func (b Binding) String() string {
	return string(b)
}

// IsEmpty reports whether the binding has no tokens
func (b Binding) IsEmpty() bool {
	return b == ""
}

// Tokens splits the binding into its tokens
func (b Binding) Tokens() []KeyToken {
	if b.IsEmpty() {
		return nil
	}
	parts := strings.Split(string(b), BindingSeparator)
	tokens := make([]KeyToken, 0, len(parts))
	for _, p := range parts {
		tokens = append(tokens, KeyToken(p))
	}
	return tokens
}

// Canonicalize orders the given tokens and joins them into a Binding.
// Duplicates, empty tokens and reserved tokens are dropped.
func Canonicalize(tokens []KeyToken) Binding {
	seen := make(map[KeyToken]bool, len(tokens))
	sorted := make([]KeyToken, 0, len(tokens))
	for _, t := range tokens {
		if t == "" || t.IsReserved() || seen[t] {
			continue
		}
		seen[t] = true
		sorted = append(sorted, t)
	}

	sort.Slice(sorted, func(i, j int) bool {
		return tokenLess(sorted[i], sorted[j])
	})

	parts := make([]string, len(sorted))
	for i, t := range sorted {
		parts[i] = string(t)
	}
	return Binding(strings.Join(parts, BindingSeparator))
}

// tokenLess implements the binding ordering: modifiers by priority, then
// modifiers before keys, then keys lexicographically
func tokenLess(a, b KeyToken) bool {
	aIdx, aMod := modifierOrder[a]
	bIdx, bMod := modifierOrder[b]
	switch {
	case aMod && bMod:
		return aIdx < bIdx
	case aMod:
		return true
	case bMod:
		return false
	default:
		return a < b
	}
}

// bindingAliases maps the spellings accepted in stored or typed bindings to
// canonical tokens
var bindingAliases = map[string]KeyToken{
	"control": TokenCtrl,
	"meta":    TokenWin,
	"super":   TokenWin,
	"cmd":     TokenWin,
	"command": TokenWin,
	"os":      TokenWin,
	"option":  TokenAlt,
	"opt":     TokenAlt,
	"menu":    TokenAlt,
	"esc":     TokenEscape,
	"return":  TokenEnter,
	"del":     "delete",
	"ins":     "insert",
	"up":      "arrowup",
	"down":    "arrowdown",
	"left":    "arrowleft",
	"right":   "arrowright",
	"pgup":    "pageup",
	"pgdown":  "pagedown",
}

// ParseBinding validates a binding string typed by a user or read from storage
// and returns its canonical form. Aliases such as "control" or "esc" are
// accepted. It fails with ErrInvalidBinding when the text has no tokens, has
// an empty token (a doubled or trailing "+"; the + key is written "plus"),
// contains an unknown token, or contains enter/escape.
func ParseBinding(s string) (Binding, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: %q has no keys", ErrInvalidBinding, s)
	}

	var tokens []KeyToken
	for _, part := range strings.Split(s, BindingSeparator) {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			return "", fmt.Errorf("%w: empty key in %q (write %q for the + key)", ErrInvalidBinding, s, TokenPlus)
		}

		token := KeyToken(name)
		if alias, ok := bindingAliases[name]; ok {
			token = alias
		}

		if token.IsReserved() {
			return "", fmt.Errorf("%w: %q is reserved", ErrInvalidBinding, token)
		}
		if !token.IsKnown() {
			return "", fmt.Errorf("%w: unknown key %q", ErrInvalidBinding, part)
		}
		tokens = append(tokens, token)
	}

	binding := Canonicalize(tokens)
	if binding.IsEmpty() {
		return "", fmt.Errorf("%w: %q has no keys", ErrInvalidBinding, s)
	}
	return binding, nil
}
