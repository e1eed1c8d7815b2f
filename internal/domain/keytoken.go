package domain

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// KeyToken is the canonical identifier of one physical key or modifier
type KeyToken string

// Modifier tokens
const (
	TokenWin   KeyToken = "win"
	TokenCtrl  KeyToken = "ctrl"
	TokenAlt   KeyToken = "alt"
	TokenShift KeyToken = "shift"
)

// Reserved control tokens. They drive the capture session and are never
// part of a binding.
const (
	TokenEnter  KeyToken = "enter"
	TokenEscape KeyToken = "escape"
)

// TokenPlus stands in for the "+" key, since "+" separates tokens in a binding
const TokenPlus KeyToken = "plus"

// modifierOrder is the fixed position of each modifier inside a binding
var modifierOrder = map[KeyToken]int{
	TokenWin:   0,
	TokenCtrl:  1,
	TokenAlt:   2,
	TokenShift: 3,
}

// namedKeys are the special keys with a multi-letter canonical name
var namedKeys = map[KeyToken]bool{
	"space":      true,
	TokenEnter:   true,
	TokenEscape:  true,
	"tab":        true,
	"backspace":  true,
	"delete":     true,
	"insert":     true,
	"home":       true,
	"end":        true,
	"pageup":     true,
	"pagedown":   true,
	"arrowup":    true,
	"arrowdown":  true,
	"arrowleft":  true,
	"arrowright": true,
	TokenPlus:    true,
}

// rawKeyTable maps raw key identifiers (as reported by keyboard event
// sources) to their canonical token
var rawKeyTable = map[string]KeyToken{
	"Meta":       TokenWin,
	"OS":         TokenWin,
	"Super":      TokenWin,
	"Command":    TokenWin,
	"Control":    TokenCtrl,
	"Alt":        TokenAlt,
	"Shift":      TokenShift,
	" ":          "space",
	"+":          TokenPlus,
	"Enter":      TokenEnter,
	"Escape":     TokenEscape,
	"Tab":        "tab",
	"Backspace":  "backspace",
	"Delete":     "delete",
	"Insert":     "insert",
	"Home":       "home",
	"End":        "end",
	"PageUp":     "pageup",
	"PageDown":   "pagedown",
	"ArrowUp":    "arrowup",
	"ArrowDown":  "arrowdown",
	"ArrowLeft":  "arrowleft",
	"ArrowRight": "arrowright",
}

// Normalize maps a raw key identifier to its canonical KeyToken.
// It never fails: unknown identifiers are lowercased and passed through.
func Normalize(rawKey string) KeyToken {
	if token, ok := rawKeyTable[rawKey]; ok {
		return token
	}

	if utf8.RuneCountInString(rawKey) == 1 {
		return KeyToken(strings.ToLower(rawKey))
	}

	if isFunctionKey(strings.ToLower(rawKey)) {
		return KeyToken(strings.ToLower(rawKey))
	}

	if digit, ok := strings.CutPrefix(rawKey, "Digit"); ok && isSingleDigit(digit) {
		return KeyToken(digit)
	}

	if letter, ok := strings.CutPrefix(rawKey, "Key"); ok && utf8.RuneCountInString(letter) == 1 {
		return KeyToken(strings.ToLower(letter))
	}

	return KeyToken(strings.ToLower(rawKey))
}

// IsModifier reports whether the token is one of win, ctrl, alt or shift
func (t KeyToken) IsModifier() bool {
	_, ok := modifierOrder[t]
	return ok
}

// IsReserved reports whether the token is a capture control (enter or escape)
func (t KeyToken) IsReserved() bool {
	return t == TokenEnter || t == TokenEscape
}

// IsKnown reports whether the token belongs to one of the canonical token kinds:
// modifier, single character, function key, digit, named special key, or a
// lowercase identifier passed through by Normalize (e.g. "capslock")
func (t KeyToken) IsKnown() bool {
	s := string(t)
	switch {
	case t.IsModifier():
		return true
	case namedKeys[t]:
		return true
	case isFunctionKey(s):
		return true
	case utf8.RuneCountInString(s) == 1:
		return s != "+" && strings.ToLower(s) == s && strings.TrimSpace(s) != ""
	case looksLikeFunctionKey(s):
		return false
	}
	return isIdentifier(s)
}

// isIdentifier reports whether s is a lowercase ASCII letter followed by
// lowercase letters or digits
func isIdentifier(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// looksLikeFunctionKey reports whether s has the f<digits> shape, so that out
// of range names such as f30 are not taken for identifiers
func looksLikeFunctionKey(s string) bool {
	number, ok := strings.CutPrefix(s, "f")
	if !ok || number == "" {
		return false
	}
	_, err := strconv.Atoi(number)
	return err == nil
}

// isFunctionKey reports whether s is f1..f24 (lowercase)
func isFunctionKey(s string) bool {
	number, ok := strings.CutPrefix(s, "f")
	if !ok || number == "" || len(number) > 2 {
		return false
	}
	n, err := strconv.Atoi(number)
	if err != nil || number[0] == '0' {
		return false
	}
	return n >= 1 && n <= 24
}

func isSingleDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}
