package ui

import (
	"strings"

	"github.com/renato0307/keycap/internal/domain"
	"github.com/renato0307/keycap/internal/theme"
)

// renderBinding draws a binding as highlighted key caps
func renderBinding(binding domain.Binding, placeholder string) string {
	if binding.IsEmpty() {
		return theme.PlaceholderStyle.Render(placeholder)
	}

	tokens := binding.Tokens()
	parts := make([]string, len(tokens))
	for i, token := range tokens {
		parts[i] = theme.KeyCapStyle.Render(string(token))
	}
	return strings.Join(parts, theme.KeySeparatorStyle.Render(" + "))
}
