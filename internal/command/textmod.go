package command

import (
	"strings"
	"unicode"
)

// mockText alternates letter case across the input, leaving other runes alone.
func mockText(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	upper := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			sb.WriteRune(r)
			continue
		}
		if upper {
			sb.WriteRune(unicode.ToUpper(r))
		} else {
			sb.WriteRune(unicode.ToLower(r))
		}
		upper = !upper
	}
	return sb.String()
}

// inverseText flips the case of every letter.
func inverseText(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			sb.WriteRune(unicode.ToLower(r))
		case unicode.IsLower(r):
			sb.WriteRune(unicode.ToUpper(r))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Transform applies the named text transformation. Used by both the slash
// commands and the prefix-based text command path.
func Transform(name, text string) (string, bool) {
	switch name {
	case "mock":
		return mockText(text), true
	case "inverse":
		return inverseText(text), true
	case "spacing":
		return spacingText(text), true
	}
	return "", false
}

// spacingText puts a space between every rune of the input.
func spacingText(s string) string {
	runes := []rune(s)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
