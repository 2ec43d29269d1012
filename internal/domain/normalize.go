package domain

import (
	"strings"
	"unicode"
)

// CleanText prepares short labels for storage: surrounding whitespace is
// trimmed and inner runs of whitespace collapse to a single space. Case
// is preserved.
func CleanText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// CleanOptionalText is CleanText for nullable fields. Blank input yields nil.
func CleanOptionalText(text *string) *string {
	if text == nil {
		return nil
	}
	cleaned := CleanText(*text)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}

// TrimOptionalText trims surrounding whitespace from a nullable free-text
// field and keeps its inner layout, newlines included. Blank input yields nil.
func TrimOptionalText(text *string) *string {
	if text == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*text)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
