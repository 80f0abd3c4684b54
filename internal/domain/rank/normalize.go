package rank

import (
	"strings"
	"unicode"
)

// Normalize prepares text for lexical matching: lowercases it, replaces
// every rune that is neither alphanumeric nor whitespace with a space, and
// collapses whitespace runs. Empty input yields an empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
