package entities

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// NormalizeAnswer removes every whitespace rune from s.
func NormalizeAnswer(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// CheckAnswer reports whether answer equals one of accepted after both sides
// are normalized. Comparison is otherwise exact and case-sensitive.
func CheckAnswer(answer string, accepted []string) bool {
	given := NormalizeAnswer(answer)
	if given == "" {
		return false
	}
	return lo.ContainsBy(accepted, func(a string) bool {
		return NormalizeAnswer(a) == given
	})
}
