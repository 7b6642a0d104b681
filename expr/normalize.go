package expr

import (
	"strings"
	"unicode"
)

// unicodeAliases maps the unicode symbols users paste or type via an
// on-screen keyboard to the ASCII names the lexer understands.
// Applied before any other normalization rule.
var unicodeAliases = strings.NewReplacer(
	"θ", "theta",
	"π", "pi",
)

// Normalize rewrites raw expression text into the canonical ASCII form
// the parser expects. It is pure and total — it never fails, whatever
// the input.
//
// Rules, in order:
//  1. Unicode aliases: θ → theta, π → pi.
//  2. Implicit multiplication: insert "*" between a digit and a letter
//     ("2x" → "2*x"), between ")" and "(", between ")" and a digit or
//     letter, and between a digit and "(".
//
// The letter rule is purely lexical: "3sin(x)" becomes "3*sin(x)" and it
// is the parser's builtin table that later recognizes "sin" as a
// function rather than a variable. Complexity: O(len(raw)).
func Normalize(raw string) string {
	s := unicodeAliases.Replace(raw)

	var b strings.Builder
	b.Grow(len(s) + 8)
	var prev rune
	for _, r := range s {
		if impliedProduct(prev, r) {
			b.WriteByte('*')
		}
		b.WriteRune(r)
		prev = r
	}

	return b.String()
}

// impliedProduct reports whether an explicit "*" belongs between two
// adjacent runes.
func impliedProduct(prev, cur rune) bool {
	switch {
	case unicode.IsDigit(prev) && unicode.IsLetter(cur):
		return true
	case prev == ')' && cur == '(':
		return true
	case prev == ')' && (unicode.IsDigit(cur) || unicode.IsLetter(cur)):
		return true
	case unicode.IsDigit(prev) && cur == '(':
		return true
	}

	return false
}
