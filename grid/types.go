package grid

import (
	"fmt"
	"strings"
)

// Code is a single symbol of the puzzle alphabet, e.g. "1C" or "BD".
// Codes are compared by equality only; their order carries no meaning.
type Code string

// ParseCode normalizes raw text into a Code: surrounding blanks are
// trimmed and letters are upper-cased, so "bd " and "BD" are the same code.
// Use it for hex-style alphabets; TrimCodes keeps case for arbitrary ones.
func ParseCode(s string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(s)))
}

// ParseCodes normalizes every element of raw with ParseCode.
func ParseCodes(raw []string) []Code {
	out := make([]Code, len(raw))
	for i, s := range raw {
		out[i] = ParseCode(s)
	}

	return out
}

// TrimCodes converts raw to codes, trimming blanks but keeping case.
func TrimCodes(raw []string) []Code {
	out := make([]Code, len(raw))
	for i, s := range raw {
		out[i] = Code(strings.TrimSpace(s))
	}

	return out
}

// Alphabet is a fixed set of admissible codes.
// The search itself is alphabet-agnostic; Alphabet is used by input validation.
type Alphabet []Code

// DefaultAlphabet holds the six codes of the reference puzzle domain.
var DefaultAlphabet = Alphabet{"55", "1C", "BD", "E9", "7A", "FF"}

// Contains reports whether c belongs to the alphabet.
// Complexity: O(len(a)).
func (a Alphabet) Contains(c Code) bool {
	for _, x := range a {
		if x == c {
			return true
		}
	}

	return false
}

// Strings returns the alphabet as plain strings, in declaration order.
func (a Alphabet) Strings() []string {
	out := make([]string, len(a))
	for i, c := range a {
		out[i] = string(c)
	}

	return out
}

// Position addresses a matrix cell by zero-based row and column.
type Position struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// JoinCodes renders codes separated by single spaces.
func JoinCodes(codes []Code) string {
	var b strings.Builder
	for i, c := range codes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(c))
	}

	return b.String()
}
