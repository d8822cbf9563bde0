// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package opcode

import (
	"unicode"
	"unicode/utf8"
)

// TokenKind is the character class of a cell token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_UPPER = TokenKind(0) // upper
	TOKEN_LOWER = TokenKind(1) // lower
	TOKEN_DIGIT = TokenKind(2) // digit
	TOKEN_OTHER = TokenKind(3) // other
)

// Token is a maximal run of one character class in a cell.
// TOKEN_OTHER tokens are always a single rune.
type Token struct {
	Kind TokenKind
	Text string
}

// classify returns the token kind of a rune.
func classify(r rune) TokenKind {
	switch {
	case r >= '0' && r <= '9':
		return TOKEN_DIGIT
	case unicode.IsUpper(r):
		return TOKEN_UPPER
	case unicode.IsLower(r):
		return TOKEN_LOWER
	default:
		return TOKEN_OTHER
	}
}

// Tokenize splits cell text into runs of uppercase letters, lowercase
// letters, and decimal digits. Any other rune is a token on its own.
func Tokenize(text string) (tokens []Token) {
	start := 0
	for start < len(text) {
		r, size := utf8.DecodeRuneInString(text[start:])
		kind := classify(r)
		end := start + size
		if kind != TOKEN_OTHER {
			for end < len(text) {
				r, size = utf8.DecodeRuneInString(text[end:])
				if classify(r) != kind {
					break
				}
				end += size
			}
		}
		tokens = append(tokens, Token{Kind: kind, Text: text[start:end]})
		start = end
	}

	return
}
