// SPDX-License-Identifier: MIT
package lexer

import (
	"unicode"
	"unicode/utf8"

	"gitlab.com/fisherprime/tazza/types"
)

const (
	typeDefiner = ':'
	quote       = '"'
	escape      = '\\'
	slash       = '/'
)

var (
	keywords  = types.NewSet("for", "if", "else", "elseif", "while", "break", "continue", "struct")
	dataTypes = types.NewSet("int", "float", "string", "array")

	// Lookup tables for ASCII runes; avoids chained comparisons in the scan loop.
	whitespace = [utf8.RuneSelf]bool{
		' ':  true,
		'\t': true,
		'\r': true,
		'\v': true,
		'\f': true,
	}

	symbols = [utf8.RuneSelf]Kind{
		'(': RoundParen,
		')': RoundParen,
		'[': SquareParen,
		']': SquareParen,
		'{': CurlyParen,
		'}': CurlyParen,
		'+': Operator,
		'-': Operator,
		'*': Operator,
		'/': Operator,
		'=': Equals,
		':': TypeDefiner,
		';': InstructionSeparator,
	}
)

// Keywords lists the reserved words, sorted.
func Keywords() []string { return keywords.Sorted() }

// DataTypes lists the primitive type names, sorted.
func DataTypes() []string { return dataTypes.Sorted() }

// ClassifyWord assigns a Kind to a letter lexeme.
//
// rest is the remainder of the lexeme's line, starting right after the lexeme. A word that is not
// reserved is a declaration site (Identifier) when the next non-whitespace rune on the line is
// the type definer, otherwise a usage site (IdentifierCall).
func ClassifyWord(word string, rest []rune) Kind {
	switch {
	case keywords.Has(word):
		return Keyword
	case dataTypes.Has(word):
		return DataType
	case definesType(rest):
		return Identifier
	default:
		return IdentifierCall
	}
}

// ClassifySymbol assigns a Kind to a single rune symbol, Unknown when unmapped.
func ClassifySymbol(r rune) Kind {
	if r < 0 || r >= utf8.RuneSelf {
		return Unknown
	}

	return symbols[r]
}

// definesType performs the type definer lookahead, without crossing the line boundary.
func definesType(rest []rune) bool {
	for _, r := range rest {
		if isWhitespace(r) {
			continue
		}

		return r == typeDefiner
	}

	return false
}

// isWhitespace return true for whitespace, line terminators are consumed by the line split.
func isWhitespace(r rune) bool {
	if r >= 0 && r < utf8.RuneSelf {
		return whitespace[r]
	}

	return unicode.IsSpace(r)
}

// isLetter return true for runes that may form a word.
func isLetter(r rune) bool { return r == '_' || unicode.IsLetter(r) }

// isDigit return true for decimal digits.
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
