// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// Kind identifies the semantic category of a Token.
	Kind int

	// Token is a classified lexeme & its starting position.
	//
	// Row & Col are zero-based; diagnostics report them 1-based.
	Token struct {
		Kind Kind
		Text string // The lexeme, never empty.
		Row  int    // Line index of the lexeme's first rune.
		Col  int    // Column (in runes) of the lexeme's first rune.
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	Unknown              Kind = iota // Unmapped symbol, only emitted in permissive mode.
	StringLiteral                    // "…", quotes included.
	ConstNumber                      // Integer digit run.
	Identifier                       // Declaration site: followed by ':'.
	IdentifierCall                   // Usage site.
	Keyword                          // for, if, else…
	DataType                         // int, float, string, array.
	RoundParen                       // ( )
	SquareParen                      // [ ]
	CurlyParen                       // { }
	Operator                         // + - * /
	Equals                           // =
	TypeDefiner                      // :
	InstructionSeparator             // ;
)

// String is the fmt.Stringer implementation for Kind.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case StringLiteral:
		return "StringLiteral"
	case ConstNumber:
		return "ConstNumber"
	case Identifier:
		return "Identifier"
	case IdentifierCall:
		return "IdentifierCall"
	case Keyword:
		return "Keyword"
	case DataType:
		return "DataType"
	case RoundParen:
		return "RoundParen"
	case SquareParen:
		return "SquareParen"
	case CurlyParen:
		return "CurlyParen"
	case Operator:
		return "Operator"
	case Equals:
		return "Equals"
	case TypeDefiner:
		return "TypeDefiner"
	case InstructionSeparator:
		return "InstructionSeparator"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// String renders a Token as `Kind("text")@row:col`, positions 1-based.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Text, t.Row+1, t.Col+1)
}

// Before reports whether t starts strictly before o in the source.
func (t Token) Before(o Token) bool {
	return t.Row < o.Row || (t.Row == o.Row && t.Col < o.Col)
}
