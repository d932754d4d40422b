// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
)

type (
	// LexError is a fatal scanning diagnostic.
	LexError struct {
		// Err is the sentinel describing the failure class.
		Err error

		Path    string
		Message string

		// Row & Col locate the offending lexeme's first rune, zero-based.
		Row int
		Col int
	}
)

// Lexing errors.
var (
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrUnknownToken       = errors.New("unknown token")
)

func newLexError(err error, path string, row, col int, format string, args ...interface{}) *LexError {
	return &LexError{
		Err:     err,
		Path:    path,
		Row:     row,
		Col:     col,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error renders the diagnostic as `[ERROR]: path:row:col: message` with 1-based positions.
func (e *LexError) Error() string {
	return fmt.Sprintf("[ERROR]: %s:%d:%d: %s", e.Path, e.Row+1, e.Col+1, e.Message)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *LexError) Unwrap() error { return e.Err }
