// SPDX-License-Identifier: MIT
package lexer

// REF: https://gitlab.com/fisherprime/hierarchy/-/blob/master/lexer/v2/lexer.go

import (
	"context"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

type (
	// Lexer converts source text into a Token sequence.
	//
	// A Lexer is immutable after New; Scan holds no state across calls & is safe for concurrent
	// use.
	Lexer struct {
		cfg Config
	}

	// stateFn is the next scan state for the current line, nil ends the line.
	stateFn func(*scanner) stateFn

	// scanner holds the state of a single Scan call.
	scanner struct {
		cfg  *Config
		path string

		// line is the current line's runes.
		line []rune
		row  int

		// start is the current lexeme's first column, pos the column being examined.
		start int
		pos   int

		tokens []Token
		err    *LexError
	}
)

// New instantiates a Lexer.
func New(opts ...Option) *Lexer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Validate()

	return &Lexer{cfg: *cfg}
}

// Config obtains a copy of the Lexer's Config.
func (l *Lexer) Config() Config { return l.cfg }

// Scan lexes source, path is only used for diagnostics.
//
// Scanning stops at the first error; a *LexError is returned without the partial Token sequence.
func (l *Lexer) Scan(ctx context.Context, path, source string) (tokens []Token, err error) {
	s := &scanner{
		cfg:    &l.cfg,
		path:   path,
		tokens: make([]Token, 0, len(source)/4),
	}

	for row, text := range strings.Split(source, "\n") {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		s.cfg.Observer.Line(row, text)
		s.row, s.line, s.start, s.pos = row, []rune(text), 0, 0

		for state := lexIdle; state != nil; {
			state = state(s)
		}

		if s.err != nil {
			if l.cfg.Debug {
				// Skip expensive operation if not debug.
				l.cfg.Logger.Debugf("lexer failed: %v\npartial tokens: %s", s.err, spew.Sdump(s.tokens))
			}

			return nil, s.err
		}
	}

	return s.tokens, nil
}

// lexIdle dispatches on the current rune's class.
func lexIdle(s *scanner) stateFn {
	if s.pos >= len(s.line) {
		return nil
	}

	s.start = s.pos
	r := s.line[s.pos]

	switch {
	case isWhitespace(r):
		s.pos++
		return lexIdle
	case isLetter(r):
		return lexWord
	case isDigit(r):
		return lexNumber
	case r == quote:
		return lexString
	case r == slash && s.peek() == slash:
		return lexComment
	default:
		return lexSymbol
	}
}

// lexWord consumes a letter run & classifies it with the rest of the line as lookahead.
func lexWord(s *scanner) stateFn {
	s.acceptWhile(isLetter)
	s.emit(ClassifyWord(string(s.line[s.start:s.pos]), s.line[s.pos:]))

	return lexIdle
}

// lexNumber consumes a digit run.
func lexNumber(s *scanner) stateFn {
	s.acceptWhile(isDigit)
	s.emit(ConstNumber)

	return lexIdle
}

// lexString consumes a string literal up to its unescaped closing quote on the same line.
func lexString(s *scanner) stateFn {
	for index := s.start + 1; index < len(s.line); index++ {
		if s.line[index] == quote && s.line[index-1] != escape {
			s.pos = index + 1
			s.emit(StringLiteral)

			return lexIdle
		}
	}

	s.fail(ErrUnterminatedString, "unterminated string literal")

	return nil
}

// lexComment elides the rest of the line.
func lexComment(s *scanner) stateFn {
	s.cfg.Observer.Comment(s.row, s.start)
	s.pos = len(s.line)

	return nil
}

// lexSymbol emits a single rune symbol.
func lexSymbol(s *scanner) stateFn {
	r := s.line[s.pos]

	kind := ClassifySymbol(r)
	if kind == Unknown && !s.cfg.Permissive {
		s.fail(ErrUnknownToken, "unknown token %q", r)
		return nil
	}

	s.pos++
	s.emit(kind)

	return lexIdle
}

// peek return the rune after the current one, 0 at the end of the line.
func (s *scanner) peek() rune {
	if next := s.pos + 1; next < len(s.line) {
		return s.line[next]
	}

	return 0
}

// acceptWhile consumes runes while condition is true.
func (s *scanner) acceptWhile(fn func(rune) bool) {
	for s.pos < len(s.line) && fn(s.line[s.pos]) {
		s.pos++
	}
}

// emit appends the lexeme between start & pos as a Token.
func (s *scanner) emit(kind Kind) {
	t := Token{
		Kind: kind,
		Text: string(s.line[s.start:s.pos]),
		Row:  s.row,
		Col:  s.start,
	}

	s.tokens = append(s.tokens, t)
	s.cfg.Observer.Token(t)
}

// fail records a LexError at the current lexeme's start, terminating the scan.
func (s *scanner) fail(err error, format string, args ...interface{}) {
	s.err = newLexError(err, s.path, s.row, s.start, format, args...)
}
