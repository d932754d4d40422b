// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Observer receives scan events, it must not retain the line slice.
	Observer interface {
		// Line is called before a line is scanned.
		Line(row int, text string)
		// Token is called after a Token is emitted.
		Token(t Token)
		// Comment is called when the rest of a line is elided from (row, col).
		Comment(row, col int)
	}

	// LogObserver writes scan events to a logger at debug level.
	LogObserver struct {
		Logger logrus.FieldLogger
	}

	nopObserver struct{}
)

// Line logs the line being scanned.
func (o *LogObserver) Line(row int, text string) {
	o.Logger.WithField("row", row+1).Debugf("lexer line: %q", text)
}

// Token logs an emitted Token.
func (o *LogObserver) Token(t Token) {
	o.Logger.WithFields(logrus.Fields{"row": t.Row + 1, "col": t.Col + 1}).Debugf("lexer emit: %s", t)
}

// Comment logs an elided comment.
func (o *LogObserver) Comment(row, col int) {
	o.Logger.WithFields(logrus.Fields{"row": row + 1, "col": col + 1}).Debug("lexer comment")
}

func (nopObserver) Line(int, string) {}
func (nopObserver) Token(Token)      {}
func (nopObserver) Comment(int, int) {}
