// SPDX-License-Identifier: MIT
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	seen := map[string]struct{}{}
	for k := Unknown; k <= InstructionSeparator; k++ {
		name := k.String()
		assert.NotContains(t, name, "Kind(", "kind %d lacks a name", int(k))

		_, dup := seen[name]
		assert.False(t, dup, "duplicate name %s", name)
		seen[name] = struct{}{}
	}

	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		want  string
	}{
		{name: "word", token: tok(Identifier, "x", 0, 0), want: `Identifier("x")@1:1`},
		{name: "string", token: tok(StringLiteral, `"a\"b"`, 2, 4), want: `StringLiteral("\"a\\\"b\"")@3:5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.String())
		})
	}
}

func TestToken_Before(t *testing.T) {
	assert.True(t, tok(Operator, "+", 0, 5).Before(tok(Operator, "+", 1, 0)))
	assert.True(t, tok(Operator, "+", 1, 0).Before(tok(Operator, "+", 1, 1)))
	assert.False(t, tok(Operator, "+", 1, 1).Before(tok(Operator, "+", 1, 1)))
	assert.False(t, tok(Operator, "+", 2, 0).Before(tok(Operator, "+", 1, 9)))
}
