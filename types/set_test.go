// SPDX-License-Identifier: MIT
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_Has(t *testing.T) {
	tests := []struct {
		name  string
		set   Set[string]
		value string
		want  bool
	}{
		{name: "member", set: NewSet("if", "for"), value: "for", want: true},
		{name: "non member", set: NewSet("if", "for"), value: "while"},
		{name: "empty", set: NewSet[string](), value: "if"},
		{name: "case sensitive", set: NewSet("if"), value: "IF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.Has(tt.value))
		})
	}
}

func TestSet_Sorted(t *testing.T) {
	s := NewSet("while", "for", "if", "for")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"for", "if", "while"}, s.Sorted())
	assert.Equal(t, "{for,if,while}", s.String())
	assert.Equal(t, "{}", NewSet[int]().String())
}

func TestSet_Clone(t *testing.T) {
	s := NewSet(1, 2)
	c := s.Clone()
	c.Add(3)

	assert.False(t, s.Has(3))
	assert.True(t, c.Has(3))
	assert.Equal(t, []int{1, 2}, s.Sorted())
}
