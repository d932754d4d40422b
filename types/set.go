// SPDX-License-Identifier: MIT
package types

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// Set is an unordered collection of unique values.
	//
	// Synchronization is unnecessary, the type is designed for single write multiple read.
	Set[T constraints.Ordered] map[T]struct{}
)

// NewSet instantiates a Set holding values.
func NewSet[T constraints.Ordered](values ...T) Set[T] {
	s := make(Set[T], len(values))
	s.Add(values...)

	return s
}

// Add values to the Set, duplicates are ignored.
func (s Set[T]) Add(values ...T) {
	for index := range values {
		s[values[index]] = struct{}{}
	}
}

// Has reports whether value is a member of the Set.
func (s Set[T]) Has(value T) (ok bool) {
	_, ok = s[value]
	return
}

// Len is the number of members.
func (s Set[T]) Len() int { return len(s) }

// Sorted returns the Set's members in ascending order.
func (s Set[T]) Sorted() (values []T) {
	values = maps.Keys(s)
	slices.Sort(values)

	return
}

// Clone copies the Set.
func (s Set[T]) Clone() Set[T] { return maps.Clone(s) }

// String is the fmt.Stringer implementation for Set.
func (s Set[T]) String() string {
	values := s.Sorted()
	if len(values) < 1 {
		return "{}"
	}

	var buffer strings.Builder
	fmt.Fprintf(&buffer, "{%v", values[0])
	for index := 1; index < len(values); index++ {
		fmt.Fprintf(&buffer, ",%v", values[index])
	}
	buffer.WriteString("}")

	return buffer.String()
}
