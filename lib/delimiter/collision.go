// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package delimiter

import (
	"fmt"
	"strings"
)

// Collision describes two delimiter roles that share a character.
type Collision struct {
	First  Role
	Second Role
	Char   rune
}

func (c Collision) String() string {
	return fmt.Sprintf("%s and %s both use %q", c.First, c.Second, c.Char)
}

// Collisions returns every pair of roles that share a character, in
// terminator/element/sub-element order. A nil result means the set is
// unambiguous. Unset (zero) roles are not compared.
func (s Set) Collisions() []Collision {
	roles := []Role{RoleTerminator, RoleElement, RoleSubElement}
	var collisions []Collision
	for i := 0; i < len(roles); i++ {
		for j := i + 1; j < len(roles); j++ {
			first, second := s.Get(roles[i]), s.Get(roles[j])
			if first == 0 || first != second {
				continue
			}
			collisions = append(collisions, Collision{First: roles[i], Second: roles[j], Char: first})
		}
	}
	return collisions
}

// Ambiguous reports whether any two roles share a character. Parsing
// and formatting still work on an ambiguous set, but the output of a
// format may not parse back to the same structure.
func (s Set) Ambiguous() bool {
	return len(s.Collisions()) > 0
}

// CheckUnambiguous returns an error describing every collision, or nil
// when the set is unambiguous. Callers that want to refuse ambiguous
// sets (strict mode) use this; everyone else inspects [Set.Collisions].
func (s Set) CheckUnambiguous() error {
	collisions := s.Collisions()
	if len(collisions) == 0 {
		return nil
	}
	descriptions := make([]string, len(collisions))
	for i, collision := range collisions {
		descriptions[i] = collision.String()
	}
	return fmt.Errorf("ambiguous delimiter set %q: %s", s.String(), strings.Join(descriptions, "; "))
}
