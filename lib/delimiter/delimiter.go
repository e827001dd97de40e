// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package delimiter

import (
	"fmt"
	"unicode/utf8"
)

// Role names one of the three delimiter positions.
type Role string

const (
	// RoleTerminator marks the end of a segment.
	RoleTerminator Role = "terminator"

	// RoleElement separates elements within a segment.
	RoleElement Role = "element"

	// RoleSubElement separates sub-values within a composite element.
	RoleSubElement Role = "sub_element"
)

// Set holds the three delimiter characters of a segment.
//
// The zero value has all three roles unset and is only useful as the
// receiver of [Set.UnmarshalText]; use [New], [Parse], or [X12] to
// construct a usable set.
type Set struct {
	// Terminator ends a segment (conventionally '~').
	Terminator rune

	// Element separates elements (conventionally '*').
	Element rune

	// SubElement separates the sub-values of a composite element
	// (conventionally ':').
	SubElement rune
}

// New returns a Set from its three characters. The argument order
// (terminator, element, sub-element) matches [Parse] and the text form.
func New(terminator, element, subElement rune) Set {
	return Set{Terminator: terminator, Element: element, SubElement: subElement}
}

// X12 returns the delimiter set conventionally used by ANSI X12
// interchanges: '~' terminator, '*' element separator, ':' sub-element
// separator.
func X12() Set {
	return New('~', '*', ':')
}

// Parse parses the three-character text form (terminator, element,
// sub-element), e.g. "~*:". Characters may be any single Unicode code
// point, including whitespace such as '\n'.
func Parse(text string) (Set, error) {
	if !utf8.ValidString(text) {
		return Set{}, fmt.Errorf("delimiter set %q: not valid UTF-8", text)
	}
	runes := []rune(text)
	if len(runes) != 3 {
		return Set{}, fmt.Errorf("delimiter set %q: want 3 characters (terminator, element, sub-element), got %d", text, len(runes))
	}
	return New(runes[0], runes[1], runes[2]), nil
}

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse(text string) Set {
	set, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("delimiter.MustParse(%q): %v", text, err))
	}
	return set
}

// String returns the three-character text form.
func (s Set) String() string {
	if s.IsZero() {
		return ""
	}
	return string([]rune{s.Terminator, s.Element, s.SubElement})
}

// IsZero reports whether no role is set.
func (s Set) IsZero() bool {
	return s.Terminator == 0 && s.Element == 0 && s.SubElement == 0
}

// Complete reports whether all three roles are set.
func (s Set) Complete() bool {
	return s.Terminator != 0 && s.Element != 0 && s.SubElement != 0
}

// Override returns a copy of s in which each non-zero argument replaces
// the corresponding role. Zero arguments keep the role from s.
func (s Set) Override(terminator, element, subElement rune) Set {
	if terminator != 0 {
		s.Terminator = terminator
	}
	if element != 0 {
		s.Element = element
	}
	if subElement != 0 {
		s.SubElement = subElement
	}
	return s
}

// Get returns the character assigned to role.
func (s Set) Get(role Role) rune {
	switch role {
	case RoleTerminator:
		return s.Terminator
	case RoleElement:
		return s.Element
	case RoleSubElement:
		return s.SubElement
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler using the
// three-character text form.
func (s Set) MarshalText() ([]byte, error) {
	if s.IsZero() {
		return nil, nil
	}
	if !s.Complete() {
		return nil, fmt.Errorf("delimiter set has unset roles: %+v", s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input
// produces the zero value.
func (s *Set) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*s = Set{}
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
