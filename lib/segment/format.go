// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"strings"

	"github.com/bureau-foundation/edi/lib/delimiter"
)

// FormatOption overrides one or more delimiters for a single
// [Segment.Format] call. The segment's stored delimiters are not
// changed.
type FormatOption func(*delimiter.Set)

// WithTerminator writes the segment with terminator in place of the
// stored terminator.
func WithTerminator(terminator rune) FormatOption {
	return func(set *delimiter.Set) { set.Terminator = terminator }
}

// WithElementSeparator writes the segment with separator between
// elements.
func WithElementSeparator(separator rune) FormatOption {
	return func(set *delimiter.Set) { set.Element = separator }
}

// WithSubElementSeparator writes composite elements with separator
// between sub-values.
func WithSubElementSeparator(separator rune) FormatOption {
	return func(set *delimiter.Set) { set.SubElement = separator }
}

// WithDelimiters writes the segment with every non-zero role of set
// replacing the stored delimiter for that role.
func WithDelimiters(set delimiter.Set) FormatOption {
	return func(target *delimiter.Set) {
		*target = target.Override(set.Terminator, set.Element, set.SubElement)
	}
}

// Format renders the segment: id, then each element preceded by the
// element separator, composite sub-values joined by the sub-element
// separator, then exactly one terminator. Unset roles use the
// delimiters the segment was parsed with.
//
// Format does not check that values are free of the output delimiters.
// Re-formatting with a delimiter that occurs inside a value produces
// text that parses to a different structure; check the target set with
// [delimiter.Set.Collisions] and the values with [Segment.Values] first
// when that matters.
func (s *Segment) Format(options ...FormatOption) string {
	delimiters := s.delimiters
	for _, option := range options {
		option(&delimiters)
	}

	var builder strings.Builder
	builder.WriteString(s.id)
	for _, element := range s.elements {
		builder.WriteRune(delimiters.Element)
		element.appendTo(&builder, delimiters.SubElement)
	}
	builder.WriteRune(delimiters.Terminator)
	return builder.String()
}

// String returns the segment formatted with its original delimiters.
// For terminated input this is the input itself; unterminated input
// gains a single terminator.
func (s *Segment) String() string {
	text := s.Format()
	terminator := string(s.delimiters.Terminator)
	if !strings.HasSuffix(text, terminator) {
		text += terminator
	}
	return text
}
