// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bureau-foundation/edi/lib/delimiter"
	"github.com/bureau-foundation/edi/lib/refdes"
)

const (
	minIDLength = 2
	maxIDLength = 3
)

// Segment is one parsed segment. Create it with [Parse] or
// [FromRecord]; the zero value is an empty segment with no id and no
// delimiters.
type Segment struct {
	id         string
	elements   []Element
	delimiters delimiter.Set
	terminated bool
}

// Parse parses one segment's text.
//
// At most one trailing terminator is stripped (and remembered, see
// [Segment.Terminated]). The id is everything before the first element
// separator, or the whole text when there is none, in which case the
// segment has no elements. The rest is split on the element separator
// with empty fields preserved, so "AAA*" has one empty element and
// "AAA**" has two. Each field containing the sub-element separator
// becomes a [Composite]; every other field is a [Simple].
//
// Parse never fails: any string is a segment of some shape. Use
// [Segment.IsIDValid] and [delimiter.Set.Collisions] to decide whether
// the result is meaningful.
func Parse(raw string, delimiters delimiter.Set) *Segment {
	body, terminated := strings.CutSuffix(raw, string(delimiters.Terminator))

	segment := &Segment{delimiters: delimiters, terminated: terminated}

	id, rest, hasElements := strings.Cut(body, string(delimiters.Element))
	segment.id = id
	if !hasElements {
		return segment
	}

	fields := strings.Split(rest, string(delimiters.Element))
	segment.elements = make([]Element, len(fields))
	for i, field := range fields {
		segment.elements[i] = parseElement(field, delimiters.SubElement)
	}
	return segment
}

// ID returns the segment id exactly as it appeared in the text.
func (s *Segment) ID() string { return s.id }

// Len returns the number of elements, not counting the id.
func (s *Segment) Len() int { return len(s.elements) }

// Delimiters returns the delimiter set the segment was parsed with.
func (s *Segment) Delimiters() delimiter.Set { return s.delimiters }

// Terminated reports whether the parsed text ended with the terminator.
func (s *Segment) Terminated() bool { return s.terminated }

// IsIDValid reports whether the id is 2 or 3 characters long. No
// character-class check is made.
func (s *Segment) IsIDValid() bool {
	length := utf8.RuneCountInString(s.id)
	return length >= minIDLength && length <= maxIDLength
}

// IsEmpty reports whether the segment carries no data: it has no
// elements, or every element and sub-value is the empty string.
func (s *Segment) IsEmpty() bool {
	for _, element := range s.elements {
		if !element.IsEmpty() {
			return false
		}
	}
	return true
}

// Element returns the element at the 0-based position i, which
// corresponds to element number i+1 in a reference designator. It
// panics when i is out of range.
func (s *Segment) Element(i int) Element {
	return s.elements[i]
}

// Elements returns a copy of the element list.
func (s *Segment) Elements() []Element {
	return slices.Clone(s.elements)
}

// Clone returns an independent copy. Elements are immutable, so only
// the element list is copied.
func (s *Segment) Clone() *Segment {
	clone := *s
	clone.elements = slices.Clone(s.elements)
	return &clone
}

// Equal reports whether s and other have the same id and structurally
// equal elements. Delimiters and terminator presence are not compared:
// the same content parsed under different delimiter sets is equal.
func (s *Segment) Equal(other *Segment) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.id != other.id || len(s.elements) != len(other.elements) {
		return false
	}
	for i := range s.elements {
		if !elementsEqual(s.elements[i], other.elements[i]) {
			return false
		}
	}
	return true
}

// Value is one leaf value of a segment together with its address.
type Value struct {
	RefDes refdes.RefDes `json:"ref"`
	Value  string        `json:"value"`
}

// Values returns every leaf value in document order: one entry per
// Simple element (TST01) and one per composite sub-value (TST04-1,
// TST04-2). Fails when the segment id or element count cannot be
// expressed as a reference designator.
func (s *Segment) Values() ([]Value, error) {
	values := make([]Value, 0, len(s.elements))
	for i, element := range s.elements {
		switch element := element.(type) {
		case Simple:
			ref, err := refdes.New(s.id, i+1, 0)
			if err != nil {
				return nil, err
			}
			values = append(values, Value{RefDes: ref, Value: element.Value()})
		case Composite:
			for j, subValue := range element.values {
				ref, err := refdes.New(s.id, i+1, j+1)
				if err != nil {
					return nil, err
				}
				values = append(values, Value{RefDes: ref, Value: subValue})
			}
		}
	}
	return values, nil
}
