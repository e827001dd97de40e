// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"fmt"
	"strings"
)

// Kind discriminates the two element variants.
type Kind int

const (
	// KindSimple is a single scalar value.
	KindSimple Kind = iota + 1

	// KindComposite is an ordered list of scalar sub-values.
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindComposite:
		return "composite"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Element is one field of a segment. The only implementations are
// [Simple] and [Composite]; consumers branch with a type switch:
//
//	switch element := seg.Element(i).(type) {
//	case segment.Simple:
//	    use(element.Value())
//	case segment.Composite:
//	    use(element.Values())
//	}
//
// Element values are immutable.
type Element interface {
	// Kind reports which variant this element is.
	Kind() Kind

	// IsSimple reports whether this is a Simple element.
	IsSimple() bool

	// IsComposite reports whether this is a Composite element.
	IsComposite() bool

	// Len is 1 for a Simple element and the sub-value count for a
	// Composite element.
	Len() int

	// IsEmpty reports whether every value the element holds is the
	// empty string.
	IsEmpty() bool

	// appendTo writes the element body using subElement to join
	// composite sub-values. Unexported to keep the variant set closed.
	appendTo(builder *strings.Builder, subElement rune)
}

// Simple is an element holding one scalar value, which may be empty.
type Simple struct {
	value string
}

// NewSimple returns a Simple element holding value.
func NewSimple(value string) Simple {
	return Simple{value: value}
}

// Value returns the scalar value.
func (s Simple) Value() string { return s.value }

// Kind returns KindSimple.
func (Simple) Kind() Kind { return KindSimple }

// IsSimple returns true.
func (Simple) IsSimple() bool { return true }

// IsComposite returns false.
func (Simple) IsComposite() bool { return false }

// Len returns 1.
func (Simple) Len() int { return 1 }

// IsEmpty reports whether the value is the empty string.
func (s Simple) IsEmpty() bool { return s.value == "" }

func (s Simple) appendTo(builder *strings.Builder, _ rune) {
	builder.WriteString(s.value)
}

// parseElement classifies one element body: Composite when it contains
// the sub-element separator, Simple otherwise.
func parseElement(body string, subElement rune) Element {
	if strings.ContainsRune(body, subElement) {
		return ParseComposite(body, subElement)
	}
	return NewSimple(body)
}

// elementsEqual compares two elements structurally.
func elementsEqual(a, b Element) bool {
	switch a := a.(type) {
	case Simple:
		other, ok := b.(Simple)
		return ok && a.value == other.value
	case Composite:
		other, ok := b.(Composite)
		if !ok || len(a.values) != len(other.values) {
			return false
		}
		for i := range a.values {
			if a.values[i] != other.values[i] {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("segment: unknown element type %T", a))
	}
}
