// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"slices"
	"strings"
)

// Composite is an element split into ordered sub-values by the
// sub-element separator. Each sub-value may be empty.
//
// Within a parsed segment a Composite always has at least two
// sub-values, since a field without a sub-element separator is parsed
// as [Simple]. A standalone Composite from [ParseComposite] may have
// one.
type Composite struct {
	values []string
}

// ParseComposite splits raw on subElement, preserving empty fields:
// "" yields one empty sub-value, "::" yields three, "1::a" yields
// "1", "", "a".
func ParseComposite(raw string, subElement rune) Composite {
	return Composite{values: strings.Split(raw, string(subElement))}
}

// NewComposite returns a Composite holding a copy of values.
func NewComposite(values ...string) Composite {
	return Composite{values: slices.Clone(values)}
}

// Value returns the sub-value at the 0-based index i, or "" and false
// when i is out of range.
func (c Composite) Value(i int) (string, bool) {
	if i < 0 || i >= len(c.values) {
		return "", false
	}
	return c.values[i], true
}

// At returns the sub-value at the 0-based index i. It panics when i is
// out of range; use [Composite.Value] for lenient access.
func (c Composite) At(i int) string {
	return c.values[i]
}

// Values returns a copy of the sub-values.
func (c Composite) Values() []string {
	return slices.Clone(c.values)
}

// Join returns the sub-values joined with subElement.
func (c Composite) Join(subElement rune) string {
	return strings.Join(c.values, string(subElement))
}

// Kind returns KindComposite.
func (Composite) Kind() Kind { return KindComposite }

// IsSimple returns false.
func (Composite) IsSimple() bool { return false }

// IsComposite returns true.
func (Composite) IsComposite() bool { return true }

// Len returns the number of sub-values.
func (c Composite) Len() int { return len(c.values) }

// IsEmpty reports whether every sub-value is the empty string.
func (c Composite) IsEmpty() bool {
	for _, value := range c.values {
		if value != "" {
			return false
		}
	}
	return true
}

// with returns a copy of c with the sub-value at index i replaced.
func (c Composite) with(i int, value string) Composite {
	values := slices.Clone(c.values)
	values[i] = value
	return Composite{values: values}
}

func (c Composite) appendTo(builder *strings.Builder, subElement rune) {
	for i, value := range c.values {
		if i > 0 {
			builder.WriteRune(subElement)
		}
		builder.WriteString(value)
	}
}
