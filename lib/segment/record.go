// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bureau-foundation/edi/lib/delimiter"
)

// Record is the structural snapshot of a segment used for
// serialization. It carries the parsed structure rather than the text,
// so a consumer can read elements without knowing the delimiters, and
// [FromRecord] can rebuild an identical segment.
type Record struct {
	ID         string          `json:"id"`
	Delimiters delimiter.Set   `json:"delimiters"`
	Terminated bool            `json:"terminated,omitempty"`
	Elements   []RecordElement `json:"elements"`
}

// RecordElement is one element of a Record. Exactly one of Value
// (Simple) and Components (Composite) is set.
type RecordElement struct {
	Value      *string  `json:"value,omitempty"`
	Components []string `json:"components,omitempty"`
}

// Record returns the structural snapshot of s.
func (s *Segment) Record() Record {
	record := Record{
		ID:         s.id,
		Delimiters: s.delimiters,
		Terminated: s.terminated,
		Elements:   make([]RecordElement, len(s.elements)),
	}
	for i, element := range s.elements {
		switch element := element.(type) {
		case Simple:
			value := element.Value()
			record.Elements[i] = RecordElement{Value: &value}
		case Composite:
			record.Elements[i] = RecordElement{Components: element.Values()}
		}
	}
	return record
}

// FromRecord rebuilds a segment from a Record. The record must describe
// a segment that formats back to the same structure: the delimiter set
// must be complete, no id or value may contain a delimiter it would be
// split on, and every composite needs at least two components. The
// terminator may appear anywhere, since [Parse] strips only the final
// one.
func FromRecord(record Record) (*Segment, error) {
	delimiters := record.Delimiters
	if !delimiters.Complete() {
		return nil, fmt.Errorf("segment record %q: incomplete delimiter set", record.ID)
	}
	if strings.ContainsRune(record.ID, delimiters.Element) {
		return nil, fmt.Errorf("segment record %q: %w in id", record.ID, ErrDelimiterInValue)
	}

	segment := &Segment{
		id:         record.ID,
		delimiters: delimiters,
		terminated: record.Terminated,
		elements:   make([]Element, len(record.Elements)),
	}
	for i, recorded := range record.Elements {
		element, err := recordElement(recorded, delimiters)
		if err != nil {
			return nil, fmt.Errorf("segment record %q element %d: %w", record.ID, i+1, err)
		}
		segment.elements[i] = element
	}
	return segment, nil
}

func recordElement(recorded RecordElement, delimiters delimiter.Set) (Element, error) {
	switch {
	case recorded.Value != nil && recorded.Components != nil:
		return nil, errors.New("both value and components set")
	case recorded.Value != nil:
		if err := checkValue(*recorded.Value, delimiters); err != nil {
			return nil, err
		}
		return NewSimple(*recorded.Value), nil
	case len(recorded.Components) >= 2:
		for _, component := range recorded.Components {
			if err := checkValue(component, delimiters); err != nil {
				return nil, err
			}
		}
		return NewComposite(recorded.Components...), nil
	case recorded.Components != nil:
		return nil, fmt.Errorf("composite needs at least 2 components, got %d", len(recorded.Components))
	default:
		return nil, errors.New("neither value nor components set")
	}
}

func checkValue(value string, delimiters delimiter.Set) error {
	if strings.ContainsRune(value, delimiters.Element) ||
		strings.ContainsRune(value, delimiters.SubElement) {
		return fmt.Errorf("%w: %q", ErrDelimiterInValue, value)
	}
	return nil
}
