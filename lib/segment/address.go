// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/edi/lib/refdes"
)

// Get returns the value addressed by the reference designator ref.
//
// The result is absent ("", false, nil) when the element number is
// beyond the segment's length or the sub-element number is beyond the
// composite's length. A sub-element number on a Simple element is
// ignored. A Composite addressed without a sub-element number yields
// its sub-values joined with the segment's sub-element separator.
//
// Errors: a malformed ref wraps [refdes.ErrMalformed]; a ref for a
// different segment id wraps [ErrMismatchedSegmentID].
func (s *Segment) Get(ref string) (string, bool, error) {
	parsed, err := refdes.Parse(ref)
	if err != nil {
		return "", false, err
	}
	return s.Lookup(parsed)
}

// GetValueByRefDes is an alias of [Segment.Get].
func (s *Segment) GetValueByRefDes(ref string) (string, bool, error) {
	return s.Get(ref)
}

// Lookup is [Segment.Get] for an already-parsed reference designator.
func (s *Segment) Lookup(ref refdes.RefDes) (string, bool, error) {
	if err := s.checkID(ref); err != nil {
		return "", false, err
	}

	index := ref.ElementIndex()
	if index >= len(s.elements) {
		return "", false, nil
	}

	switch element := s.elements[index].(type) {
	case Simple:
		return element.Value(), true, nil
	case Composite:
		subElement, ok := ref.SubElement()
		if !ok {
			return element.Join(s.delimiters.SubElement), true, nil
		}
		value, found := element.Value(subElement - 1)
		return value, found, nil
	default:
		panic(fmt.Sprintf("segment: unknown element type %T", element))
	}
}

// Set replaces the value addressed by the reference designator ref.
//
// Without a sub-element number the whole element is replaced and
// re-classified: a value containing the sub-element separator becomes
// a Composite, anything else a Simple. With a sub-element number the
// element must already be a Composite ([ErrNotComposite]) and the
// sub-element must exist.
//
// Set never extends the segment: addressing an element or sub-element
// the segment does not have fails with a [*RangeError]. A value that
// contains the element separator, or, for a sub-element, the
// sub-element separator, fails with [ErrDelimiterInValue]. The
// terminator is allowed: [Parse] strips only the final one, so such a
// value survives a format and re-parse. On any error the segment is
// unchanged.
func (s *Segment) Set(ref, value string) error {
	parsed, err := refdes.Parse(ref)
	if err != nil {
		return err
	}
	return s.Assign(parsed, value)
}

// Assign is [Segment.Set] for an already-parsed reference designator.
func (s *Segment) Assign(ref refdes.RefDes, value string) error {
	if err := s.checkID(ref); err != nil {
		return err
	}

	index := ref.ElementIndex()
	if index >= len(s.elements) {
		return &RangeError{RefDes: ref, Available: len(s.elements)}
	}

	if strings.ContainsRune(value, s.delimiters.Element) {
		return fmt.Errorf("%w: %s value %q", ErrDelimiterInValue, ref, value)
	}

	subElement, ok := ref.SubElement()
	if !ok {
		s.elements[index] = parseElement(value, s.delimiters.SubElement)
		return nil
	}

	composite, ok := s.elements[index].(Composite)
	if !ok {
		return fmt.Errorf("%w: %s addresses a sub-element of simple element %s", ErrNotComposite, ref, ref.WholeElement())
	}
	if subElement > composite.Len() {
		return &RangeError{RefDes: ref, Available: composite.Len(), SubElement: true}
	}
	if strings.ContainsRune(value, s.delimiters.SubElement) {
		return fmt.Errorf("%w: %s sub-element value %q", ErrDelimiterInValue, ref, value)
	}

	s.elements[index] = composite.with(subElement-1, value)
	return nil
}

// checkID rejects the zero designator, whose element index is -1, and
// designators for another segment id.
func (s *Segment) checkID(ref refdes.RefDes) error {
	if ref.IsZero() {
		return &refdes.MalformedError{Reason: "zero reference designator"}
	}
	if ref.SegmentID() != s.id {
		return &MismatchedSegmentIDError{SegmentID: s.id, RefDes: ref}
	}
	return nil
}
