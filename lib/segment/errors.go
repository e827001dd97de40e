// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/edi/lib/refdes"
)

var (
	// ErrMismatchedSegmentID is wrapped when a reference designator
	// names a different segment id than the segment it is applied to.
	ErrMismatchedSegmentID = errors.New("mismatched segment id")

	// ErrOutOfRange is wrapped when Set addresses an element or
	// sub-element the segment does not have. Set never extends a
	// segment.
	ErrOutOfRange = errors.New("address out of range")

	// ErrNotComposite is returned when Set addresses a sub-element of
	// a Simple element.
	ErrNotComposite = errors.New("element is not composite")

	// ErrDelimiterInValue is returned when a value passed to Set
	// contains a delimiter that would change the segment's structure
	// on the next parse.
	ErrDelimiterInValue = errors.New("value contains a delimiter")
)

// MismatchedSegmentIDError reports a reference designator applied to
// the wrong segment.
type MismatchedSegmentIDError struct {
	// SegmentID is the id of the segment being addressed.
	SegmentID string

	// RefDes is the designator that was applied.
	RefDes refdes.RefDes
}

func (e *MismatchedSegmentIDError) Error() string {
	return fmt.Sprintf("%s: %s does not address segment %q", ErrMismatchedSegmentID, e.RefDes, e.SegmentID)
}

// Unwrap returns [ErrMismatchedSegmentID].
func (e *MismatchedSegmentIDError) Unwrap() error {
	return ErrMismatchedSegmentID
}

// RangeError reports a Set on an element or sub-element that does not
// exist in this segment instance.
type RangeError struct {
	// RefDes is the designator that was applied.
	RefDes refdes.RefDes

	// Available is how many elements the segment has, or, when
	// SubElement is true, how many sub-values the addressed composite
	// has.
	Available int

	// SubElement is true when the sub-element number was out of range.
	SubElement bool
}

func (e *RangeError) Error() string {
	if e.SubElement {
		return fmt.Sprintf("%s: %s: element has %d sub-elements", ErrOutOfRange, e.RefDes, e.Available)
	}
	return fmt.Sprintf("%s: %s: segment %s has %d elements", ErrOutOfRange, e.RefDes, e.RefDes.SegmentID(), e.Available)
}

// Unwrap returns [ErrOutOfRange].
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
