// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package segment models one EDI segment: a segment id followed by an
// ordered list of elements, where each element is either a [Simple]
// scalar or a [Composite] list of sub-values.
//
// The structure comes entirely from a [delimiter.Set]. Parsing splits
// the raw text on the element separator, then splits each element body
// on the sub-element separator. No schema is consulted: a segment has
// exactly as many elements as its text has fields, and a field is
// composite exactly when it contains the sub-element separator.
//
//	seg := segment.Parse("TST*AA*1*Y*BB:5*ZZ", delimiter.X12())
//	seg.Get("TST04")   // "BB:5", true, nil
//	seg.Get("TST04-2") // "5", true, nil
//	seg.Get("TST06")   // "", false, nil
//	seg.Set("TST03", "YY")
//	seg.String()       // "TST*AA*1*YY*BB:5*ZZ~"
//
// # Addressing
//
// Elements are addressed by reference designator (see package refdes).
// [Segment.Get] is lenient: an element or sub-element number beyond
// what this instance carries is reported as absent, because EDI
// segments are routinely shorter than their maximum defined length.
// A designator for a different segment id is always an error
// ([ErrMismatchedSegmentID]). [Segment.Set] never grows a segment: it
// replaces an existing value or fails with [ErrOutOfRange].
//
// Positional access ([Segment.Element], [Composite.At]) follows Go
// slice semantics and panics when out of range; it is for code that has
// already checked [Segment.Len].
//
// # Formatting
//
// [Segment.Format] writes the segment with its stored delimiters or
// with per-role overrides, always ending with exactly one terminator.
// [Segment.String] is the identity form: parsing terminated text and
// calling String reproduces it byte for byte, and unterminated text
// gains exactly one terminator.
//
// # Concurrency
//
// A Segment is a plain mutable value with no internal locking. Get,
// Format, and the other read methods may run concurrently with each
// other; Set requires exclusive access. Element values themselves are
// immutable, so [Segment.Clone] is cheap and the clone shares no
// mutable state with the original.
package segment
