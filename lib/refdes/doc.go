// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package refdes parses reference designators: the positional address
// strings that identify one element, or one sub-element of a composite
// element, within an EDI segment.
//
// The wire format is:
//
//	<segment id><element number>[-<sub-element number>]
//
// The segment id is 2 or 3 ASCII letters or digits, the element number
// is exactly two decimal digits, and the optional sub-element number is
// one or more decimal digits. Both numbers are 1-based:
//
//	TST01     first element of a TST segment
//	TST04-2   second sub-value of the fourth element
//	N101      first element of an N1 segment
//
// A [RefDes] is parsed once and validated at construction; consumers
// address segments with the structured value instead of re-parsing the
// string at each call site. Parse failures wrap [ErrMalformed], which
// indicates a defect in the caller rather than variable-length data.
//
// JSON and CBOR marshaling use the canonical string form via
// encoding.TextMarshaler.
package refdes
