// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package delimiter defines the three-character delimiter set that
// gives an EDI segment its structure: the segment terminator, the
// element separator, and the sub-element (component) separator.
//
// A [Set] is a small value type. It is carried by a parsed segment so
// the segment can reproduce its original text, and it can be supplied
// separately when formatting to re-delimit a segment for output.
//
// The canonical text form is the three characters concatenated in
// terminator, element, sub-element order:
//
//	set, err := delimiter.Parse("~*:")
//	set.String() // "~*:"
//
// Nothing forbids two roles from sharing a character, but a set where
// they do cannot be round-tripped unambiguously. [Set.Collisions]
// reports such overlaps so callers can warn or refuse; the package
// itself never rejects them.
//
// This package depends on no other packages in this module.
package delimiter
