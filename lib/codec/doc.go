// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec is the CBOR encoding used for segment records.
//
// Segments travel in two forms. Their text form is the EDI wire format
// and depends on a delimiter set. Their structural form,
// [segment.Record], carries the id, delimiters, and element tree
// directly, and is what this package encodes: JSON for CLI output,
// CBOR for compact storage and piping between tools.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same segment always produces identical bytes.
//
//	data, err := codec.MarshalSegment(seg)
//	seg, err = codec.UnmarshalSegment(data)
//
// Several segments are written as a CBOR sequence (RFC 8742):
//
//	err := codec.WriteSegments(w, first, second)
//	segments, err := codec.ReadSegments(r)
//
// Record types carry `json` struct tags only. fxamacker/cbor reads
// `json` tags when `cbor` tags are absent, so one tag controls field
// naming and omitempty in both formats.
package codec
