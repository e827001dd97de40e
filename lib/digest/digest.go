// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest computes content fingerprints of segments.
//
// A digest is the BLAKE3 keyed hash of a segment's canonical form: the
// deterministic CBOR encoding of its id and element tree. Delimiters
// are not part of the canonical form, so "TST*A:B~" under X12
// delimiters and "TST&A!B+" under "+&!" have the same digest, while
// any change to the id, an element's value, or an element's
// Simple/Composite shape changes it.
//
// Edit scripts use digests as a guard: a script that names the digest
// of the segment it was written against refuses to apply to anything
// else.
package digest

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/edi/lib/codec"
	"github.com/bureau-foundation/edi/lib/segment"
)

// Digest is a 32-byte BLAKE3 digest.
type Digest [32]byte

// domainKey is the BLAKE3 key for segment digests: the ASCII domain
// name zero-padded to 32 bytes. Changing it invalidates every stored
// digest.
var domainKey = [32]byte{
	'e', 'd', 'i', '.', 's', 'e', 'g', 'm', 'e', 'n', 't',
}

// canonical is the delimiter-independent form that is hashed.
type canonical struct {
	ID       string                  `json:"id"`
	Elements []segment.RecordElement `json:"elements"`
}

// Of returns the digest of seg.
func Of(seg *segment.Segment) Digest {
	record := seg.Record()
	data, err := codec.Marshal(canonical{ID: record.ID, Elements: record.Elements})
	if err != nil {
		// Strings, string slices, and string pointers always encode.
		panic("digest: encoding canonical segment: " + err.Error())
	}
	return keyedHash(data)
}

// Parse parses a 64-character hex string into a Digest.
func Parse(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing segment digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("segment digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}

// String returns the hex encoding. This is the form used in edit
// scripts, logs, and CLI output.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns "seg-" followed by the first 12 hex characters, for
// display where the full digest is too long.
func (d Digest) Short() string {
	return "seg-" + hex.EncodeToString(d[:6])
}

// IsZero reports whether d is the zero value.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return nil, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input
// produces the zero value.
func (d *Digest) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*d = Digest{}
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func keyedHash(data []byte) Digest {
	// NewKeyed fails only for a key that is not 32 bytes.
	hasher, err := blake3.NewKeyed(domainKey[:])
	if err != nil {
		panic("digest: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}
