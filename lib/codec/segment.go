// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/bureau-foundation/edi/lib/segment"
)

// MarshalSegment encodes the structural record of seg.
func MarshalSegment(seg *segment.Segment) ([]byte, error) {
	data, err := Marshal(seg.Record())
	if err != nil {
		return nil, fmt.Errorf("encoding segment %q: %w", seg.ID(), err)
	}
	return data, nil
}

// UnmarshalSegment decodes a record produced by [MarshalSegment] and
// rebuilds the segment, validating it with [segment.FromRecord].
func UnmarshalSegment(data []byte) (*segment.Segment, error) {
	var record segment.Record
	if err := Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decoding segment record: %w", err)
	}
	return segment.FromRecord(record)
}

// WriteSegments encodes each segment as one item of a CBOR sequence.
func WriteSegments(w io.Writer, segments ...*segment.Segment) error {
	encoder := NewEncoder(w)
	for _, seg := range segments {
		if err := encoder.Encode(seg.Record()); err != nil {
			return fmt.Errorf("encoding segment %q: %w", seg.ID(), err)
		}
	}
	return nil
}

// ReadSegments decodes every segment record in a CBOR sequence until
// end of input. An empty input yields no segments and no error.
func ReadSegments(r io.Reader) ([]*segment.Segment, error) {
	decoder := NewDecoder(r)
	var segments []*segment.Segment
	for {
		var record segment.Record
		err := decoder.Decode(&record)
		if errors.Is(err, io.EOF) {
			return segments, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decoding segment record %d: %w", len(segments)+1, err)
		}
		seg, err := segment.FromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("segment record %d: %w", len(segments)+1, err)
		}
		segments = append(segments, seg)
	}
}
