// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bureau-foundation/edi/lib/delimiter"
	"github.com/bureau-foundation/edi/lib/refdes"
	"github.com/bureau-foundation/edi/lib/segment"
)

func TestMarshalDeterministic(t *testing.T) {
	seg := segment.Parse("TST*AA:1:1*BB:5*ZZ~", delimiter.X12())

	first, err := MarshalSegment(seg)
	if err != nil {
		t.Fatalf("first MarshalSegment: %v", err)
	}
	second, err := MarshalSegment(seg.Clone())
	if err != nil {
		t.Fatalf("second MarshalSegment: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestSegmentRoundtrip(t *testing.T) {
	for _, raw := range []string{
		"TST*AA:1:1*BB:5*ZZ~",
		"TST&AA!1!1&BB!5&ZZ",
		"AAA",
		"N1*PR**:~",
		"TST*A~B~",
		"T~S*A~",
	} {
		set := delimiter.X12()
		if strings.Contains(raw, "&") {
			set = delimiter.New('+', '&', '!')
		}
		original := segment.Parse(raw, set)

		data, err := MarshalSegment(original)
		if err != nil {
			t.Fatalf("MarshalSegment(%q): %v", raw, err)
		}
		decoded, err := UnmarshalSegment(data)
		if err != nil {
			t.Fatalf("UnmarshalSegment(%q): %v", raw, err)
		}
		if decoded.String() != original.String() {
			t.Errorf("roundtrip of %q = %q, want %q", raw, decoded.String(), original.String())
		}
		if decoded.Delimiters() != set {
			t.Errorf("roundtrip of %q delimiters = %v, want %v", raw, decoded.Delimiters(), set)
		}
	}
}

func TestTextMarshalersEncodeAsStrings(t *testing.T) {
	data, err := Marshal(segment.Value{RefDes: refdes.MustParse("TST04-2"), Value: "5"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	diagnostic, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(diagnostic, `"TST04-2"`) {
		t.Errorf("Diagnose = %s, want ref encoded as a text string", diagnostic)
	}

	data, err = MarshalSegment(segment.Parse("TST*A~", delimiter.X12()))
	if err != nil {
		t.Fatalf("MarshalSegment: %v", err)
	}
	diagnostic, err = Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(diagnostic, `"~*:"`) {
		t.Errorf("Diagnose = %s, want delimiters encoded as a text string", diagnostic)
	}
}

func TestSegmentSequence(t *testing.T) {
	segments := []*segment.Segment{
		segment.Parse("ST*837*0001~", delimiter.X12()),
		segment.Parse("NM1*85*2*CLINIC~", delimiter.X12()),
		segment.Parse("SE*3*0001~", delimiter.X12()),
	}

	var buffer bytes.Buffer
	if err := WriteSegments(&buffer, segments...); err != nil {
		t.Fatalf("WriteSegments: %v", err)
	}

	decoded, err := ReadSegments(&buffer)
	if err != nil {
		t.Fatalf("ReadSegments: %v", err)
	}
	if len(decoded) != len(segments) {
		t.Fatalf("ReadSegments returned %d segments, want %d", len(decoded), len(segments))
	}
	for i := range segments {
		if decoded[i].String() != segments[i].String() {
			t.Errorf("segment %d = %q, want %q", i, decoded[i].String(), segments[i].String())
		}
	}
}

func TestReadSegmentsEmpty(t *testing.T) {
	segments, err := ReadSegments(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("ReadSegments(empty): %v", err)
	}
	if len(segments) != 0 {
		t.Errorf("ReadSegments(empty) = %d segments, want 0", len(segments))
	}
}

func TestUnmarshalSegmentRejectsInvalidRecord(t *testing.T) {
	data, err := Marshal(map[string]any{
		"id":         "TST",
		"delimiters": "~*:",
		"elements":   []any{map[string]any{"value": "A*B"}},
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, err := UnmarshalSegment(data); err == nil {
		t.Error("UnmarshalSegment accepted a value containing the element separator")
	}

	if _, err := UnmarshalSegment([]byte{0xff}); err == nil {
		t.Error("UnmarshalSegment accepted invalid CBOR")
	}
}

func TestDecodeIntoAnyUsesStringKeys(t *testing.T) {
	data, err := MarshalSegment(segment.Parse("TST*A:B~", delimiter.X12()))
	if err != nil {
		t.Fatalf("MarshalSegment: %v", err)
	}
	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	record, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded type = %T, want map[string]any", decoded)
	}
	if record["id"] != "TST" {
		t.Errorf("decoded id = %v, want TST", record["id"])
	}
}

func TestDiagnoseFirst(t *testing.T) {
	var sequence bytes.Buffer
	first := segment.Parse("TST*AA~", delimiter.X12())
	second := segment.Parse("REF*ZZ~", delimiter.X12())
	if err := WriteSegments(&sequence, first, second); err != nil {
		t.Fatalf("WriteSegments: %v", err)
	}

	notation, remaining, err := DiagnoseFirst(sequence.Bytes())
	if err != nil {
		t.Fatalf("DiagnoseFirst: %v", err)
	}
	if !strings.Contains(notation, `"TST"`) {
		t.Errorf("first item notation %q does not contain \"TST\"", notation)
	}
	if len(remaining) == 0 {
		t.Fatal("expected remaining bytes after first item")
	}

	notation, remaining, err = DiagnoseFirst(remaining)
	if err != nil {
		t.Fatalf("DiagnoseFirst second: %v", err)
	}
	if !strings.Contains(notation, `"REF"`) {
		t.Errorf("second item notation %q does not contain \"REF\"", notation)
	}
	if len(remaining) != 0 {
		t.Errorf("expected no remaining bytes, got %d", len(remaining))
	}
}
