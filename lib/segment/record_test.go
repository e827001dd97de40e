// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/edi/lib/delimiter"
	"github.com/bureau-foundation/edi/lib/segment"
)

func TestRecordRoundTrip(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"TST*AA:1:1*BB:5*ZZ~",
		"TST*AA**:~",
		"AAA",
		"TST*A~B~",
		"T~S*A~",
		"TST*A:B~C*D~~",
		isaSegment,
	} {
		original := segment.Parse(raw, delimiter.X12())

		data, err := json.Marshal(original.Record())
		if err != nil {
			t.Fatalf("Marshal(%q record): %v", raw, err)
		}
		var record segment.Record
		if err := json.Unmarshal(data, &record); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		rebuilt, err := segment.FromRecord(record)
		if err != nil {
			t.Fatalf("FromRecord(%s): %v", data, err)
		}

		if !rebuilt.Equal(original) {
			t.Errorf("FromRecord(%s) is not equal to Parse(%q)", data, raw)
		}
		if rebuilt.String() != original.String() {
			t.Errorf("FromRecord(%s).String() = %q, want %q", data, rebuilt.String(), original.String())
		}
		if rebuilt.Terminated() != original.Terminated() {
			t.Errorf("FromRecord(%s).Terminated() = %v, want %v", data, rebuilt.Terminated(), original.Terminated())
		}
	}
}

func TestRecordJSONShape(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(segment.Parse("TST*A*B:C*~", delimiter.X12()).Record())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"id":"TST","delimiters":"~*:","terminated":true,"elements":[{"value":"A"},{"components":["B","C"]},{"value":""}]}`
	if string(data) != want {
		t.Errorf("record JSON = %s, want %s", data, want)
	}
}

func TestFromRecordRejects(t *testing.T) {
	t.Parallel()

	value := func(s string) *string { return &s }

	tests := []struct {
		name   string
		record segment.Record
		want   string
	}{
		{
			name:   "incomplete delimiters",
			record: segment.Record{ID: "TST", Delimiters: delimiter.Set{Terminator: '~'}},
			want:   "incomplete delimiter set",
		},
		{
			name:   "delimiter in id",
			record: segment.Record{ID: "T*T", Delimiters: delimiter.X12()},
			want:   "in id",
		},
		{
			name: "both value and components",
			record: segment.Record{ID: "TST", Delimiters: delimiter.X12(), Elements: []segment.RecordElement{
				{Value: value("A"), Components: []string{"B", "C"}},
			}},
			want: "both value and components",
		},
		{
			name: "neither",
			record: segment.Record{ID: "TST", Delimiters: delimiter.X12(), Elements: []segment.RecordElement{
				{},
			}},
			want: "neither value nor components",
		},
		{
			name: "single component",
			record: segment.Record{ID: "TST", Delimiters: delimiter.X12(), Elements: []segment.RecordElement{
				{Components: []string{"B"}},
			}},
			want: "at least 2 components",
		},
		{
			name: "element separator in value",
			record: segment.Record{ID: "TST", Delimiters: delimiter.X12(), Elements: []segment.RecordElement{
				{Value: value("A*B")},
			}},
			want: segment.ErrDelimiterInValue.Error(),
		},
		{
			name: "separator in value",
			record: segment.Record{ID: "TST", Delimiters: delimiter.X12(), Elements: []segment.RecordElement{
				{Value: value("A:B")},
			}},
			want: segment.ErrDelimiterInValue.Error(),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := segment.FromRecord(test.record)
			if err == nil {
				t.Fatal("FromRecord succeeded, want error")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("FromRecord error = %q, want substring %q", err, test.want)
			}
		})
	}

	_, err := segment.FromRecord(tests[len(tests)-1].record)
	if !errors.Is(err, segment.ErrDelimiterInValue) {
		t.Errorf("FromRecord error = %v, want ErrDelimiterInValue", err)
	}
}
