// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment_test

import (
	"slices"
	"testing"

	"github.com/bureau-foundation/edi/lib/segment"
)

func TestParseComposite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw       string
		values    []string
		wantEmpty bool
	}{
		{"", []string{""}, true},
		{"::", []string{"", "", ""}, true},
		{"1::a", []string{"1", "", "a"}, false},
		{"::a", []string{"", "", "a"}, false},
		{"a", []string{"a"}, false},
	}

	for _, test := range tests {
		composite := segment.ParseComposite(test.raw, ':')
		if got := composite.Values(); !slices.Equal(got, test.values) {
			t.Errorf("ParseComposite(%q).Values() = %q, want %q", test.raw, got, test.values)
		}
		if got := composite.IsEmpty(); got != test.wantEmpty {
			t.Errorf("ParseComposite(%q).IsEmpty() = %v, want %v", test.raw, got, test.wantEmpty)
		}
		if got := composite.Join(':'); got != test.raw {
			t.Errorf("ParseComposite(%q).Join(':') = %q", test.raw, got)
		}
	}
}

func TestCompositeAccess(t *testing.T) {
	t.Parallel()

	composite := segment.NewComposite("BB", "5")

	if got, ok := composite.Value(1); !ok || got != "5" {
		t.Errorf("Value(1) = (%q, %v), want (\"5\", true)", got, ok)
	}
	for _, index := range []int{-1, 2} {
		if got, ok := composite.Value(index); ok || got != "" {
			t.Errorf("Value(%d) = (%q, %v), want absent", index, got, ok)
		}
	}
	if got := composite.At(0); got != "BB" {
		t.Errorf("At(0) = %q, want %q", got, "BB")
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("At(2) on a two-value composite did not panic")
			}
		}()
		composite.At(2)
	}()
}

func TestCompositeValuesIsACopy(t *testing.T) {
	t.Parallel()

	source := []string{"A", "B"}
	composite := segment.NewComposite(source...)
	source[0] = "X"

	values := composite.Values()
	values[1] = "Y"

	if got := composite.Join(':'); got != "A:B" {
		t.Errorf("composite = %q after caller mutation, want %q", got, "A:B")
	}
}

func TestSimple(t *testing.T) {
	t.Parallel()

	simple := segment.NewSimple("")
	if !simple.IsEmpty() || simple.Len() != 1 || simple.Kind() != segment.KindSimple {
		t.Errorf("NewSimple(\"\") = empty %v len %d kind %v", simple.IsEmpty(), simple.Len(), simple.Kind())
	}
	if segment.NewSimple("x").IsEmpty() {
		t.Error("NewSimple(\"x\").IsEmpty() = true")
	}
}
