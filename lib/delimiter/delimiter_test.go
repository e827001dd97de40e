// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package delimiter

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Set
		wantErr bool
	}{
		{name: "x12", input: "~*:", want: New('~', '*', ':')},
		{name: "arbitrary", input: "+&!", want: New('+', '|', '!')},
		{name: "newline terminator", input: "\n|^", want: New('\n', '|', '^')},
		{name: "multibyte", input: "§*:", want: New('§', '*', ':')},
		{name: "empty", input: "", wantErr: true},
		{name: "too short", input: "~*", wantErr: true},
		{name: "too long", input: "~*:^", wantErr: true},
		{name: "invalid utf8", input: "~*\xff", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(test.input)
			if test.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %+v, want error", test.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", test.input, err)
			}
			if got != test.want {
				t.Errorf("Parse(%q) = %+v, want %+v", test.input, got, test.want)
			}
			if got.String() != test.input {
				t.Errorf("String() = %q, want %q", got.String(), test.input)
			}
		})
	}
}

func TestX12(t *testing.T) {
	set := X12()
	if set.String() != "~*:" {
		t.Errorf("X12().String() = %q, want %q", set.String(), "~*:")
	}
	if set.Ambiguous() {
		t.Errorf("X12() reported ambiguous: %v", set.Collisions())
	}
}

func TestOverride(t *testing.T) {
	base := X12()

	tests := []struct {
		name                             string
		terminator, element, subElement rune
		want                             string
	}{
		{name: "no overrides", want: "~*:"},
		{name: "terminator only", terminator: '\n', want: "\n*:"},
		{name: "element only", element: '|', want: "~|:"},
		{name: "all", terminator: '+', element: '&', subElement: '!', want: "+&!"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := base.Override(test.terminator, test.element, test.subElement)
			if got.String() != test.want {
				t.Errorf("Override = %q, want %q", got.String(), test.want)
			}
		})
	}

	if base.String() != "~*:" {
		t.Errorf("Override mutated receiver: %q", base.String())
	}
}

func TestCollisions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  Set
		want []Collision
	}{
		{name: "distinct", set: X12()},
		{
			name: "element equals sub-element",
			set:  New('~', '*', '*'),
			want: []Collision{{First: RoleElement, Second: RoleSubElement, Char: '*'}},
		},
		{
			name: "all equal",
			set:  New('*', '*', '*'),
			want: []Collision{
				{First: RoleTerminator, Second: RoleElement, Char: '*'},
				{First: RoleTerminator, Second: RoleSubElement, Char: '*'},
				{First: RoleElement, Second: RoleSubElement, Char: '*'},
			},
		},
		{name: "unset roles ignored", set: Set{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := test.set.Collisions()
			if len(got) != len(test.want) {
				t.Fatalf("Collisions() = %v, want %v", got, test.want)
			}
			for i := range got {
				if got[i] != test.want[i] {
					t.Errorf("Collisions()[%d] = %v, want %v", i, got[i], test.want[i])
				}
			}
			if test.set.Ambiguous() != (len(test.want) > 0) {
				t.Errorf("Ambiguous() = %v, want %v", test.set.Ambiguous(), len(test.want) > 0)
			}
		})
	}
}

func TestCheckUnambiguous(t *testing.T) {
	if err := X12().CheckUnambiguous(); err != nil {
		t.Errorf("X12().CheckUnambiguous() = %v, want nil", err)
	}

	err := New('~', ':', ':').CheckUnambiguous()
	if err == nil {
		t.Fatal("expected error for colliding element and sub-element")
	}
	if !strings.Contains(err.Error(), "element and sub_element") {
		t.Errorf("error %q does not name the colliding roles", err)
	}
}

func TestTextMarshaling(t *testing.T) {
	type wrapper struct {
		Delimiters Set `json:"delimiters"`
	}

	data, err := json.Marshal(wrapper{Delimiters: New('+', '|', '!')})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"delimiters":"+|!"}` {
		t.Errorf("Marshal = %s", data)
	}

	var decoded wrapper
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Delimiters != New('+', '|', '!') {
		t.Errorf("roundtrip = %+v", decoded.Delimiters)
	}

	if err := json.Unmarshal([]byte(`{"delimiters":"~*"}`), &decoded); err == nil {
		t.Error("expected error for two-character delimiter text")
	}
}
