// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1}, // substitution
		{"abc", "ab", 1},  // deletion
		{"ab", "abc", 1},  // insertion
		{"abc", "bac", 2}, // transposition (counted as 2 edits)
		{"kitten", "sitting", 3},
		{"segment", "segmnet", 2},
		{"digest", "digst", 1},
		{"~*:", "~*;", 1}, // delimiter typo
		{"é*:", "e*:", 1}, // multi-byte rune substitution
	}

	for _, test := range tests {
		t.Run(test.a+"->"+test.b, func(t *testing.T) {
			got := editDistance(test.a, test.b)
			if got != test.want {
				t.Errorf("editDistance(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestEditDistance_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"abc", "abd"},
		{"format", "fromat"},
		{"decode", "decdoe"},
	}

	for _, pair := range pairs {
		forward := editDistance(pair[0], pair[1])
		reverse := editDistance(pair[1], pair[0])
		if forward != reverse {
			t.Errorf("editDistance(%q, %q) = %d, but reverse = %d",
				pair[0], pair[1], forward, reverse)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "parse"},
		{Name: "format"},
		{Name: "digest"},
		{Name: "encode"},
		{Name: "decode"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"prase", "parse"},
		{"fromat", "format"},
		{"digset", "digest"},
		{"encod", "encode"},
		{"decodee", "decode"},
		{"zzzzzzzzz", ""},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := suggestCommand(test.input, commands)
			if got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	newFlags := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("format", pflag.ContinueOnError)
		flagSet.String("terminator", "", "")
		flagSet.String("element", "", "")
		flagSet.String("to-profile", "", "")
		flagSet.Bool("json", false, "")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"typo", []string{"--termnator", "+"}, "--terminator"},
		{"with value", []string{"--elemnt=&"}, "--element"},
		{"known flag skipped", []string{"--json", "--to-profle", "edifact"}, "--to-profile"},
		{"nothing close", []string{"--zzzzzzzzzzzz"}, ""},
		{"after terminator", []string{"--", "--termnator"}, ""},
		{"positional only", []string{"TST*AA~"}, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := suggestFlag(test.args, newFlags())
			if got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	profiles := []string{"edifact", "hl7", "x12"}

	tests := []struct {
		input string
		want  string
	}{
		{"x21", "x12"},
		{"edifac", "edifact"},
		{"hl", "hl7"},
		{"tradacoms", ""},
		{"", "hl7"},
	}

	for _, test := range tests {
		if got := Suggest(test.input, profiles); got != test.want {
			t.Errorf("Suggest(%q) = %q, want %q", test.input, got, test.want)
		}
	}

	if got := Suggest("x12", nil); got != "" {
		t.Errorf("Suggest with no candidates = %q, want empty", got)
	}
}
