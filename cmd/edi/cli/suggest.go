// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// maxSuggestDistance is the largest edit distance still offered as a
// "did you mean" suggestion.
const maxSuggestDistance = 3

// Suggest returns the candidate closest to unknown by edit distance, or
// "" when none is within three edits. Ties go to the earliest candidate.
// Commands use it for subcommand and flag typos; the segment commands
// use it for mistyped profile names.
func Suggest(unknown string, candidates []string) string {
	best := ""
	bestDistance := maxSuggestDistance + 1
	for _, candidate := range candidates {
		if distance := editDistance(unknown, candidate); distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best
}

func suggestCommand(unknown string, commands []*Command) string {
	names := make([]string, len(commands))
	for i, command := range commands {
		names[i] = command.Name
	}
	return Suggest(unknown, names)
}

// suggestFlag returns "--name" for the defined flag closest to the first
// unrecognized long flag in args, or "" when there is none.
func suggestFlag(args []string, flagSet *pflag.FlagSet) string {
	unknown, ok := firstUnknownFlag(args, flagSet)
	if !ok {
		return ""
	}

	var defined []string
	flagSet.VisitAll(func(f *pflag.Flag) {
		defined = append(defined, f.Name)
	})
	if best := Suggest(unknown, defined); best != "" {
		return "--" + best
	}
	return ""
}

// firstUnknownFlag returns the bare name of the first "--name" or
// "--name=value" argument that flagSet does not define. Arguments after
// "--" are positional.
func firstUnknownFlag(args []string, flagSet *pflag.FlagSet) (string, bool) {
	for _, arg := range args {
		if arg == "--" {
			return "", false
		}
		name, isLong := strings.CutPrefix(arg, "--")
		if !isLong {
			continue
		}
		name, _, _ = strings.Cut(name, "=")
		if flagSet.Lookup(name) == nil {
			return name, true
		}
	}
	return "", false
}

// editDistance is the Levenshtein distance between a and b counted in
// runes, so a typo in a delimiter character costs one edit.
func editDistance(a, b string) int {
	source, target := []rune(a), []rune(b)
	if len(source) < len(target) {
		source, target = target, source
	}

	previous := make([]int, len(target)+1)
	current := make([]int, len(target)+1)
	for j := range previous {
		previous[j] = j
	}

	for i, sourceRune := range source {
		current[0] = i + 1
		for j, targetRune := range target {
			substitution := previous[j]
			if sourceRune != targetRune {
				substitution++
			}
			current[j+1] = min(previous[j+1]+1, current[j]+1, substitution)
		}
		previous, current = current, previous
	}
	return previous[len(target)]
}
