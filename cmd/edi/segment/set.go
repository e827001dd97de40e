// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/edi/cmd/edi/cli"
	"github.com/bureau-foundation/edi/lib/refdes"
)

type setParams struct {
	InputOptions
}

// assignment is one parsed <ref>=<value> argument.
type assignment struct {
	ref   refdes.RefDes
	value string
}

func setCommand() *cli.Command {
	var params setParams

	return &cli.Command{
		Name:    "set",
		Summary: "Replace values and print the edited segment",
		Description: `Replace one or more addressed values and print the edited segment.

Each argument is <ref>=<value>. A whole-element assignment that contains
the sub-element separator makes the element a composite; one that does
not makes it simple. A sub-element assignment requires the element to
already be a composite.

Assignments never extend the segment: an element or sub-element beyond
the current end is an error. A value containing the element separator
is rejected, as is a sub-element value containing the sub-element
separator. All assignments are applied or none
are. The segment text comes from --text or stdin, since every
positional argument is an assignment.`,
		Usage: "edi segment set <ref>=<value>... [flags]",
		Examples: []cli.Example{
			{
				Description: "Replace an element and make another a composite",
				Command:     "edi segment set TST03=YY TST02=CC:2 --text 'TST*AA:1:1*BB:5*ZZ~'",
			},
			{
				Description: "Edit a sub-element from a pipeline",
				Command:     "echo 'TST*AA:1:1*BB:5*ZZ~' | edi segment set TST02-2=6",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("set", &params)
		},
		Run: func(args []string) error {
			return runSet(&params, args, standardStreams())
		},
	}
}

func runSet(params *setParams, args []string, endpoints streams) error {
	if len(args) == 0 {
		return fmt.Errorf("set: at least one <ref>=<value> argument required")
	}
	assignments, err := parseAssignments(args)
	if err != nil {
		return err
	}

	s, err := params.open(endpoints)
	if err != nil {
		return err
	}
	seg, err := s.read(&params.InputOptions, "", endpoints.stdin)
	if err != nil {
		return err
	}

	working := seg.Clone()
	for _, assignment := range assignments {
		if err := working.Assign(assignment.ref, assignment.value); err != nil {
			return fmt.Errorf("set %s: %w", assignment.ref, err)
		}
		s.logger.Debug("value assigned", "ref", assignment.ref.String(), "value", assignment.value)
	}
	return writeSegment(endpoints.stdout, working.String())
}

// parseAssignments splits each argument at its first "=" and parses
// the reference designator. All arguments are checked before any is
// applied.
func parseAssignments(args []string) ([]assignment, error) {
	assignments := make([]assignment, 0, len(args))
	for _, arg := range args {
		refText, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("set: argument %q is not <ref>=<value>", arg)
		}
		ref, err := refdes.Parse(refText)
		if err != nil {
			return nil, fmt.Errorf("set: %w", err)
		}
		assignments = append(assignments, assignment{ref: ref, value: value})
	}
	return assignments, nil
}
