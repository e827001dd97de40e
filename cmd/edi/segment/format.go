// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/edi/cmd/edi/cli"
	"github.com/bureau-foundation/edi/lib/delimiter"
	"github.com/bureau-foundation/edi/lib/segment"
)

type formatParams struct {
	InputOptions
	To                  delimiter.Set `json:"-" flag:"to" desc:"output delimiter set (terminator, element, sub-element)"`
	ToProfile           string        `json:"-" flag:"to-profile" desc:"output delimiters from a named profile"`
	Terminator          string        `json:"-" flag:"terminator" desc:"output segment terminator"`
	ElementSeparator    string        `json:"-" flag:"element-separator" desc:"output element separator"`
	SubElementSeparator string        `json:"-" flag:"sub-element-separator" desc:"output sub-element separator"`
}

func formatCommand() *cli.Command {
	var params formatParams

	return &cli.Command{
		Name:    "format",
		Summary: "Re-serialize a segment with other delimiters",
		Description: `Re-serialize a segment, optionally with replacement delimiters.

Output delimiters start from the input delimiters. --to or --to-profile
replaces all three; --terminator, --element-separator, and
--sub-element-separator then replace single roles. With no output
flags the segment is printed as parsed. The output always ends with
exactly one terminator.

Values are not escaped: a value containing a replacement delimiter is
written as-is and the output will not re-parse to the same structure.
A warning is logged when two output delimiters coincide.`,
		Usage: "edi segment format [text] [flags]",
		Examples: []cli.Example{
			{
				Description: "Replace every delimiter",
				Command:     "edi segment format --to '+&!' 'TST*AA:1:1*BB:5*ZZ~'",
			},
			{
				Description: "Convert X12 delimiters to the EDIFACT profile",
				Command:     "edi segment format --to-profile edifact 'TST*AA:1*BB~'",
			},
			{
				Description: "Only change the terminator",
				Command:     "edi segment format --terminator '|' 'TST*AA~'",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("format", &params)
		},
		Run: func(args []string) error {
			return runFormat(&params, args, standardStreams())
		},
	}
}

func runFormat(params *formatParams, args []string, endpoints streams) error {
	positional, err := optionalArg("format", args)
	if err != nil {
		return err
	}
	if !params.To.IsZero() && params.ToProfile != "" {
		return fmt.Errorf("format: --to and --to-profile are mutually exclusive")
	}

	s, err := params.open(endpoints)
	if err != nil {
		return err
	}
	seg, err := s.read(&params.InputOptions, positional, endpoints.stdin)
	if err != nil {
		return err
	}

	output, err := params.outputDelimiters(s, seg.Delimiters())
	if err != nil {
		return err
	}
	if output != seg.Delimiters() {
		if err := s.checkDelimiters(output); err != nil {
			return err
		}
	}
	return writeSegment(endpoints.stdout, seg.Format(segment.WithDelimiters(output)))
}

// outputDelimiters applies the output flags over input.
func (p *formatParams) outputDelimiters(s *session, input delimiter.Set) (delimiter.Set, error) {
	output := input
	switch {
	case !p.To.IsZero():
		output = p.To
	case p.ToProfile != "":
		profile, err := lookupProfile(s.config, p.ToProfile)
		if err != nil {
			return delimiter.Set{}, err
		}
		output = profile
	}

	terminator, err := singleRune("--terminator", p.Terminator)
	if err != nil {
		return delimiter.Set{}, err
	}
	element, err := singleRune("--element-separator", p.ElementSeparator)
	if err != nil {
		return delimiter.Set{}, err
	}
	subElement, err := singleRune("--sub-element-separator", p.SubElementSeparator)
	if err != nil {
		return delimiter.Set{}, err
	}
	return output.Override(terminator, element, subElement), nil
}

// singleRune returns the only character of value, or 0 when value is
// empty.
func singleRune(flag, value string) (rune, error) {
	if value == "" {
		return 0, nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("%s %q: want exactly one character", flag, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}
