// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/edi/cmd/edi/cli"
	"github.com/bureau-foundation/edi/lib/segment"
)

type parseParams struct {
	InputOptions
	cli.JSONOutput
}

func parseCommand() *cli.Command {
	var params parseParams

	return &cli.Command{
		Name:    "parse",
		Summary: "Print the element structure of a segment",
		Description: `Parse a segment and print its id, delimiters, and elements.

Each element is listed with its 1-based position, its kind (simple or
composite), and its value. With --json the structural record is printed
instead; "edi segment encode" produces the same record in CBOR.`,
		Usage: "edi segment parse [text] [flags]",
		Examples: []cli.Example{
			{
				Description: "Show the structure of a segment with a composite",
				Command:     "edi segment parse 'TST*AA:1:1*BB:5*ZZ~'",
			},
			{
				Description: "Structural record as JSON",
				Command:     "edi segment parse --json --profile edifact \"UNH+1+ORDERS:D:96A:UN'\"",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("parse", &params)
		},
		Run: func(args []string) error {
			return runParse(&params, args, standardStreams())
		},
	}
}

func runParse(params *parseParams, args []string, endpoints streams) error {
	positional, err := optionalArg("parse", args)
	if err != nil {
		return err
	}
	s, err := params.open(endpoints)
	if err != nil {
		return err
	}
	seg, err := s.read(&params.InputOptions, positional, endpoints.stdin)
	if err != nil {
		return err
	}

	if done, err := params.EmitJSON(endpoints.stdout, seg.Record()); done {
		return err
	}

	fmt.Fprintf(endpoints.stdout, "id:          %s\n", seg.ID())
	fmt.Fprintf(endpoints.stdout, "delimiters:  %s\n", seg.Delimiters())
	fmt.Fprintf(endpoints.stdout, "terminated:  %t\n", seg.Terminated())
	fmt.Fprintf(endpoints.stdout, "elements:    %d\n", seg.Len())
	if seg.Len() == 0 {
		return nil
	}

	fmt.Fprintln(endpoints.stdout)
	writer := tabwriter.NewWriter(endpoints.stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintf(writer, "POS\tKIND\tVALUE\n")
	for index, element := range seg.Elements() {
		fmt.Fprintf(writer, "%02d\t%s\t%s\n", index+1, element.Kind(), elementText(element, seg))
	}
	return writer.Flush()
}

// elementText renders an element with the segment's own sub-element
// separator.
func elementText(element segment.Element, seg *segment.Segment) string {
	switch element := element.(type) {
	case segment.Simple:
		return element.Value()
	case segment.Composite:
		return element.Join(seg.Delimiters().SubElement)
	default:
		return ""
	}
}
