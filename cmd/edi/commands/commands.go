// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete edi command tree.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/edi/cmd/edi/cli"
	segmentcmd "github.com/bureau-foundation/edi/cmd/edi/segment"
	"github.com/bureau-foundation/edi/lib/version"
)

// Root builds and returns the complete edi command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "edi",
		Description: `edi: parse, address, and re-format EDI segments.

A segment is a segment id followed by elements separated by the element
separator and ended by the segment terminator. An element may be a
composite whose sub-elements are separated by the sub-element separator.
Values are addressed by reference designator: TST04 is the fourth
element of a TST segment, TST04-2 the second sub-element of it.`,
		Subcommands: []*cli.Command{
			segmentcmd.Command(),
			segmentcmd.ProfilesCommand(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Show every addressable value of an X12 segment",
				Command:     "edi segment show 'N1*PR*ACME INC*FI*123456789~'",
			},
			{
				Description: "Read one sub-element",
				Command:     "edi segment get TST02-2 'TST*AA:1:1*BB:5*ZZ~'",
			},
			{
				Description: "Re-delimit an X12 segment for EDIFACT tooling",
				Command:     "echo 'TST*AA:1*BB~' | edi segment format --to-profile edifact",
			},
			{
				Description: "List the configured delimiter profiles",
				Command:     "edi profiles",
			},
		},
	}
}

type versionParams struct {
	cli.JSONOutput
	Full bool `json:"-" flag:"full" desc:"include Go version and platform"`
}

func versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Usage:   "edi version [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(args []string) error {
			if err := cli.MaxArgs("version", args, 0); err != nil {
				return err
			}
			if done, err := params.EmitJSON(os.Stdout, version.Build()); done {
				return err
			}
			if params.Full {
				fmt.Printf("edi %s\n", version.Full())
				return nil
			}
			fmt.Printf("edi %s\n", version.Info())
			return nil
		},
	}
}
