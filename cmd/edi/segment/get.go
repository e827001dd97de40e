// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/edi/cmd/edi/cli"
)

type getParams struct {
	InputOptions
}

func getCommand() *cli.Command {
	var params getParams

	return &cli.Command{
		Name:    "get",
		Summary: "Print the value at a reference designator",
		Description: `Print the value addressed by a reference designator.

A whole composite element prints with its sub-element separator
(TST02 of "TST*AA:1:1*BB:5*ZZ~" is "BB:5"). A sub-element number on a
simple element is ignored.

An address beyond the end of the segment is not an error: nothing is
printed and the exit status is 1. A designator for another segment id
is an error.`,
		Usage: "edi segment get <ref> [text] [flags]",
		Examples: []cli.Example{
			{
				Description: "Second sub-element of the fourth element",
				Command:     "edi segment get TST02-2 'TST*AA:1:1*BB:5*ZZ~'",
			},
			{
				Description: "Test for presence in a script",
				Command:     "edi segment get REF02 --text \"$line\" >/dev/null || echo 'no REF02'",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("get", &params)
		},
		Run: func(args []string) error {
			return runGet(&params, args, standardStreams())
		},
	}
}

func runGet(params *getParams, args []string, endpoints streams) error {
	if len(args) == 0 {
		return fmt.Errorf("get: reference designator required")
	}
	positional, err := optionalArg("get", args[1:])
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

	value, found, err := seg.Get(args[0])
	if err != nil {
		return err
	}
	if !found {
		s.logger.Debug("address not present", "ref", args[0], "elements", seg.Len())
		return &cli.ExitError{Code: 1}
	}
	_, err = fmt.Fprintln(endpoints.stdout, value)
	return err
}
