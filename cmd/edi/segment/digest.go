// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/edi/cmd/edi/cli"
	"github.com/bureau-foundation/edi/lib/digest"
)

type digestParams struct {
	InputOptions
	cli.JSONOutput
	Short bool `json:"-" flag:"short" desc:"print the short form (seg- plus 12 hex digits)"`
}

// digestResult is the --json output of "edi segment digest".
type digestResult struct {
	ID     string        `json:"id"`
	Digest digest.Digest `json:"digest"`
	Short  string        `json:"short"`
}

func digestCommand() *cli.Command {
	var params digestParams

	return &cli.Command{
		Name:    "digest",
		Summary: "Print the content digest of a segment",
		Description: `Print the BLAKE3 content digest of a segment.

The digest covers the segment id and the element structure and values.
It does not cover the delimiters or whether a terminator was present,
so the same segment written with X12 and EDIFACT delimiters has the
same digest. Edit scripts use it as the expect_digest guard.`,
		Usage: "edi segment digest [text] [flags]",
		Examples: []cli.Example{
			{
				Description: "Digest for an edit script guard",
				Command:     "edi segment digest 'TST*AA:1:1*BB:5*ZZ~'",
			},
			{
				Description: "The same content under EDIFACT delimiters",
				Command:     "edi segment digest --profile edifact \"TST+AA:1:1+BB:5+ZZ'\"",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("digest", &params)
		},
		Run: func(args []string) error {
			return runDigest(&params, args, standardStreams())
		},
	}
}

func runDigest(params *digestParams, args []string, endpoints streams) error {
	positional, err := optionalArg("digest", args)
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

	sum := digest.Of(seg)
	result := digestResult{ID: seg.ID(), Digest: sum, Short: sum.Short()}
	if done, err := params.EmitJSON(endpoints.stdout, result); done {
		return err
	}

	if params.Short {
		_, err = fmt.Fprintln(endpoints.stdout, sum.Short())
		return err
	}
	_, err = fmt.Fprintln(endpoints.stdout, sum)
	return err
}
