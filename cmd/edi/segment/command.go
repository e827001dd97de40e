// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package segment implements the "edi segment" CLI subcommands and
// "edi profiles".
//
// Every subcommand that reads a segment embeds [InputOptions]: the text
// comes from --text, a positional argument, or stdin, and is parsed
// with the delimiters of --delimiters or of the selected profile. The
// work of each subcommand is done by a run function that takes its
// params and I/O endpoints, so it is tested without a process.
package segment

import (
	"github.com/bureau-foundation/edi/cmd/edi/cli"
)

// Command returns the "segment" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "segment",
		Summary: "Parse, address, edit, and re-format segments",
		Description: `Parse, address, edit, and re-format a single EDI segment.

The segment is read from --text, the last positional argument, or stdin.
One trailing newline is trimmed from the input unless --keep-newline is
given. At most one trailing segment terminator is stripped when parsing
and restored when formatting.

Delimiters come from --delimiters (three characters: terminator,
element separator, sub-element separator), else from --profile, else
from the config's default profile (x12: "~*:").

Reference designators name a value: TST04 is the fourth element of a
TST segment, TST04-2 the second sub-element of that element. Element
and sub-element numbers are 1-based.`,
		Subcommands: []*cli.Command{
			parseCommand(),
			getCommand(),
			setCommand(),
			formatCommand(),
			showCommand(),
			digestCommand(),
			editCommand(),
			encodeCommand(),
			decodeCommand(),
		},
	}
}
