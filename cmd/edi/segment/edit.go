// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/edi/cmd/edi/cli"
	"github.com/bureau-foundation/edi/lib/digest"
	"github.com/bureau-foundation/edi/lib/editscript"
	"github.com/bureau-foundation/edi/lib/refdes"
)

type editParams struct {
	InputOptions
	cli.JSONOutput
}

// editResult is the --json output of "edi segment edit".
type editResult struct {
	Script  string          `json:"script"`
	Segment string          `json:"segment"`
	Before  digest.Digest   `json:"before"`
	After   digest.Digest   `json:"after"`
	Changed bool            `json:"changed"`
	Applied []refdes.RefDes `json:"applied"`
}

func editCommand() *cli.Command {
	var params editParams

	return &cli.Command{
		Name:    "edit",
		Summary: "Apply a JSONC edit script to a segment",
		Description: `Apply an edit script to a segment and print the result.

An edit script is a JSON document (comments and trailing commas
allowed) with an optional "segment" id guard, an optional
"expect_digest" guard (see "edi segment digest"), and a "set" list of
{"ref", "value"} assignments:

  {
    "segment": "TST",
    "set": [
      {"ref": "TST03", "value": "YY"},  // replace an element
      {"ref": "TST02-2", "value": "6"},
    ],
  }

Guards are checked first. Assignments apply in order to a copy of the
segment; if any fails, nothing is printed and the error names the
failing step. A relative script path is resolved against the config's
script_dir when one is set. The segment text comes from --text or
stdin.`,
		Usage: "edi segment edit <script> [flags]",
		Examples: []cli.Example{
			{
				Description: "Apply a script to a segment from a pipeline",
				Command:     "echo 'TST*AA:1:1*BB:5*ZZ~' | edi segment edit fix-tst.jsonc",
			},
			{
				Description: "Report the digests and applied refs as JSON",
				Command:     "edi segment edit fix-tst.jsonc --json --text 'TST*AA:1:1*BB:5*ZZ~'",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("edit", &params)
		},
		Run: func(args []string) error {
			return runEdit(&params, args, standardStreams())
		},
	}
}

func runEdit(params *editParams, args []string, endpoints streams) error {
	if len(args) == 0 {
		return fmt.Errorf("edit: script path required")
	}
	if err := cli.MaxArgs("edit", args, 1); err != nil {
		return err
	}

	s, err := params.open(endpoints)
	if err != nil {
		return err
	}

	scriptPath := resolveScriptPath(args[0], s.config.ScriptDir)
	script, err := editscript.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	seg, err := s.read(&params.InputOptions, "", endpoints.stdin)
	if err != nil {
		return err
	}

	result, err := script.Apply(seg, s.logger.With("script", scriptPath))
	if err != nil {
		return err
	}

	output := editResult{
		Script:  scriptPath,
		Segment: seg.String(),
		Before:  result.Before,
		After:   result.After,
		Changed: result.Changed(),
		Applied: result.Applied,
	}
	if done, err := params.EmitJSON(endpoints.stdout, output); done {
		return err
	}
	return writeSegment(endpoints.stdout, seg.String())
}

// resolveScriptPath joins a relative path onto scriptDir. Absolute
// paths and an empty scriptDir leave path unchanged.
func resolveScriptPath(path, scriptDir string) string {
	if scriptDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(scriptDir, path)
}
