// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/edi/cmd/edi/cli"
	"github.com/bureau-foundation/edi/lib/delimiter"
)

type profilesParams struct {
	cli.JSONOutput
	ConfigPath string `json:"-" flag:"config" desc:"config file (default: $EDI_CONFIG, else built-in profiles)"`
}

// profileEntry is one row of "edi profiles".
type profileEntry struct {
	Name        string        `json:"name"`
	Delimiters  delimiter.Set `json:"delimiters"`
	Description string        `json:"description,omitempty"`
	Default     bool          `json:"default,omitempty"`
	Collisions  []string      `json:"collisions,omitempty"`
}

// ProfilesCommand returns the "profiles" command.
func ProfilesCommand() *cli.Command {
	var params profilesParams

	return &cli.Command{
		Name:    "profiles",
		Summary: "List the configured delimiter profiles",
		Description: `List the delimiter profiles available to --profile and --to-profile.

The built-in profiles are x12 ("~*:") and edifact ("'+:"). A config
file (--config, or the path in EDI_CONFIG) may redefine them and add
more. The default profile is marked with "*". Profiles in which two
roles share a character are flagged.`,
		Usage: "edi profiles [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("profiles", &params)
		},
		Run: func(args []string) error {
			if err := cli.MaxArgs("profiles", args, 0); err != nil {
				return err
			}
			return runProfiles(&params, standardStreams())
		},
	}
}

func runProfiles(params *profilesParams, endpoints streams) error {
	options := InputOptions{ConfigPath: params.ConfigPath}
	cfg, err := options.loadConfig()
	if err != nil {
		return err
	}

	entries := make([]profileEntry, 0, len(cfg.Profiles))
	for _, name := range cfg.ProfileNames() {
		profile := cfg.Profiles[name]
		entry := profileEntry{
			Name:        name,
			Delimiters:  profile.Delimiters,
			Description: profile.Description,
			Default:     name == cfg.DefaultProfile,
		}
		for _, collision := range profile.Delimiters.Collisions() {
			entry.Collisions = append(entry.Collisions, collision.String())
		}
		entries = append(entries, entry)
	}

	if done, err := params.EmitJSON(endpoints.stdout, entries); done {
		return err
	}

	writer := tabwriter.NewWriter(endpoints.stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "NAME\tDELIMITERS\tDESCRIPTION\n")
	for _, entry := range entries {
		marker := " "
		if entry.Default {
			marker = "*"
		}
		description := entry.Description
		if len(entry.Collisions) > 0 {
			description = strings.TrimSpace(description + " (ambiguous: " + strings.Join(entry.Collisions, ", ") + ")")
		}
		fmt.Fprintf(writer, "%s %s\t%s\t%s\n", marker, entry.Name, entry.Delimiters, description)
	}
	return writer.Flush()
}
