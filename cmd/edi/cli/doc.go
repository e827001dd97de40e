// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the edi tool.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in
// cmd/edi/commands and dispatched via [Command.Execute], which handles
// flag parsing, subcommand routing, and structured help output with
// examples.
//
// Flags are declared as tagged struct fields and bound with
// [FlagsFromParams]. Fields whose type implements
// encoding.TextUnmarshaler bind directly, so a delimiter set or
// reference designator flag is validated while flags are parsed.
//
// When a user types an unknown subcommand or flag, the framework computes
// the edit distance against all known names and suggests the closest
// match within three edits. [Suggest] is exported for other name
// lookups, such as delimiter profiles.
//
// Output helpers: [JSONOutput] adds --json to a params struct,
// [ExitError] reports a handled non-zero exit, and [NewCommandLogger]
// builds the stderr slog logger.
package cli
