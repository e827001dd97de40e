// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Edi is the command-line tool for delimiter-defined EDI segments. It
// parses a raw segment, addresses elements and sub-elements by
// reference designator, edits them, and re-serializes the result with
// the original or replacement delimiters.
//
// Segment text is read from a positional argument, --text, or stdin.
// Delimiters come from a named profile (x12, edifact, or one defined in
// the file named by EDI_CONFIG) or from --delimiters.
//
// Run "edi --help" for the command list.
package main
