// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the edi tool.
//
// Configuration is loaded from a single file named by either the
// EDI_CONFIG environment variable (via [Load]) or a --config flag (via
// [LoadFile]). There is no ~/.config discovery and no automatic file
// search. Without a file, commands use [Default].
//
// The file defines named delimiter profiles, the profile used by
// default, whether ambiguous delimiter sets are rejected, and the log
// level:
//
//	default_profile: pipe
//	strict_delimiters: true
//	log_level: debug
//	profiles:
//	  pipe:
//	    delimiters: "\n|^"
//	    description: internal flat-file feed
//
// Profiles from the file are merged over the built-in x12 and edifact
// profiles. Loading validates the result: the default profile must
// exist and every profile must assign all three delimiter roles.
package config
