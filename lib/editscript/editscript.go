// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package editscript parses and applies segment edit scripts.
//
// An edit script is a JSONC file (JSON with // and /* */ comments and
// trailing commas) listing value assignments by reference designator,
// optionally guarded by the segment id and the digest of the segment
// the script was written against:
//
//	{
//	  // Correct the payer name and qualifier.
//	  "segment": "N1",
//	  "expect_digest": "5f0c…",
//	  "set": [
//	    {"ref": "N102", "value": "ACME HEALTH"},
//	    {"ref": "N103", "value": "PI"},
//	  ],
//	}
//
// The typical flow:
//
//  1. ReadFile or Parse: JSONC bytes → validated *Script
//  2. Apply: check guards, run every assignment against a copy of the
//     segment, and replace the segment only when all succeed
package editscript

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/edi/lib/digest"
	"github.com/bureau-foundation/edi/lib/refdes"
	"github.com/bureau-foundation/edi/lib/segment"
)

// ErrGuardFailed is returned by Apply when the segment id or digest
// does not match the script's guard.
var ErrGuardFailed = errors.New("edit script guard failed")

// Script is a parsed edit script.
type Script struct {
	// Segment, when set, is the segment id the script applies to.
	Segment string `json:"segment,omitempty"`

	// ExpectDigest, when set, is the digest the segment must have
	// before any assignment runs.
	ExpectDigest digest.Digest `json:"expect_digest,omitzero"`

	// Set is the ordered list of assignments.
	Set []Assignment `json:"set"`
}

// Assignment sets the value at one reference designator.
type Assignment struct {
	Ref   refdes.RefDes `json:"ref"`
	Value string        `json:"value"`
}

// StepError reports the assignment that failed during Apply.
type StepError struct {
	// Index is the 0-based position in Script.Set.
	Index int

	// Ref is the failing assignment's designator.
	Ref refdes.RefDes

	// Err is the error from segment.Assign.
	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("set[%d] %s: %v", e.Index, e.Ref, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Result summarizes a successful Apply.
type Result struct {
	Before  digest.Digest   `json:"before"`
	After   digest.Digest   `json:"after"`
	Applied []refdes.RefDes `json:"applied"`
}

// Changed reports whether the segment content changed.
func (r Result) Changed() bool {
	return r.Before != r.After
}

// Parse strips JSONC comments and trailing commas from data, decodes
// the script, and validates it. Unknown fields are rejected so that a
// misspelled key does not silently drop a guard.
func Parse(data []byte) (*Script, error) {
	stripped := jsonc.ToJSON(data)

	decoder := json.NewDecoder(bytes.NewReader(stripped))
	decoder.DisallowUnknownFields()

	var script Script
	if err := decoder.Decode(&script); err != nil {
		return nil, fmt.Errorf("parsing edit script: %w", err)
	}

	if issues := Validate(&script); len(issues) > 0 {
		return nil, fmt.Errorf("invalid edit script: %s", strings.Join(issues, "; "))
	}
	return &script, nil
}

// ReadFile reads a JSONC edit script from disk and parses it.
func ReadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	script, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return script, nil
}

// Validate checks a Script for structural issues and returns
// human-readable descriptions. An empty list means the script is
// valid. Reference designator syntax is already checked by decoding.
func Validate(script *Script) []string {
	var issues []string

	if len(script.Set) == 0 {
		issues = append(issues, "script has no assignments (at least one set entry is required)")
	}

	for index, assignment := range script.Set {
		prefix := fmt.Sprintf("set[%d]", index)
		if assignment.Ref.IsZero() {
			issues = append(issues, prefix+": ref is required")
			continue
		}
		if script.Segment != "" && assignment.Ref.SegmentID() != script.Segment {
			issues = append(issues, fmt.Sprintf("%s: ref %s does not address segment %q", prefix, assignment.Ref, script.Segment))
		}
	}

	return issues
}

// Apply runs the script against seg. The guards are checked first.
// Assignments then run in order against a clone of seg; on the first
// failure a [*StepError] is returned and seg is left unchanged. On
// success seg holds the edited content.
func (s *Script) Apply(seg *segment.Segment, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	before := digest.Of(seg)

	if s.Segment != "" && seg.ID() != s.Segment {
		return Result{}, fmt.Errorf("%w: script is for segment %q, got %q", ErrGuardFailed, s.Segment, seg.ID())
	}
	if !s.ExpectDigest.IsZero() && before != s.ExpectDigest {
		return Result{}, fmt.Errorf("%w: segment digest is %s, script expects %s", ErrGuardFailed, before, s.ExpectDigest)
	}

	working := seg.Clone()
	applied := make([]refdes.RefDes, 0, len(s.Set))
	for index, assignment := range s.Set {
		previous, _, _ := working.Lookup(assignment.Ref)
		if err := working.Assign(assignment.Ref, assignment.Value); err != nil {
			return Result{}, &StepError{Index: index, Ref: assignment.Ref, Err: err}
		}
		logger.Debug("assignment applied",
			"ref", assignment.Ref.String(),
			"old", previous,
			"new", assignment.Value,
		)
		applied = append(applied, assignment.Ref)
	}

	*seg = *working
	after := digest.Of(seg)

	logger.Info("edit script applied",
		"segment", seg.ID(),
		"assignments", len(applied),
		"before", before.Short(),
		"after", after.Short(),
	)
	return Result{Before: before, After: after, Applied: applied}, nil
}
