// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package refdes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	minSegmentIDLength = 2
	maxSegmentIDLength = 3
	elementDigits      = 2
	maxElement         = 99
)

// ErrMalformed is wrapped by every error returned from [Parse] and
// [New].
var ErrMalformed = errors.New("malformed reference designator")

// MalformedError reports why a reference designator was rejected.
type MalformedError struct {
	Input  string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformed, e.Input, e.Reason)
}

// Unwrap returns [ErrMalformed] so callers can test with errors.Is.
func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}

// RefDes is a parsed reference designator. It is an immutable value
// type; the zero value is not valid (use IsZero to check).
type RefDes struct {
	segmentID  string
	element    int
	subElement int // 0 when absent
}

// Parse validates and parses a reference designator string.
//
// The segment id takes as many leading characters as the grammar
// allows: "TST04" is segment TST element 4, while "N101" can only be
// segment N1 element 1 because exactly two element digits must follow
// the id.
func Parse(text string) (RefDes, error) {
	malformed := func(reason string) (RefDes, error) {
		return RefDes{}, &MalformedError{Input: text, Reason: reason}
	}

	if text == "" {
		return malformed("empty")
	}

	address, subText, hasSub := strings.Cut(text, "-")

	idLength := len(address) - elementDigits
	if idLength < minSegmentIDLength || idLength > maxSegmentIDLength {
		return malformed(fmt.Sprintf("want a %d-%d character segment id followed by %d element digits",
			minSegmentIDLength, maxSegmentIDLength, elementDigits))
	}

	segmentID := address[:idLength]
	for i := 0; i < len(segmentID); i++ {
		if !isAlphanumeric(segmentID[i]) {
			return malformed(fmt.Sprintf("invalid character %q in segment id", segmentID[i]))
		}
	}

	element, err := parsePositive(address[idLength:])
	if err != nil {
		return malformed("element number: " + err.Error())
	}

	subElement := 0
	if hasSub {
		subElement, err = parsePositive(subText)
		if err != nil {
			return malformed("sub-element number: " + err.Error())
		}
	}

	return RefDes{segmentID: segmentID, element: element, subElement: subElement}, nil
}

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse(text string) RefDes {
	ref, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("refdes.MustParse(%q): %v", text, err))
	}
	return ref
}

// New constructs a RefDes from its parts. A subElement of 0 means the
// designator addresses the whole element. The result round-trips
// through String and Parse.
func New(segmentID string, element, subElement int) (RefDes, error) {
	text := format(segmentID, element, subElement)
	if element < 1 || element > maxElement {
		return RefDes{}, &MalformedError{Input: text, Reason: fmt.Sprintf("element number %d out of range 1-%d", element, maxElement)}
	}
	if subElement < 0 {
		return RefDes{}, &MalformedError{Input: text, Reason: fmt.Sprintf("negative sub-element number %d", subElement)}
	}
	return Parse(text)
}

// SegmentID returns the segment id the designator applies to.
func (r RefDes) SegmentID() string { return r.segmentID }

// Element returns the 1-based element number.
func (r RefDes) Element() int { return r.element }

// ElementIndex returns the 0-based element position (Element()-1).
func (r RefDes) ElementIndex() int { return r.element - 1 }

// SubElement returns the 1-based sub-element number and true, or 0 and
// false when the designator addresses a whole element.
func (r RefDes) SubElement() (int, bool) {
	return r.subElement, r.subElement > 0
}

// HasSubElement reports whether the designator addresses a sub-element.
func (r RefDes) HasSubElement() bool { return r.subElement > 0 }

// WholeElement returns the designator for the enclosing element,
// dropping any sub-element number.
func (r RefDes) WholeElement() RefDes {
	r.subElement = 0
	return r
}

// IsZero reports whether r is the zero value.
func (r RefDes) IsZero() bool { return r.segmentID == "" }

// String returns the canonical form, with the element number padded to
// two digits ("TST04-2").
func (r RefDes) String() string {
	if r.IsZero() {
		return ""
	}
	return format(r.segmentID, r.element, r.subElement)
}

// MarshalText implements encoding.TextMarshaler.
func (r RefDes) MarshalText() ([]byte, error) {
	if r.IsZero() {
		return nil, nil
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Validates the
// designator. An empty input produces the zero value.
func (r *RefDes) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*r = RefDes{}
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func format(segmentID string, element, subElement int) string {
	text := fmt.Sprintf("%s%02d", segmentID, element)
	if subElement > 0 {
		text += "-" + strconv.Itoa(subElement)
	}
	return text
}

// parsePositive parses a non-empty run of ASCII digits as a positive
// integer. Signs, spaces, and zero are rejected.
func parsePositive(digits string) (int, error) {
	if digits == "" {
		return 0, errors.New("missing digits")
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("invalid digit %q", digits[i])
		}
	}
	value, err := strconv.Atoi(digits)
	if err != nil {
		return 0, err
	}
	if value < 1 {
		return 0, errors.New("numbers are 1-based")
	}
	return value, nil
}

func isAlphanumeric(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') || ('0' <= c && c <= '9')
}
