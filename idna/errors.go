// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idna

import "fmt"

// ErrorCode identifies a kind of conversion or validation error.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrEmptyLabel indicates an empty label in a position other
	// than the final one.  Only the trailing empty label that
	// represents a terminal separator is permitted.
	ErrEmptyLabel ErrorCode = iota

	// ErrLabelTooLong indicates a label whose ASCII form exceeds 63
	// octets.  Only reported when VerifyDNSLength is set.
	ErrLabelTooLong

	// ErrDomainTooLong indicates the converted domain exceeds the
	// 255 octet total length limit.  Only reported when
	// VerifyDNSLength is set.
	ErrDomainTooLong

	// ErrHyphenRule indicates a label with a leading or trailing
	// hyphen, or hyphens in both the third and fourth positions
	// without a legitimate ACE prefix.  Only reported when
	// CheckHyphens is set.
	ErrHyphenRule

	// ErrDisallowedCodepoint indicates the label contains a
	// codepoint whose IDNA status is disallowed, either by the
	// mapping table or by STD3 restrictions.
	ErrDisallowedCodepoint

	// ErrLeadingCombiningMark indicates the first codepoint of a
	// label carries a combining general category.
	ErrLeadingCombiningMark

	// ErrBidiRule indicates a label violates the RFC 5893
	// bidirectional label rule.  Only reported when CheckBidi is
	// set and the domain contains right-to-left text.
	ErrBidiRule

	// ErrJoinerRule indicates a zero-width joiner or non-joiner in
	// a position the ContextJ rules do not permit.  Only reported
	// when CheckJoiners is set.
	ErrJoinerRule

	// ErrPunycodeDecode indicates a label carrying the ACE prefix
	// whose remainder could not be decoded.  The label is retained
	// in its encoded form in the output.
	ErrPunycodeDecode

	// ErrPunycodeEncode indicates a label that could not be encoded
	// to its ASCII form.  The label is retained in its Unicode form
	// in the output.
	ErrPunycodeEncode
)

// Map of ErrorCode values back to their constant names for pretty
// printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrEmptyLabel:           "ErrEmptyLabel",
	ErrLabelTooLong:         "ErrLabelTooLong",
	ErrDomainTooLong:        "ErrDomainTooLong",
	ErrHyphenRule:           "ErrHyphenRule",
	ErrDisallowedCodepoint:  "ErrDisallowedCodepoint",
	ErrLeadingCombiningMark: "ErrLeadingCombiningMark",
	ErrBidiRule:             "ErrBidiRule",
	ErrJoinerRule:           "ErrJoinerRule",
	ErrPunycodeDecode:       "ErrPunycodeDecode",
	ErrPunycodeEncode:       "ErrPunycodeEncode",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation found while converting a
// domain name.  Conversion never aborts on a RuleError; violations
// accumulate on the Result and the output string is still produced.
type RuleError struct {
	// ErrorCode identifies which rule was violated.
	ErrorCode ErrorCode

	// Label is the zero-based index of the offending label.  It is
	// -1 for domain-level violations such as ErrDomainTooLong.
	Label int

	// Description gives specifics of the violation.
	Description string
}

// Error satisfies the error interface and prints the rule violation.
func (e RuleError) Error() string {
	if e.Label < 0 {
		return fmt.Sprintf("idna: %v: %s", e.ErrorCode, e.Description)
	}
	return fmt.Sprintf("idna: label %d: %v: %s", e.Label, e.ErrorCode,
		e.Description)
}

// ruleError is a convenience shorthand used by the converter and
// validator internals.
func ruleError(code ErrorCode, label int, format string, args ...interface{}) RuleError {
	return RuleError{
		ErrorCode:   code,
		Label:       label,
		Description: fmt.Sprintf(format, args...),
	}
}
