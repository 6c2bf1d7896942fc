// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idna

import (
	"strings"

	"golang.org/x/text/unicode/bidi"

	"github.com/idnasec/idnacheck/uniprop"
)

// resolveSTD3 collapses the STD3-conditional statuses to their
// effective value.  Per UTS #46 section 4.1 the status table is
// consulted first and the STD3 variants resolve to disallowed only
// when STD3 rules are enforced.
func resolveSTD3(status uniprop.Status, useSTD3 bool) uniprop.Status {
	switch status {
	case uniprop.StatusDisallowedSTD3Valid:
		if useSTD3 {
			return uniprop.StatusDisallowed
		}
		return uniprop.StatusValid
	case uniprop.StatusDisallowedSTD3Mapped:
		if useSTD3 {
			return uniprop.StatusDisallowed
		}
		return uniprop.StatusMapped
	}
	return status
}

// validateLabel runs the structural label checks in their fixed order
// and returns every violation found; earlier failures never suppress
// later checks.  label is the Unicode form the codepoint-level rules
// inspect, asciiForm is the ASCII form whose octet length the DNS
// limits constrain, final marks the last label of the domain,
// requireBidi is set when the domain as a whole contains right-to-left
// text, and checkLength enables the 63-octet bound, which UTS #46
// applies only on the ToASCII direction.
func validateLabel(p *uniprop.Provider, label, asciiForm string, index int,
	final, requireBidi, checkLength bool, opts *Options) []RuleError {

	var errs []RuleError

	// 1. Empty labels are permitted only in the final position,
	// where they represent a terminal separator.
	if label == "" {
		if !final {
			errs = append(errs, ruleError(ErrEmptyLabel, index,
				"empty label"))
		}
		return errs
	}

	// 2. Label length bound on the ASCII form.
	if checkLength && len(asciiForm) > 63 {
		errs = append(errs, ruleError(ErrLabelTooLong, index,
			"label is %d octets, limit is 63", len(asciiForm)))
	}

	// 3. Hyphen placement.
	if opts.CheckHyphens {
		if label[0] == '-' || label[len(label)-1] == '-' {
			errs = append(errs, ruleError(ErrHyphenRule, index,
				"label %q has a leading or trailing hyphen", label))
		}
		if len(label) >= 4 && label[2] == '-' && label[3] == '-' &&
			!strings.HasPrefix(label, acePrefix) {
			errs = append(errs, ruleError(ErrHyphenRule, index,
				"label %q has hyphens in positions 3 and 4", label))
		}
	}

	// 4. Codepoint status.  Deviation characters are valid here:
	// under transitional processing the mapping step already
	// replaced them, and non-transitionally they are permitted.
	for _, r := range label {
		status, _ := p.Status(r)
		switch resolveSTD3(status, opts.UseSTD3Rules) {
		case uniprop.StatusValid, uniprop.StatusDeviation:
		default:
			errs = append(errs, ruleError(ErrDisallowedCodepoint, index,
				"disallowed codepoint %U", r))
		}
	}

	// 5. Leading combining mark.
	if first, _ := firstRune(label); p.IsCombiningMark(first) {
		errs = append(errs, ruleError(ErrLeadingCombiningMark, index,
			"label begins with combining mark %U", first))
	}

	// 6. Bidi rule, only meaningful in a bidi domain.
	if opts.CheckBidi && requireBidi && !bidiRuleValid(p, label) {
		errs = append(errs, ruleError(ErrBidiRule, index,
			"label %q violates the bidi rule", label))
	}

	// 7. ContextJ.
	if opts.CheckJoiners && !contextJValid(p, label) {
		errs = append(errs, ruleError(ErrJoinerRule, index,
			"label %q has a joiner in an invalid context", label))
	}

	return errs
}

func firstRune(s string) (rune, int) {
	for i, r := range s {
		return r, i
	}
	return 0, 0
}

// containsRTL reports whether s contains a codepoint of bidirectional
// class R, AL or AN, which makes the enclosing domain a bidi domain
// name per RFC 5893.
func containsRTL(p *uniprop.Provider, s string) bool {
	for _, r := range s {
		switch p.BidiClass(r) {
		case bidi.R, bidi.AL, bidi.AN:
			return true
		}
	}
	return false
}

// bidiRuleValid implements the label rule of RFC 5893 section 2.  A
// label is either a left-to-right label (conditions 5 and 6) or a
// right-to-left label (conditions 2 through 4), keyed off the
// bidirectional class of its first codepoint (condition 1).
func bidiRuleValid(p *uniprop.Provider, label string) bool {
	runes := []rune(label)
	if len(runes) == 0 {
		return true
	}
	switch p.BidiClass(runes[0]) {
	case bidi.L:
		return ltrLabelValid(p, runes)
	case bidi.R, bidi.AL:
		return rtlLabelValid(p, runes)
	}
	return false
}

func ltrLabelValid(p *uniprop.Provider, runes []rune) bool {
	for _, r := range runes {
		switch p.BidiClass(r) {
		case bidi.L, bidi.EN, bidi.ES, bidi.ET, bidi.CS, bidi.ON,
			bidi.BN, bidi.NSM:
		default:
			return false
		}
	}
	// The last character not of class NSM must be L or EN.
	for i := len(runes) - 1; i >= 0; i-- {
		switch p.BidiClass(runes[i]) {
		case bidi.NSM:
			continue
		case bidi.L, bidi.EN:
			return true
		default:
			return false
		}
	}
	return false
}

func rtlLabelValid(p *uniprop.Provider, runes []rune) bool {
	var sawEN, sawAN bool
	for _, r := range runes {
		switch p.BidiClass(r) {
		case bidi.EN:
			sawEN = true
		case bidi.AN:
			sawAN = true
		case bidi.R, bidi.AL, bidi.ES, bidi.ET, bidi.CS, bidi.ON,
			bidi.BN, bidi.NSM:
		default:
			return false
		}
	}
	// EN and AN may not both appear in an RTL label.
	if sawEN && sawAN {
		return false
	}
	// The last character not of class NSM must be R, AL, EN or AN.
	for i := len(runes) - 1; i >= 0; i-- {
		switch p.BidiClass(runes[i]) {
		case bidi.NSM:
			continue
		case bidi.R, bidi.AL, bidi.EN, bidi.AN:
			return true
		default:
			return false
		}
	}
	return false
}

// Joiner context is evaluated with a state machine over joining
// types.  The transitions encode the ContextJ rules of RFC 5892
// Appendix A: ZWNJ requires a joining character or a preceding virama,
// ZWJ requires a preceding virama.
type joinType uint8

const (
	joinNone joinType = iota
	joinL
	joinD
	joinT
	joinR
	joinZWNJ
	joinZWJ
	joinVirama
	numJoinTypes
)

type joinState int8

const (
	stateStart joinState = iota
	stateVirama
	stateBefore
	stateBeforeVirama
	stateAfter
	stateFAIL
)

var joinStates = [][numJoinTypes]joinState{
	stateStart: {
		joinL:      stateBefore,
		joinD:      stateBefore,
		joinZWNJ:   stateFAIL,
		joinZWJ:    stateFAIL,
		joinVirama: stateVirama,
	},
	stateVirama: {
		joinL: stateBefore,
		joinD: stateBefore,
	},
	stateBefore: {
		joinL:      stateBefore,
		joinD:      stateBefore,
		joinT:      stateBefore,
		joinZWNJ:   stateAfter,
		joinZWJ:    stateFAIL,
		joinVirama: stateBeforeVirama,
	},
	stateBeforeVirama: {
		joinL: stateBefore,
		joinD: stateBefore,
		joinT: stateBefore,
	},
	stateAfter: {
		joinL:      stateFAIL,
		joinD:      stateBefore,
		joinT:      stateAfter,
		joinR:      stateStart,
		joinZWNJ:   stateFAIL,
		joinZWJ:    stateFAIL,
		joinVirama: stateAfter,
	},
	stateFAIL: {
		0:          stateFAIL,
		joinL:      stateFAIL,
		joinD:      stateFAIL,
		joinT:      stateFAIL,
		joinR:      stateFAIL,
		joinZWNJ:   stateFAIL,
		joinZWJ:    stateFAIL,
		joinVirama: stateFAIL,
	},
}

// classifyJoin maps a rune to the state machine's input alphabet.
// Join-causing characters behave like dual-joining ones for context
// purposes.
func classifyJoin(p *uniprop.Provider, r rune) joinType {
	switch r {
	case '\u200c':
		return joinZWNJ
	case '\u200d':
		return joinZWJ
	}
	switch p.JoiningType(r) {
	case uniprop.JoinLeft:
		return joinL
	case uniprop.JoinDual, uniprop.JoinCausing:
		return joinD
	case uniprop.JoinTransparent:
		return joinT
	case uniprop.JoinRight:
		return joinR
	}
	return joinNone
}

// contextJValid reports whether every ZWJ and ZWNJ in label sits in a
// context the ContextJ rules permit.
func contextJValid(p *uniprop.Provider, label string) bool {
	if !strings.ContainsRune(label, '\u200c') &&
		!strings.ContainsRune(label, '\u200d') {
		return true
	}
	st := stateStart
	for _, r := range label {
		st = joinStates[st][classifyJoin(p, r)]
		if p.IsVirama(r) {
			st = joinStates[st][joinVirama]
		}
	}
	return st != stateFAIL && st != stateAfter
}
