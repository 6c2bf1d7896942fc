// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spoof

import (
	"sort"

	"github.com/idnasec/idnacheck/uniprop"
)

// CheckFlags is a bitset naming the individual spoof checks.  The same
// values identify which conditions a check run found.
type CheckFlags uint32

const (
	// CheckSingleScriptConfusable flags identifier pairs within one
	// script whose skeletons collide.
	CheckSingleScriptConfusable CheckFlags = 1 << iota

	// CheckMixedScriptConfusable flags identifier pairs whose skeletons
	// collide when at least one of them mixes scripts.
	CheckMixedScriptConfusable

	// CheckWholeScriptConfusable flags identifier pairs each written
	// entirely in one script, but different scripts, whose skeletons
	// collide.
	CheckWholeScriptConfusable

	// CheckMixedScript flags a single identifier written in more than
	// one script.
	CheckMixedScript

	// CheckInvisible flags invisible codepoints and runs of a repeated
	// nonspacing mark, both of which render without a visible trace.
	CheckInvisible

	// CheckRestrictionLevel flags an identifier whose detected UTS #39
	// restriction level exceeds the level the checker permits.
	CheckRestrictionLevel
)

// CheckAllConfusables enables the three pairwise confusability checks.
// These are conditions on a pair of identifiers: they are reported by
// AreConfusable and never fire from a single-identifier Check.
const CheckAllConfusables = CheckSingleScriptConfusable |
	CheckMixedScriptConfusable | CheckWholeScriptConfusable

// CheckAll enables every check.
const CheckAll = CheckAllConfusables | CheckMixedScript | CheckInvisible |
	CheckRestrictionLevel

// checkFlagStrings maps the individual check flags to their names.
var checkFlagStrings = map[CheckFlags]string{
	CheckSingleScriptConfusable: "SingleScriptConfusable",
	CheckMixedScriptConfusable:  "MixedScriptConfusable",
	CheckWholeScriptConfusable:  "WholeScriptConfusable",
	CheckMixedScript:            "MixedScript",
	CheckInvisible:              "Invisible",
	CheckRestrictionLevel:       "RestrictionLevel",
}

// String returns the CheckFlags as a human-readable string, one name
// per set flag.
func (f CheckFlags) String() string {
	if f == 0 {
		return "None"
	}
	s := ""
	for bit := CheckFlags(1); bit <= CheckRestrictionLevel; bit <<= 1 {
		if f&bit == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += checkFlagStrings[bit]
	}
	return s
}

// RestrictionLevel classifies how freely an identifier mixes scripts,
// ordered from most to least restrictive per UTS #39 section 5.2.
type RestrictionLevel uint8

const (
	// LevelASCIIOnly identifiers contain only ASCII codepoints.
	LevelASCIIOnly RestrictionLevel = iota

	// LevelSingleScript identifiers use a single script, ignoring
	// Common and Inherited codepoints.
	LevelSingleScript

	// LevelHighlyRestricted identifiers may add the CJK script
	// combinations (Han with Hiragana and Katakana, with Bopomofo, or
	// with Hangul) to Latin.
	LevelHighlyRestricted

	// LevelModeratelyRestricted identifiers may mix Latin with one
	// other script, except Cyrillic or Greek.
	LevelModeratelyRestricted

	// LevelMinimallyRestricted identifiers may mix scripts arbitrarily.
	LevelMinimallyRestricted

	// LevelUnrestricted identifiers may additionally contain
	// codepoints outside any assigned script.
	LevelUnrestricted
)

// restrictionLevelStrings maps a RestrictionLevel to its name.
var restrictionLevelStrings = map[RestrictionLevel]string{
	LevelASCIIOnly:            "ASCIIOnly",
	LevelSingleScript:         "SingleScript",
	LevelHighlyRestricted:     "HighlyRestricted",
	LevelModeratelyRestricted: "ModeratelyRestricted",
	LevelMinimallyRestricted:  "MinimallyRestricted",
	LevelUnrestricted:         "Unrestricted",
}

// String returns the RestrictionLevel as a human-readable string.
func (l RestrictionLevel) String() string {
	if s, ok := restrictionLevelStrings[l]; ok {
		return s
	}
	return "Unknown"
}

// CheckResult holds the outcome of running the spoof checks on a
// single identifier.
type CheckResult struct {
	// Flags names every enabled check whose condition the identifier
	// met.  A zero value means the identifier passed.
	Flags CheckFlags

	// RestrictionLevel is the most restrictive level the identifier
	// satisfies, regardless of whether the restriction-level check was
	// enabled.
	RestrictionLevel RestrictionLevel

	// Scripts lists the scripts the identifier uses, sorted, excluding
	// Common and Inherited.
	Scripts []string
}

// Failed reports whether any enabled check flagged the identifier.
func (r *CheckResult) Failed() bool {
	return r.Flags != 0
}

// Checker runs a configured set of spoof checks.  The zero value is
// not usable; construct one with NewChecker.  A Checker is immutable
// after configuration and safe for concurrent use.
type Checker struct {
	checks   CheckFlags
	maxLevel RestrictionLevel
	props    *uniprop.Provider
}

// NewChecker returns a Checker with every check enabled and the
// permitted restriction level set to LevelHighlyRestricted.
func NewChecker() *Checker {
	return &Checker{
		checks:   CheckAll,
		maxLevel: LevelHighlyRestricted,
		props:    uniprop.Load(),
	}
}

// SetChecks replaces the set of enabled checks.
func (c *Checker) SetChecks(checks CheckFlags) {
	c.checks = checks
}

// SetRestrictionLevel sets the most permissive restriction level an
// identifier may have before the restriction-level check flags it.
func (c *Checker) SetRestrictionLevel(level RestrictionLevel) {
	c.maxLevel = level
}

// Check runs the enabled single-identifier checks on s.  Every enabled
// check runs; conditions accumulate on the result rather than
// short-circuiting.  The three confusable flags are pairwise-only:
// even when enabled they never appear in a Check result and act solely
// through AreConfusable.
func (c *Checker) Check(s string) *CheckResult {
	scripts, level := c.classify(s)
	res := &CheckResult{
		RestrictionLevel: level,
		Scripts:          scripts,
	}

	if c.checks&CheckMixedScript != 0 && len(scripts) > 1 {
		res.Flags |= CheckMixedScript
	}
	if c.checks&CheckInvisible != 0 && c.hasInvisible(s) {
		res.Flags |= CheckInvisible
	}
	if c.checks&CheckRestrictionLevel != 0 && level > c.maxLevel {
		res.Flags |= CheckRestrictionLevel
	}

	log.Tracef("checked %q: flags=%v level=%v scripts=%v", s,
		res.Flags, res.RestrictionLevel, res.Scripts)
	return res
}

// AreConfusable reports which enabled confusability class, if any, the
// identifier pair falls into.  At most one of the three confusable
// flags is returned: single-script when both identifiers share one
// script, whole-script when each is single-script but the scripts
// differ, and mixed-script otherwise.
func (c *Checker) AreConfusable(a, b string) CheckFlags {
	enabled := c.checks & CheckAllConfusables
	if enabled == 0 {
		return 0
	}

	aScripts, _ := c.classify(a)
	bScripts, _ := c.classify(b)
	aSingle := len(aScripts) <= 1
	bSingle := len(bScripts) <= 1

	var class CheckFlags
	var st SkeletonType
	switch {
	case !aSingle || !bSingle:
		class, st = CheckMixedScriptConfusable, MixedScript
	case sameScripts(aScripts, bScripts):
		class, st = CheckSingleScriptConfusable, SingleScript
	default:
		class, st = CheckWholeScriptConfusable, WholeScript
	}
	if class&enabled == 0 {
		return 0
	}
	if !AreConfusable(a, b, st) {
		return 0
	}
	return class
}

// Check runs the given checks on s using a default-configured Checker.
// Confusable flags in checks are pairwise-only and contribute nothing
// here; use a Checker's AreConfusable for those.
func Check(s string, checks CheckFlags) *CheckResult {
	c := NewChecker()
	c.SetChecks(checks)
	return c.Check(s)
}

// classify returns the sorted script set of s, excluding Common and
// Inherited, together with its detected restriction level.
func (c *Checker) classify(s string) ([]string, RestrictionLevel) {
	ascii := true
	unknown := false
	set := make(map[string]struct{})
	for _, r := range s {
		if r >= 0x80 {
			ascii = false
		}
		switch script := c.props.Script(r); script {
		case "Common", "Inherited":
		case "Unknown":
			unknown = true
		default:
			set[script] = struct{}{}
		}
	}

	scripts := make([]string, 0, len(set))
	for script := range set {
		scripts = append(scripts, script)
	}
	sort.Strings(scripts)
	return scripts, detectLevel(set, ascii, unknown)
}

// detectLevel computes the most restrictive UTS #39 level a script set
// satisfies.
func detectLevel(set map[string]struct{}, ascii, unknown bool) RestrictionLevel {
	switch {
	case unknown:
		return LevelUnrestricted
	case ascii:
		return LevelASCIIOnly
	case len(set) <= 1:
		return LevelSingleScript
	}

	// Scripts beyond Latin.
	others := make([]string, 0, len(set))
	for script := range set {
		if script != "Latin" {
			others = append(others, script)
		}
	}

	if subsetOfAny(others,
		[]string{"Han", "Hiragana", "Katakana"},
		[]string{"Han", "Bopomofo"},
		[]string{"Han", "Hangul"}) {
		return LevelHighlyRestricted
	}
	if _, hasLatin := set["Latin"]; hasLatin && len(others) == 1 &&
		others[0] != "Cyrillic" && others[0] != "Greek" {
		return LevelModeratelyRestricted
	}
	return LevelMinimallyRestricted
}

// subsetOfAny reports whether scripts is a subset of at least one of
// the allowed sets.
func subsetOfAny(scripts []string, allowed ...[]string) bool {
nextSet:
	for _, set := range allowed {
		for _, script := range scripts {
			found := false
			for _, a := range set {
				if script == a {
					found = true
					break
				}
			}
			if !found {
				continue nextSet
			}
		}
		return true
	}
	return false
}

// sameScripts reports whether two sorted script lists are identical.
func sameScripts(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// hasInvisible reports whether s contains an invisible codepoint or an
// immediately repeated nonspacing mark, both of which leave no visible
// trace when rendered.
func (c *Checker) hasInvisible(s string) bool {
	prev := rune(-1)
	for _, r := range c.props.NFD(s) {
		if c.props.IsInvisible(r) {
			return true
		}
		if r == prev && c.props.IsCombiningMark(r) {
			return true
		}
		prev = r
	}
	return false
}
