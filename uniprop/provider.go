// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniprop

import (
	"sort"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// Status classifies a codepoint according to the UTS #46 mapping
// table.  The two STD3 variants resolve to their plain counterpart or
// to Disallowed depending on whether the caller enforces STD3 rules.
type Status uint8

const (
	// StatusValid codepoints pass through the mapping step unchanged.
	StatusValid Status = iota

	// StatusMapped codepoints are replaced by their mapping.
	StatusMapped

	// StatusDeviation codepoints are mapped only under transitional
	// processing and are otherwise valid.
	StatusDeviation

	// StatusIgnored codepoints are removed by the mapping step.
	StatusIgnored

	// StatusDisallowed codepoints may not appear in a label.
	StatusDisallowed

	// StatusDisallowedSTD3Valid codepoints are valid unless STD3
	// rules are enforced, in which case they are disallowed.
	StatusDisallowedSTD3Valid

	// StatusDisallowedSTD3Mapped codepoints are mapped unless STD3
	// rules are enforced, in which case they are disallowed.
	StatusDisallowedSTD3Mapped
)

// statusStrings maps a Status to its name for debugging output.
var statusStrings = map[Status]string{
	StatusValid:                "Valid",
	StatusMapped:               "Mapped",
	StatusDeviation:            "Deviation",
	StatusIgnored:              "Ignored",
	StatusDisallowed:           "Disallowed",
	StatusDisallowedSTD3Valid:  "DisallowedSTD3Valid",
	StatusDisallowedSTD3Mapped: "DisallowedSTD3Mapped",
}

// String returns the Status as a human-readable string.
func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// Provider is an immutable handle to the Unicode property data.  It is
// constructed once by Load and shared by all callers; it holds no
// mutable state, so every method is safe for concurrent use.
type Provider struct {
	scriptNames  []string
	scriptTables []*unicode.RangeTable
}

var (
	loadOnce sync.Once
	provider *Provider
)

// Load returns the process-wide property Provider, constructing it on
// first use.  Construction is guarded so concurrent first callers
// never observe a partially built handle.
func Load() *Provider {
	loadOnce.Do(func() {
		names := make([]string, 0, len(unicode.Scripts))
		for name := range unicode.Scripts {
			names = append(names, name)
		}
		sort.Strings(names)
		tables := make([]*unicode.RangeTable, len(names))
		for i, name := range names {
			tables[i] = unicode.Scripts[name]
		}
		provider = &Provider{scriptNames: names, scriptTables: tables}
	})
	return provider
}

// Deviation mappings under transitional processing per UTS #46.
// ZWJ and ZWNJ map to the empty string.
const (
	runeSharpS     = 'ß' // LATIN SMALL LETTER SHARP S
	runeFinalSigma = 'ς' // GREEK SMALL LETTER FINAL SIGMA
	runeZWNJ       = '\u200c' // ZERO WIDTH NON-JOINER
	runeZWJ        = '\u200d' // ZERO WIDTH JOINER
)

// Status returns the UTS #46 status of r together with its mapping.
// The mapping is meaningful only for StatusMapped, StatusDeviation and
// StatusDisallowedSTD3Mapped; it is the empty string otherwise (for
// deviation joiners the empty string is the mapping).
func (p *Provider) Status(r rune) (Status, string) {
	switch r {
	case runeSharpS:
		return StatusDeviation, "ss"
	case runeFinalSigma:
		return StatusDeviation, "σ"
	case runeZWNJ, runeZWJ:
		return StatusDeviation, ""
	}
	if isIgnored(r) {
		return StatusIgnored, ""
	}
	if r < 0x80 {
		// Every ASCII codepoint outside the LDH set, control
		// characters included, is disallowed_STD3_valid in the UTS #46
		// mapping table.
		switch {
		case 'a' <= r && r <= 'z', '0' <= r && r <= '9', r == '-', r == '.':
			return StatusValid, ""
		case 'A' <= r && r <= 'Z':
			return StatusMapped, string(r + ('a' - 'A'))
		default:
			return StatusDisallowedSTD3Valid, ""
		}
	}
	if _, ok := invisibleRunes[r]; ok {
		return StatusDisallowed, ""
	}
	if unicode.In(r, unicode.Cc, unicode.Cf, unicode.Co, unicode.Cs,
		unicode.Zl, unicode.Zp, unicode.Zs) || !unicode.IsGraphic(r) {
		return StatusDisallowed, ""
	}

	// The mapped form is full case folding followed by compatibility
	// composition, the toNFKC_Casefold derivation UTS #46 bases its
	// mapping table on.
	mapped := norm.NFKC.String(cases.Fold().String(string(r)))
	if mapped == string(r) {
		return StatusValid, ""
	}
	if mappedToNonLDHASCII(mapped) {
		return StatusDisallowedSTD3Mapped, mapped
	}
	return StatusMapped, mapped
}

// mappedToNonLDHASCII reports whether a mapping lands on an ASCII
// codepoint outside the letters-digits-hyphen set, which makes the
// source codepoint disallowed under STD3 rules.
func mappedToNonLDHASCII(s string) bool {
	for _, r := range s {
		if r >= 0x80 {
			continue
		}
		switch {
		case 'a' <= r && r <= 'z', '0' <= r && r <= '9', r == '-':
		default:
			return true
		}
	}
	return false
}

// Script returns the Unicode script name of r, or "Unknown" when r is
// not assigned to any script.
func (p *Provider) Script(r rune) string {
	for i, table := range p.scriptTables {
		if unicode.Is(table, r) {
			return p.scriptNames[i]
		}
	}
	return "Unknown"
}

// IsCombiningMark reports whether r carries a combining general
// category (Mn, Mc or Me).  Labels must not begin with such a mark.
func (p *Provider) IsCombiningMark(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me)
}

// CombiningClass returns the canonical combining class of r.
func (p *Provider) CombiningClass(r rune) uint8 {
	return norm.NFD.PropertiesString(string(r)).CCC()
}

// IsVirama reports whether r is a virama (canonical combining class 9),
// the joiner-permitting class used by the ContextJ rules.
func (p *Provider) IsVirama(r rune) bool {
	return p.CombiningClass(r) == 9
}

// BidiClass returns the bidirectional class of r.
func (p *Provider) BidiClass(r rune) bidi.Class {
	prop, _ := bidi.LookupRune(r)
	return prop.Class()
}

// IsInvisible reports whether r renders as invisible or zero-width
// text, the set the spoof checker's invisible-character check flags.
func (p *Provider) IsInvisible(r rune) bool {
	_, ok := invisibleRunes[r]
	return ok || r == runeZWJ || r == runeZWNJ
}

// NFC returns the canonical composition of s.
func (p *Provider) NFC(s string) string { return norm.NFC.String(s) }

// NFD returns the canonical decomposition of s.
func (p *Provider) NFD(s string) string { return norm.NFD.String(s) }

// NFKC returns the compatibility composition of s.
func (p *Provider) NFKC(s string) string { return norm.NFKC.String(s) }

// NFKD returns the compatibility decomposition of s.
func (p *Provider) NFKD(s string) string { return norm.NFKD.String(s) }

// IsNFC reports whether s is already canonically composed.
func (p *Provider) IsNFC(s string) bool { return norm.NFC.IsNormalString(s) }

// isIgnored reports whether the UTS #46 mapping step removes r
// outright: soft hyphen, combining grapheme joiner, zero width space,
// word joiner, the Mongolian and generic variation selectors, and the
// byte order mark.
func isIgnored(r rune) bool {
	switch {
	case r == '\u00ad', r == '\u034f', r == '\u200b', r == '\u2060', r == '\ufeff':
		return true
	case '\u180b' <= r && r <= '\u180d':
		return true
	case '\ufe00' <= r && r <= '\ufe0f':
		return true
	case 0xE0100 <= r && r <= 0xE01EF:
		return true
	}
	return false
}
