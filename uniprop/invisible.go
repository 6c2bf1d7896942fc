// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniprop

// invisibleRunes is the set of codepoints that render as invisible or
// zero-width text.  ZWJ and ZWNJ are kept out of the set itself since
// the IDNA mapping treats them as deviation characters; IsInvisible
// adds them back for the spoof checker.  U+0009 and U+0020 are common
// ASCII whitespace and deliberately not listed.
var invisibleRunes = map[rune]struct{}{
	'\u00A0': {}, // No-break space
	'\u00AD': {}, // Soft hyphen
	'\u034F': {}, // Combining grapheme joiner
	'\u061C': {}, // Arabic letter mark
	'\u115F': {}, // Hangul choseong filler
	'\u1160': {}, // Hangul jungseong filler
	'\u17B4': {}, // Khmer vowel inherent aq
	'\u17B5': {}, // Khmer vowel inherent aa
	'\u180E': {}, // Mongolian vowel separator
	'\u2000': {}, // En quad
	'\u2001': {}, // Em quad
	'\u2002': {}, // En space
	'\u2003': {}, // Em space
	'\u2004': {}, // Three-per-em space
	'\u2005': {}, // Four-per-em space
	'\u2006': {}, // Six-per-em space
	'\u2007': {}, // Figure space
	'\u2008': {}, // Punctuation space
	'\u2009': {}, // Thin space
	'\u200A': {}, // Hair space
	'\u200B': {}, // Zero width space
	'\u200E': {}, // Left-to-right mark
	'\u200F': {}, // Right-to-left mark
	'\u202F': {}, // Narrow no-break space
	'\u205F': {}, // Medium mathematical space
	'\u2060': {}, // Word joiner
	'\u2061': {}, // Function application
	'\u2062': {}, // Invisible times
	'\u2063': {}, // Invisible separator
	'\u2064': {}, // Invisible plus
	'\u206A': {}, // Inhibit symmetric swapping
	'\u206B': {}, // Activate symmetric swapping
	'\u206C': {}, // Inhibit arabic form shaping
	'\u206D': {}, // Activate arabic form shaping
	'\u206E': {}, // National digit shapes
	'\u206F': {}, // Nominal digit shapes
	'\u2800': {}, // Braille pattern blank
	'\u3000': {}, // Ideographic space
	'\u3164': {}, // Hangul filler
	'\uFEFF': {}, // Zero width no-break space
	'\uFFA0': {}, // Halfwidth hangul filler

	'\U0001D159': {}, // Musical symbol null notehead
	'\U0001D173': {}, // Musical symbol begin beam
	'\U0001D174': {}, // Musical symbol end beam
	'\U0001D175': {}, // Musical symbol begin tie
	'\U0001D176': {}, // Musical symbol end tie
	'\U0001D177': {}, // Musical symbol begin slur
	'\U0001D178': {}, // Musical symbol end slur
	'\U0001D179': {}, // Musical symbol begin phrase
	'\U0001D17A': {}, // Musical symbol end phrase
}
