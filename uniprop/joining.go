// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniprop

import "unicode"

// JoiningType is the cursive joining behavior of a codepoint as
// assigned by the Unicode ArabicShaping data file.  The ContextJ rules
// for ZWJ and ZWNJ are phrased in terms of these classes.
type JoiningType uint8

const (
	// JoinNone marks codepoints that do not join (class U).
	JoinNone JoiningType = iota

	// JoinCausing marks codepoints that force joining on both
	// sides, such as the Arabic tatweel (class C).
	JoinCausing

	// JoinDual marks codepoints that join on both sides (class D).
	JoinDual

	// JoinLeft marks codepoints that join only on the left (class L).
	JoinLeft

	// JoinRight marks codepoints that join only on the right (class R).
	JoinRight

	// JoinTransparent marks codepoints the joining algorithm skips
	// over, derived from the Mn, Me and Cf general categories
	// (class T).
	JoinTransparent
)

// Joining-type ranges extracted from ArabicShaping.txt for the Arabic,
// Syriac, NKo, Mandaic, Mongolian and Phags-pa blocks.  Codepoints not
// listed and not transparent are non-joining.
var joinRight = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0622, 0x0625, 1}, {0x0627, 0x0627, 1}, {0x0629, 0x0629, 1},
		{0x062F, 0x0632, 1}, {0x0648, 0x0648, 1}, {0x0671, 0x0673, 1},
		{0x0675, 0x0677, 1}, {0x0688, 0x0699, 1}, {0x06C0, 0x06C0, 1},
		{0x06C3, 0x06CB, 1}, {0x06CD, 0x06CD, 1}, {0x06CF, 0x06CF, 1},
		{0x06D2, 0x06D3, 1}, {0x06D5, 0x06D5, 1}, {0x06EE, 0x06EF, 1},
		{0x0710, 0x0710, 1}, {0x0715, 0x0719, 1}, {0x071E, 0x071E, 1},
		{0x0728, 0x0728, 1}, {0x072A, 0x072A, 1}, {0x072C, 0x072C, 1},
		{0x072F, 0x072F, 1}, {0x074D, 0x074D, 1}, {0x0759, 0x075B, 1},
		{0x076B, 0x076C, 1}, {0x0771, 0x0771, 1}, {0x0773, 0x0774, 1},
		{0x0778, 0x0779, 1}, {0x0840, 0x0840, 1}, {0x0846, 0x0847, 1},
		{0x0849, 0x0849, 1}, {0x0854, 0x0854, 1}, {0x0867, 0x0867, 1},
		{0x0869, 0x086A, 1}, {0x08AA, 0x08AC, 1}, {0x08AE, 0x08AE, 1},
		{0x08B1, 0x08B2, 1}, {0x08B9, 0x08B9, 1},
	},
}

var joinDual = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0620, 0x0620, 1}, {0x0626, 0x0626, 1}, {0x0628, 0x0628, 1},
		{0x062A, 0x062E, 1}, {0x0633, 0x063F, 1}, {0x0641, 0x0647, 1},
		{0x0649, 0x064A, 1}, {0x066E, 0x066F, 1}, {0x0678, 0x0687, 1},
		{0x069A, 0x06BF, 1}, {0x06C1, 0x06C2, 1}, {0x06CC, 0x06CC, 1},
		{0x06CE, 0x06CE, 1}, {0x06D0, 0x06D1, 1}, {0x06FA, 0x06FC, 1},
		{0x06FF, 0x06FF, 1}, {0x0712, 0x0714, 1}, {0x071A, 0x071D, 1},
		{0x071F, 0x0727, 1}, {0x0729, 0x0729, 1}, {0x072B, 0x072B, 1},
		{0x072D, 0x072E, 1}, {0x074E, 0x0758, 1}, {0x075C, 0x076A, 1},
		{0x076D, 0x0770, 1}, {0x0772, 0x0772, 1}, {0x0775, 0x0777, 1},
		{0x077A, 0x077F, 1}, {0x07CA, 0x07EA, 1}, {0x0841, 0x0845, 1},
		{0x0848, 0x0848, 1}, {0x084A, 0x0853, 1}, {0x0855, 0x0855, 1},
		{0x0860, 0x0860, 1}, {0x0862, 0x0865, 1}, {0x0868, 0x0868, 1},
		{0x08A0, 0x08A9, 1}, {0x08AD, 0x08AD, 1}, {0x08AF, 0x08B0, 1},
		{0x08B3, 0x08B8, 1}, {0x08BA, 0x08C7, 1}, {0x1807, 0x1807, 1},
		{0x1820, 0x1878, 1}, {0x1887, 0x18A8, 1}, {0x18AA, 0x18AA, 1},
		{0xA840, 0xA871, 1},
	},
}

var joinLeft = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0xA872, 0xA872, 1},
	},
	R32: []unicode.Range32{
		{0x10ACD, 0x10ACD, 1}, {0x10AD7, 0x10AD7, 1},
		{0x10D00, 0x10D00, 1},
	},
}

var joinCausing = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0640, 0x0640, 1}, {0x07FA, 0x07FA, 1}, {0x180A, 0x180A, 1},
	},
}

// JoiningType returns the joining class of r.  ZWJ and ZWNJ are
// reported as JoinNone; the ContextJ state machine treats the joiners
// themselves specially.
func (p *Provider) JoiningType(r rune) JoiningType {
	switch {
	case r == runeZWJ || r == runeZWNJ:
		return JoinNone
	case unicode.Is(joinCausing, r):
		return JoinCausing
	case unicode.Is(joinDual, r):
		return JoinDual
	case unicode.Is(joinRight, r):
		return JoinRight
	case unicode.Is(joinLeft, r):
		return JoinLeft
	case unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf):
		return JoinTransparent
	}
	return JoinNone
}
