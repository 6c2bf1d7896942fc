// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spoof

import (
	"strings"

	"github.com/idnasec/idnacheck/uniprop"
)

// Skeleton maps an identifier to its canonical skeleton string per the
// UTS #39 skeleton algorithm: the input is canonically decomposed, each
// codepoint sequence with a confusable prototype is replaced by that
// prototype using longest-match-first lookup, and the result is
// decomposed again.  Two identifiers with equal skeletons under the
// same type are visually confusable.
//
// Skeletons are opaque: they are only meaningful for equality
// comparison against other skeletons of the same SkeletonType, never
// for display.  An unrecognized type behaves as MixedScript.
func Skeleton(s string, st SkeletonType) string {
	if st >= numSkeletonTypes {
		st = MixedScript
	}
	p := uniprop.Load()
	t := loadTables()[st]

	runes := []rune(p.NFD(s))
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); {
		// Longest match first so multi-codepoint sources win over
		// their single-codepoint prefixes.
		max := t.maxKey
		if rem := len(runes) - i; rem < max {
			max = rem
		}
		matched := false
		for n := max; n >= 1; n-- {
			if proto, ok := t.protos[string(runes[i:i+n])]; ok {
				b.WriteString(proto)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			b.WriteRune(runes[i])
			i++
		}
	}

	// Prototypes may themselves carry composed characters.
	return p.NFD(b.String())
}

// AreConfusable reports whether two identifiers are visually
// confusable under the given skeleton type, that is, whether their
// skeletons are equal.  The relation is symmetric and reflexive.
func AreConfusable(a, b string, st SkeletonType) bool {
	return Skeleton(a, st) == Skeleton(b, st)
}
