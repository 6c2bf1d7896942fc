// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idna

import (
	"strings"
	"unicode/utf8"
)

// acePrefix is the ASCII Compatible Encoding prefix marking a
// Punycode-encoded label.
const acePrefix = "xn--"

// isLabelSeparator reports whether r separates labels.  Besides
// U+002E, UTS #46 recognizes the ideographic and fullwidth stop
// variants as separators.
func isLabelSeparator(r rune) bool {
	return r == '.' || r == '。' || r == '．' || r == '｡'
}

// splitLabels splits a domain name on the recognized separators.
// Empty labels are preserved so the validator can distinguish the
// permitted trailing empty label from interior ones.
func splitLabels(domain string) []string {
	var labels []string
	start := 0
	for i, r := range domain {
		if !isLabelSeparator(r) {
			continue
		}
		labels = append(labels, domain[start:i])
		start = i + utf8.RuneLen(r)
	}
	return append(labels, domain[start:])
}

// joinLabels reassembles labels with the canonical U+002E separator.
func joinLabels(labels []string) string {
	return strings.Join(labels, ".")
}

// isASCII reports whether s contains only ASCII bytes.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
