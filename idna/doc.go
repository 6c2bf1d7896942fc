// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package idna converts internationalized domain names between their
Unicode and ASCII-compatible forms following the compatibility
processing of UTS #46.

The two entry points, ToASCII and ToUnicode, share the same per-label
pipeline: codepoints are mapped according to the UTS #46 status table,
the label is canonically composed, Punycode-encoded or decoded as the
direction requires, and finally validated against the structural label
rules (hyphen placement, disallowed codepoints, leading combining
marks, the RFC 5893 bidi rule and the RFC 5892 ContextJ rules).

Unlike most Go APIs, conversion does not stop at the first problem.
Every rule violation is accumulated as a RuleError on the Result and a
best-effort output string is always produced; callers decide which
violations, if any, warrant rejecting the name.  This mirrors how
domain-name handling behaves in browsers and resolver libraries, where
a partially converted name is still useful for lookup or display.
*/
package idna
