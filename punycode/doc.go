// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package punycode implements the bootstring encoding defined by RFC 3492.

Punycode represents a sequence of Unicode code points as a string of
ASCII characters.  Code points below U+0080 pass through unchanged and,
if any are present, are followed by a single '-' delimiter.  The
remaining code points are encoded as generalized variable-length
integers using the base-36 alphabet a-z0-9 with the bias adaptation
parameters fixed by the RFC.

This package deals only with the raw encoding.  It does not add or
strip the "xn--" ACE prefix and performs no case mapping or label
validation; those belong to the idna package which builds on top of
this one.
*/
package punycode
