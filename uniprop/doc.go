// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package uniprop supplies the per-codepoint Unicode properties and
normalization routines the idna and spoof packages consume: UTS #46
codepoint status and mapping, script membership, joining types for the
ContextJ rules, canonical combining classes, bidirectional classes, and
the invisible/zero-width character set.

All queries go through a Provider handle obtained from Load.  The
handle is built exactly once, is immutable afterwards, and is safe for
concurrent use from any number of goroutines.  The underlying data is
the Unicode version compiled into golang.org/x/text and the Go standard
library's unicode tables.
*/
package uniprop
