// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package spoof detects visually confusable identifiers using the
skeleton algorithm and identifier restriction rules of UTS #39.

A skeleton is a canonical form computed by decomposing an identifier
and substituting each confusable codepoint sequence with a prototype
from its equivalence class; two identifiers with equal skeletons look
alike when rendered.  The confusable mapping table is embedded in the
package, versioned alongside the Unicode version it encodes, and parsed
exactly once.

Beyond pairwise comparison, a Checker examines a single identifier for
script mixing, invisible codepoints and its UTS #39 restriction level.
All checks accumulate their findings on the CheckResult; none aborts
early, so a caller always sees the complete picture.
*/
package spoof
