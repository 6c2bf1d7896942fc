// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idna

// Options is an immutable bundle of UTS #46 processing flags.  A nil
// *Options passed to ToASCII or ToUnicode behaves as DefaultOptions.
// Callers must not mutate an Options value after handing it to a
// conversion; the converters never mutate it.
type Options struct {
	// UseSTD3Rules rejects ASCII codepoints outside the
	// letters-digits-hyphen set permitted by STD3.
	UseSTD3Rules bool

	// CheckHyphens enforces the leading/trailing hyphen rule and
	// the third-and-fourth-position hyphen rule reserved for the
	// ACE prefix.
	CheckHyphens bool

	// CheckBidi enforces the RFC 5893 bidirectional label rule on
	// domains containing right-to-left text.
	CheckBidi bool

	// CheckJoiners enforces the ContextJ rules for zero-width
	// joiners and non-joiners.
	CheckJoiners bool

	// TransitionalProcessing selects the legacy transitional
	// mapping for deviation characters, mapping for example "ß" to
	// "ss".  ToUnicode ignores this flag and always processes
	// non-transitionally.
	TransitionalProcessing bool

	// VerifyDNSLength enforces the 1-63 octet label length and 255
	// octet total length limits on the ASCII form.
	VerifyDNSLength bool
}

// DefaultOptions returns the options used when none are supplied:
// non-transitional processing with the STD3, hyphen, bidi and joiner
// checks enabled and no DNS length enforcement.
func DefaultOptions() *Options {
	return &Options{
		UseSTD3Rules: true,
		CheckHyphens: true,
		CheckBidi:    true,
		CheckJoiners: true,
	}
}

// LookupOptions returns options suitable for resolving a domain name,
// per Section 5 of RFC 5891.  They match DefaultOptions.
func LookupOptions() *Options {
	return DefaultOptions()
}

// RegistrationOptions returns options suitable for vetting a domain
// name for registration, per Section 4 of RFC 5891: everything in
// DefaultOptions plus DNS length enforcement.
func RegistrationOptions() *Options {
	o := DefaultOptions()
	o.VerifyDNSLength = true
	return o
}
