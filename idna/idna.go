// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idna

import (
	"strings"

	"github.com/idnasec/idnacheck/punycode"
	"github.com/idnasec/idnacheck/uniprop"
)

// Result holds the outcome of a conversion: the best-effort converted
// domain and every rule violation found along the way.  A conversion
// never aborts; even a domain riddled with violations produces an
// output string.
type Result struct {
	// Domain is the converted domain name.
	Domain string

	// Errors holds the accumulated rule violations in label order.
	Errors []RuleError
}

// HasErrors reports whether any rule violation was recorded.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// ToASCII converts a domain name to its ASCII (Punycode) form per the
// UTS #46 processing algorithm.  For example, ToASCII of
// "bücher.example" is "xn--bcher-kva.example".  Violations accumulate
// on the Result; the output string is always produced.  A nil opts
// behaves as DefaultOptions.
func ToASCII(domain string, opts *Options) *Result {
	return process(domain, opts, true)
}

// ToUnicode converts a domain name to its Unicode form, decoding any
// labels carrying the ACE prefix.  For example, ToUnicode of
// "xn--bcher-kva.example" is "bücher.example".  A label that fails
// Punycode decoding is kept in its encoded form and contributes an
// ErrPunycodeDecode violation.  ToUnicode always processes
// non-transitionally.  A nil opts behaves as DefaultOptions.
func ToUnicode(domain string, opts *Options) *Result {
	return process(domain, opts, false)
}

// process implements the shared per-label pipeline of UTS #46
// section 4: map, normalize, encode or decode, then validate.
func process(domain string, opts *Options, toASCII bool) *Result {
	if opts == nil {
		opts = DefaultOptions()
	}
	if domain == "" {
		return &Result{}
	}
	p := uniprop.Load()

	transitional := toASCII && opts.TransitionalProcessing
	labels := splitLabels(domain)
	out := make([]string, len(labels))

	// First pass: map every label and settle its Unicode and ASCII
	// forms.  Validation is deferred to a second pass because the
	// bidi rule needs to know whether any label made the domain a
	// bidi domain name.
	type labelForms struct {
		unicode  string
		ascii    string
		validate bool
	}
	forms := make([]labelForms, len(labels))
	var errs []RuleError
	for i, label := range labels {
		mapped := mapLabel(p, label, transitional, opts.UseSTD3Rules)

		if !toASCII && strings.HasPrefix(mapped, acePrefix) {
			decoded, err := punycode.Decode(mapped[len(acePrefix):])
			if err != nil {
				// Keep the encoded form in the output; the
				// decode failure is the label's only error.
				errs = append(errs, ruleError(ErrPunycodeDecode, i,
					"cannot decode %q: %v", mapped, err))
				forms[i] = labelForms{unicode: mapped, ascii: mapped}
				out[i] = mapped
				continue
			}
			forms[i] = labelForms{unicode: decoded, ascii: mapped, validate: true}
			out[i] = decoded
			continue
		}

		forms[i] = labelForms{unicode: mapped, ascii: mapped, validate: true}
		out[i] = mapped

		if toASCII && !isASCII(mapped) {
			encoded, err := punycode.Encode(mapped)
			if err != nil {
				errs = append(errs, ruleError(ErrPunycodeEncode, i,
					"cannot encode %q: %v", mapped, err))
				continue
			}
			forms[i].ascii = acePrefix + encoded
			out[i] = forms[i].ascii
		}
	}

	// A domain is a bidi domain name if any label contains RTL
	// text; the bidi rule then constrains every label.
	requireBidi := false
	if opts.CheckBidi {
		for _, f := range forms {
			if containsRTL(p, f.unicode) {
				requireBidi = true
				break
			}
		}
	}

	// Second pass: structural validation, in label order.  The DNS
	// length bounds apply only when producing the ASCII form.
	checkLength := toASCII && opts.VerifyDNSLength
	for i, f := range forms {
		if !f.validate {
			continue
		}
		final := i == len(labels)-1
		errs = append(errs, validateLabel(p, f.unicode, f.ascii, i,
			final, requireBidi, checkLength, opts)...)
	}

	result := joinLabels(out)
	if toASCII && opts.VerifyDNSLength {
		// 255 octets on the wire allow 253 characters of
		// presentation form once the root label and its dot are
		// accounted for.
		n := len(result)
		if n > 0 && result[n-1] == '.' {
			n--
		}
		if n > 253 {
			errs = append(errs, ruleError(ErrDomainTooLong, -1,
				"domain is %d octets, limit is 253", n))
		}
	}
	log.Tracef("converted %q -> %q (%d violations)", domain, result,
		len(errs))
	return &Result{Domain: result, Errors: errs}
}

// mapLabel applies the per-codepoint mapping step: mapped codepoints
// are replaced, ignored ones dropped, deviation ones replaced only
// under transitional processing, and disallowed ones carried through
// unchanged so the later checks still see them.  The result is
// canonically composed.
func mapLabel(p *uniprop.Provider, label string, transitional, useSTD3 bool) string {
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		status, mapping := p.Status(r)
		switch resolveSTD3(status, useSTD3) {
		case uniprop.StatusMapped:
			b.WriteString(mapping)
		case uniprop.StatusIgnored:
		case uniprop.StatusDeviation:
			if transitional {
				b.WriteString(mapping)
			} else {
				b.WriteRune(r)
			}
		default:
			// Valid and disallowed codepoints pass through.
			b.WriteRune(r)
		}
	}
	return p.NFC(b.String())
}
