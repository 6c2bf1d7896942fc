// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idna_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/idnasec/idnacheck/idna"
)

func TestToASCII(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		opts   *idna.Options
		want   string
		codes  []idna.ErrorCode
	}{
		{
			name:   "plain ascii",
			domain: "example.com",
			want:   "example.com",
		},
		{
			name:   "bucher",
			domain: "bücher.example",
			want:   "xn--bcher-kva.example",
		},
		{
			name:   "uppercase mapped",
			domain: "BüCHER.EXAMPLE",
			want:   "xn--bcher-kva.example",
		},
		{
			name:   "already encoded",
			domain: "xn--bcher-kva.example",
			want:   "xn--bcher-kva.example",
		},
		{
			name:   "ideographic separator",
			domain: "bücher。example",
			want:   "xn--bcher-kva.example",
		},
		{
			name:   "trailing dot kept",
			domain: "example.com.",
			want:   "example.com.",
		},
		{
			name:   "sharp s non-transitional",
			domain: "faß.de",
			want:   "xn--fa-hia.de",
		},
		{
			name:   "sharp s transitional",
			domain: "faß.de",
			opts:   &idna.Options{TransitionalProcessing: true},
			want:   "fass.de",
		},
		{
			name:   "soft hyphen ignored",
			domain: "exam\u00adple.com",
			want:   "example.com",
		},
		{
			name:   "leading hyphen",
			domain: "-abc.example",
			want:   "-abc.example",
			codes:  []idna.ErrorCode{idna.ErrHyphenRule},
		},
		{
			name:   "interior empty label",
			domain: "a..b",
			want:   "a..b",
			codes:  []idna.ErrorCode{idna.ErrEmptyLabel},
		},
		{
			name:   "underscore with std3",
			domain: "foo_bar.example",
			want:   "foo_bar.example",
			codes:  []idna.ErrorCode{idna.ErrDisallowedCodepoint},
		},
		{
			name:   "underscore without std3",
			domain: "foo_bar.example",
			opts:   &idna.Options{},
			want:   "foo_bar.example",
		},
		{
			name:   "hyphens in positions 3 and 4",
			domain: "ab--cd.example",
			want:   "ab--cd.example",
			codes:  []idna.ErrorCode{idna.ErrHyphenRule},
		},
		{
			name:   "arabic",
			domain: "مثال.إختبار",
			want:   "xn--mgbh0fb.xn--kgbechtv",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := idna.ToASCII(test.domain, test.opts)
			require.Equal(t, test.want, res.Domain)
			requireCodes(t, test.codes, res.Errors)
		})
	}
}

func TestToUnicode(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   string
		codes  []idna.ErrorCode
	}{
		{
			name:   "plain ascii",
			domain: "example.com",
			want:   "example.com",
		},
		{
			name:   "bucher decoded",
			domain: "xn--bcher-kva.example",
			want:   "bücher.example",
		},
		{
			name:   "uppercase ace prefix",
			domain: "XN--BCHER-KVA.example",
			want:   "bücher.example",
		},
		{
			name:   "unicode passes through",
			domain: "bücher.example",
			want:   "bücher.example",
		},
		{
			name:   "undecodable label kept",
			domain: "xn--a000000000.example",
			want:   "xn--a000000000.example",
			codes:  []idna.ErrorCode{idna.ErrPunycodeDecode},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := idna.ToUnicode(test.domain, nil)
			require.Equal(t, test.want, res.Domain)
			requireCodes(t, test.codes, res.Errors)
		})
	}
}

// requireCodes asserts the exact multiset of error codes on a result.
func requireCodes(t *testing.T, want []idna.ErrorCode, errs []idna.RuleError) {
	t.Helper()
	var got []idna.ErrorCode
	for _, e := range errs {
		got = append(got, e.ErrorCode)
	}
	if len(want) == 0 {
		require.Empty(t, got, "unexpected errors: %v", spew.Sdump(errs))
		return
	}
	require.ElementsMatch(t, want, got, "errors: %v", spew.Sdump(errs))
}

func TestEmptyDomain(t *testing.T) {
	res := idna.ToASCII("", nil)
	require.Equal(t, "", res.Domain)
	require.False(t, res.HasErrors())

	res = idna.ToUnicode("", nil)
	require.Equal(t, "", res.Domain)
	require.False(t, res.HasErrors())
}

// Re-converting an already converted domain must be a no-op.
func TestToASCIIIdempotent(t *testing.T) {
	domains := []string{
		"bücher.example",
		"example.com",
		"faß.de",
		"مثال.إختبار",
		"-abc.example",
	}
	for _, d := range domains {
		first := idna.ToASCII(d, nil)
		second := idna.ToASCII(first.Domain, nil)
		require.Equal(t, first.Domain, second.Domain, "domain %q", d)
	}
}

func TestRoundTripThroughUnicode(t *testing.T) {
	ascii := idna.ToASCII("bücher.example", nil)
	require.False(t, ascii.HasErrors())
	uni := idna.ToUnicode(ascii.Domain, nil)
	require.False(t, uni.HasErrors())
	require.Equal(t, "bücher.example", uni.Domain)
}

func TestVerifyDNSLength(t *testing.T) {
	opts := idna.RegistrationOptions()

	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	res := idna.ToASCII(string(long)+".example", opts)
	requireCodes(t, []idna.ErrorCode{idna.ErrLabelTooLong}, res.Errors)

	// Four 63-octet labels exceed the total limit without any
	// single label being too long.
	label := string(long[:63])
	domain := label + "." + label + "." + label + "." + label
	res = idna.ToASCII(domain, opts)
	requireCodes(t, []idna.ErrorCode{idna.ErrDomainTooLong}, res.Errors)
	require.Equal(t, -1, res.Errors[0].Label)

	// Without VerifyDNSLength neither is a violation.
	res = idna.ToASCII(domain, nil)
	require.False(t, res.HasErrors())

	// The DNS length limits constrain only the ToASCII direction;
	// ToUnicode ignores them even when the option is set.
	res = idna.ToUnicode(string(long)+".example", opts)
	require.False(t, res.HasErrors())
	res = idna.ToUnicode(domain, opts)
	require.False(t, res.HasErrors())
}

func TestLeadingCombiningMark(t *testing.T) {
	res := idna.ToASCII("\u0301abc.example", nil)
	requireCodes(t, []idna.ErrorCode{idna.ErrLeadingCombiningMark},
		res.Errors)
	require.Equal(t, 0, res.Errors[0].Label)
}

func TestContextJ(t *testing.T) {
	tests := []struct {
		name  string
		label string
		ok    bool
	}{
		{"zwnj between arabic dual joiners", "ب\u200cب", true},
		{"zwnj after latin", "ab\u200cc", false},
		{"zwj after virama", "क\u094d\u200dष", true},
		{"zwj without virama", "क\u200dष", false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := idna.ToASCII(test.label+".example", nil)
			if test.ok {
				requireCodes(t, nil, res.Errors)
			} else {
				var codes []idna.ErrorCode
				for _, e := range res.Errors {
					codes = append(codes, e.ErrorCode)
				}
				require.Contains(t, codes, idna.ErrJoinerRule)
			}
		})
	}
}

func TestBidiRule(t *testing.T) {
	// A digits-only label is fine in an LTR domain but violates the
	// bidi rule once the domain contains RTL text.
	res := idna.ToASCII("123.example", nil)
	require.False(t, res.HasErrors())

	res = idna.ToASCII("123.مثال", nil)
	var codes []idna.ErrorCode
	for _, e := range res.Errors {
		codes = append(codes, e.ErrorCode)
	}
	require.Contains(t, codes, idna.ErrBidiRule)

	// Pure RTL labels are fine.
	res = idna.ToASCII("مثال.إختبار", nil)
	require.False(t, res.HasErrors())
}
