// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package punycode

import (
	"errors"
	"math"
	"unicode/utf16"
	"unicode/utf8"
)

// Bootstring parameters for Punycode as fixed by RFC 3492 section 5.
// These values are not tunable.
const (
	base        = 36
	tmin        = 1
	tmax        = 26
	skew        = 38
	damp        = 700
	initialBias = 72
	initialN    = 128
)

// ErrOverflow indicates the input requires wider integers than the
// codec performs its delta arithmetic with.  Per RFC 3492 section 6.4
// this can only be triggered by inputs longer than any valid domain
// label, but the codec guards every multiplication and addition anyway.
var ErrOverflow = errors.New("punycode: arithmetic overflow")

// ErrBadInput indicates malformed encoded input: a byte outside the
// base-36 alphabet, a truncated variable-length integer, or a decode
// that produced a code point outside the Unicode range.
var ErrBadInput = errors.New("punycode: invalid input")

// adapt is the bias adaptation function from RFC 3492 section 6.1.
func adapt(delta, numPoints int32, firstTime bool) int32 {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := int32(0)
	for delta > ((base-tmin)*tmax)/2 {
		delta /= base - tmin
		k += base
	}
	return k + (base-tmin+1)*delta/(delta+skew)
}

// decodeDigit returns the numeric value of a basic code point in the
// base-36 alphabet, or base if the byte is not a valid digit.
func decodeDigit(b byte) int32 {
	switch {
	case '0' <= b && b <= '9':
		return int32(b - '0' + 26)
	case 'A' <= b && b <= 'Z':
		return int32(b - 'A')
	case 'a' <= b && b <= 'z':
		return int32(b - 'a')
	}
	return base
}

// encodeDigit returns the lowercase basic code point representing a
// digit in the range [0, base).
func encodeDigit(d int32) byte {
	switch {
	case 0 <= d && d <= 25:
		return byte(d) + 'a'
	case 26 <= d && d <= 35:
		return byte(d) - 26 + '0'
	}
	panic("punycode: internal error in digit conversion")
}

// EncodeRunes encodes a sequence of Unicode code points into its
// Punycode form.  The returned string consists solely of ASCII
// characters.  Code points must be valid scalar values; surrogates and
// values above U+10FFFF result in ErrBadInput.
func EncodeRunes(input []rune) (string, error) {
	output := make([]byte, 0, len(input))
	for _, r := range input {
		if r > utf8.MaxRune || utf16.IsSurrogate(r) || r < 0 {
			return "", ErrBadInput
		}
		if r < initialN {
			output = append(output, byte(r))
		}
	}
	basicLength := int32(len(output))
	if basicLength > 0 {
		output = append(output, '-')
	}

	n, delta, bias := int32(initialN), int32(0), int32(initialBias)
	remaining := int32(len(input)) - basicLength
	handled := basicLength
	for remaining > 0 {
		// Find the smallest unhandled code point >= n.
		m := int32(math.MaxInt32)
		for _, r := range input {
			if int32(r) >= n && int32(r) < m {
				m = int32(r)
			}
		}

		// Increase delta enough to advance the decoder's <n, i>
		// state to <m, 0>.
		if m-n > (math.MaxInt32-delta)/(handled+1) {
			return "", ErrOverflow
		}
		delta += (m - n) * (handled + 1)
		n = m

		for _, r := range input {
			if int32(r) < n {
				delta++
				if delta < 0 {
					return "", ErrOverflow
				}
				continue
			}
			if int32(r) != n {
				continue
			}
			q := delta
			for k := int32(base); ; k += base {
				t := k - bias
				if t < tmin {
					t = tmin
				} else if t > tmax {
					t = tmax
				}
				if q < t {
					break
				}
				output = append(output, encodeDigit(t+(q-t)%(base-t)))
				q = (q - t) / (base - t)
			}
			output = append(output, encodeDigit(q))
			bias = adapt(delta, handled+1, handled == basicLength)
			delta = 0
			handled++
			remaining--
		}
		delta++
		n++
	}
	return string(output), nil
}

// Encode encodes the code points of s into their Punycode form.  It is
// a convenience wrapper around EncodeRunes.
func Encode(s string) (string, error) {
	return EncodeRunes([]rune(s))
}

// DecodeRunes decodes a Punycode string back into the sequence of
// Unicode code points it represents.  The input must consist solely of
// ASCII characters; anything else, an invalid digit, or a truncated
// trailing integer results in ErrBadInput.
func DecodeRunes(s string) ([]rune, error) {
	// Everything up to the last '-' is the basic code point segment,
	// copied through verbatim.
	pos := 0
	output := make([]rune, 0, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '-' {
			pos = i + 1
			break
		}
	}
	if pos > 0 {
		for _, b := range []byte(s[:pos-1]) {
			if b >= initialN {
				return nil, ErrBadInput
			}
			output = append(output, rune(b))
		}
	}

	n, i, bias := int32(initialN), int32(0), int32(initialBias)
	for pos < len(s) {
		oldi, w := i, int32(1)
		for k := int32(base); ; k += base {
			if pos == len(s) {
				return nil, ErrBadInput
			}
			digit := decodeDigit(s[pos])
			pos++
			if digit >= base {
				return nil, ErrBadInput
			}
			if digit > (math.MaxInt32-i)/w {
				return nil, ErrOverflow
			}
			i += digit * w
			t := k - bias
			if t < tmin {
				t = tmin
			} else if t > tmax {
				t = tmax
			}
			if digit < t {
				break
			}
			if w > math.MaxInt32/(base-t) {
				return nil, ErrOverflow
			}
			w *= base - t
		}

		outLen := int32(len(output)) + 1
		bias = adapt(i-oldi, outLen, oldi == 0)
		if i/outLen > math.MaxInt32-n {
			return nil, ErrOverflow
		}
		n += i / outLen
		i %= outLen
		if n > utf8.MaxRune || utf16.IsSurrogate(rune(n)) {
			return nil, ErrBadInput
		}

		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = rune(n)
		i++
	}
	return output, nil
}

// Decode decodes a Punycode string back into the Unicode string it
// represents.  It is a convenience wrapper around DecodeRunes.
func Decode(s string) (string, error) {
	runes, err := DecodeRunes(s)
	if err != nil {
		return "", err
	}
	return string(runes), nil
}
