// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spoof_test

import (
	"testing"

	"github.com/idnasec/idnacheck/spoof"
)

func TestSkeleton(t *testing.T) {
	tests := []struct {
		name string
		in   string
		st   spoof.SkeletonType
		want string
	}{
		{
			name: "ascii passthrough",
			in:   "paypal",
			st:   spoof.SingleScript,
			want: "paypal",
		},
		{
			name: "capital i to l",
			in:   "paypaI",
			st:   spoof.SingleScript,
			want: "paypal",
		},
		{
			name: "digit one to l",
			in:   "paypa1",
			st:   spoof.MixedScript,
			want: "paypal",
		},
		{
			name: "m to rn",
			in:   "modern",
			st:   spoof.MixedScript,
			want: "rnodern",
		},
		{
			name: "cyrillic lookalikes",
			in:   "раура1", // Cyrillic er, a, u, er, a
			st:   spoof.MixedScript,
			want: "paypal",
		},
		{
			name: "double apostrophe to quote",
			in:   "it''s",
			st:   spoof.MixedScript,
			want: "it\"s",
		},
		{
			name: "composed form decomposes",
			in:   "caf\u00e9",
			st:   spoof.MixedScript,
			want: "cafe\u0301",
		},
		{
			name: "single script only entry",
			in:   "ɡo", // LATIN SMALL LETTER SCRIPT G
			st:   spoof.SingleScript,
			want: "go",
		},
		{
			name: "single script entry absent from mixed table",
			in:   "ɡo",
			st:   spoof.MixedScript,
			want: "ɡo",
		},
		{
			name: "mixed script only entry",
			in:   "һat", // CYRILLIC SMALL LETTER SHHA
			st:   spoof.MixedScript,
			want: "hat",
		},
		{
			name: "mixed script entry absent from single table",
			in:   "һat",
			st:   spoof.SingleScript,
			want: "һat",
		},
		{
			name: "empty string",
			in:   "",
			st:   spoof.MixedScript,
			want: "",
		},
		{
			// Both capital letters join the same prototype class as
			// lowercase l, so "Ι" and "I" share a skeleton.
			name: "capital iota joins the l class",
			in:   "Ι",
			st:   spoof.MixedScript,
			want: "l",
		},
		{
			name: "armenian lookalikes",
			in:   "հոսց", // ho, vo, seh, co
			st:   spoof.MixedScript,
			want: "hnug",
		},
	}
	for _, test := range tests {
		got := spoof.Skeleton(test.in, test.st)
		if got != test.want {
			t.Errorf("%s: Skeleton(%q, %v) = %q, want %q", test.name,
				test.in, test.st, got, test.want)
		}
	}
}

// Skeletons are only compared against skeletons of the same type;
// generating one twice must give the same answer.
func TestSkeletonDeterministic(t *testing.T) {
	inputs := []string{"paypal", "раураl", "caf\u00e9", "東京"}
	for _, in := range inputs {
		for st := spoof.SingleScript; st <= spoof.WholeScript; st++ {
			first := spoof.Skeleton(in, st)
			second := spoof.Skeleton(in, st)
			if first != second {
				t.Errorf("Skeleton(%q, %v) not deterministic: %q != %q",
					in, st, first, second)
			}
		}
	}
}

func TestAreConfusable(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		st   spoof.SkeletonType
		want bool
	}{
		{
			name: "paypal capital i",
			a:    "paypal",
			b:    "paypaI",
			st:   spoof.SingleScript,
			want: true,
		},
		{
			name: "cyrillic copa",
			a:    "copa",
			b:    "сора",
			st:   spoof.WholeScript,
			want: true,
		},
		{
			name: "composed and decomposed",
			a:    "caf\u00e9",
			b:    "cafe\u0301",
			st:   spoof.MixedScript,
			want: true,
		},
		{
			name: "unrelated words",
			a:    "alpha",
			b:    "beta",
			st:   spoof.MixedScript,
			want: false,
		},
		{
			name: "single script entry ignored by mixed table",
			a:    "ɡo",
			b:    "go",
			st:   spoof.MixedScript,
			want: false,
		},
		{
			name: "greek iota and latin i",
			a:    "ι",
			b:    "i",
			st:   spoof.MixedScript,
			want: true,
		},
		{
			name: "greek tau and latin t",
			a:    "τ",
			b:    "t",
			st:   spoof.MixedScript,
			want: true,
		},
		{
			name: "armenian co and latin g",
			a:    "ց",
			b:    "g",
			st:   spoof.MixedScript,
			want: true,
		},
		{
			name: "cyrillic qa and latin q",
			a:    "ԛ",
			b:    "q",
			st:   spoof.MixedScript,
			want: true,
		},
		{
			name: "cyrillic scope",
			a:    "scope",
			b:    "ѕсоре",
			st:   spoof.WholeScript,
			want: true,
		},
	}
	for _, test := range tests {
		got := spoof.AreConfusable(test.a, test.b, test.st)
		if got != test.want {
			t.Errorf("%s: AreConfusable(%q, %q, %v) = %v, want %v",
				test.name, test.a, test.b, test.st, got, test.want)
		}
	}
}

// Confusability must be symmetric and reflexive for any inputs and any
// skeleton type.
func TestAreConfusableRelation(t *testing.T) {
	inputs := []string{"paypal", "paypaI", "раураl", "caf\u00e9",
		"", "東京"}
	for st := spoof.SingleScript; st <= spoof.WholeScript; st++ {
		for _, a := range inputs {
			if !spoof.AreConfusable(a, a, st) {
				t.Errorf("AreConfusable(%q, %q, %v) = false, want "+
					"reflexive true", a, a, st)
			}
			for _, b := range inputs {
				ab := spoof.AreConfusable(a, b, st)
				ba := spoof.AreConfusable(b, a, st)
				if ab != ba {
					t.Errorf("AreConfusable not symmetric for %q, %q, "+
						"%v: %v != %v", a, b, st, ab, ba)
				}
			}
		}
	}
}

func BenchmarkSkeleton(b *testing.B) {
	// Prime the confusable tables outside the timed loop.
	spoof.Skeleton("warmup", spoof.MixedScript)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		spoof.Skeleton("раура1-example", spoof.MixedScript)
	}
}
