// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idna_test

import (
	"fmt"

	"github.com/idnasec/idnacheck/idna"
)

// This example demonstrates converting an internationalized domain
// name to its ASCII form.
func ExampleToASCII() {
	res := idna.ToASCII("bücher.example", nil)
	fmt.Println("Domain:", res.Domain)
	fmt.Println("Errors:", len(res.Errors))

	// Output:
	// Domain: xn--bcher-kva.example
	// Errors: 0
}

// This example demonstrates that conversion reports violations but
// still produces a best-effort output string.
func ExampleToASCII_violations() {
	res := idna.ToASCII("-abc.example", nil)
	fmt.Println("Domain:", res.Domain)
	for _, e := range res.Errors {
		fmt.Println("Violation:", e.ErrorCode)
	}

	// Output:
	// Domain: -abc.example
	// Violation: ErrHyphenRule
}

// This example demonstrates converting an ASCII domain name back to
// its Unicode form.
func ExampleToUnicode() {
	res := idna.ToUnicode("xn--bcher-kva.example", nil)
	fmt.Println("Domain:", res.Domain)

	// Output:
	// Domain: bücher.example
}
