// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package punycode_test

import (
	"fmt"

	"github.com/idnasec/idnacheck/punycode"
)

// This example demonstrates encoding a Unicode label into its
// Punycode form.
func ExampleEncode() {
	encoded, err := punycode.Encode("bücher")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Encoded:", encoded)

	// Output:
	// Encoded: bcher-kva
}

// This example demonstrates decoding a Punycode string back into the
// Unicode label it represents.
func ExampleDecode() {
	decoded, err := punycode.Decode("bcher-kva")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Decoded:", decoded)

	// Output:
	// Decoded: bücher
}
