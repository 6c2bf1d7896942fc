// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spoof_test

import (
	"fmt"

	"github.com/idnasec/idnacheck/spoof"
)

// This example demonstrates generating the skeleton of an identifier
// and detecting a classic capital-I-for-l substitution.
func ExampleSkeleton() {
	fmt.Println(spoof.Skeleton("paypaI", spoof.SingleScript))
	fmt.Println(spoof.AreConfusable("paypal", "paypaI", spoof.SingleScript))

	// Output:
	// paypal
	// true
}

// This example demonstrates running the single-identifier spoof checks
// on a string that smuggles a Cyrillic letter into a Latin word.
func ExampleCheck() {
	res := spoof.Check("p\u0430ypal", spoof.CheckAll)
	fmt.Println("Flags:", res.Flags)
	fmt.Println("Level:", res.RestrictionLevel)
	fmt.Println("Scripts:", res.Scripts)

	// Output:
	// Flags: MixedScript|RestrictionLevel
	// Level: MinimallyRestricted
	// Scripts: [Cyrillic Latin]
}

// This example demonstrates comparing two identifiers with a
// configured Checker.
func ExampleChecker_AreConfusable() {
	c := spoof.NewChecker()
	fmt.Println(c.AreConfusable("paypal", "paypaI"))

	// Output:
	// SingleScriptConfusable
}
