// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/idnasec/idnacheck/idna"
	"github.com/idnasec/idnacheck/internal/version"
	"github.com/idnasec/idnacheck/spoof"
)

var cfg *config

// realMain is the real main function for idnacheck.  It is necessary
// to work around the fact that deferred functions do not run when
// os.Exit() is called.
func realMain() error {
	// Load configuration and parse command line.
	tcfg, args, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg
	setLogLevels(cfg.DebugLevel)

	log.Debugf("Version %s", version.String())

	var runErr error
	switch {
	case cfg.ToASCII, cfg.ToUnicode:
		runErr = runConvert(args)
	case cfg.Skeleton:
		runErr = runSkeleton(args)
	case cfg.Confusable:
		runErr = runConfusable(args)
	default:
		runErr = runCheck(args)
	}
	if runErr != nil {
		log.Errorf("%v", runErr)
	}
	return runErr
}

// runConvert converts each domain argument and prints its converted
// form on stdout.  Per-label rule violations go to stderr; any
// violation fails the run, but only after every argument has been
// processed and printed.
func runConvert(domains []string) error {
	if len(domains) == 0 {
		return fmt.Errorf("no domain name arguments given")
	}

	opts := idna.DefaultOptions()
	opts.UseSTD3Rules = !cfg.NoSTD3
	opts.TransitionalProcessing = cfg.Transitional
	opts.VerifyDNSLength = cfg.DNSLength

	violations := 0
	for _, domain := range domains {
		var res *idna.Result
		if cfg.ToASCII {
			res = idna.ToASCII(domain, opts)
		} else {
			res = idna.ToUnicode(domain, opts)
		}
		fmt.Println(res.Domain)
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "%s: %v\n", domain, e)
		}
		violations += len(res.Errors)
	}
	if violations > 0 {
		return fmt.Errorf("%d rule violation(s)", violations)
	}
	return nil
}

// runSkeleton prints the confusable skeleton of each identifier
// argument, one per line.
func runSkeleton(identifiers []string) error {
	if len(identifiers) == 0 {
		return fmt.Errorf("no identifier arguments given")
	}
	st := skeletonTypes[cfg.SkeletonType]
	for _, id := range identifiers {
		fmt.Println(spoof.Skeleton(id, st))
	}
	return nil
}

// runConfusable prints whether the two identifier arguments are
// visually confusable under the selected skeleton type.
func runConfusable(identifiers []string) error {
	if len(identifiers) != 2 {
		return fmt.Errorf("--confusable requires exactly two " +
			"identifier arguments")
	}
	st := skeletonTypes[cfg.SkeletonType]
	fmt.Println(spoof.AreConfusable(identifiers[0], identifiers[1], st))
	return nil
}

// runCheck runs the spoof checks on each identifier argument and
// prints its findings.  Any flagged identifier fails the run once all
// arguments have been processed.
func runCheck(identifiers []string) error {
	if len(identifiers) == 0 {
		return fmt.Errorf("no identifier arguments given")
	}

	checker := spoof.NewChecker()
	flagged := 0
	for _, id := range identifiers {
		res := checker.Check(id)
		fmt.Printf("%s: flags=%v level=%v scripts=%v\n", id,
			res.Flags, res.RestrictionLevel, res.Scripts)
		if res.Failed() {
			flagged++
		}
	}
	if flagged > 0 {
		return fmt.Errorf("%d identifier(s) flagged", flagged)
	}
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
