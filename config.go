// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"

	"github.com/idnasec/idnacheck/internal/version"
	"github.com/idnasec/idnacheck/spoof"
)

const defaultDebugLevel = "info"

// config defines the configuration options for idnacheck.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ToASCII      bool   `short:"a" long:"toascii" description:"Convert the domain name arguments to their ASCII (Punycode) form"`
	ToUnicode    bool   `short:"u" long:"tounicode" description:"Convert the domain name arguments to their Unicode form"`
	Skeleton     bool   `short:"s" long:"skeleton" description:"Print the confusable skeleton of each identifier argument"`
	Confusable   bool   `short:"c" long:"confusable" description:"Report whether the two identifier arguments are visually confusable"`
	Check        bool   `short:"k" long:"check" description:"Run the spoof checks on each identifier argument"`
	SkeletonType string `long:"skeletontype" description:"Confusable table variant for skeleton generation {single, mixed, whole}"`
	NoSTD3       bool   `long:"nostd3" description:"Do not enforce the STD3 ASCII letter-digit-hyphen rules"`
	Transitional bool   `long:"transitional" description:"Use the transitional (IDNA2003 compatible) deviation mapping"`
	DNSLength    bool   `long:"dnslength" description:"Enforce the 63 octet label and 253 octet domain length limits"`
	DebugLevel   string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	ShowVersion  bool   `short:"V" long:"version" description:"Display version information and exit"`
}

// skeletonTypes maps the accepted --skeletontype values to their table
// variants.
var skeletonTypes = map[string]spoof.SkeletonType{
	"single": spoof.SingleScript,
	"mixed":  spoof.MixedScript,
	"whole":  spoof.WholeScript,
}

// loadConfig initializes and parses the config using command line
// options.
func loadConfig() (*config, []string, error) {
	cfg := config{
		SkeletonType: "mixed",
		DebugLevel:   defaultDebugLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		fmt.Println(appName, "version", version.String())
		os.Exit(0)
	}

	// Exactly one mode of operation can be selected.
	funcName := "loadConfig"
	numModes := 0
	for _, enabled := range []bool{cfg.ToASCII, cfg.ToUnicode,
		cfg.Skeleton, cfg.Confusable, cfg.Check} {

		if enabled {
			numModes++
		}
	}
	if numModes != 1 {
		str := "%s: Exactly one of --toascii, --tounicode, " +
			"--skeleton, --confusable or --check must be specified"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Validate the skeleton table variant.
	if _, ok := skeletonTypes[cfg.SkeletonType]; !ok {
		str := "%s: The specified skeleton type [%v] is invalid -- " +
			"supported types: single, mixed, whole"
		err := fmt.Errorf(str, funcName, cfg.SkeletonType)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Validate debug log level.
	if !validLogLevel(cfg.DebugLevel) {
		str := "%s: The specified debug level [%v] is invalid"
		err := fmt.Errorf(str, funcName, cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
