// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/btcsuite/btclog"

	"github.com/idnasec/idnacheck/idna"
	"github.com/idnasec/idnacheck/spoof"
)

// All subsystem loggers share one backend writing to stderr so stdout
// stays reserved for the conversion results themselves.
var (
	backendLog = btclog.NewBackend(os.Stderr)

	log      = backendLog.Logger("MAIN")
	idnaLog  = backendLog.Logger("IDNA")
	spoofLog = backendLog.Logger("SPOF")

	// subsystemLoggers maps each subsystem identifier to its
	// associated logger.
	subsystemLoggers = map[string]btclog.Logger{
		"MAIN": log,
		"IDNA": idnaLog,
		"SPOF": spoofLog,
	}
)

// Hand the library packages their loggers before anything runs.
func init() {
	idna.UseLogger(idnaLog)
	spoof.UseLogger(spoofLog)
}

// setLogLevels sets the log level for all subsystem loggers.  The
// level string has already been vetted by validLogLevel.
func setLogLevels(logLevel string) {
	level, _ := btclog.LevelFromString(logLevel)
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}

// validLogLevel reports whether logLevel is a supported level name.
func validLogLevel(logLevel string) bool {
	_, ok := btclog.LevelFromString(logLevel)
	return ok
}
