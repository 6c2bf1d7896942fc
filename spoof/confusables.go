// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spoof

import (
	"bufio"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// confusablesData is the versioned UTS #39 confusable mapping table the
// skeleton tables are built from.  It is compiled into the binary so
// the mapping in use is always the one the module shipped with.
//
//go:embed data/confusables.txt
var confusablesData string

// SkeletonType selects which confusable table variant a skeleton is
// generated against.
type SkeletonType uint8

const (
	// SingleScript uses the table for identifiers confusable within a
	// single script.
	SingleScript SkeletonType = iota

	// MixedScript uses the table for identifiers mixing scripts.  This
	// is the broadest table and the right default when the scripts of
	// the compared identifiers are unknown.
	MixedScript

	// WholeScript uses the table for identifiers written entirely in
	// one script that are confusable with identifiers written entirely
	// in another.
	WholeScript

	numSkeletonTypes
)

// skeletonTypeStrings maps a SkeletonType to its name.
var skeletonTypeStrings = map[SkeletonType]string{
	SingleScript: "SingleScript",
	MixedScript:  "MixedScript",
	WholeScript:  "WholeScript",
}

// String returns the SkeletonType as a human-readable string.
func (st SkeletonType) String() string {
	if s, ok := skeletonTypeStrings[st]; ok {
		return s
	}
	return "Unknown"
}

// confusableTable maps a source codepoint sequence to the prototype
// sequence that replaces it.  Keys may span several runes; maxKey is
// the longest key length in runes so lookups know where to start the
// longest-match scan.
type confusableTable struct {
	protos map[string]string
	maxKey int
}

func (t *confusableTable) add(source, proto string) {
	t.protos[source] = proto
	if n := len([]rune(source)); n > t.maxKey {
		t.maxKey = n
	}
}

var (
	tablesOnce sync.Once
	tables     [numSkeletonTypes]*confusableTable
)

// loadTables parses the embedded confusable data on first use and
// returns the immutable per-variant tables.  The data is compiled in,
// so a parse failure is a build defect and panics rather than
// returning an error every caller would have to thread through.
func loadTables() [numSkeletonTypes]*confusableTable {
	tablesOnce.Do(func() {
		parsed, err := parseConfusables(confusablesData)
		if err != nil {
			panic(fmt.Sprintf("spoof: invalid embedded confusable "+
				"data: %v", err))
		}
		tables = parsed
		log.Debugf("loaded confusable tables: single=%d mixed=%d "+
			"whole=%d entries", len(tables[SingleScript].protos),
			len(tables[MixedScript].protos),
			len(tables[WholeScript].protos))
	})
	return tables
}

// parseConfusables reads the UTS #39 source format: one mapping per
// line, "<source> ; <prototype> ; <class>" with '#' starting a comment.
// The class column routes the entry into table variants: MA into all
// three, SL into the single-script table only, ML into the mixed- and
// whole-script tables.
func parseConfusables(data string) ([numSkeletonTypes]*confusableTable, error) {
	var out [numSkeletonTypes]*confusableTable
	for i := range out {
		out[i] = &confusableTable{protos: make(map[string]string)}
	}

	scanner := bufio.NewScanner(strings.NewReader(data))
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ";")
		if len(fields) != 3 {
			return out, fmt.Errorf("line %d: expected 3 fields, got %d",
				lineno, len(fields))
		}
		source, err := parseRuneSeq(fields[0])
		if err != nil {
			return out, fmt.Errorf("line %d: bad source: %v", lineno, err)
		}
		proto, err := parseRuneSeq(fields[1])
		if err != nil {
			return out, fmt.Errorf("line %d: bad prototype: %v",
				lineno, err)
		}

		switch class := strings.TrimSpace(fields[2]); class {
		case "MA":
			out[SingleScript].add(source, proto)
			out[MixedScript].add(source, proto)
			out[WholeScript].add(source, proto)
		case "SL":
			out[SingleScript].add(source, proto)
		case "ML":
			out[MixedScript].add(source, proto)
			out[WholeScript].add(source, proto)
		default:
			return out, fmt.Errorf("line %d: unknown class %q",
				lineno, class)
		}
	}
	if err := scanner.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// parseRuneSeq converts a whitespace-separated list of hexadecimal
// codepoints into the string they spell.
func parseRuneSeq(field string) (string, error) {
	var b strings.Builder
	for _, hex := range strings.Fields(field) {
		cp, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return "", fmt.Errorf("codepoint %q: %v", hex, err)
		}
		if cp > 0x10FFFF {
			return "", fmt.Errorf("codepoint %q out of range", hex)
		}
		b.WriteRune(rune(cp))
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("empty codepoint sequence")
	}
	return b.String(), nil
}
