// Copyright (c) 2024-2026 The idnacheck developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
idnacheck converts internationalized domain names and screens
identifiers for visual spoofing from the command line.

It fronts the library packages in this repository: the idna package for
UTS #46 conversion between Unicode and ASCII (Punycode) domain forms,
and the spoof package for UTS #39 confusable skeletons, pairwise
confusability and identifier checks.

Usage:

	idnacheck [OPTIONS] ARGS...

Exactly one mode must be selected:

	-a, --toascii      Convert the domain name arguments to their ASCII
	                   (Punycode) form
	-u, --tounicode    Convert the domain name arguments to their
	                   Unicode form
	-s, --skeleton     Print the confusable skeleton of each identifier
	                   argument
	-c, --confusable   Report whether the two identifier arguments are
	                   visually confusable
	-k, --check        Run the spoof checks on each identifier argument

Additional options:

	    --skeletontype Confusable table variant for skeleton generation
	                   {single, mixed, whole} (default: mixed)
	    --nostd3       Do not enforce the STD3 ASCII letter-digit-hyphen
	                   rules
	    --transitional Use the transitional (IDNA2003 compatible)
	                   deviation mapping
	    --dnslength    Enforce the 63 octet label and 253 octet domain
	                   length limits
	-d, --debuglevel   Logging level {trace, debug, info, warn, error,
	                   critical} (default: info)
	-V, --version      Display version information and exit

Converted forms print to stdout, one per argument.  Rule violations
print to stderr and make the process exit with a non-zero status after
all arguments have been processed.
*/
package main
