// Copyright (c) 2026 the nsweep authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE file.

// This file exists so that "go doc github.com/nsweep/nsweep" displays something
// useful.

/*

Package nsweep is a concurrent DNS subdomain enumeration tool. It discovers live
subdomains of a target domain by brute-force resolution: each word in a wordlist is
joined with the target and queried for a configurable set of record types across a
pool of workers. Names which answer are collected with their record values; names
which return NXDOMAIN are dismissed without querying their remaining record types.

nsweep is designed for security assessment of domains you are authorized to test.
It paces itself when asked, probes for wildcard DNS before trusting results, and an
interrupted scan can be saved and resumed later.

Project site: https://github.com/nsweep/nsweep

*/
package nsweep
