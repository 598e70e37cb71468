package main

// Manpage is the mdoc source printed by --manpage. Pipe it into 'mandoc -a' or
// 'nroff -mdoc' to produce a formatted manual page.
const Manpage = `.Dd August 25, 2026
.Dt NSWEEP 1
.Os
.Sh NAME
.Nm nsweep
.Nd concurrent DNS subdomain enumerator
.Sh SYNOPSIS
.Nm
.Fl h | -help | -manpage | -version
.Nm
.Op Fl w Ar wordlist
.Op Fl t Ar threads
.Op Fl T Ar types
.Op Fl o Ar output
.Op Fl -json
.Op Fl -timeout Ar duration
.Op Fl -rate Ar qps
.Op Fl -retries Ar count
.Op Fl -servers Ar host[:port]
.Op Fl -tcp
.Op Fl -no-cookies
.Op Fl -resume Ar state-file
.Op Fl -state Ar state-file
.Op Fl -profile Ar yaml-file
.Op Fl -no-wildcard
.Op Fl -no-progress
.Op Fl -no-color
.Op Fl v
.Op Fl -debug
.Ar target-domain
.Sh DESCRIPTION
.Nm
discovers live subdomains of
.Ar target-domain
by brute-force DNS resolution.
Each word in the wordlist is joined with the target domain and queried for a
configurable set of record types across a pool of concurrent workers.
Names which answer are collected with their record values.
Names which return NXDOMAIN are dismissed without querying their remaining
record types, since a name which does not exist has no records of any type.
.Pp
Before scanning,
.Nm
probes a few random labels under the target to detect wildcard DNS.
A wildcarded zone answers for anything, so the probe result is reported as a
warning rather than silently polluting the results.
.Pp
Queries are sent over UDP with an automatic fall-back to TCP on truncation,
or over TCP only with
.Fl -tcp .
EDNS client cookies are attached unless
.Fl -no-cookies
is given.
With multiple
.Fl -servers
the queries rotate across them.
.Sh EXIT STATUS
.Nm
exits 0 on a completed or interrupted scan and 1 on a usage or runtime error.
An interrupted scan still reports the results gathered so far.
.Sh EXAMPLES
Scan with the embedded starter wordlist:
.Pp
.Dl $ nsweep example.com
.Pp
Scan a large wordlist quickly, saving JSON results:
.Pp
.Dl $ nsweep -w big.txt -t 100 -o results.json --json example.com
.Pp
Resume an interrupted scan:
.Pp
.Dl $ nsweep -w big.txt --state scan.json example.com
.Dl $ nsweep -w big.txt --resume scan.json example.com
.Sh SEE ALSO
.Xr dig 1 ,
.Xr host 1
`
