package main

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/nsweep/nsweep/log"
	"github.com/nsweep/nsweep/scan"
)

type parseResult int // This is a ternary variable
const (
	parseStop     parseResult = iota // No error, but don't continue
	parseContinue                    // No errors and continue
	parseFailed                      // Errors, do not continue
)

// Parsing command line options is an, er, interesting process as there is very little
// control over the formating and output that the various "flags" packages offer. The
// trailing \n on some usage messages places a bit of white-space around dense option
// output; that only works for options without a default value as otherwise the flag
// output puts the default message *after* the \n.
//
// Towards the end of this function you'll see the hoops needed to disallow duplicate
// flags. It surprises me that most are happy to silently accept this ambiguity.
func (t *nsweep) parseOptions(args []string) parseResult {
	var helpFlag, manpageFlag, versionFlag bool

	name := programName
	if len(args) > 0 {
		name = args[0]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Consider '-h' for command-line usage")
	}

	fs.SetOutput(log.Out())

	// Non-config flags

	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.BoolVar(&manpageFlag, "manpage", false,
		`Print complete mandoc - pipe into 'mandoc -a' to produce a
formatted manual page.
`)
	fs.BoolVar(&versionFlag, "version", false, "Print version and origin URL")

	// config flags

	fs.StringVarP(&t.cfg.wordlistPath, "wordlist", "w", "",
		`Wordlist file with one subdomain label per line. Blank lines
and '#' comments are skipped. The default is a small embedded
starter list.
`)
	fs.IntVarP(&t.cfg.threads, "threads", "t", scan.DefaultThreads,
		"Number of concurrent workers (1-500)")
	fs.StringVarP(&t.cfg.typesArg, "types", "T", defaultTypes,
		"DNS record types to query, comma-separated ("+scan.RecordTypeNames()+")")
	fs.DurationVar(&t.cfg.timeout, "timeout", defaultTimeout,
		"Per-query timeout (up to 1m)")
	fs.Float64Var(&t.cfg.rate, "rate", 0,
		"Maximum queries per second across all workers. 0 is unlimited.")
	fs.IntVar(&t.cfg.retries, "retries", defaultRetries,
		"Query attempts before a server is given up on (1-5)")

	fs.StringArrayVar(&t.cfg.servers, "servers", []string{},
		`DNS server to query as 'host' or 'host:port'. The default is
the system resolver configuration. Repeat for multiple servers;
queries rotate across them.
`)
	fs.BoolVar(&t.cfg.tcpFlag, "tcp", false, "Query over TCP instead of UDP")
	fs.BoolVar(&t.cfg.noCookiesFlag, "no-cookies", false,
		"Do not attach EDNS client cookies to queries")

	fs.StringVarP(&t.cfg.outputPath, "output", "o", "", "Save results to this file")
	fs.BoolVar(&t.cfg.jsonFlag, "json", false,
		"Write the --output file as JSON instead of text")

	fs.StringVar(&t.cfg.resumePath, "resume", "",
		`Resume an interrupted scan from this state file. Completed
words are skipped and previously found records are carried
into the final report.
`)
	fs.StringVar(&t.cfg.statePath, "state", "",
		"Track scan state and save it to this file on interrupt or completion")

	fs.StringVar(&t.cfg.profilePath, "profile", "",
		`YAML profile supplying defaults for threads, types, timeout,
rate, servers, retries, tcp and wordlist. Explicit command
line options always win.
`)

	fs.BoolVar(&t.cfg.noProgressFlag, "no-progress", false, "Disable the progress bar")
	fs.BoolVar(&t.cfg.noColorFlag, "no-color", false, "Disable colored output")
	fs.BoolVar(&t.cfg.wildcardFlag, "wildcard", true,
		"Probe for wildcard DNS before scanning")
	fs.BoolVar(&t.cfg.noWildcardFlag, "no-wildcard", false,
		"Skip the wildcard DNS probe")

	fs.BoolVarP(&t.cfg.verboseFlag, "verbose", "v", false,
		"Print each found record as it arrives")
	fs.BoolVar(&t.cfg.debugFlag, "debug", false,
		"Log wire-level query detail - this implies --verbose")

	////////////////////////////////////////

	// Crazy as it is, but both the standard "flag" package and "spf13/pflag" allow
	// duplicate options without any warning to the user or the program. At least with
	// spf13 we can manage duplicates ourselves.

	dupes := make(map[string]bool) // True means dupes are ok

	dupes["help"] = true    // Documentation options that never run a scan
	dupes["version"] = true // can be duplicated because the user may be fumbling
	dupes["manpage"] = true // around trying to work it out.

	dupes["servers"] = true // Legitimately allowed multiple times

	err := fs.ParseAll(args[1:],
		func(f *flag.Flag, v string) error {
			if tf, ok := dupes[f.Name]; ok {
				if tf {
					return fs.Set(f.Name, v)

				}
				return fmt.Errorf("Duplicate option '--%v %v' not allowed",
					f.Name, v)
			}
			dupes[f.Name] = false
			return fs.Set(f.Name, v)
		})

	if err != nil {
		fmt.Fprintln(log.Out(), "Error:", err.Error())
		return parseFailed
	}

	// Handle all documentation options locally

	if helpFlag {
		printUsage(t.cfg, fs)
		fmt.Fprintln(log.Out())
		t.cfg.printVersion()
		return parseStop
	}

	if versionFlag {
		t.cfg.printVersion()
		return parseStop
	}

	if manpageFlag {
		fmt.Fprint(log.Out(), Manpage)
		return parseStop
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(log.Out(), "Error: Missing target domain - consider '-h'")
		return parseFailed
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(log.Out(), "Error: Unexpected goop on command line: '%s'\n",
			strings.Join(fs.Args()[1:], " "))
		return parseFailed
	}
	t.cfg.domainArg = fs.Arg(0)

	return t.applyProfile(fs)
}

func printUsage(cfg *config, fs *flag.FlagSet) {
	o := log.Out()
	fmt.Fprintln(o, "NAME")
	fmt.Fprintln(o, " ", programName, "-- a concurrent DNS subdomain enumerator")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "SYNOPSIS")
	fmt.Fprintln(o, "     nsweep -h | --help | --manpage | --version")
	fmt.Fprintln(o, "     nsweep [options] target-domain")
	fmt.Fprintln(o, `
     nsweep [-w wordlist] [-t threads] [-T types] [-o output] [--json]
            [--timeout duration] [--rate qps] [--retries count]
            [--servers host[:port]]`+"…"+` [--tcp] [--no-cookies]
            [--resume state-file] [--state state-file] [--profile yaml-file]
            [--wildcard=true] [--no-wildcard] [--no-progress] [--no-color]
            [-v] [--debug] target-domain`)
	fmt.Fprintln(o)
	fmt.Fprintln(o, "     Ellipses (…) indicate options which can be specified multiple times.")
	fmt.Fprint(o, `
DESCRIPTION
     nsweep discovers live subdomains of a target domain by brute-force DNS
     resolution. Each word in a wordlist is joined with the target domain and
     queried for a configurable set of record types across a pool of
     concurrent workers. Names which answer are collected with their record
     values; names which return NXDOMAIN are dismissed without querying their
     remaining record types, since a name which does not exist has no records
     of any type.

     Before scanning, nsweep probes a few random labels under the target to
     detect wildcard DNS. A wildcarded zone answers for anything, so the probe
     result is reported as a warning rather than silently polluting the
     results.

     An interrupted scan reports whatever it found, and with --state the
     progress is saved so a later --resume run can pick up where it left off.

     A typical invocation is:

           $ nsweep -w words.txt -t 50 -T A,AAAA,CNAME example.com

`)
	fmt.Fprintln(o, "OPTIONS")
	op := fs.Output() // Save and restore - not sure this is a good idea
	fs.SetOutput(o)
	fs.PrintDefaults()
	fs.SetOutput(op)

	fmt.Fprint(o, `
NOTES
  1. --servers can be repeated multiple times.
  2. With no -w, a small embedded starter wordlist is used.

SIGNALS
  SIGTERM - stop the scan; partial results are reported
  SIGINT  - stop the scan; partial results are reported
  SIGUSR1 - generates an immediate stats report
`)
}
