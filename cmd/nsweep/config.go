package main

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/nsweep/nsweep/log"
	"github.com/nsweep/nsweep/scan"
)

const (
	programName = "nsweep"

	// Version and ReleaseDate are bumped from ChangeLog.md at release time.
	Version     = "v0.9.0"
	ReleaseDate = "2026-08-25"

	defaultProjectURL = "https://github.com/nsweep/nsweep"

	defaultTypes   = "A,AAAA,CNAME"
	defaultTimeout = time.Second * 5
	defaultRetries = 2

	maxRate    = 1000.0     // Queries per second
	maxTimeout = time.Minute
	maxRetries = 5
)

// config defines the settings for one nsweep invocation. Flag values land here
// during parsing, a --profile file fills whatever the command line left alone,
// then ValidateCommandLineOptions normalizes everything and derives the typed
// fields at the bottom. After that it is treated as read-only.
type config struct {
	projectURL string

	domainArg string // Positional target as typed; validation derives domain

	wordlistPath  string        // "-w" - empty means the embedded starter list
	threads       int           // "-t"
	typesArg      string        // "-T" - comma-separated record types
	timeout       time.Duration // "--timeout"
	rate          float64       // "--rate" - queries per second, 0 is unpaced
	servers       []string      // "--servers"
	tcpFlag       bool          // "--tcp"
	noCookiesFlag bool          // "--no-cookies"
	retries       int           // "--retries"

	outputPath string // "-o"
	jsonFlag   bool   // "--json"

	resumePath string // "--resume"
	statePath  string // "--state"

	profilePath string // "--profile"

	noProgressFlag bool // "--no-progress"
	noColorFlag    bool // "--no-color"
	wildcardFlag   bool // "--wildcard"
	noWildcardFlag bool // "--no-wildcard"

	verboseFlag bool // "-v"
	debugFlag   bool // "--debug"

	// Derived by ValidateCommandLineOptions
	domain string
	types  []scan.RecordType
}

func newConfig() *config {
	t := &config{projectURL: defaultProjectURL}
	info, ok := debug.ReadBuildInfo()
	if ok && len(info.Main.Path) > 0 {
		t.projectURL = info.Main.Path // Override with embedded if present
	}

	return t
}

func (t *config) printVersion() {
	fmt.Fprintf(log.Out(), "Program: %s %s (%s)\n", programName, Version, ReleaseDate)
	fmt.Fprintf(log.Out(), "Project: %s\n", t.projectURL)
}
