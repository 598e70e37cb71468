package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/nsweep/nsweep/log"
)

func reportError(severity string, err error, messages ...string) {
	msg := severity
	if len(messages) > 0 {
		msg += ": " + strings.Join(messages, " ")
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	fmt.Fprintln(log.Out(), msg)
}

func fatal(err error, messages ...string) {
	reportError("Fatal", err, messages...)
	os.Exit(1)
}

func warning(err error, messages ...string) {
	reportError("Warning", err, messages...)
}

//////////////////////////////////////////////////////////////////////

func main() {
	ns := newNsweep(nil, nil)
	switch ns.parseOptions(os.Args) {
	case parseStop:
		return
	case parseFailed:
		os.Exit(1)
	case parseContinue:
	}

	// Transfer logging and color options to their packages

	if ns.cfg.verboseFlag {
		log.SetLevel(log.VerboseLevel)
	}
	if ns.cfg.debugFlag {
		log.SetLevel(log.DebugLevel)
	}
	if ns.cfg.noColorFlag {
		color.NoColor = true
	}

	fmt.Fprintln(log.Out(),
		programName, Version, "Starting with Log Level:", log.Level())

	// Validate everything that is likely a typo or usage error
	err := ns.ValidateCommandLineOptions()
	if err != nil {
		fatal(err)
	}

	err = ns.run()
	if err != nil {
		fatal(err)
	}

	fmt.Fprintln(log.Out(), programName, Version, "Exiting after",
		time.Now().Sub(ns.startTime).Round(time.Second))
}
