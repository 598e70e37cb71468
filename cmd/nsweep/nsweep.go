package main

import (
	"os"
	"time"

	"github.com/nsweep/nsweep/resolver"
	"github.com/nsweep/nsweep/scan"
)

// The nsweep container exists so that most of the "main" functionality can be
// delegated to support functions and help keep the flow of main() nice and clean.
type nsweep struct {
	cfg *config
	res resolver.Resolver // Injectable for tests; built from cfg when nil
	sig chan os.Signal

	startTime time.Time

	scanner *scan.Scanner
	print   *printer
}

func newNsweep(cfg *config, res resolver.Resolver) *nsweep {
	t := &nsweep{
		cfg:   cfg,
		res:   res,
		sig:   make(chan os.Signal),
		print: newPrinter(),
	}
	if t.cfg == nil {
		t.cfg = newConfig()
	}

	return t
}
