package main

import (
	"fmt"
	"os"
	"strconv"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/nsweep/nsweep/log"
)

// A profile is a yaml file of scan settings so that recurring scans don't
// need a wall of options each time. Command-line options always win; the
// profile only fills in flags the command line left alone.
type profile struct {
	Wordlist string   `yaml:"wordlist"`
	Threads  int      `yaml:"threads"`
	Types    string   `yaml:"types"`
	Timeout  string   `yaml:"timeout"`
	Rate     float64  `yaml:"rate"`
	Servers  []string `yaml:"servers"`
	TCP      bool     `yaml:"tcp"`
	Retries  int      `yaml:"retries"`
}

func (t *nsweep) applyProfile(fs *flag.FlagSet) parseResult {
	if len(t.cfg.profilePath) == 0 {
		return parseContinue
	}

	data, err := os.ReadFile(t.cfg.profilePath)
	if err != nil {
		fmt.Fprintln(log.Out(), "Error: --profile", err.Error())
		return parseFailed
	}

	var p profile
	err = yaml.Unmarshal(data, &p)
	if err != nil {
		fmt.Fprintln(log.Out(), "Error: --profile", err.Error())
		return parseFailed
	}

	// Route values back thru the FlagSet so they parse exactly as
	// command-line values do. fs.Set marks the flag Changed, so the servers
	// check has to come before its loop.
	set := func(name, value string) bool {
		if fs.Changed(name) {
			return true
		}
		err := fs.Set(name, value)
		if err != nil {
			fmt.Fprintf(log.Out(), "Error: --profile %s: %s\n", name, err.Error())
			return false
		}

		return true
	}

	if len(p.Wordlist) > 0 && !set("wordlist", p.Wordlist) {
		return parseFailed
	}
	if p.Threads > 0 && !set("threads", strconv.Itoa(p.Threads)) {
		return parseFailed
	}
	if len(p.Types) > 0 && !set("types", p.Types) {
		return parseFailed
	}
	if len(p.Timeout) > 0 && !set("timeout", p.Timeout) {
		return parseFailed
	}
	if p.Rate > 0 && !set("rate", strconv.FormatFloat(p.Rate, 'f', -1, 64)) {
		return parseFailed
	}
	if p.Retries > 0 && !set("retries", strconv.Itoa(p.Retries)) {
		return parseFailed
	}
	if p.TCP && !set("tcp", "true") {
		return parseFailed
	}

	if len(p.Servers) > 0 && !fs.Changed("servers") {
		for _, s := range p.Servers {
			err := fs.Set("servers", s)
			if err != nil {
				fmt.Fprintf(log.Out(), "Error: --profile servers: %s\n", err.Error())
				return parseFailed
			}
		}
	}

	return parseContinue
}
