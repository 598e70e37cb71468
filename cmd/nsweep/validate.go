package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/miekg/dns"

	"github.com/nsweep/nsweep/dnsutil"
	"github.com/nsweep/nsweep/scan"
)

// Check everything that could likely be a typo or usage error. Mostly check in
// the order presented by the flag package.
func (t *nsweep) ValidateCommandLineOptions() error {
	cfg := t.cfg

	// Be forgiving about the target: users paste URLs. Strip any scheme, path,
	// port and leading www. before judging the domain itself.
	domain := strings.TrimSpace(cfg.domainArg)
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	if ix := strings.IndexByte(domain, '/'); ix >= 0 {
		domain = domain[:ix]
	}
	if ix := strings.IndexByte(domain, ':'); ix >= 0 {
		domain = domain[:ix]
	}
	domain = strings.TrimPrefix(domain, "www.")
	domain = dnsutil.ChompCanonicalName(strings.ToLower(domain))

	labs, ok := dns.IsDomainName(domain)
	if !ok || labs < 2 {
		return fmt.Errorf("Invalid target domain: '%s'", cfg.domainArg)
	}
	cfg.domain = domain

	if len(cfg.wordlistPath) > 0 {
		fi, err := os.Stat(cfg.wordlistPath)
		if err != nil {
			return fmt.Errorf("--wordlist %w", err)
		}
		if fi.IsDir() {
			return fmt.Errorf("--wordlist %s is a directory, not a file",
				cfg.wordlistPath)
		}
	}

	if cfg.threads < 1 || cfg.threads > scan.MaxThreads {
		return fmt.Errorf("--threads %d must be between 1-%d",
			cfg.threads, scan.MaxThreads)
	}

	types, err := scan.ParseRecordTypes(strings.Split(cfg.typesArg, ","))
	if err != nil {
		return fmt.Errorf("--types %s", err.Error())
	}
	cfg.types = types

	if cfg.timeout <= 0 {
		return fmt.Errorf("--timeout must be greater than zero")
	}
	if cfg.timeout > maxTimeout {
		return fmt.Errorf("--timeout %s too large (max %s)", cfg.timeout, maxTimeout)
	}

	if cfg.rate < 0 || cfg.rate > maxRate {
		return fmt.Errorf("--rate %v must be between 0-%v", cfg.rate, maxRate)
	}

	if cfg.retries < 1 || cfg.retries > maxRetries {
		return fmt.Errorf("--retries %d must be between 1-%d", cfg.retries, maxRetries)
	}

	for _, s := range cfg.servers {
		if len(strings.TrimSpace(s)) == 0 {
			return fmt.Errorf("--servers value cannot be empty")
		}
	}

	if cfg.jsonFlag && len(cfg.outputPath) == 0 {
		return fmt.Errorf("--json requires --output")
	}
	if len(cfg.outputPath) > 0 {
		dir := filepath.Dir(cfg.outputPath)
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			return fmt.Errorf("--output directory '%s' does not exist", dir)
		}
	}

	if len(cfg.resumePath) > 0 {
		if _, err := os.Stat(cfg.resumePath); err != nil {
			return fmt.Errorf("--resume %w", err)
		}
	}
	if len(cfg.statePath) > 0 {
		dir := filepath.Dir(cfg.statePath)
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			return fmt.Errorf("--state directory '%s' does not exist", dir)
		}
	}

	if cfg.noWildcardFlag { // --no-wildcard dominates
		cfg.wildcardFlag = false
	}
	if cfg.debugFlag { // Wire-level detail implies per-record detail
		cfg.verboseFlag = true
	}

	return nil
}
