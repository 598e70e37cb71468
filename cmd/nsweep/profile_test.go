package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nsweep/nsweep/log"
	"github.com/nsweep/nsweep/mock"
)

const testProfile = `wordlist: /lists/big.txt
threads: 77
types: A,MX
timeout: 9s
rate: 12.5
servers:
  - 8.8.8.8
  - 1.1.1.1
tcp: true
retries: 4
`

func TestProfile(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)

	path := filepath.Join(t.TempDir(), "profile.yaml")
	err := os.WriteFile(path, []byte(testProfile), 0644)
	if err != nil {
		t.Fatal(err)
	}

	cfg := newConfig()
	ns := newNsweep(cfg, nil)
	res := ns.parseOptions([]string{programName,
		"--profile", path, "-t", "30", "example.com"})
	if res != parseContinue {
		t.Fatal("Expected parseContinue, got", res, out.String())
	}

	if cfg.threads != 30 {
		t.Error("Explicit --threads must win over the profile, got", cfg.threads)
	}
	if cfg.wordlistPath != "/lists/big.txt" {
		t.Error("Profile wordlist not applied, got", cfg.wordlistPath)
	}
	if cfg.typesArg != "A,MX" {
		t.Error("Profile types not applied, got", cfg.typesArg)
	}
	if cfg.timeout != 9*time.Second {
		t.Error("Profile timeout not applied, got", cfg.timeout)
	}
	if cfg.rate != 12.5 {
		t.Error("Profile rate not applied, got", cfg.rate)
	}
	if len(cfg.servers) != 2 || cfg.servers[0] != "8.8.8.8" || cfg.servers[1] != "1.1.1.1" {
		t.Error("Profile servers not applied, got", cfg.servers)
	}
	if !cfg.tcpFlag {
		t.Error("Profile tcp not applied")
	}
	if cfg.retries != 4 {
		t.Error("Profile retries not applied, got", cfg.retries)
	}
}

func TestProfileCommandLineWins(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)

	path := filepath.Join(t.TempDir(), "profile.yaml")
	err := os.WriteFile(path, []byte(testProfile), 0644)
	if err != nil {
		t.Fatal(err)
	}

	cfg := newConfig()
	ns := newNsweep(cfg, nil)
	res := ns.parseOptions([]string{programName,
		"--profile", path, "-T", "CNAME", "--timeout", "2s",
		"--servers", "9.9.9.9", "example.com"})
	if res != parseContinue {
		t.Fatal("Expected parseContinue, got", res, out.String())
	}

	if cfg.typesArg != "CNAME" {
		t.Error("Explicit -T must win, got", cfg.typesArg)
	}
	if cfg.timeout != 2*time.Second {
		t.Error("Explicit --timeout must win, got", cfg.timeout)
	}
	if len(cfg.servers) != 1 || cfg.servers[0] != "9.9.9.9" {
		t.Error("Explicit --servers must win outright, got", cfg.servers)
	}
	if cfg.threads != 77 { // Left alone on the command line, so profile applies
		t.Error("Profile threads not applied, got", cfg.threads)
	}
}

func TestProfileErrors(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)
	dir := t.TempDir()

	testCases := []struct {
		content string // Empty means don't create the file
		expect  string
	}{
		{"", "--profile"},
		{"threads: [1,2", "--profile"},
		{"threads: many\n", "--profile"},
		{"timeout: 9 parsecs\n", "--profile timeout"},
	}

	for ix, tc := range testCases {
		path := filepath.Join(dir, "profile.yaml")
		os.Remove(path)
		if len(tc.content) > 0 {
			err := os.WriteFile(path, []byte(tc.content), 0644)
			if err != nil {
				t.Fatal(err)
			}
		}

		cfg := newConfig()
		ns := newNsweep(cfg, nil)
		out.Reset()
		res := ns.parseOptions([]string{programName, "--profile", path, "example.com"})
		if res != parseFailed {
			t.Error(ix, "Expected parseFailed, got", res)
		}
		if !strings.Contains(out.String(), tc.expect) {
			t.Error(ix, "Output does not contain", tc.expect, "got", out.String())
		}
	}
}
