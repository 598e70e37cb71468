package scan

import (
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	good := func() Config {
		return Config{
			Domain:  "example.org",
			Words:   newTestSource("www"),
			Types:   DefaultTypes(),
			Threads: DefaultThreads,
		}
	}

	cfg := good()
	if err := cfg.validate(); err != nil {
		t.Fatal("Good config rejected:", err)
	}

	testCases := []struct {
		mutate func(*Config)
		expect string // Substring of the error
	}{
		{func(c *Config) { c.Domain = "" }, "cannot be empty"},
		{func(c *Config) { c.Domain = "   " }, "cannot be empty"},
		{func(c *Config) { c.Domain = "localhost" }, "two labels"},
		{func(c *Config) { c.Domain = strings.Repeat("x", 300) + ".org" }, "invalid target"},
		{func(c *Config) { c.Words = nil }, "wordlist source"},
		{func(c *Config) { c.Types = nil }, "record type"},
		{func(c *Config) { c.Threads = 0 }, "out of range"},
		{func(c *Config) { c.Threads = MaxThreads + 1 }, "out of range"},
		{func(c *Config) { c.QueriesPerSecond = -1 }, "negative"},
	}

	for ix, tc := range testCases {
		cfg := good()
		tc.mutate(&cfg)
		err := cfg.validate()
		if err == nil {
			t.Error(ix, "Expected a validation error")
			continue
		}
		if !strings.Contains(err.Error(), tc.expect) {
			t.Error(ix, "Expected error containing", tc.expect, "got", err.Error())
		}
	}
}

// validate normalizes as well as checks: mixed case and a trailing dot both
// disappear so the engine keys results consistently.
func TestConfigNormalizes(t *testing.T) {
	cfg := Config{
		Domain:  " Example.ORG. ",
		Words:   newTestSource("www"),
		Types:   DefaultTypes(),
		Threads: 1,
	}
	if err := cfg.validate(); err != nil {
		t.Fatal("Normalizable config rejected:", err)
	}
	if cfg.Domain != "example.org" {
		t.Error("Expected example.org, got", cfg.Domain)
	}
}
