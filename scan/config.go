package scan

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/nsweep/nsweep/dnsutil"
)

const (
	DefaultThreads = 20
	MaxThreads     = 500

	queueFactor = 2 // Queue capacity per worker; feeding blocks beyond this
)

// WordSource supplies raw wordlist lines one at a time so a scan never needs the
// whole list in memory. Next returns false on exhaustion or failure; Err tells
// which, bufio.Scanner style.
type WordSource interface {
	Next() (string, bool)
	Err() error
}

// Config describes one scan. Validation happens when the Scanner is constructed,
// not when it runs, so a caller holding a Scanner holds a runnable one.
type Config struct {
	Domain  string       // Target domain; normalized to lower case, no trailing dot
	Words   WordSource   // Raw wordlist lines; consumed exactly once
	Types   []RecordType // Queried per candidate, in this order
	Threads int          // Worker count, 1..MaxThreads

	QueriesPerSecond float64 // Shared pacing across all workers; 0 means unpaced

	DetectWildcard bool // Probe for wildcard DNS before dispatching
}

// validate normalizes the config in place and reports the first problem found.
func (t *Config) validate() error {
	t.Domain = dnsutil.ChompCanonicalName(strings.TrimSpace(t.Domain))
	if len(t.Domain) == 0 {
		return fmt.Errorf("target domain cannot be empty")
	}
	if !strings.Contains(t.Domain, ".") {
		return fmt.Errorf("target domain '%s' needs at least two labels", t.Domain)
	}
	if _, ok := dns.IsDomainName(t.Domain); !ok {
		return fmt.Errorf("invalid target domain '%s'", t.Domain)
	}

	if t.Words == nil {
		return fmt.Errorf("wordlist source cannot be nil")
	}

	if len(t.Types) == 0 {
		return fmt.Errorf("record type list cannot be empty")
	}

	if t.Threads < 1 || t.Threads > MaxThreads {
		return fmt.Errorf("thread count %d out of range (1-%d)", t.Threads, MaxThreads)
	}

	if t.QueriesPerSecond < 0 {
		return fmt.Errorf("queries per second cannot be negative")
	}

	return nil
}
