package resolver

import (
	"sync/atomic"
	"time"

	"github.com/nsweep/nsweep/dnsutil"
)

// Config carries the caller-adjustable exchange settings. Zero values mean
// defaults; New never fails.
type Config struct {
	Servers []string      // Each "host" or "host:port"; empty means DefaultServers()
	Timeout time.Duration // Per-exchange attempt timeout
	Tries   int           // Total exchange attempts before giving up

	ForceTCP  bool // Skip UDP entirely; some scans sit behind UDP-hostile paths
	NoCookies bool // Suppress EDNS0 client cookies
	UDPSize   uint16
}

type resolver struct {
	servers []string
	timeout time.Duration // Per-exchange attempt
	overall time.Duration // Whole Query call including retries
	tries   int

	forceTCP bool
	udpSize  uint16
	cookies  *cookieJar // nil when cookies are disabled

	next uint32 // Round-robin server index, atomic
}

// New creates a fully formed resolver which is ready to use. Missing Config fields
// are filled with defaults, so the zero Config yields a working resolver over the
// system's own servers.
func New(cfg Config) *resolver {
	t := &resolver{
		servers:  make([]string, 0, len(cfg.Servers)),
		timeout:  cfg.Timeout,
		tries:    cfg.Tries,
		forceTCP: cfg.ForceTCP,
		udpSize:  cfg.UDPSize,
	}
	for _, s := range cfg.Servers {
		t.servers = append(t.servers, normalizeServer(s))
	}
	if len(t.servers) == 0 {
		t.servers = DefaultServers()
	}
	if t.timeout <= 0 {
		t.timeout = defaultQueryTimeout
	}
	if t.tries <= 0 {
		t.tries = defaultQueryTries
	}
	if t.udpSize == 0 {
		t.udpSize = dnsutil.MaxUDPSize
	}

	// Bound the whole Query call. The per-exchange client timeouts protect us from
	// an unbounded stall regardless, but each truncation fallback is an extra
	// exchange so the worst case is two exchanges per try.
	t.overall = t.timeout * time.Duration(t.tries*2)

	if !cfg.NoCookies {
		t.cookies = newCookieJar()
	}

	return t
}

// nextServer rotates through the configured servers so retries and successive
// queries spread load rather than hammering the first entry.
func (t *resolver) nextServer() string {
	ix := atomic.AddUint32(&t.next, 1)

	return t.servers[int(ix-1)%len(t.servers)]
}

// Servers returns the normalized server list in use, mostly so the startup report
// can show where queries will go.
func (t *resolver) Servers() []string {
	return append([]string{}, t.servers...)
}
