package resolver

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"sync"

	"github.com/dchest/siphash"
	"github.com/miekg/dns"
)

const cCookieLength = 8 // Client cookie is always exactly this long

// cookieJar generates rfc7873 client cookies for outgoing queries using the
// rfc9018 construction: SipHash-2-4 over the server address keyed with per-process
// secrets. The same server always gets the same cookie for the life of the process,
// which is what lets well-behaved servers recognize us across a long scan.
type cookieJar struct {
	secrets [2]uint64

	mu    sync.RWMutex
	cache map[string]string // server -> hex client cookie
}

func newCookieJar() *cookieJar {
	// The secrets are never shared or stored so a cryptographically strong
	// random value read once at start-up does the job.
	var secrets [2]uint64
	b := make([]byte, 16) // Two 64-bit keys as needed by siphash-2-4
	rand.Read(b)
	secrets[0] = binary.BigEndian.Uint64(b[0:8])
	secrets[1] = binary.BigEndian.Uint64(b[8:16])

	return &cookieJar{secrets: secrets, cache: make(map[string]string)}
}

// cookieFor returns the hex-encoded client cookie for server, computing it on first
// use. Hex is what miekg wants in EDNS0_COOKIE.
func (t *cookieJar) cookieFor(server string) string {
	t.mu.RLock()
	c, ok := t.cache[server]
	t.mu.RUnlock()
	if ok {
		return c
	}

	sum64 := siphash.Hash(t.secrets[0], t.secrets[1], []byte(server))
	b := make([]byte, cCookieLength)
	binary.BigEndian.PutUint64(b, sum64)
	c = hex.EncodeToString(b)

	t.mu.Lock()
	t.cache[server] = c
	t.mu.Unlock()

	return c
}

// attach adds the COOKIE option to the query's OPT RR. newQuery calls SetEdns0
// first so the OPT is always present.
func (t *cookieJar) attach(query *dns.Msg, server string) {
	opt := query.IsEdns0()
	if opt == nil {
		return
	}

	e := new(dns.EDNS0_COOKIE)
	e.Code = dns.EDNS0COOKIE
	e.Cookie = t.cookieFor(server)
	opt.Option = append(opt.Option, e)
}
