package scan

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/miekg/dns"
	"golang.org/x/sync/errgroup"

	"github.com/nsweep/nsweep/dnsutil"
)

const wildcardProbes = 3 // Random labels resolved before dispatch

// Wildcard reports whether the target zone answers for names which cannot have
// been provisioned. A zone with `*.example.com A 192.0.2.1` makes every candidate
// "resolve" and drowns the scan in false positives, so the probe result travels
// with the Result for the caller to warn about. Found records are not filtered:
// annotation, not judgement.
type Wildcard struct {
	Detected bool
	Values   []string // Distinct values the random probes resolved to
}

// probeWildcard resolves a few random labels under the target, concurrently, for
// the address and alias types a wildcard normally shows up as. Probes which fail in
// any way simply say nothing; only a positive answer proves a wildcard.
func (t *Scanner) probeWildcard(ctx context.Context) *Wildcard {
	w := &Wildcard{}
	var mu sync.Mutex
	seen := make(map[string]bool)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < wildcardProbes; i++ {
		name := randomLabel() + "." + t.cfg.Domain
		g.Go(func() error {
			for _, qtype := range []uint16{dns.TypeA, dns.TypeCNAME} {
				r, _, err := t.res.Query(ctx, name, qtype)
				if err != nil || r == nil || r.MsgHdr.Rcode != dns.RcodeSuccess {
					continue
				}
				values := dnsutil.ExtractAnswers(r, qtype)
				if len(values) == 0 {
					continue
				}
				mu.Lock()
				w.Detected = true
				for _, v := range values {
					if !seen[v] {
						seen[v] = true
						w.Values = append(w.Values, v)
					}
				}
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait()

	return w
}

// randomLabel returns a label which no sane zone has provisioned. Readable
// hex rather than line noise so a probe showing up in server logs is obviously
// deliberate.
func randomLabel() string {
	b := make([]byte, 8)
	rand.Read(b)

	return "nswp-" + hex.EncodeToString(b)
}
