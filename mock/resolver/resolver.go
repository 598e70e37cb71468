// Package resolver provides an in-memory implementation of the resolver.Resolver
// interface. Engine tests need exact control over the outcome of every
// name/qtype question: canned answers, rcodes, transport errors, slow responses
// and even panics, plus query counts to prove which questions were and were not
// asked. Everything is keyed by question so tests read like tiny zone tables.
package resolver

import (
	"context"
	"sync"
	"time"

	"github.com/miekg/dns"

	"github.com/nsweep/nsweep/log"
	mainresolver "github.com/nsweep/nsweep/resolver"
)

// Reply describes the canned reaction to one question.
type Reply struct {
	Rcode     int
	Answers   []string      // Zone-file style RRs parsed with dns.NewRR
	Truncated bool
	Err       error         // Returned instead of any message
	Delay     time.Duration // Simulated network time before responding
	Panic     bool          // Blow up inside Query to test worker containment
}

type mockResolver struct {
	mu      sync.Mutex
	replies map[string]*Reply
	counts  map[string]int
	def     Reply
	total   int
}

// NewResolver creates a mock resolver whose default reply is NXDOMAIN, which is
// what the bulk of a real enumeration sees.
func NewResolver() *mockResolver {
	return &mockResolver{
		replies: make(map[string]*Reply),
		counts:  make(map[string]int),
		def:     Reply{Rcode: dns.RcodeNameError},
	}
}

func key(name string, qtype uint16) string {
	return dns.CanonicalName(name) + "/" + dns.TypeToString[qtype]
}

// Add installs the reply for name/qtype.
func (t *mockResolver) Add(name string, qtype uint16, r *Reply) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.replies[key(name, qtype)] = r
}

// SetDefault replaces the reply used for questions without an Add entry.
func (t *mockResolver) SetDefault(r Reply) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.def = r
}

// QueryCount returns how often name/qtype has been asked.
func (t *mockResolver) QueryCount(name string, qtype uint16) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[key(name, qtype)]
}

// TotalQueries returns how many queries have been made in all.
func (t *mockResolver) TotalQueries() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// Query implements resolver.Resolver from the reply table.
func (t *mockResolver) Query(ctx context.Context, name string, qtype uint16) (*dns.Msg, time.Duration, error) {
	t.mu.Lock()
	r := t.def
	if entry, ok := t.replies[key(name, qtype)]; ok {
		r = *entry
	}
	t.counts[key(name, qtype)]++
	t.total++
	t.mu.Unlock()

	question := dns.Question{
		Name:   dns.Fqdn(name),
		Qtype:  qtype,
		Qclass: dns.ClassINET,
	}

	if r.Panic {
		panic("mock resolver: forced panic for " + key(name, qtype))
	}

	if r.Delay > 0 {
		select {
		case <-time.After(r.Delay):
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		}
	}

	if r.Err != nil {
		if log.IfDebug() {
			mainresolver.LogQueryA("mock", question, nil, r.Err)
		}
		return nil, 0, r.Err
	}

	m := new(dns.Msg)
	m.SetQuestion(question.Name, qtype)
	m.Response = true
	m.Rcode = r.Rcode
	m.Truncated = r.Truncated
	if r.Rcode == dns.RcodeSuccess { // Only populate if rcode is good
		for _, s := range r.Answers {
			rr, err := dns.NewRR(s)
			if err != nil {
				panic("mock resolver: malformed test RR: " + s)
			}
			m.Answer = append(m.Answer, rr)
		}
	}

	if log.IfDebug() {
		mainresolver.LogQueryA("mock", question, m, nil)
	}

	return m, r.Delay, nil
}
