package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/miekg/dns"
)

func TestMockResolver(t *testing.T) {
	r := NewResolver()
	r.Add("www.example.org", dns.TypeA,
		&Reply{Answers: []string{"www.example.org. IN A 192.0.2.1"}})

	m, _, err := r.Query(context.Background(), "www.example.org", dns.TypeA)
	if err != nil {
		t.Fatal("Setup error with www.example.org", err.Error())
	}
	if m.Rcode != dns.RcodeSuccess {
		t.Error("Expected NOERROR, not", dns.RcodeToString[m.Rcode])
	}
	if len(m.Answer) != 1 {
		t.Error("Expected one answer, not", len(m.Answer))
	}

	// Unknown names fall thru to the NXDOMAIN default

	m, _, err = r.Query(context.Background(), "nope.example.org", dns.TypeA)
	if err != nil {
		t.Fatal("Default reply should not error", err.Error())
	}
	if m.Rcode != dns.RcodeNameError {
		t.Error("Expected NXDOMAIN default, not", dns.RcodeToString[m.Rcode])
	}

	if r.QueryCount("www.example.org", dns.TypeA) != 1 {
		t.Error("Expected one www query, not", r.QueryCount("www.example.org", dns.TypeA))
	}
	if r.TotalQueries() != 2 {
		t.Error("Expected two queries in total, not", r.TotalQueries())
	}
}

func TestMockResolverErrAndDelay(t *testing.T) {
	r := NewResolver()
	bang := errors.New("read udp: i/o timeout")
	r.Add("slow.example.org", dns.TypeA, &Reply{Err: bang})

	_, _, err := r.Query(context.Background(), "slow.example.org", dns.TypeA)
	if err != bang {
		t.Error("Expected the canned error back, not", err)
	}

	// A delayed reply must give way to context cancellation
	r.Add("stall.example.org", dns.TypeA,
		&Reply{Delay: time.Minute, Answers: []string{"stall.example.org. IN A 192.0.2.2"}})
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	start := time.Now()
	_, _, err = r.Query(ctx, "stall.example.org", dns.TypeA)
	if err == nil {
		t.Fatal("Expected a context error from the stalled query")
	}
	if time.Since(start) > 10*time.Second {
		t.Error("Cancellation did not interrupt the stalled query")
	}
}
