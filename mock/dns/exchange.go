package dns

import (
	"fmt"
	"sync"

	"github.com/miekg/dns"
)

// ExchangeResponse describes the reply the mock server sends. Ignore swallows the
// query entirely which is how tests manufacture client timeouts.
type ExchangeResponse struct {
	Ignore    bool
	Truncated bool
	Rcode     int
	Answer    []dns.RR
	Ns        []dns.RR
	Extra     []dns.RR

	QueryCount int // Times the server served this response
}

// ExchangeServer is a dumb server designed for single DNS exchanges: whichever
// response is currently set is copied into the reply of every query regardless of
// the question. Received queries are retained for inspection.
type ExchangeServer struct {
	mu      sync.Mutex
	resp    *ExchangeResponse
	queries []*dns.Msg
}

// SetResponse sets the response for subsequent queries.
func (t *ExchangeServer) SetResponse(r *ExchangeResponse) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resp = r
}

// GetResponse returns the current response as set.
func (t *ExchangeServer) GetResponse() *ExchangeResponse {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resp
}

// Queries returns copies of every query received so far.
func (t *ExchangeServer) Queries() []*dns.Msg {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*dns.Msg{}, t.queries...)
}

// Meets the interface definition for dns.Handler
func (t *ExchangeServer) ServeDNS(wtr dns.ResponseWriter, q *dns.Msg) {
	t.mu.Lock()
	resp := t.resp
	if resp == nil {
		t.mu.Unlock()
		panic("resp == nil in mock exchange server")
	}
	resp.QueryCount++
	t.queries = append(t.queries, q.Copy())
	t.mu.Unlock()

	writeResponse(wtr, q, resp)
}

// writeResponse is shared by ExchangeServer and TableServer.
func writeResponse(wtr dns.ResponseWriter, q *dns.Msg, resp *ExchangeResponse) {
	if resp.Ignore {
		return
	}

	m := new(dns.Msg)
	m.SetRcode(q, resp.Rcode)
	if resp.Truncated {
		m.MsgHdr.Truncated = true
	} else if resp.Rcode == dns.RcodeSuccess { // Only populate if rcode is good
		m.Answer = resp.Answer
		m.Ns = resp.Ns
		m.Extra = resp.Extra
	}

	err := wtr.WriteMsg(m)
	if err != nil {
		fmt.Println("Alert: WriteMsg error:", err)
	}
}
