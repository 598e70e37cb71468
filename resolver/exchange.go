package resolver

import (
	"context"
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/nsweep/nsweep/dnsutil"
	"github.com/nsweep/nsweep/log"
)

// Query implements Resolver. Each try builds a fresh query (new Id, cookie for the
// server of the moment), rotates to the next server and makes one UDP exchange,
// falling back to TCP on a truncated response. Transport errors move on to the next
// try; any response message, whatever its rcode, ends the call.
func (t *resolver) Query(ctx context.Context, name string, qtype uint16) (r *dns.Msg, rtt time.Duration, err error) {
	ctxWithTO, cancel := context.WithDeadline(ctx, time.Now().Add(t.overall))
	defer cancel()

	netw := dnsutil.UDPNetwork
	if t.forceTCP {
		netw = dnsutil.TCPNetwork
	}

	for tries := 0; tries < t.tries; tries++ {
		server := t.nextServer()
		query := t.newQuery(name, qtype, server)

		r, rtt, err = t.exchange(ctxWithTO, netw, query, server)
		if err != nil {
			continue
		}

		// If truncated, try again with TCP
		if r.MsgHdr.Rcode == dns.RcodeSuccess && r.MsgHdr.Truncated && netw == dnsutil.UDPNetwork {
			r, rtt, err = t.exchange(ctxWithTO, dnsutil.TCPNetwork, query, server)
			if err != nil {
				continue
			}
		}

		return
	}

	return // No valid response from any server
}

// newQuery builds a fully formed query message. SetQuestion supplies the Id and
// sets RecursionDesired, which enumeration relies on: the server chases referrals,
// we just ask.
func (t *resolver) newQuery(name string, qtype uint16, server string) *dns.Msg {
	query := new(dns.Msg)
	query.SetQuestion(dns.Fqdn(name), qtype)
	query.SetEdns0(t.udpSize, false)
	if t.cookies != nil {
		t.cookies.attach(query, server)
	}

	return query
}

// exchange makes exactly one attempt against one server; no retries, no fallback.
// Query layers the retry policy on top.
func (t *resolver) exchange(ctx context.Context, netw string, q *dns.Msg,
	server string) (r *dns.Msg, rtt time.Duration, err error) {
	client := &dns.Client{Timeout: t.timeout}
	client.Net = netw
	client.UDPSize = t.udpSize

	if log.IfDebug() {
		LogQueryQ(client.Net, server, q.Question[0])
	}

	r, rtt, err = client.ExchangeContext(ctx, q, server)

	if log.IfDebug() {
		LogQueryA(server, q.Question[0], r, err)
	}

	return
}

// normalizeServer coerces a service onto the name if it hasn't got one so callers
// can say "8.8.8.8" and mean port 53.
func normalizeServer(server string) string {
	_, _, e := net.SplitHostPort(server)
	if e != nil {
		server = net.JoinHostPort(server, "domain")
	}

	return server
}
