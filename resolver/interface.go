package resolver

import (
	"context"
	"time"

	"github.com/miekg/dns"
)

const (
	defaultQueryTimeout = 5 * time.Second // Per-exchange attempt
	defaultQueryTries   = 2               // Total number of exchange attempts
)

// Resolver is the seam between the scan engine and the network. Everything the
// engine knows about a candidate it learns through Query.
//
// Based on the claim that miekg.Client is concurrency safe, implementations of this
// interface must also ensure concurrency safety as every scan worker shares one
// Resolver.
type Resolver interface {

	// Query sends a single question for name/qtype and returns the raw response
	// message. The name need not be in FQDN form; it is coerced. Retries,
	// server rotation and truncation fallback to TCP all happen inside Query so
	// the caller sees exactly one response or one error per call.
	//
	// Query derives a deadline from the supplied context which bounds the whole
	// call including retries, so the caller doesn't have to worry about
	// timeouts. The response is returned unclassified; in particular a response
	// with Rcode != NOERROR is not an error.
	Query(ctx context.Context, name string, qtype uint16) (r *dns.Msg, rtt time.Duration, err error)
}
