package scan

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/nsweep/nsweep/dnsutil"
)

// Kind is the closed classification of what one resolution attempt produced.
type Kind int

const (
	KindResolved Kind = iota // At least one answer of the queried type
	KindNoAnswer             // Name exists, no records of the queried type
	KindNXDomain             // Name does not exist at all
	KindTimeout              // No response inside the configured timeout
	KindError                // Everything else: transport failures, hostile rcodes
)

func (t Kind) String() string {
	switch t {
	case KindResolved:
		return "Resolved"
	case KindNoAnswer:
		return "NoAnswer"
	case KindNXDomain:
		return "NXDomain"
	case KindTimeout:
		return "Timeout"
	}

	return "Error"
}

// Outcome is the classified result of resolving one (candidate, type) unit. Exactly
// one Outcome is recorded per unit dispatched. It is immutable once produced.
type Outcome struct {
	Candidate string
	Type      RecordType
	Kind      Kind
	Values    []string      // Resolved only; every answer of the queried type
	Detail    string        // Error only; a short cause
	Rtt       time.Duration // Network time, when the exchange completed
}

// classify maps a raw exchange result onto the Outcome set. Pure and deterministic:
// same inputs, same Outcome, no side effects, which is what makes the taxonomy
// testable apart from the machinery around it.
//
// An NXDOMAIN rcode wins over everything else in the response because a name which
// does not exist settles all further questions about it. An NOERROR response counts
// as Resolved only when it holds answers of the queried type; a CNAME riding in the
// answer section of an A query is not an A answer. Rcodes beyond those two mean the
// server was unwilling or unable, which is an Error with the rcode as the detail.
func classify(candidate string, rt RecordType, r *dns.Msg, rtt time.Duration, err error) Outcome {
	o := Outcome{Candidate: candidate, Type: rt, Rtt: rtt}

	if err != nil {
		var ne net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
			o.Kind = KindTimeout
			return o
		}
		o.Kind = KindError
		o.Detail = dnsutil.ShortenLookupError(err).Error()
		return o
	}

	if r == nil { // Resolver contract breach, but never crash a worker over it
		o.Kind = KindError
		o.Detail = "no response message"
		return o
	}

	switch r.MsgHdr.Rcode {
	case dns.RcodeNameError:
		o.Kind = KindNXDomain

	case dns.RcodeSuccess:
		o.Values = dnsutil.ExtractAnswers(r, rt.Qtype())
		if len(o.Values) > 0 {
			o.Kind = KindResolved
		} else {
			o.Kind = KindNoAnswer
		}

	default:
		o.Kind = KindError
		o.Detail = dnsutil.RcodeToString(r.MsgHdr.Rcode)
	}

	return o
}
