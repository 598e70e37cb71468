package dnsutil

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// ExtractAnswers returns the presentation values of every answer RR of the queried
// type, in response order. Answers of other types are ignored; in particular a
// CNAME in the answer section of an A query does not count as an A answer. The
// returned values are what a human wants to see next to a candidate name: bare
// addresses, chomped target names, "preference host" for MX and joined strings for
// TXT.
func ExtractAnswers(m *dns.Msg, qtype uint16) (values []string) {
	for _, rr := range m.Answer {
		if rr.Header().Rrtype != qtype {
			continue
		}
		switch rrt := rr.(type) {
		case *dns.A:
			values = append(values, rrt.A.String())
		case *dns.AAAA:
			values = append(values, rrt.AAAA.String())
		case *dns.CNAME:
			values = append(values, ChompCanonicalName(rrt.Target))
		case *dns.MX:
			values = append(values,
				fmt.Sprintf("%d %s", rrt.Preference, ChompCanonicalName(rrt.Mx)))
		case *dns.NS:
			values = append(values, ChompCanonicalName(rrt.Ns))
		case *dns.TXT:
			values = append(values, strings.Join(rrt.Txt, " "))
		default: // Not in our closed set, but render rdata rather than drop it
			values = append(values,
				strings.TrimSpace(strings.TrimPrefix(rr.String(), rr.Header().String())))
		}
	}

	return
}
