package dnsutil

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// The Pretty* functions return compact single-line versions of dns structures for
// debug logging. The standard String() renderings are designed to be consistent
// with traditional dig-type output which is far too verbose when a scan issues
// thousands of queries.

// PrettyQuestion returns a compact representation of the dns.Question
func PrettyQuestion(q dns.Question) string {
	return fmt.Sprintf("%s/%s %s",
		ClassToString(dns.Class(q.Qclass)),
		TypeToString(q.Qtype),
		q.Name)
}

// PrettyMsg returns a compact string representing the complete response message.
func PrettyMsg(m *dns.Msg) string {
	h := m.MsgHdr
	flags := []string{}
	if h.Response {
		flags = append(flags, "qr")
	}
	if h.Authoritative {
		flags = append(flags, "aa")
	}
	if h.Truncated {
		flags = append(flags, "tc")
	}
	if h.RecursionAvailable {
		flags = append(flags, "ra")
	}

	qTypes := make([]string, 0)
	aTypes := make([]string, 0)
	for _, q := range m.Question {
		qTypes = append(qTypes, TypeToString(q.Qtype))
	}
	for _, rr := range m.Answer {
		aTypes = append(aTypes, TypeToString(rr.Header().Rrtype))
	}

	return fmt.Sprintf("%d f=%s %s Q=%d-%s Ans=%d-%s Ns=%d Extra=%d",
		h.Id, strings.Join(flags, "+"), RcodeToString(h.Rcode),
		len(m.Question), strings.Join(qTypes, ","),
		len(m.Answer), strings.Join(aTypes, ","),
		len(m.Ns), len(m.Extra))
}
