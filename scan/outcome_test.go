package scan

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/miekg/dns"
)

// timeoutError mimics what the net package returns when a dial or read gives up.
type timeoutError struct{}

func (t *timeoutError) Error() string   { return "i/o timeout" }
func (t *timeoutError) Timeout() bool   { return true }
func (t *timeoutError) Temporary() bool { return true }

func newResponse(rcode int, answers ...string) *dns.Msg {
	m := new(dns.Msg)
	m.SetQuestion("www.example.org.", dns.TypeA)
	m.Response = true
	m.Rcode = rcode
	for _, s := range answers {
		rr, err := dns.NewRR(s)
		if err != nil {
			panic("malformed test RR: " + s)
		}
		m.Answer = append(m.Answer, rr)
	}

	return m
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		rt     RecordType
		r      *dns.Msg
		err    error
		kind   Kind
		values string // comma-joined expected Values
		detail string // substring expected in Detail
	}{
		{TypeA, nil, &timeoutError{}, KindTimeout, "", ""},
		{TypeA, nil, context.DeadlineExceeded, KindTimeout, "", ""},
		{TypeA, nil, fmt.Errorf("read udp 127.0.0.1: connection refused"),
			KindError, "", "Connection refused"},
		{TypeA, nil, nil, KindError, "", "no response"},
		{TypeA, newResponse(dns.RcodeNameError), nil, KindNXDomain, "", ""},
		{TypeA, newResponse(dns.RcodeSuccess,
			"www.example.org. IN A 192.0.2.1", "www.example.org. IN A 192.0.2.2"),
			nil, KindResolved, "192.0.2.1,192.0.2.2", ""},
		{TypeA, newResponse(dns.RcodeSuccess), nil, KindNoAnswer, "", ""},
		{TypeA, newResponse(dns.RcodeSuccess, "www.example.org. IN CNAME cdn.example.net."),
			nil, KindNoAnswer, "", ""}, // CNAME answer to an A question is not an A
		{TypeCNAME, newResponse(dns.RcodeSuccess, "www.example.org. IN CNAME cdn.example.net."),
			nil, KindResolved, "cdn.example.net", ""},
		{TypeA, newResponse(dns.RcodeServerFailure), nil, KindError, "", "SERVFAIL"},
		{TypeA, newResponse(dns.RcodeRefused), nil, KindError, "", "REFUSED"},
	}

	for ix, tc := range testCases {
		o := classify("www.example.org", tc.rt, tc.r, 0, tc.err)
		if o.Kind != tc.kind {
			t.Error(ix, "Expected kind", tc.kind, "got", o.Kind)
		}
		if got := strings.Join(o.Values, ","); got != tc.values {
			t.Error(ix, "Expected values", tc.values, "got", got)
		}
		if len(tc.detail) > 0 && !strings.Contains(o.Detail, tc.detail) {
			t.Error(ix, "Expected detail containing", tc.detail, "got", o.Detail)
		}
		if o.Candidate != "www.example.org" {
			t.Error(ix, "Candidate not carried through:", o.Candidate)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	r := newResponse(dns.RcodeSuccess, "www.example.org. IN A 192.0.2.1")
	o1 := classify("www.example.org", TypeA, r, 0, nil)
	o2 := classify("www.example.org", TypeA, r, 0, nil)
	if o1.Kind != o2.Kind || strings.Join(o1.Values, ",") != strings.Join(o2.Values, ",") {
		t.Error("Same inputs classified differently:", o1, o2)
	}
}

func TestKindString(t *testing.T) {
	testCases := []struct {
		kind Kind
		exp  string
	}{
		{KindResolved, "Resolved"},
		{KindNoAnswer, "NoAnswer"},
		{KindNXDomain, "NXDomain"},
		{KindTimeout, "Timeout"},
		{KindError, "Error"},
		{Kind(99), "Error"},
	}
	for ix, tc := range testCases {
		if tc.kind.String() != tc.exp {
			t.Error(ix, "Expected", tc.exp, "got", tc.kind.String())
		}
	}
}
