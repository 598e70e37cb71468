package resolver

import (
	"errors"
	"strings"
	"testing"

	"github.com/miekg/dns"

	"github.com/nsweep/nsweep/log"
	"github.com/nsweep/nsweep/mock"
)

func TestLogFunctions(t *testing.T) {
	var iow mock.IOWriter
	log.SetOut(&iow)
	log.SetLevel(log.DebugLevel)
	defer log.SetLevel(log.NormalLevel)

	q := dns.Question{Name: "www.example.org.", Qtype: dns.TypeA, Qclass: dns.ClassINET}

	iow.Reset()
	LogQueryQ("udp", "192.0.2.1:53", q)
	ll := iow.String()
	exp := "[D] miekg Q:udp/192.0.2.1:53 q=IN/A www.example.org."
	if !strings.HasPrefix(ll, exp) {
		t.Error("Q log is wrong exp: >>" + exp + "<< got >>" + ll + "<<")
	}

	m := new(dns.Msg)
	m.SetQuestion(q.Name, q.Qtype)
	m.Response = true

	iow.Reset()
	LogQueryA("192.0.2.1:53", q, m, nil)
	ll = iow.String()
	if !strings.Contains(ll, "miekg A:") || !strings.Contains(ll, "NOERROR") {
		t.Error("A log is wrong, got >>" + ll + "<<")
	}

	iow.Reset()
	LogQueryA("192.0.2.1:53", q, nil, errors.New("read udp: i/o timeout"))
	ll = iow.String()
	exp = "[D] miekg E:192.0.2.1:53/www.example.org/A Timeout"
	if !strings.HasPrefix(ll, exp) {
		t.Error("E log is wrong exp: >>" + exp + "<< got >>" + ll + "<<")
	}
}
