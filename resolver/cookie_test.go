package resolver

import (
	"testing"

	"github.com/miekg/dns"
)

func cookieOpt(q *dns.Msg) *dns.EDNS0_COOKIE {
	opt := q.IsEdns0()
	if opt == nil {
		return nil
	}
	for _, o := range opt.Option {
		if c, ok := o.(*dns.EDNS0_COOKIE); ok {
			return c
		}
	}

	return nil
}

func TestCookieJar(t *testing.T) {
	jar := newCookieJar()

	c1 := jar.cookieFor("192.0.2.1:53")
	c2 := jar.cookieFor("192.0.2.1:53")
	c3 := jar.cookieFor("192.0.2.2:53")

	if len(c1) != 2*cCookieLength {
		t.Error("Client cookie should be 8 bytes in hex, got", len(c1), c1)
	}
	if c1 != c2 {
		t.Error("Same server should get the same cookie", c1, c2)
	}
	if c1 == c3 {
		t.Error("Different servers should get different cookies", c1, c3)
	}

	// A fresh jar has fresh secrets so cookies must differ between jars
	if newCookieJar().cookieFor("192.0.2.1:53") == c1 {
		t.Error("Two jars agreed on a cookie; secrets are not random")
	}
}

func TestQueryCookieAttachment(t *testing.T) {
	res := New(Config{Servers: []string{"192.0.2.1:53"}})
	q := res.newQuery("www.example.org", dns.TypeA, "192.0.2.1:53")
	c := cookieOpt(q)
	if c == nil {
		t.Fatal("Expected a COOKIE option on the query")
	}
	if len(c.Cookie) != 2*cCookieLength {
		t.Error("Wire cookie should be 16 hex chars, got", len(c.Cookie))
	}

	// And none when disabled
	res = New(Config{Servers: []string{"192.0.2.1:53"}, NoCookies: true})
	q = res.newQuery("www.example.org", dns.TypeA, "192.0.2.1:53")
	if cookieOpt(q) != nil {
		t.Error("NoCookies still attached a cookie")
	}
}
