package dnsutil

import (
	"github.com/miekg/dns"
)

// Make name canonical but lose the trailing dot. Scan results are keyed and
// displayed by candidate name where the trailing dot is more of a hindrance than a
// help; queries re-add it with dns.Fqdn.
func ChompCanonicalName(n string) string {
	n = dns.CanonicalName(n)
	if len(n) > 0 && n[len(n)-1] == '.' {
		n = n[:len(n)-1]
	}

	return n
}
