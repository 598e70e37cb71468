package resolver

import (
	"net"

	"github.com/miekg/dns"
)

const resolvConf = "/etc/resolv.conf"

// Well-known public resolvers used when the system configuration cannot be read,
// which includes every Windows host since miekg only parses the Unix file.
var fallbackServers = []string{"8.8.8.8:53", "1.1.1.1:53"}

// DefaultServers returns the system's own resolvers with ports attached, falling
// back to well-known public resolvers when none can be found. The result is always
// non-empty.
func DefaultServers() []string {
	conf, err := dns.ClientConfigFromFile(resolvConf)
	if err != nil || len(conf.Servers) == 0 {
		return append([]string{}, fallbackServers...)
	}

	servers := make([]string, 0, len(conf.Servers))
	for _, s := range conf.Servers {
		servers = append(servers, net.JoinHostPort(s, conf.Port))
	}

	return servers
}
