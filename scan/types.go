package scan

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/nsweep/nsweep/dnsutil"
)

// RecordType identifies one of the DNS record types a scan can query. The set is
// closed: enumeration cares about the handful of types which show a name is alive,
// not the whole IANA registry.
type RecordType uint16

const (
	TypeA     = RecordType(dns.TypeA)
	TypeAAAA  = RecordType(dns.TypeAAAA)
	TypeCNAME = RecordType(dns.TypeCNAME)
	TypeMX    = RecordType(dns.TypeMX)
	TypeTXT   = RecordType(dns.TypeTXT)
	TypeNS    = RecordType(dns.TypeNS)
)

// recordTypeNames is the closed parse set, in the order offered to users.
var recordTypeNames = []struct {
	name string
	rt   RecordType
}{
	{"A", TypeA},
	{"AAAA", TypeAAAA},
	{"CNAME", TypeCNAME},
	{"MX", TypeMX},
	{"NS", TypeNS},
	{"TXT", TypeTXT},
}

// DefaultTypes returns the standard scan set: address records plus CNAME, the
// types which answer "does anything live at this name?".
func DefaultTypes() []RecordType {
	return []RecordType{TypeA, TypeAAAA, TypeCNAME}
}

// Qtype returns the miekg qtype for queries.
func (t RecordType) Qtype() uint16 {
	return uint16(t)
}

func (t RecordType) String() string {
	return dnsutil.TypeToString(uint16(t))
}

// RecordTypeNames returns the acceptable names for usage and error text.
func RecordTypeNames() string {
	names := make([]string, 0, len(recordTypeNames))
	for _, e := range recordTypeNames {
		names = append(names, e.name)
	}

	return strings.Join(names, ", ")
}

// ParseRecordTypes converts a textual list such as ["a", "MX"] into RecordTypes.
// Names are case-insensitive, duplicates collapse silently, order is preserved
// since workers query types in this order, and anything outside the closed set is
// an error.
func ParseRecordTypes(list []string) ([]RecordType, error) {
	types := make([]RecordType, 0, len(list))
	seen := make(map[RecordType]bool)

	for _, s := range list {
		name := strings.ToUpper(strings.TrimSpace(s))
		var found bool
		for _, e := range recordTypeNames {
			if e.name == name {
				if !seen[e.rt] {
					seen[e.rt] = true
					types = append(types, e.rt)
				}
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("invalid record type '%s' (choose from %s)",
				s, RecordTypeNames())
		}
	}

	if len(types) == 0 {
		return nil, fmt.Errorf("record type list cannot be empty")
	}

	return types, nil
}
