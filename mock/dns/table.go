package dns

import (
	"sync"

	"github.com/miekg/dns"
)

// TableServer answers each query from a table keyed by question name and type, so
// one server instance can stand in for a whole zone during an end-to-end scan test.
// Questions not in the table get the default response, NXDOMAIN unless replaced.
type TableServer struct {
	mu      sync.Mutex
	table   map[string]*ExchangeResponse
	def     *ExchangeResponse
	queries []*dns.Msg
}

func NewTableServer() *TableServer {
	return &TableServer{
		table: make(map[string]*ExchangeResponse),
		def:   &ExchangeResponse{Rcode: dns.RcodeNameError},
	}
}

func tableKey(name string, qtype uint16) string {
	return dns.CanonicalName(name) + "/" + dns.TypeToString[qtype]
}

// Add installs the response served for name/qtype.
func (t *TableServer) Add(name string, qtype uint16, r *ExchangeResponse) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table[tableKey(name, qtype)] = r
}

// SetDefault replaces the response served for questions not in the table.
func (t *TableServer) SetDefault(r *ExchangeResponse) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.def = r
}

// QueryCount returns how often name/qtype has been served from the table.
func (t *TableServer) QueryCount(name string, qtype uint16) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if r, ok := t.table[tableKey(name, qtype)]; ok {
		return r.QueryCount
	}

	return 0
}

// Queries returns copies of every query received so far.
func (t *TableServer) Queries() []*dns.Msg {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*dns.Msg{}, t.queries...)
}

// Meets the interface definition for dns.Handler
func (t *TableServer) ServeDNS(wtr dns.ResponseWriter, q *dns.Msg) {
	t.mu.Lock()
	resp := t.def
	if len(q.Question) == 1 {
		if r, ok := t.table[tableKey(q.Question[0].Name, q.Question[0].Qtype)]; ok {
			resp = r
		}
	}
	resp.QueryCount++
	t.queries = append(t.queries, q.Copy())
	t.mu.Unlock()

	writeResponse(wtr, q, resp)
}
