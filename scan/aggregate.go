package scan

import (
	"fmt"
	"sync"
	"time"
)

// Counters are the running totals of a scan. Attempted counts recorded Outcomes,
// Found counts Resolved outcomes and Records counts the individual values they
// carried, so Found <= Records whenever anything resolved at all. Skipped counts
// units dropped by the NXDOMAIN short-circuit and is deliberately outside
// Attempted: a skipped unit was never attempted.
type Counters struct {
	Attempted int
	Found     int
	Records   int
	NoAnswer  int
	NXDomain  int
	Timeout   int
	Errors    int
	Skipped   int
}

func (t *Counters) String() string {
	return fmt.Sprintf("q=%d found=%d(%d) noans=%d nx=%d to=%d err=%d skip=%d",
		t.Attempted, t.Found, t.Records, t.NoAnswer, t.NXDomain,
		t.Timeout, t.Errors, t.Skipped)
}

// Record is one resolved value for a candidate, e.g. {A, "192.0.2.1"}.
type Record struct {
	Type  RecordType
	Value string
}

// Result is the point-in-time product of a scan: every candidate which resolved,
// mapped to its records, plus the counters and enough context to report on the run.
// Run returns the final Result; it shares nothing with the aggregate so the caller
// can hold it forever.
type Result struct {
	Domain   string
	State    State
	Started  time.Time
	Elapsed  time.Duration
	Found    map[string][]Record // Candidate -> records, insertion ordered, deduped
	Counters Counters
	Wildcard *Wildcard // Only set when the probe ran
}

// FoundNames returns the resolved candidate names in no particular order.
func (t *Result) FoundNames() []string {
	names := make([]string, 0, len(t.Found))
	for name := range t.Found {
		names = append(names, name)
	}

	return names
}

// aggregate is the one shared mutable sink of a scan. Workers feed it through
// record() while snapshots go out to progress displays, so every access takes the
// mutex and nothing internal ever escapes uncopied.
type aggregate struct {
	mu       sync.RWMutex
	counters Counters
	found    map[string][]Record
	dup      map[string]bool // candidate+type+value triples already stored
}

func newAggregate() *aggregate {
	return &aggregate{
		found: make(map[string][]Record),
		dup:   make(map[string]bool),
	}
}

// record folds one Outcome into the totals. Resolved values are stored under the
// candidate in arrival order with exact duplicates collapsed, which keeps repeated
// wordlist entries from doubling up records. Found counts outcomes, Records counts
// values, so Found stays equal to the number of Resolved outcomes no matter how
// many answers each response carried.
func (t *aggregate) record(o Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.counters.Attempted++
	switch o.Kind {
	case KindResolved:
		t.counters.Found++
		for _, v := range o.Values {
			k := o.Candidate + "\x00" + o.Type.String() + "\x00" + v
			if t.dup[k] {
				continue
			}
			t.dup[k] = true
			t.counters.Records++
			t.found[o.Candidate] = append(t.found[o.Candidate],
				Record{Type: o.Type, Value: v})
		}

	case KindNoAnswer:
		t.counters.NoAnswer++
	case KindNXDomain:
		t.counters.NXDomain++
	case KindTimeout:
		t.counters.Timeout++
	case KindError:
		t.counters.Errors++
	}
}

// addSkipped accounts for units never dispatched due to the short-circuit.
func (t *aggregate) addSkipped(n int) {
	if n <= 0 {
		return
	}
	t.mu.Lock()
	t.counters.Skipped += n
	t.mu.Unlock()
}

// stats returns a copy of the counters. Safe to call while workers record.
func (t *aggregate) stats() Counters {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.counters
}

// snapshot returns a self-consistent copy of everything accumulated so far.
func (t *aggregate) snapshot() (Counters, map[string][]Record) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	found := make(map[string][]Record, len(t.found))
	for name, recs := range t.found {
		found[name] = append([]Record{}, recs...)
	}

	return t.counters, found
}
