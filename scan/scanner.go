package scan

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/nsweep/nsweep/log"
	"github.com/nsweep/nsweep/resolver"
)

// State tracks a Scanner through its lifecycle. Idle moves to Dispatching when Run
// starts feeding candidates, to Draining once the feed is exhausted and the workers
// are finishing what's queued, then to Done. Cancellation moves straight to
// Cancelled from wherever the scan happens to be. Done and Cancelled are terminal.
type State int

const (
	Idle State = iota
	Dispatching
	Draining
	Done
	Cancelled
)

func (t State) String() string {
	switch t {
	case Idle:
		return "Idle"
	case Dispatching:
		return "Dispatching"
	case Draining:
		return "Draining"
	case Done:
		return "Done"
	case Cancelled:
		return "Cancelled"
	}

	return fmt.Sprintf("State-%d", t)
}

func (t State) terminal() bool {
	return t == Done || t == Cancelled
}

// Scanner runs one scan from one Config. Construct with New, run with Run, observe
// concurrently with Stats and State. A Scanner is single-shot: the terminal states
// are terminal and a second Run is refused, so a fresh scan means a fresh Scanner.
type Scanner struct {
	cfg     Config
	res     resolver.Resolver
	agg     *aggregate
	limiter *rate.Limiter // nil means unpaced

	mu    sync.RWMutex
	state State

	startTime time.Time
	wildcard  *Wildcard
}

// New validates the Config and returns a runnable Scanner. All configuration
// failures surface here, before any network activity, so Run never starts a scan
// which was doomed from the outset.
func New(cfg Config, res resolver.Resolver) (*Scanner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("resolver cannot be nil")
	}

	t := &Scanner{cfg: cfg, res: res, agg: newAggregate(), state: Idle}
	if cfg.QueriesPerSecond > 0 {
		t.limiter = rate.NewLimiter(rate.Limit(cfg.QueriesPerSecond), 1)
	}

	return t, nil
}

// State returns the current lifecycle state.
func (t *Scanner) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// setState moves to s unless a terminal state has already been reached.
func (t *Scanner) setState(s State) {
	t.mu.Lock()
	if !t.state.terminal() {
		t.state = s
	}
	t.mu.Unlock()
}

// Stats returns a copy of the live counters. Callable at any time from any
// goroutine, normally by a progress display while Run is underway.
func (t *Scanner) Stats() Counters {
	return t.agg.stats()
}

// Run performs the scan and blocks until it completes or ctx fires. Candidates flow
// through a bounded channel to the worker pool; closing the channel is the only
// "no more work" signal the workers need. Backpressure is free: feeding a full
// channel blocks, so a huge wordlist never piles up in memory.
//
// The optional events channel receives every recorded Outcome in completion order.
// Sends block, which extends the scan's backpressure to the consumer; pass nil if
// there is no consumer. Run does not close events, the caller owns it.
//
// Cancellation is cooperative. Workers notice between units, finish what is in
// flight and exit; whatever was recorded stays in the returned Result and the
// result State says Cancelled. The returned error is reserved for a wordlist
// source failure; a cancelled scan returns its partial Result with a nil error.
func (t *Scanner) Run(ctx context.Context, events chan<- Outcome) (*Result, error) {
	t.mu.Lock()
	if t.state != Idle {
		t.mu.Unlock()
		return nil, fmt.Errorf("scan cannot be re-run (state %s)", t.state)
	}
	t.state = Dispatching
	t.startTime = time.Now()
	t.mu.Unlock()

	if t.cfg.DetectWildcard {
		t.wildcard = t.probeWildcard(ctx)
		if t.wildcard.Detected {
			log.Debugf("wildcard DNS detected on %s: %d value(s)",
				t.cfg.Domain, len(t.wildcard.Values))
		}
	}

	work := make(chan string, t.cfg.Threads*queueFactor)

	var wg sync.WaitGroup
	for i := 0; i < t.cfg.Threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			t.worker(ctx, work, events)
		}()
	}

	cands := newCandidates(t.cfg.Domain, t.cfg.Words)
feed:
	for {
		name, ok := cands.next()
		if !ok {
			break
		}
		select {
		case work <- name:
		case <-ctx.Done():
			break feed
		}
	}
	close(work)
	srcErr := t.cfg.Words.Err()
	if srcErr != nil {
		log.Debugf("wordlist source failed: %s", srcErr.Error())
	}

	if ctx.Err() != nil {
		t.setState(Cancelled)
	} else {
		t.setState(Draining)
	}

	wg.Wait()

	if ctx.Err() != nil {
		t.setState(Cancelled)
	} else {
		t.setState(Done)
	}

	counters, found := t.agg.snapshot()
	result := &Result{
		Domain:   t.cfg.Domain,
		State:    t.State(),
		Started:  t.startTime,
		Elapsed:  time.Since(t.startTime),
		Found:    found,
		Counters: counters,
		Wildcard: t.wildcard,
	}

	return result, srcErr
}

// worker drains the candidate channel. Each candidate expands into one unit per
// configured record type, queried in configured order, with two early exits: an
// NXDomain answer short-circuits the rest of the types (a name which does not exist
// has no records of any type, so asking is waste) and cancellation stops between
// units. Every completed unit records exactly one Outcome; the short-circuited
// remainder is counted as skipped, never recorded.
func (t *Scanner) worker(ctx context.Context, work <-chan string, events chan<- Outcome) {
	for name := range work {
		for ix, rt := range t.cfg.Types {
			if ctx.Err() != nil {
				return
			}

			o, ok := t.resolveOne(ctx, name, rt)
			if !ok { // Unit cut short by cancellation; not a real outcome
				return
			}

			t.agg.record(o)
			if events != nil {
				select {
				case events <- o:
				case <-ctx.Done():
				}
			}

			if o.Kind == KindNXDomain {
				t.agg.addSkipped(len(t.cfg.Types) - ix - 1)
				if log.IfDebug() && ix+1 < len(t.cfg.Types) {
					log.Debugf("%s NXDOMAIN, skipping %d remaining type(s)",
						name, len(t.cfg.Types)-ix-1)
				}
				break
			}
		}
	}
}

// resolveOne executes a single unit: wait for a rate slot, query, classify. The
// second return is false when cancellation cut the unit short, in which case the
// Outcome is meaningless and must not be recorded; a query which managed to finish
// despite cancellation still counts. A panic anywhere below here, adapter included,
// converts to an Error outcome so one poisoned unit cannot take down the pool.
func (t *Scanner) resolveOne(ctx context.Context, name string, rt RecordType) (o Outcome, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			o = Outcome{
				Candidate: name,
				Type:      rt,
				Kind:      KindError,
				Detail:    fmt.Sprintf("worker panic: %v", p),
			}
			ok = true
			log.Errorf("recovered %s/%s: %v", name, rt.String(), p)
		}
	}()

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return o, false // Only fails when ctx dies while pacing
		}
	}

	r, rtt, err := t.res.Query(ctx, name, rt.Qtype())
	if err != nil && ctx.Err() != nil {
		return o, false // Query was aborted, not answered
	}

	return classify(name, rt, r, rtt, err), true
}
