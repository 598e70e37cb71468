/*
Package scan implements concurrent DNS subdomain enumeration: candidate names are
assembled lazily from a wordlist and a target domain, resolved for each configured
record type by a bounded pool of workers, classified into a closed set of outcomes
and aggregated into a thread-safe result.

The Scanner owns the lifecycle. It moves from Idle through Dispatching and Draining
to Done, or to Cancelled when the caller's context fires first. Work flows through
a bounded channel of candidates; closing the channel is the no-more-work signal.
Each worker expands a candidate over the record types in order and stops early on
NXDOMAIN since the remaining types cannot exist for a name that doesn't.

The package talks to the network solely through the resolver.Resolver interface
which keeps the engine deterministic under test.
*/
package scan
