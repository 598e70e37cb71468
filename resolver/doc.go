/*
Package resolver presents a single-query DNS exchange as an interface which the scan
engine consumes and which can be mocked for testing purposes. The concrete
implementation wraps the github.com/miekg/dns client with the policy a bulk scan
needs: per-query timeouts, limited retries, rotation across the configured servers,
TCP retry when a UDP response arrives truncated and EDNS0 with client cookies.

Classification of responses is out of scope here. The raw response message and
transport error are handed back untouched so the caller owns the semantics.
*/
package resolver
