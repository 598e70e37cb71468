package scan

import (
	"strings"
)

// candidates lazily assembles candidate subdomain names from the wordlist. Words
// are trimmed and lowered; whatever survives is joined to the target domain. The
// source is pull-based so a million-line wordlist costs one line of memory at a
// time.
type candidates struct {
	domain string
	words  WordSource
}

func newCandidates(domain string, words WordSource) *candidates {
	return &candidates{domain: domain, words: words}
}

// next returns the next candidate name. The second return is false once the
// source is exhausted or has failed; the caller checks the source's Err to tell
// which.
func (t *candidates) next() (string, bool) {
	for {
		w, ok := t.words.Next()
		if !ok {
			return "", false
		}
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) == 0 {
			continue
		}

		return w + "." + t.domain, true
	}
}
