package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/nsweep/nsweep/scan"
)

// stateRecord is one found record in resumable form. The display line is
// regenerated at report time so state files stay minimal.
type stateRecord struct {
	Subdomain string `json:"subdomain"`
	Type      string `json:"type"`
	Value     string `json:"value"`
}

// scanState is everything needed to pick up an interrupted scan later.
// Completed entries are wordlist words, not assembled names, so a resumed run
// can filter its wordlist directly.
type scanState struct {
	Target         string        `json:"target"`
	Wordlist       string        `json:"wordlist"`
	RecordTypes    string        `json:"record_types"`
	CompletedWords []string      `json:"completed_words"`
	FoundRecords   []stateRecord `json:"found_records"`
	StartedAt      string        `json:"started_at"`
	LastUpdated    string        `json:"last_updated"`
	TotalWords     int           `json:"total_words"`
}

func newScanState(target, wordlist string, types []scan.RecordType, total int) *scanState {
	return &scanState{
		Target:      target,
		Wordlist:    wordlist,
		RecordTypes: typesString(types),
		StartedAt:   time.Now().Format(time.RFC3339),
		TotalWords:  total,
	}
}

func loadState(path string) (*scanState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("state file %w", err)
	}

	st := &scanState{}
	err = json.Unmarshal(data, st)
	if err != nil {
		return nil, fmt.Errorf("state file %s: %w", path, err)
	}
	if len(st.Target) == 0 {
		return nil, fmt.Errorf("state file %s has no target", path)
	}

	return st, nil
}

func (t *scanState) save(path string) error {
	t.LastUpdated = time.Now().Format(time.RFC3339)
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}

	err = os.WriteFile(path, append(data, '\n'), 0644)
	if err != nil {
		return fmt.Errorf("could not save state: %w", err)
	}

	return nil
}

// remaining filters out the words a previous run already finished with.
func (t *scanState) remaining(words []string) []string {
	done := make(map[string]bool, len(t.CompletedWords))
	for _, w := range t.CompletedWords {
		done[w] = true
	}

	out := make([]string, 0, len(words))
	for _, w := range words {
		if !done[w] {
			out = append(out, w)
		}
	}

	return out
}

// stateTracker folds scan outcomes back into resumable state. A word is
// complete once every record type for it has an outcome, or immediately on
// NXDOMAIN since the short-circuit means its remaining types are never
// queried.
type stateTracker struct {
	mu     sync.Mutex
	state  *scanState
	suffix string // "." + target domain, trimmed off candidates to recover words
	types  int    // Outcomes per word when nothing short-circuits
	seen   map[string]int
	done   map[string]bool
}

func newStateTracker(state *scanState, domain string, types int) *stateTracker {
	return &stateTracker{
		state:  state,
		suffix: "." + domain,
		types:  types,
		seen:   make(map[string]int),
		done:   make(map[string]bool),
	}
}

func (t *stateTracker) observe(o scan.Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	word := strings.TrimSuffix(o.Candidate, t.suffix)

	if o.Kind == scan.KindResolved {
		for _, v := range o.Values {
			t.state.FoundRecords = append(t.state.FoundRecords,
				stateRecord{Subdomain: o.Candidate, Type: o.Type.String(), Value: v})
		}
	}

	t.seen[word]++
	if o.Kind == scan.KindNXDomain || t.seen[word] >= t.types {
		if !t.done[word] {
			t.done[word] = true
			t.state.CompletedWords = append(t.state.CompletedWords, word)
		}
	}
}
