// Package wordlist loads the candidate words a scan expands into subdomains.
// Words come from an explicit file, or from a starter list embedded in the
// binary so nsweep works out of the box. Lists are fully loaded up front: word
// counts drive progress totals and resume bookkeeping, and a wordlist which
// cannot be read should fail before any query is sent, not during the scan.
package wordlist

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed subdomains.txt
var embedded embed.FS

// List is an in-memory word source. Next hands out the words in order, once;
// it is consumed by a single reader and is not safe for concurrent use.
type List struct {
	words []string
	ix    int
}

// New creates a List over words. The slice is used as given.
func New(words []string) *List {
	return &List{words: words}
}

// Default returns the embedded starter list.
func Default() *List {
	data, err := embedded.ReadFile("subdomains.txt")
	if err != nil { // Cannot happen short of a broken build
		panic("wordlist: embedded list unreadable: " + err.Error())
	}

	return New(parse(bytes.NewReader(data)))
}

// Load reads the wordlist at path. Blank lines and '#' comments are skipped.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist %w", err)
	}
	defer f.Close()

	words := parse(f)
	if len(words) == 0 {
		return nil, fmt.Errorf("wordlist %s contains no words", path)
	}

	return New(words), nil
}

// parse extracts words one per line, dropping blanks and comments.
func parse(src io.Reader) (words []string) {
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}

	return
}

// Next returns the next word until the list is exhausted.
func (t *List) Next() (string, bool) {
	if t.ix >= len(t.words) {
		return "", false
	}
	w := t.words[t.ix]
	t.ix++

	return w, true
}

// Err reports a mid-iteration failure. A List is fully materialized so there
// is never one, but the word source contract asks after exhaustion.
func (t *List) Err() error {
	return nil
}

// Len returns the total number of words, regardless of consumption.
func (t *List) Len() int {
	return len(t.words)
}

// Words returns the underlying words.
func (t *List) Words() []string {
	return t.words
}
