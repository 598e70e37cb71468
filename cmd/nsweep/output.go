package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/nsweep/nsweep/log"
	"github.com/nsweep/nsweep/scan"
)

// formatResult renders one found record the way it appears on the terminal and
// in text exports. Fixed-width type and name columns keep a stream of results
// scannable by eye.
func formatResult(typ, name, value string) string {
	return fmt.Sprintf("[%-5s] %-40s -> %s", typ, name, value)
}

func typesString(types []scan.RecordType) string {
	names := make([]string, 0, len(types))
	for _, rt := range types {
		names = append(names, rt.String())
	}

	return strings.Join(names, ",")
}

// printer serializes colored terminal output. Everything lands on log.Out()
// like the rest of our output so tests can capture it. Results are green,
// warnings yellow and section headings cyan; color.NoColor turns all of it
// into plain text.
type printer struct {
	mu     sync.Mutex
	green  *color.Color
	yellow *color.Color
	cyan   *color.Color
}

func newPrinter() *printer {
	return &printer{
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		cyan:   color.New(color.FgCyan),
	}
}

func (t *printer) found(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.green.Fprintln(log.Out(), line)
}

func (t *printer) warn(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.yellow.Fprintln(log.Out(), line)
}

func (t *printer) headline(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cyan.Fprintln(log.Out(), line)
}

// resultLine is one record flattened for reporting and export. Raw is the
// display form, stored so text exports and the terminal agree byte for byte.
type resultLine struct {
	Subdomain string `json:"subdomain"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Raw       string `json:"raw"`
}

// flattenFound merges the scan's found map with any records carried over from
// a resumed scan into one sorted, deduplicated list.
func flattenFound(found map[string][]scan.Record, prior []stateRecord) []resultLine {
	seen := make(map[string]bool)
	lines := make([]resultLine, 0, len(found)+len(prior))
	add := func(sub, typ, value string) {
		k := sub + "\x00" + typ + "\x00" + value
		if seen[k] {
			return
		}
		seen[k] = true
		lines = append(lines, resultLine{Subdomain: sub, Type: typ, Value: value,
			Raw: formatResult(typ, sub, value)})
	}

	for _, r := range prior {
		add(r.Subdomain, r.Type, r.Value)
	}
	for name, recs := range found {
		for _, r := range recs {
			add(name, r.Type.String(), r.Value)
		}
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].Raw < lines[j].Raw })

	return lines
}

func uniqueSubdomains(lines []resultLine) int {
	names := make(map[string]bool)
	for _, l := range lines {
		names[l.Subdomain] = true
	}

	return len(names)
}

// exportMetadata mirrors the scan settings into saved output so a results file
// is self-describing.
type exportMetadata struct {
	Tool        string `json:"tool"`
	Version     string `json:"version"`
	Timestamp   string `json:"timestamp"`
	Target      string `json:"target"`
	Wordlist    string `json:"wordlist"`
	Threads     int    `json:"threads"`
	RecordTypes string `json:"record_types"`
}

type exportDocument struct {
	Metadata   exportMetadata `json:"metadata"`
	Results    []resultLine   `json:"results"`
	TotalCount int            `json:"total_count"`
}

func (t *nsweep) newExportMetadata() exportMetadata {
	return exportMetadata{
		Tool:        programName,
		Version:     Version,
		Timestamp:   time.Now().Format(time.RFC3339),
		Target:      t.cfg.domain,
		Wordlist:    t.wordlistName(),
		Threads:     t.cfg.threads,
		RecordTypes: typesString(t.cfg.types),
	}
}

// saveResults writes the flattened results to cfg.outputPath as text or, with
// --json, as a single JSON document.
func (t *nsweep) saveResults(lines []resultLine) error {
	md := t.newExportMetadata()
	var data []byte
	var err error
	if t.cfg.jsonFlag {
		data, err = renderJSON(md, lines)
	} else {
		data = renderText(md, lines)
	}
	if err != nil {
		return err
	}

	err = os.WriteFile(t.cfg.outputPath, data, 0644)
	if err != nil {
		return fmt.Errorf("could not save results: %w", err)
	}

	return nil
}

func renderJSON(md exportMetadata, lines []resultLine) ([]byte, error) {
	doc := exportDocument{Metadata: md, Results: lines, TotalCount: len(lines)}
	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}

func renderText(md exportMetadata, lines []resultLine) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Scan Results\n", md.Tool)
	fmt.Fprintf(&b, "# Date: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "# target: %s\n", md.Target)
	fmt.Fprintf(&b, "# wordlist: %s\n", md.Wordlist)
	fmt.Fprintf(&b, "# threads: %d\n", md.Threads)
	fmt.Fprintf(&b, "# record_types: %s\n", md.RecordTypes)
	fmt.Fprintf(&b, "# Total results: %d\n", len(lines))
	b.WriteString("#" + strings.Repeat("=", 60) + "\n\n")
	for _, l := range lines {
		b.WriteString(l.Raw + "\n")
	}

	return []byte(b.String())
}
