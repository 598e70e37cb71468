package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nsweep/nsweep/scan"
)

func TestFormatResult(t *testing.T) {
	got := formatResult("A", "www.example.com", "192.0.2.1")
	exp := "[A    ] www.example.com" + strings.Repeat(" ", 25) + " -> 192.0.2.1"
	if got != exp {
		t.Errorf("Expected %q, got %q", exp, got)
	}

	// Names wider than the column are never truncated
	name := "a-very-long-subdomain-name.deep.in.the.zone.example.com"
	got = formatResult("CNAME", name, "t.example.net.")
	exp = "[CNAME] " + name + " -> t.example.net."
	if got != exp {
		t.Errorf("Expected %q, got %q", exp, got)
	}
}

func TestFlattenFound(t *testing.T) {
	found := map[string][]scan.Record{
		"www.example.com": {
			{Type: scan.TypeA, Value: "192.0.2.1"},
			{Type: scan.TypeAAAA, Value: "2001:db8::1"},
		},
		"api.example.com": {{Type: scan.TypeA, Value: "192.0.2.7"}},
	}
	prior := []stateRecord{
		{Subdomain: "old.example.com", Type: "A", Value: "192.0.2.9"},
		{Subdomain: "www.example.com", Type: "A", Value: "192.0.2.1"}, // Dupe of current
	}

	lines := flattenFound(found, prior)
	if len(lines) != 4 {
		t.Fatal("Expected 4 lines after dedupe, got", len(lines))
	}

	// Sorted by display line: all A records first, AAAA last
	expOrder := []string{
		"api.example.com", "old.example.com", "www.example.com", "www.example.com",
	}
	for ix, exp := range expOrder {
		if lines[ix].Subdomain != exp {
			t.Error(ix, "Expected", exp, "got", lines[ix].Subdomain)
		}
	}
	if lines[3].Type != "AAAA" {
		t.Error("Expected AAAA sorted last, got", lines[3].Type)
	}
	if lines[0].Raw != formatResult("A", "api.example.com", "192.0.2.7") {
		t.Error("Raw not derived from the parts, got", lines[0].Raw)
	}

	if uniqueSubdomains(lines) != 3 {
		t.Error("Expected 3 unique subdomains, got", uniqueSubdomains(lines))
	}
}

func newOutputTestNsweep(outputPath string, asJSON bool) *nsweep {
	cfg := newConfig()
	cfg.domain = "example.com"
	cfg.threads = scan.DefaultThreads
	cfg.types = scan.DefaultTypes()
	cfg.outputPath = outputPath
	cfg.jsonFlag = asJSON

	return newNsweep(cfg, nil)
}

func TestSaveResultsText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	ns := newOutputTestNsweep(path, false)

	lines := flattenFound(map[string][]scan.Record{
		"www.example.com":  {{Type: scan.TypeA, Value: "192.0.2.1"}},
		"mail.example.com": {{Type: scan.TypeMX, Value: "10 mx.example.com."}},
	}, nil)

	err := ns.saveResults(lines)
	if err != nil {
		t.Fatal("Unexpected", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Split(string(data), "\n")
	if len(got) < 11 {
		t.Fatal("Export too short", len(got), string(data))
	}
	if got[0] != "# nsweep Scan Results" {
		t.Error("Bad header line", got[0])
	}
	if !strings.HasPrefix(got[1], "# Date: ") {
		t.Error("Bad date line", got[1])
	}
	if got[2] != "# target: example.com" {
		t.Error("Bad target line", got[2])
	}
	if got[3] != "# wordlist: (embedded)" {
		t.Error("Bad wordlist line", got[3])
	}
	if got[4] != "# threads: 20" {
		t.Error("Bad threads line", got[4])
	}
	if got[5] != "# record_types: A,AAAA,CNAME" {
		t.Error("Bad record_types line", got[5])
	}
	if got[6] != "# Total results: 2" {
		t.Error("Bad total line", got[6])
	}
	if got[7] != "#"+strings.Repeat("=", 60) {
		t.Error("Bad separator line", got[7])
	}
	if got[8] != "" {
		t.Error("Expected blank line after the header, got", got[8])
	}
	if got[9] != lines[0].Raw || got[10] != lines[1].Raw {
		t.Error("Body lines not the sorted raws", got[9], got[10])
	}
}

func TestSaveResultsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	ns := newOutputTestNsweep(path, true)

	lines := flattenFound(map[string][]scan.Record{
		"www.example.com": {{Type: scan.TypeA, Value: "192.0.2.1"}},
	}, nil)

	err := ns.saveResults(lines)
	if err != nil {
		t.Fatal("Unexpected", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc exportDocument
	err = json.Unmarshal(data, &doc)
	if err != nil {
		t.Fatal("Export is not valid JSON:", err)
	}
	if doc.Metadata.Tool != programName || doc.Metadata.Version != Version {
		t.Error("Bad metadata", doc.Metadata)
	}
	if doc.Metadata.Target != "example.com" {
		t.Error("Bad metadata target", doc.Metadata.Target)
	}
	if doc.TotalCount != 1 || len(doc.Results) != 1 {
		t.Fatal("Expected one result, got", doc.TotalCount, len(doc.Results))
	}
	r := doc.Results[0]
	if r.Subdomain != "www.example.com" || r.Type != "A" || r.Value != "192.0.2.1" {
		t.Error("Bad result", r)
	}
	if r.Raw != formatResult("A", "www.example.com", "192.0.2.1") {
		t.Error("Bad raw", r.Raw)
	}
}

func TestSaveResultsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	ns := newOutputTestNsweep(path, true)

	err := ns.saveResults(flattenFound(nil, nil))
	if err != nil {
		t.Fatal("Unexpected", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "null") {
		t.Error("Empty results should export as [], not null")
	}
}
