package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	l := Default()
	if l.Len() < 50 {
		t.Error("Starter list suspiciously small:", l.Len())
	}

	seen := make(map[string]bool)
	for {
		w, ok := l.Next()
		if !ok {
			break
		}
		if len(w) == 0 || strings.HasPrefix(w, "#") {
			t.Error("Starter list leaked a blank or comment:", w)
		}
		if strings.ContainsAny(w, " \t") {
			t.Error("Starter list word contains whitespace:", w)
		}
		if seen[w] {
			t.Error("Starter list duplicates", w)
		}
		seen[w] = true
	}

	if !seen["www"] || !seen["mail"] || !seen["dev"] {
		t.Error("Starter list is missing the obvious words")
	}
	if l.Err() != nil {
		t.Error("In-memory list reported an error:", l.Err())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	content := `# A comment
www

  mail  
api

dev`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal("Setup failed:", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatal("Load failed:", err)
	}

	exp := []string{"www", "mail", "api", "dev"}
	if l.Len() != len(exp) {
		t.Fatal("Expected", len(exp), "words, got", l.Len(), l.Words())
	}
	for ix, want := range exp {
		got, ok := l.Next()
		if !ok || got != want {
			t.Error("Word", ix, "expected", want, "got", got)
		}
	}
	if _, ok := l.Next(); ok {
		t.Error("List produced words past its end")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Error("Expected an error for a missing wordlist")
	}
}

func TestLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("# only comments\n\n  \n"), 0644); err != nil {
		t.Fatal("Setup failed:", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("Expected an error for a wordlist with no words")
	}
	if err != nil && !strings.Contains(err.Error(), "no words") {
		t.Error("Wrong error:", err)
	}
}

func TestNew(t *testing.T) {
	l := New([]string{"a", "b"})
	if l.Len() != 2 {
		t.Error("Expected length 2, got", l.Len())
	}

	w, ok := l.Next()
	if !ok || w != "a" {
		t.Error("Expected a, got", w)
	}
	w, ok = l.Next()
	if !ok || w != "b" {
		t.Error("Expected b, got", w)
	}
	if _, ok = l.Next(); ok {
		t.Error("Exhausted list still producing")
	}
	if _, ok = l.Next(); ok { // Exhaustion is sticky
		t.Error("Exhausted list revived itself")
	}

	// Len is the total, not a countdown
	if l.Len() != 2 {
		t.Error("Len changed after consumption:", l.Len())
	}
}
