package platform

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"chatgpt", "claude", "gemini", "grok", "perplexity"} {
		p, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) unexpected error = %v", name, err)
		}
		if p.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, p.Name)
		}
	}

	if _, err := Lookup("copilot"); err == nil {
		t.Error("Lookup() expected error for unknown platform")
	}
}

func TestShareURL(t *testing.T) {
	p, err := Lookup("claude")
	if err != nil {
		t.Fatal(err)
	}

	got := p.ShareURL("Explain monads & functors")
	want := "https://claude.ai/new?q=Explain+monads+%26+functors"
	if got != want {
		t.Errorf("ShareURL() = %q, want %q", got, want)
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("All() returned %d platforms, want 5", len(all))
	}

	for _, p := range all {
		if !strings.HasPrefix(p.Prefix, "https://") {
			t.Errorf("platform %q prefix %q is not https", p.Name, p.Prefix)
		}
		if !strings.HasSuffix(p.Prefix, "q=") {
			t.Errorf("platform %q prefix %q does not end in a query key", p.Name, p.Prefix)
		}
	}

	// Callers must not be able to mutate the registry through the copy.
	all[0].Prefix = "mutated"
	if fresh := All(); fresh[0].Prefix == "mutated" {
		t.Error("All() exposes the internal slice")
	}
}
