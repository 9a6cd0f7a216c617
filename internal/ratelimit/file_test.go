package ratelimit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func newTestFileLimiter(t *testing.T, max int) (*FileLimiter, *fixedClock) {
	t.Helper()

	clock := &fixedClock{}
	limiter := NewFileLimiter(filepath.Join(t.TempDir(), "rate_limit.json"), max, testWindow)
	limiter.now = clock.Now
	return limiter, clock
}

func TestFileLimiter_CheckAndRecord(t *testing.T) {
	limiter, clock := newTestFileLimiter(t, testMax)

	for i := 0; i < testMax; i++ {
		if decision := limiter.Check(); !decision.Allowed {
			t.Fatalf("Check() #%d denied, want allowed", i+1)
		}
		limiter.Record()
	}

	clock.ms = 1
	decision := limiter.Check()
	if decision.Allowed {
		t.Fatal("Check() after filling the window should deny")
	}
	if decision.ResetIn != 900 {
		t.Errorf("Check() ResetIn = %d, want 900", decision.ResetIn)
	}

	clock.ms = testWindow + 1
	if decision := limiter.Check(); !decision.Allowed {
		t.Fatal("Check() after window elapsed should allow")
	}
}

func TestFileLimiter_CheckDoesNotRecord(t *testing.T) {
	limiter, _ := newTestFileLimiter(t, 1)

	limiter.Check()
	limiter.Check()

	if decision := limiter.Check(); !decision.Allowed {
		t.Fatal("Check() alone must not consume the limit")
	}
}

func TestFileLimiter_StateSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rate_limit.json")

	first := NewFileLimiter(path, 1, testWindow)
	first.now = (&fixedClock{}).Now
	first.Record()

	second := NewFileLimiter(path, 1, testWindow)
	second.now = (&fixedClock{ms: 1}).Now
	if decision := second.Check(); decision.Allowed {
		t.Fatal("Check() on a fresh instance should see the persisted request")
	}
}

func TestFileLimiter_CorruptStateFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rate_limit.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	limiter := NewFileLimiter(path, 1, testWindow)
	if decision := limiter.Check(); !decision.Allowed {
		t.Fatal("Check() with corrupt state must fail open")
	}
}

func TestFileLimiter_MissingFileFailsOpen(t *testing.T) {
	limiter := NewFileLimiter(filepath.Join(t.TempDir(), "missing", "state.json"), 1, testWindow)
	if decision := limiter.Check(); !decision.Allowed {
		t.Fatal("Check() with no state file must fail open")
	}
}

func TestFileLimiter_RecordKeepsLifetimeCount(t *testing.T) {
	limiter, _ := newTestFileLimiter(t, testMax)

	limiter.Record()
	limiter.Record()

	data, err := os.ReadFile(limiter.path)
	if err != nil {
		t.Fatal(err)
	}

	var state limiterState
	if err := json.Unmarshal(data, &state); err != nil {
		t.Fatalf("state file is not valid JSON: %v", err)
	}

	if state.Count != 2 {
		t.Errorf("persisted count = %d, want 2", state.Count)
	}
	if len(state.Requests) != 2 {
		t.Errorf("persisted requests = %d, want 2", len(state.Requests))
	}
}

func TestFileLimiter_Clear(t *testing.T) {
	limiter, _ := newTestFileLimiter(t, testMax)

	limiter.Record()
	if err := limiter.Clear(); err != nil {
		t.Fatalf("Clear() unexpected error = %v", err)
	}

	if _, err := os.Stat(limiter.path); !os.IsNotExist(err) {
		t.Error("Clear() should remove the state file")
	}

	// Clearing twice is fine.
	if err := limiter.Clear(); err != nil {
		t.Errorf("Clear() on missing file unexpected error = %v", err)
	}
}
