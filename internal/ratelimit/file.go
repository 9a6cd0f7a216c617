package ratelimit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// limiterState is the persisted shape, kept compatible with the browser
// client's storage entry: the raw request log plus a lifetime counter.
type limiterState struct {
	Requests []int64 `json:"requests"`
	Count    int64   `json:"count"`
}

// FileLimiter is the client-side variant of the same sliding-window rule:
// state lives in a single JSON file so it survives between runs, and Check
// and Record are separate calls, as they are in the browser client. Any
// problem with the state file fails open; a corrupt file must never lock
// the user out.
type FileLimiter struct {
	path     string
	max      int
	windowMs int64
	now      func() time.Time
}

func NewFileLimiter(path string, max int, windowMs int64) *FileLimiter {
	return &FileLimiter{
		path:     path,
		max:      max,
		windowMs: windowMs,
		now:      time.Now,
	}
}

// Check reports whether a request may proceed. It does not record anything.
func (l *FileLimiter) Check() Decision {
	state := l.load()
	_, decision := Evaluate(state.Requests, l.now().UnixMilli(), l.max, l.windowMs)
	return decision
}

// Record appends the current request to the persisted log. Write failures
// are ignored: losing a record relaxes the limit, it never blocks the user.
func (l *FileLimiter) Record() {
	state := l.load()
	state.Requests = append(state.Requests, l.now().UnixMilli())
	state.Count++

	data, err := json.Marshal(state)
	if err != nil {
		return
	}

	_ = os.MkdirAll(filepath.Dir(l.path), 0o755)
	_ = os.WriteFile(l.path, data, 0o644)
}

// Clear drops the persisted state.
func (l *FileLimiter) Clear() error {
	err := os.Remove(l.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (l *FileLimiter) load() limiterState {
	var state limiterState

	data, err := os.ReadFile(l.path)
	if err != nil {
		return limiterState{}
	}

	if err := json.Unmarshal(data, &state); err != nil {
		return limiterState{}
	}

	return state
}
