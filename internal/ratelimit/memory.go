package ratelimit

import (
	"sync"
	"time"
)

// MemoryLimiter is the server-side variant: per-identity timestamp lists in
// process memory. State intentionally does not survive a restart; a cold
// start resets every window.
type MemoryLimiter struct {
	mu       sync.Mutex
	requests map[string][]int64
	max      int
	windowMs int64
	now      func() time.Time
}

func NewMemoryLimiter(max int, windowMs int64) *MemoryLimiter {
	return &MemoryLimiter{
		requests: make(map[string][]int64),
		max:      max,
		windowMs: windowMs,
		now:      time.Now,
	}
}

// Check admits or denies a request for the identity and records admitted
// ones. Check and record happen under one lock so concurrent requests from
// the same identity cannot overshoot the limit.
func (l *MemoryLimiter) Check(identity string) Decision {
	nowMs := l.now().UnixMilli()

	l.mu.Lock()
	defer l.mu.Unlock()

	valid, decision := Evaluate(l.requests[identity], nowMs, l.max, l.windowMs)
	if decision.Allowed {
		valid = append(valid, nowMs)
	}
	l.requests[identity] = valid

	return decision
}
