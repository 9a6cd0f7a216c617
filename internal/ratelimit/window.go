package ratelimit

// Decision is the outcome of evaluating one identity's request window.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetIn   int64 // seconds until a slot frees up; set only when denied
}

// Evaluate applies the sliding-window-log rule to one identity's recorded
// request timestamps (Unix milliseconds). It returns the timestamps still
// inside the window and the admission decision; recording the admitted
// request is the caller's job. Both the in-memory and the file-backed
// limiter go through this single function so their semantics cannot drift.
func Evaluate(timestamps []int64, now int64, max int, windowMs int64) ([]int64, Decision) {
	valid := make([]int64, 0, len(timestamps))
	for _, ts := range timestamps {
		if now-ts < windowMs {
			valid = append(valid, ts)
		}
	}

	// A non-positive max means the limiter is disabled.
	if max > 0 && len(valid) >= max {
		oldest := valid[0]
		for _, ts := range valid[1:] {
			if ts < oldest {
				oldest = ts
			}
		}

		resetAt := oldest + windowMs
		return valid, Decision{
			Allowed: false,
			ResetIn: (resetAt - now + 999) / 1000, // ceil to whole seconds
		}
	}

	return valid, Decision{
		Allowed:   true,
		Remaining: max - len(valid),
	}
}
