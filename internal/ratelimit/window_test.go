package ratelimit

import "testing"

const (
	testMax    = 10
	testWindow = int64(900000) // 15 minutes
)

func tenAtZero() []int64 {
	timestamps := make([]int64, testMax)
	for i := range timestamps {
		timestamps[i] = 0
	}
	return timestamps
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		timestamps  []int64
		now         int64
		wantAllowed bool
		wantValid   int
	}{
		{
			name:        "empty window allows",
			timestamps:  nil,
			now:         0,
			wantAllowed: true,
			wantValid:   0,
		},
		{
			name:        "under the limit allows",
			timestamps:  []int64{0, 1, 2},
			now:         3,
			wantAllowed: true,
			wantValid:   3,
		},
		{
			name:        "full window denies",
			timestamps:  tenAtZero(),
			now:         1,
			wantAllowed: false,
			wantValid:   testMax,
		},
		{
			name:        "window fully elapsed starts fresh",
			timestamps:  tenAtZero(),
			now:         testWindow + 1,
			wantAllowed: true,
			wantValid:   0,
		},
		{
			name:        "entry at exactly window age expires",
			timestamps:  []int64{0},
			now:         testWindow,
			wantAllowed: true,
			wantValid:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, decision := Evaluate(tt.timestamps, tt.now, testMax, testWindow)

			if decision.Allowed != tt.wantAllowed {
				t.Errorf("Evaluate() allowed = %v, want %v", decision.Allowed, tt.wantAllowed)
			}

			if len(valid) != tt.wantValid {
				t.Errorf("Evaluate() surviving timestamps = %d, want %d", len(valid), tt.wantValid)
			}
		})
	}
}

func TestEvaluate_ResetIn(t *testing.T) {
	timestamps := tenAtZero()

	_, decision := Evaluate(timestamps, 1, testMax, testWindow)
	if decision.Allowed {
		t.Fatal("Evaluate() expected denial")
	}

	// ceil((0 + 900000 - 1) / 1000)
	if decision.ResetIn != 900 {
		t.Errorf("Evaluate() ResetIn = %d, want 900", decision.ResetIn)
	}
}

func TestEvaluate_ResetInShrinksMonotonically(t *testing.T) {
	timestamps := tenAtZero()

	previous := int64(1 << 62)
	for now := int64(1); now < testWindow; now += 60000 {
		_, decision := Evaluate(timestamps, now, testMax, testWindow)
		if decision.Allowed {
			t.Fatalf("Evaluate() at now=%d expected denial", now)
		}

		if decision.ResetIn <= 0 {
			t.Errorf("Evaluate() at now=%d ResetIn = %d, want > 0", now, decision.ResetIn)
		}

		if decision.ResetIn > previous {
			t.Errorf("Evaluate() at now=%d ResetIn = %d grew from %d", now, decision.ResetIn, previous)
		}
		previous = decision.ResetIn
	}
}

func TestEvaluate_OldestSurvivorDrivesReset(t *testing.T) {
	// Out-of-order log: the oldest surviving entry decides the reset.
	timestamps := []int64{5000, 1000, 9000, 2000, 3000, 4000, 6000, 7000, 8000, 9500}

	_, decision := Evaluate(timestamps, 10000, testMax, testWindow)
	if decision.Allowed {
		t.Fatal("Evaluate() expected denial")
	}

	// ceil((1000 + 900000 - 10000) / 1000)
	if decision.ResetIn != 891 {
		t.Errorf("Evaluate() ResetIn = %d, want 891", decision.ResetIn)
	}
}

func TestEvaluate_DisabledLimit(t *testing.T) {
	_, decision := Evaluate(tenAtZero(), 1, 0, testWindow)
	if !decision.Allowed {
		t.Error("Evaluate() with max=0 should always allow")
	}
}

func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	timestamps := []int64{0, 1, 2}

	Evaluate(timestamps, testWindow+5, testMax, testWindow)

	for i, want := range []int64{0, 1, 2} {
		if timestamps[i] != want {
			t.Fatalf("Evaluate() mutated input slice: %v", timestamps)
		}
	}
}
