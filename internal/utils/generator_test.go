package utils

import (
	"strings"
	"testing"
)

func TestGenerateShortID(t *testing.T) {
	id, err := GenerateShortID()
	if err != nil {
		t.Fatalf("GenerateShortID() unexpected error = %v", err)
	}

	if len(id) != ShortIDLength {
		t.Errorf("GenerateShortID() length = %d, want %d", len(id), ShortIDLength)
	}

	for _, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			t.Errorf("GenerateShortID() = %q contains %q outside the alphabet", id, c)
		}
	}
}

func TestGenerateShortIDWithLength(t *testing.T) {
	for _, length := range []int{1, 8, 16} {
		id, err := GenerateShortIDWithLength(length)
		if err != nil {
			t.Fatalf("GenerateShortIDWithLength(%d) unexpected error = %v", length, err)
		}

		if len(id) != length {
			t.Errorf("GenerateShortIDWithLength(%d) length = %d", length, len(id))
		}
	}
}

func TestGenerateShortID_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateShortID()
		if err != nil {
			t.Fatalf("GenerateShortID() unexpected error = %v", err)
		}
		seen[id] = true
	}

	if len(seen) < 100 {
		t.Errorf("GenerateShortID() produced %d distinct ids out of 100", len(seen))
	}
}
