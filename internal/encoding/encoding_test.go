package encoding

import (
	"errors"
	"strings"
	"testing"

	apperrors "promptlink/internal/errors"
)

func TestEncodePrompt(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{
			name:   "plain ascii",
			prompt: "Hello world",
			want:   "SGVsbG8gd29ybGQ",
		},
		{
			name:   "no padding characters",
			prompt: "ab",
			want:   "YWI",
		},
		{
			name:   "url safe substitutions",
			prompt: "\xfb\xff>",
			want:   "-_8-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodePrompt(tt.prompt)
			if got != tt.want {
				t.Errorf("EncodePrompt(%q) = %q, want %q", tt.prompt, got, tt.want)
			}

			if strings.ContainsAny(got, "+/=") {
				t.Errorf("EncodePrompt(%q) = %q contains non-URL-safe characters", tt.prompt, got)
			}
		})
	}
}

func TestDecodePrompt_RoundTrip(t *testing.T) {
	prompts := []string{
		"Hello world",
		"",
		"a",
		"multi\nline\nprompt with  spaces\t",
		"кириллица и 中文 mixed",
		"emoji 🚀🌍 and astral 𝄞 characters",
		"punctuation: ?q=&x=1 +/=",
		strings.Repeat("long prompt with ünïcödé ", 180),
	}

	for _, p := range prompts {
		got, err := DecodePrompt(EncodePrompt(p))
		if err != nil {
			t.Errorf("DecodePrompt(EncodePrompt(%q)) unexpected error = %v", p, err)
			continue
		}

		if got != p {
			t.Errorf("round trip changed prompt: got %q, want %q", got, p)
		}
	}
}

func TestDecodePrompt_PaddedToken(t *testing.T) {
	got, err := DecodePrompt("YWI=")
	if err != nil {
		t.Fatalf("DecodePrompt() unexpected error = %v", err)
	}

	if got != "ab" {
		t.Errorf("DecodePrompt() = %q, want %q", got, "ab")
	}
}

func TestDecodePrompt_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "invalid alphabet", token: "abc+def/"},
		{name: "whitespace inside", token: "SGVs bG8"},
		{name: "truncated bytes", token: "S"},
		{name: "invalid utf8 payload", token: "_w"}, // decodes to 0xFF
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePrompt(tt.token)
			if err == nil {
				t.Fatalf("DecodePrompt(%q) expected error, got nil", tt.token)
			}

			if !errors.Is(err, apperrors.ErrDecodeFailed) {
				t.Errorf("DecodePrompt(%q) error = %v, want ErrDecodeFailed", tt.token, err)
			}
		})
	}
}
