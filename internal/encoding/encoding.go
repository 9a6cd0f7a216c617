package encoding

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	apperrors "promptlink/internal/errors"
)

// EncodePrompt turns a prompt into its URL-safe token: base64 of the UTF-8
// bytes with '+' -> '-', '/' -> '_' and the '=' padding stripped.
func EncodePrompt(prompt string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(prompt))
}

// DecodePrompt inverts EncodePrompt. Malformed input (characters outside the
// URL-safe alphabet, truncated bytes, invalid UTF-8) yields ErrDecodeFailed;
// callers treat that as an absent prompt, not a fault.
func DecodePrompt(token string) (string, error) {
	// Tolerate tokens that arrive with their padding intact.
	token = strings.TrimRight(token, "=")

	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", apperrors.ErrDecodeFailed
	}

	if !utf8.Valid(data) {
		return "", apperrors.ErrDecodeFailed
	}

	return string(data), nil
}
