// Package platform knows the deep-link URL shapes of the AI chat platforms
// a shared prompt can be opened in.
package platform

import (
	"fmt"
	"net/url"
)

// Platform is one AI chat destination a prompt can be pre-filled into.
type Platform struct {
	Name   string
	Label  string
	Prefix string
}

var platforms = []Platform{
	{Name: "chatgpt", Label: "ChatGPT", Prefix: "https://chat.openai.com/?q="},
	{Name: "claude", Label: "Claude", Prefix: "https://claude.ai/new?q="},
	{Name: "gemini", Label: "Gemini", Prefix: "https://gemini.google.com/app?q="},
	{Name: "grok", Label: "Grok", Prefix: "https://x.com/i/grok?q="},
	{Name: "perplexity", Label: "Perplexity", Prefix: "https://www.perplexity.ai/?q="},
}

// All returns the supported platforms in display order.
func All() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

// Lookup finds a platform by its short name.
func Lookup(name string) (Platform, error) {
	for _, p := range platforms {
		if p.Name == name {
			return p, nil
		}
	}
	return Platform{}, fmt.Errorf("unknown platform %q", name)
}

// ShareURL builds the deep link that opens the platform with the prompt
// already filled in. The prompt travels as a query value, so it is escaped.
func (p Platform) ShareURL(prompt string) string {
	return p.Prefix + url.QueryEscape(prompt)
}
