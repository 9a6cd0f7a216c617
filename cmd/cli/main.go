package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"promptlink/internal/encoding"
	"promptlink/internal/platform"
	"promptlink/internal/ratelimit"
	"promptlink/internal/utils"
)

const (
	defaultBaseURL = "http://localhost:8080"
	maxRequests    = 10
	windowMs       = 15 * 60 * 1000
)

func main() {
	createCmd := flag.NewFlagSet("create", flag.ExitOnError)
	createBase := createCmd.String("base-url", defaultBaseURL, "base URL for the share link")
	createPrompt := createCmd.String("prompt", "", "prompt text to share")
	createPlatform := createCmd.String("platform", "", "print only this platform's URL (see 'platforms')")

	decodeCmd := flag.NewFlagSet("decode", flag.ExitOnError)
	decodeToken := decodeCmd.String("token", "", "token to decode back into a prompt")

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "create":
		createCmd.Parse(os.Args[2:])
		prompt := *createPrompt
		if prompt == "" && createCmd.NArg() > 0 {
			prompt = strings.Join(createCmd.Args(), " ")
		}
		doCreate(*createBase, *createPlatform, prompt)
	case "decode":
		decodeCmd.Parse(os.Args[2:])
		token := *decodeToken
		if token == "" && decodeCmd.NArg() > 0 {
			token = decodeCmd.Arg(0)
		}
		doDecode(token)
	case "platforms":
		doPlatforms()
	case "reset-limit":
		doResetLimit()
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: promptlink <create|decode|platforms|reset-limit> [flags]")
	fmt.Fprintln(os.Stderr, "  create -prompt <text> [-platform <name>]   build a shareable demo link from a prompt")
	fmt.Fprintln(os.Stderr, "  decode -token <token>   turn a token back into its prompt")
	fmt.Fprintln(os.Stderr, "  platforms               list the supported AI platforms")
	fmt.Fprintln(os.Stderr, "  reset-limit             clear the local rate limit state")
}

func doCreate(baseURL, platformName, prompt string) {
	if err := utils.ValidatePrompt(prompt); err != nil {
		fmt.Fprintf(os.Stderr, "invalid prompt: %v\n", err)
		os.Exit(1)
	}

	var only *platform.Platform
	if platformName != "" {
		p, err := platform.Lookup(platformName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v (run 'platforms' for the list)\n", err)
			os.Exit(1)
		}
		only = &p
	}

	limiter := newLimiter()
	decision := limiter.Check()
	if !decision.Allowed {
		fmt.Fprintf(os.Stderr, "rate limit exceeded, try again in %ds\n", decision.ResetIn)
		os.Exit(1)
	}

	if only != nil {
		fmt.Println(only.ShareURL(prompt))
		limiter.Record()
		return
	}

	token := encoding.EncodePrompt(prompt)
	fmt.Printf("share link: %s/?q=%s\n\n", strings.TrimRight(baseURL, "/"), token)

	fmt.Println("open directly in:")
	for _, p := range platform.All() {
		fmt.Printf("  %-11s %s\n", p.Label, p.ShareURL(prompt))
	}

	limiter.Record()
}

func doDecode(token string) {
	if token == "" {
		fmt.Fprintln(os.Stderr, "decode requires a token")
		os.Exit(1)
	}

	// Accept whole share URLs as well as bare tokens.
	if i := strings.Index(token, "?q="); i >= 0 {
		token = token[i+3:]
	}

	prompt, err := encoding.DecodePrompt(token)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not decode token: it is not a valid share token")
		os.Exit(1)
	}

	fmt.Println(prompt)
}

func doPlatforms() {
	for _, p := range platform.All() {
		fmt.Printf("%-11s %s<prompt>\n", p.Name, p.Prefix)
	}
}

func doResetLimit() {
	if err := newLimiter().Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to clear rate limit state: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("rate limit state cleared")
}

func newLimiter() *ratelimit.FileLimiter {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return ratelimit.NewFileLimiter(filepath.Join(dir, "promptlink", "rate_limit.json"), maxRequests, windowMs)
}
