// Package llm provides the text-generation providers used for verdicts,
// mini lessons, and content classification, plus the failover selector
// that decides which provider serves a given call.
package llm

import (
	"context"
	"errors"
)

// Provider names as they appear in configuration, status payloads, and
// switch events.
const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

// ErrUnknownProvider is returned by Selector.Switch for a name that no
// configured provider carries.
var ErrUnknownProvider = errors.New("unknown llm provider")

// Options controls a single generation call.
type Options struct {
	// Temperature is passed through when positive; zero leaves the
	// provider default in place.
	Temperature float32
	// JSONOutput asks the provider to constrain output to JSON where the
	// backend supports it. Parsing still tolerates prose wrappers.
	JSONOutput bool
}

// Provider is a text-generation oracle.
type Provider interface {
	// Name returns the stable provider name (ProviderGemini, ProviderOllama).
	Name() string
	// Generate produces a completion for prompt.
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
	// Available reports whether the provider looks reachable right now.
	Available(ctx context.Context) bool
}
