// Package scoring defines the injected capability that turns a scouting
// prompt into narrative text and a numeric score, plus the boundary rules
// that keep whatever comes back inside [0,100].
package scoring

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultScore is substituted when a provider's output carries no usable
// integer.
const DefaultScore = 50

// Provider is the two-method scoring capability. Implementations may call
// out to an LLM service; the pipeline imposes no timeout or retry policy
// of its own beyond the caller's context.
type Provider interface {
	Name() string
	GenerateReport(ctx context.Context, prompt string) (string, error)
	GenerateScore(ctx context.Context, prompt string) (int, error)
}

// Config carries provider construction settings, resolved from flags and
// environment by the caller.
type Config struct {
	AnthropicAPIKey string
	AnthropicModel  string
	OllamaBaseURL   string
	OllamaModel     string
}

// New constructs a provider by name: "anthropic", "ollama", or "fixed"
// (a deterministic offline provider).
func New(name string, cfg Config) (Provider, error) {
	switch strings.ToLower(name) {
	case "anthropic":
		return NewAnthropic(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	case "ollama":
		return NewOllama(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	case "fixed":
		return NewFixed(nil), nil
	default:
		return nil, fmt.Errorf("unknown scoring provider %q (want anthropic, ollama, or fixed)", name)
	}
}

var integerRE = regexp.MustCompile(`\d+`)

// ParseScore extracts the first integer substring from provider output and
// clamps it to [0,100]. Output with no integer yields DefaultScore. This
// runs at the acceptance boundary, so tiers and ranks never see an
// out-of-range score.
func ParseScore(text string) int {
	m := integerRE.FindString(text)
	if m == "" {
		return DefaultScore
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// Overflow-length digit runs clamp high.
		return 100
	}
	return ClampScore(n)
}

// ClampScore bounds a score into [0,100].
func ClampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
