package scoring

import (
	"context"
	"strings"
)

// FixedProvider is a deterministic offline provider: canned notes and a
// score looked up by substring match against the prompt (player names in
// practice). Used by tests and by runs without an LLM backend.
type FixedProvider struct {
	// Scores maps a prompt substring to the score returned when the
	// substring is found. Misses fall back to DefaultScore.
	Scores map[string]int
	// Notes is returned verbatim from GenerateReport; a default stub is
	// used when empty.
	Notes string
}

// NewFixed builds a fixed provider with the given substring→score table.
func NewFixed(scores map[string]int) *FixedProvider {
	return &FixedProvider{Scores: scores}
}

func (p *FixedProvider) Name() string { return "fixed" }

func (p *FixedProvider) GenerateReport(_ context.Context, _ string) (string, error) {
	if p.Notes != "" {
		return p.Notes, nil
	}
	return "Offline run: scouting narrative unavailable without an AI backend.", nil
}

func (p *FixedProvider) GenerateScore(_ context.Context, prompt string) (int, error) {
	for key, score := range p.Scores {
		if strings.Contains(prompt, key) {
			return ClampScore(score), nil
		}
	}
	return DefaultScore, nil
}
