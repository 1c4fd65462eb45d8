package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	reportSystemPrompt = "You are an expert hockey scout specializing in player movement analysis."
	scoreSystemPrompt  = "You are a hockey scout providing numeric scores. Return only the integer score."

	scoreInstruction = "\n\nBased on the above analysis, provide ONLY a numeric score from 0-100 (integer only, no explanation):"
)

// AnthropicProvider generates scouting output through the Anthropic API.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

// NewAnthropic builds the provider. The API key is required; the model
// defaults to a small fast one when unset.
func NewAnthropic(apiKey, model string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}
	if model == "" {
		model = "claude-haiku-4-5-20251001"
	}
	return &AnthropicProvider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

// GenerateReport returns the scouting narrative for a player prompt.
func (p *AnthropicProvider) GenerateReport(ctx context.Context, prompt string) (string, error) {
	text, err := p.complete(ctx, reportSystemPrompt, prompt, 1000)
	if err != nil {
		return "", fmt.Errorf("anthropic report: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// GenerateScore asks for a bare integer and parses it through the
// acceptance boundary; malformed output degrades to the neutral default
// rather than an error.
func (p *AnthropicProvider) GenerateScore(ctx context.Context, prompt string) (int, error) {
	text, err := p.complete(ctx, scoreSystemPrompt, prompt+scoreInstruction, 10)
	if err != nil {
		return 0, fmt.Errorf("anthropic score: %w", err)
	}
	return ParseScore(text), nil
}

func (p *AnthropicProvider) complete(ctx context.Context, system, user string, maxTokens int64) (string, error) {
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}
