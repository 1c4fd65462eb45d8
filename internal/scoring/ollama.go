package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// OllamaProvider talks to a locally hosted Ollama instance over its
// /api/generate endpoint.
type OllamaProvider struct {
	baseURL string
	model   string
	http    *http.Client
}

// NewOllama builds the provider with sensible local defaults.
func NewOllama(baseURL, model string) *OllamaProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama2"
	}
	return &OllamaProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *OllamaProvider) Name() string { return "ollama" }

type ollamaRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	Stream      bool    `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

func (p *OllamaProvider) GenerateReport(ctx context.Context, prompt string) (string, error) {
	full := fmt.Sprintf("%s\n\nUser: %s\n\nAssistant:", reportSystemPrompt, prompt)
	text, err := p.generate(ctx, full, 0.7)
	if err != nil {
		return "", fmt.Errorf("ollama report: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (p *OllamaProvider) GenerateScore(ctx context.Context, prompt string) (int, error) {
	full := fmt.Sprintf("%s\n\nUser: %s%s\n\nAssistant:", scoreSystemPrompt, prompt, scoreInstruction)
	text, err := p.generate(ctx, full, 0.3)
	if err != nil {
		return 0, fmt.Errorf("ollama score: %w", err)
	}
	return ParseScore(text), nil
}

func (p *OllamaProvider) generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	body, err := json.Marshal(ollamaRequest{
		Model:       p.model,
		Prompt:      prompt,
		Temperature: temperature,
		Stream:      false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("POST /api/generate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("POST /api/generate: HTTP %d", resp.StatusCode)
	}

	var out ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return out.Response, nil
}
