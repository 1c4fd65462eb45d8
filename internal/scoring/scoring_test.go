package scoring

import (
	"context"
	"testing"
)

func TestParseScore(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"85", 85},
		{"Score: 72/100", 72},
		{"  91 ", 91},
		{"I'd rate this player 64 overall.", 64},
		{"150", 100},      // clamp high
		{"0", 0},          // boundary low
		{"100", 100},      // boundary high
		{"no number", 50}, // default
		{"", 50},
		{"999999999999999999999999", 100}, // digit run beyond int range clamps high
	}
	for _, c := range cases {
		if got := ParseScore(c.text); got != c.want {
			t.Errorf("ParseScore(%q): want %d, got %d", c.text, c.want, got)
		}
	}
}

func TestClampScore(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, 0}, {0, 0}, {50, 50}, {100, 100}, {101, 100},
	}
	for _, c := range cases {
		if got := ClampScore(c.in); got != c.want {
			t.Errorf("ClampScore(%d): want %d, got %d", c.in, c.want, got)
		}
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	if _, err := New("bedrock", Config{}); err == nil {
		t.Error("expected error for unknown provider name")
	}
}

func TestNew_AnthropicRequiresKey(t *testing.T) {
	if _, err := New("anthropic", Config{}); err == nil {
		t.Error("expected error when API key is missing")
	}
}

func TestFixedProvider(t *testing.T) {
	p := NewFixed(map[string]int{"McDavid": 95, "Matthews": 88})

	score, err := p.GenerateScore(context.Background(), "Player: Connor McDavid\nPosition: F")
	if err != nil {
		t.Fatalf("GenerateScore: %v", err)
	}
	if score != 95 {
		t.Errorf("McDavid score: want 95, got %d", score)
	}

	score, _ = p.GenerateScore(context.Background(), "Player: Nobody Special")
	if score != DefaultScore {
		t.Errorf("unknown player: want default %d, got %d", DefaultScore, score)
	}

	notes, err := p.GenerateReport(context.Background(), "anything")
	if err != nil || notes == "" {
		t.Errorf("GenerateReport: want non-empty notes, got %q err=%v", notes, err)
	}
}
