package llm

import (
	"errors"
	"math"
	"net/http"
	"testing"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"gpt-mini", "gpt-4o-mini"},
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model   string
		in, out float64
	}{
		{"gpt-4o-mini", 0.15, 0.6},
		{"gpt-4o-2024-08-06", 2.5, 10},
		{"claude-3-5-haiku-20241022", 0.8, 4},
		{"claude-haiku-4-5-20251001", 1, 5},
		{"claude-opus-4-1-20250805", 15, 75},
		{"claude-opus-4-5-20251101", 5, 25},
		{"gemini-2.5-flash-lite", 0.1, 0.4},
		{"openai/gpt-4o-mini", 0.15, 0.6},
		{"facebook/bart-large-cnn", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			c := LookupCost(tt.model)
			if c == nil {
				t.Fatalf("expected pricing for %s", tt.model)
			}
			if c.InputPerMTok != tt.in || c.OutputPerMTok != tt.out {
				t.Errorf("LookupCost(%q) = %+v, want {%v %v}", tt.model, *c, tt.in, tt.out)
			}
		})
	}

	if c := LookupCost("no-such-model"); c != nil {
		t.Fatalf("expected nil for unknown model, got %+v", c)
	}
}

func TestModelCost(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.15, OutputPerMTok: 0.6}
	if got, want := c.Cost(1_000_000, 2_000_000), 0.15+1.2; math.Abs(got-want) > 1e-9 {
		t.Errorf("Cost = %v, want %v", got, want)
	}
}

func TestStatusError(t *testing.T) {
	cause := errors.New("boom")

	var rl *ErrRateLimit
	if err := statusError(http.StatusTooManyRequests, "slow down", cause); !errors.As(err, &rl) {
		t.Errorf("429: got %T", err)
	}

	var se *ErrHTTPStatus
	err := statusError(http.StatusBadGateway, "upstream", cause)
	if !errors.As(err, &se) || se.StatusCode != http.StatusBadGateway || se.Body != "upstream" {
		t.Errorf("502: got %#v", err)
	}

	var pu *ErrProviderUnavailable
	err = statusError(0, "", cause)
	if !errors.As(err, &pu) || !errors.Is(err, cause) {
		t.Errorf("no status: got %#v", err)
	}
}
