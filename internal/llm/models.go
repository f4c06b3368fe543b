package llm

import (
	"net/http"
	"strings"
)

// modelAliases maps the short names accepted in config to model IDs.
// Anything else is passed to the provider unchanged.
var modelAliases = map[string]string{
	"claude-haiku":      "claude-haiku-4-5-20251001",
	"claude-sonnet":     "claude-sonnet-4-5-20250929",
	"gpt-mini":          "gpt-4o-mini",
	"gpt":               "gpt-4o",
	"gemini-flash":      "gemini-2.5-flash",
	"gemini-flash-lite": "gemini-2.5-flash-lite",
	"gemini-pro":        "gemini-2.5-pro",
}

func resolveModel(name string) string {
	if id, ok := modelAliases[name]; ok {
		return id
	}
	return name
}

// ModelCost is USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1_000_000
}

// modelPrices is keyed by model ID prefix so that dated snapshots
// ("claude-3-5-haiku-20241022") share their family's price. Longest
// prefix wins. Prices as listed by models.dev, February 2026.
var modelPrices = map[string]ModelCost{
	// Hugging Face serverless inference is free within the account quota.
	"facebook/bart-large-cnn": {0, 0},

	"claude-3-haiku":    {0.25, 1.25},
	"claude-3-5-haiku":  {0.8, 4},
	"claude-haiku-4-5":  {1, 5},
	"claude-3-5-sonnet": {3, 15},
	"claude-3-7-sonnet": {3, 15},
	"claude-sonnet-4":   {3, 15},
	"claude-opus-4":     {15, 75},
	"claude-opus-4-5":   {5, 25},
	"claude-opus-4-6":   {5, 25},

	"gpt-3.5-turbo": {0.5, 1.5},
	"gpt-4o":        {2.5, 10},
	"gpt-4o-mini":   {0.15, 0.6},
	"gpt-4.1":       {2, 8},
	"gpt-4.1-mini":  {0.4, 1.6},
	"gpt-4.1-nano":  {0.1, 0.4},
	"gpt-5":         {1.25, 10},
	"gpt-5-mini":    {0.25, 2},
	"gpt-5-nano":    {0.05, 0.4},
	"gpt-5-pro":     {15, 120},

	"gemini-1.5-flash":      {0.075, 0.3},
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
// OpenRouter-style IDs ("openai/gpt-4o-mini") are priced by their
// upstream model.
func LookupCost(modelID string) *ModelCost {
	candidates := []string{modelID}
	if i := strings.IndexByte(modelID, '/'); i >= 0 {
		candidates = append(candidates, modelID[i+1:])
	}
	for _, id := range candidates {
		best := ""
		for prefix := range modelPrices {
			if strings.HasPrefix(id, prefix) && len(prefix) > len(best) {
				best = prefix
			}
		}
		if best != "" {
			c := modelPrices[best]
			return &c
		}
	}
	return nil
}

// statusError converts an SDK failure carrying an HTTP status into the
// package's typed errors. status 0 means no response was received.
func statusError(status int, message string, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	case status > 0:
		return &ErrHTTPStatus{StatusCode: status, Body: message}
	}
	return &ErrProviderUnavailable{Err: err}
}
