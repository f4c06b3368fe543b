package llm

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds all text-generation provider configuration.
type Config struct {
	// Provider selects which provider to use.
	// Values: "huggingface", "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string `mapstructure:"provider"`

	HuggingFace HuggingFaceConfig `mapstructure:"huggingface"`
	Anthropic   AnthropicConfig   `mapstructure:"anthropic"`
	OpenAI      OpenAIConfig      `mapstructure:"openai"`
	Gemini      GeminiConfig      `mapstructure:"gemini"`
	OpenRouter  OpenRouterConfig  `mapstructure:"openrouter"`

	// Timeout bounds a single remote call. There are no retries.
	Timeout time.Duration `mapstructure:"timeout"`

	// MaxTokens caps chat-style responses.
	MaxTokens int `mapstructure:"max_tokens"`
}

// HuggingFaceConfig holds Hugging Face inference API configuration.
type HuggingFaceConfig struct {
	Token    string `mapstructure:"token"`
	Endpoint string `mapstructure:"endpoint"` // Default: "https://api-inference.huggingface.co/models"
	Model    string `mapstructure:"model"`    // Default: "facebook/bart-large-cnn"

	// HTTPClient overrides http.DefaultClient, mainly for tests.
	HTTPClient *http.Client `mapstructure:"-"`
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"` // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`    // Default: "gpt-4o-mini"
	BaseURL string `mapstructure:"base_url"` // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"` // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`    // Default: "google/gemini-2.0-flash-exp"
	BaseURL string `mapstructure:"base_url"` // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "huggingface",
		HuggingFace: HuggingFaceConfig{
			Endpoint: defaultHuggingFaceEndpoint,
			Model:    defaultHuggingFaceModel,
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Timeout:   5 * time.Second,
		MaxTokens: 1024,
	}
}

// Validate checks that the selected provider has what it needs. The
// Hugging Face token is optional: without it the call is still attempted.
func (c Config) Validate() error {
	switch c.Provider {
	case "huggingface", "mock":
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY is required for the openrouter provider")
		}
	default:
		return unknownProvider(c.Provider)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("llm timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
