package llm

import (
	"context"
	"fmt"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/abhisek/brainbytes/internal/store"
)

type constructor func(ctx context.Context, cfg Config) (Provider, error)

var constructors = map[string]constructor{
	"huggingface": func(_ context.Context, cfg Config) (Provider, error) {
		if cfg.HuggingFace.Token == "" {
			log.Warn("HUGGINGFACE_TOKEN is not set; requests will be sent without credentials")
		}
		return NewHuggingFaceProvider(cfg.HuggingFace), nil
	},
	"anthropic": func(_ context.Context, cfg Config) (Provider, error) {
		return NewAnthropicProvider(cfg.Anthropic)
	},
	"openai": func(_ context.Context, cfg Config) (Provider, error) {
		return NewOpenAIProvider(cfg.OpenAI)
	},
	"openrouter": func(_ context.Context, cfg Config) (Provider, error) {
		return NewOpenRouterProvider(cfg.OpenRouter)
	},
	"gemini": func(ctx context.Context, cfg Config) (Provider, error) {
		return NewGeminiProvider(ctx, cfg.Gemini)
	},
	"mock": func(context.Context, Config) (Provider, error) {
		return NewMockProvider(), nil
	},
}

// ProviderNames lists the accepted values of Config.Provider, sorted.
func ProviderNames() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func unknownProvider(name string) error {
	return fmt.Errorf("unknown LLM provider %q (want one of %s)", name, strings.Join(ProviderNames(), ", "))
}

// NewProvider builds the provider selected by cfg. When events is non-nil
// every call is recorded there.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	build, ok := constructors[cfg.Provider]
	if !ok {
		return nil, unknownProvider(cfg.Provider)
	}
	p, err := build(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	if events == nil {
		return p, nil
	}
	return Recorded(p, cfg.Provider, events), nil
}
