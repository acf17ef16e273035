package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/findoc/internal/config"
	"github.com/sandevgo/findoc/internal/core"
	"github.com/sandevgo/findoc/pkg/log"
)

// NewProvider creates the appropriate Answerer based on configuration.
// Provider-specific env vars are only required for the selected provider.
func NewProvider(ctx context.Context, cfg *config.AppConfig) (core.Answerer, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.LLMProvider).
		Msg("starting llm provider")

	switch cfg.LLMProvider {
	case "gemini":
		gc := config.NewGeminiConfig(ctx)
		return NewGemini(gc.APIKey, gc.Model, gc.Search), nil
	case "openrouter":
		oc := config.NewOpenRouterConfig(ctx)
		return NewOpenRouter(oc.APIKey, oc.Model), nil
	case "custom":
		cc := config.NewCustomConfig(ctx)
		return NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    cc.BaseURL,
			APIKey:     cc.APIKey,
			Model:      cc.Model,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
