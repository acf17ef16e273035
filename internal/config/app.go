package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/findoc/pkg/log"
)

type AppConfig struct {
	// Allow selecting the answering provider
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"gemini"`

	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`

	// Context Management
	HistoryLimit   int           `env:"HISTORY_LIMIT" envDefault:"10"`
	DocumentTTL    time.Duration `env:"DOCUMENT_TTL" envDefault:"5m"`
	BatchTTL       time.Duration `env:"BATCH_TTL" envDefault:"10m"`
	DocTokenBudget int           `env:"DOC_TOKEN_BUDGET" envDefault:"4000"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}
