package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/findoc/internal/config"
	"github.com/sandevgo/findoc/internal/core"
	"github.com/sandevgo/findoc/internal/providers/extract"
	"github.com/sandevgo/findoc/internal/providers/llm"
	"github.com/sandevgo/findoc/internal/service/assistant"
	"github.com/sandevgo/findoc/internal/store"
	"github.com/sandevgo/findoc/internal/transport/telegram"
	"github.com/sandevgo/findoc/pkg/log"
	"github.com/sandevgo/findoc/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Session state
	languages := store.NewLanguageStore(core.Language(appCfg.DefaultLanguage))
	history := store.NewHistoryStore(appCfg.HistoryLimit)
	documents := store.NewDocumentStore(appCfg.DocumentTTL, nil)
	batches := store.NewBatchStore(appCfg.BatchTTL, nil)

	// 3. Answering provider
	answerer, err := llm.NewProvider(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. Assistant service
	svc := assistant.New(answerer, languages, history, documents, batches, appCfg.DocTokenBudget)

	// 5. Transport
	tgCfg := config.NewTelegramConfig(ctx)
	bot, err := telegram.NewBot(ctx, tgCfg, svc, extract.NewRegistry(), languages, documents, batches)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
	}

	return []srv.Service{bot}
}

func initEnv(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	envFile := ".env"

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
