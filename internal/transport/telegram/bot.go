package telegram

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sandevgo/findoc/internal/config"
	"github.com/sandevgo/findoc/internal/providers/extract"
	"github.com/sandevgo/findoc/internal/service/assistant"
	"github.com/sandevgo/findoc/internal/store"
	"github.com/sandevgo/findoc/pkg/log"
	"github.com/sandevgo/findoc/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot        *tele.Bot
	assistant  *assistant.Service
	extractors *extract.Registry
	languages  *store.LanguageStore
	documents  *store.DocumentStore
	batches    *store.BatchStore
	sender     *sender
	retrier    *retry.Retrier
	fetch      func(ctx context.Context, file *tele.File) ([]byte, error)
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	svc *assistant.Service,
	extractors *extract.Registry,
	languages *store.LanguageStore,
	documents *store.DocumentStore,
	batches *store.BatchStore,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:        b,
		assistant:  svc,
		extractors: extractors,
		languages:  languages,
		documents:  documents,
		batches:    batches,
		sender:     newSender(),
		retrier:    retry.NewDefaultRetrier(),
	}
	bot.fetch = bot.download

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle("/help", bot.handleHelp)
	b.Handle("/menu", bot.handleMenu)
	b.Handle("/search", bot.handleSearch)
	b.Handle("/english", bot.handleEnglish)
	b.Handle("/burmese", bot.handleBurmese)
	b.Handle("/batch", bot.handleBatch)
	b.Handle("/batch_analyze", bot.handleBatchAnalyze)
	b.Handle("/batch_clear", bot.handleBatchClear)
	b.Handle("/batch_status", bot.handleBatchStatus)
	b.Handle(tele.OnDocument, bot.handleDocument)
	b.Handle(tele.OnText, bot.handleText)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) baseCtx(c tele.Context) context.Context {
	if ctx, ok := c.Get(baseContextKey).(context.Context); ok {
		return ctx
	}
	return context.Background()
}

// download fetches the uploaded file from Telegram. Transient Bot API
// failures are retried here, at the hosting-framework boundary only.
func (b *Bot) download(ctx context.Context, file *tele.File) ([]byte, error) {
	var data []byte
	err := b.retrier.Do(ctx, func() error {
		rc, err := b.bot.File(file)
		if err != nil {
			return err
		}
		defer rc.Close()

		data, err = io.ReadAll(rc)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download telegram file: %w", err)
	}
	return data, nil
}
